package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Square addresses a board cell by row (0 = rank 8) and column (0 = file a).
type Square struct {
	Row int
	Col int
}

// NoSquare marks an absent square, e.g. no en passant target.
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for a Square literal.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard reports whether the square lies on the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// String returns the file+rank form, e.g. "e4", or "-" for an off-board square.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{ColToFile(s.Col), RowToRank(s.Row)})
}

// ColToFile converts a column index 0-7 to a file letter 'a'-'h'.
func ColToFile(col int) byte {
	return byte(FileBase + col)
}

// RowToRank converts a row index 0-7 to a rank digit '8'-'1'.
func RowToRank(row int) byte {
	return byte(RankBase + BoardSize - 1 - row)
}

// FileToCol converts a file letter to a column index, or -1 if invalid.
func FileToCol(file byte) int {
	if file >= 'a' && file <= 'h' {
		return int(file - FileBase)
	}
	return -1
}

// RankToRow converts a rank digit to a row index, or -1 if invalid.
func RankToRow(rank byte) int {
	if rank >= '1' && rank <= '8' {
		return BoardSize - 1 - int(rank-RankBase)
	}
	return -1
}

// ParseSquare parses a file+rank string such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	col := FileToCol(s[0])
	row := RankToRow(s[1])
	if col < 0 || row < 0 {
		return NoSquare, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return Square{Row: row, Col: col}, nil
}
