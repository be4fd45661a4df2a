package chess

import "strings"

// Board is the 8x8 grid of piece tokens, indexed [row][col].
// Row 0 is black's back rank, column 0 is the a-file.
type Board [BoardSize][BoardSize]Piece

// NewBoard creates a new empty board.
func NewBoard() Board {
	return Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() Board {
	var b Board
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b[BlackBackRow][col] = B(backRank[col])
		b[BlackBackRow+1][col] = B(Pawn)
		b[WhiteBackRow-1][col] = W(Pawn)
		b[WhiteBackRow][col] = W(backRank[col])
	}
}

// Get returns the piece on the square. Off-board squares read as Empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return Empty
	}
	return b[sq.Row][sq.Col]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b[sq.Row][sq.Col] = piece
	}
}

// Find returns the first square holding the piece, scanning rows then columns.
func (b *Board) Find(piece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == piece {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return NoSquare, false
}

// Count returns how many squares hold the piece.
func (b *Board) Count(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// String renders the board as eight lines of two character tokens.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(RowToRank(row))
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b[row][col].String())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteString("  ")
		sb.WriteByte(ColToFile(col))
	}
	sb.WriteByte('\n')
	return sb.String()
}
