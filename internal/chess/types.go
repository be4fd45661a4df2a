// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a chess piece type without colour.
type PieceType int

const (
	NoPiece PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Piece is a board token: either Empty or a colour and piece type.
// Tokens carry no history; has-moved facts live in CastlingRights.
type Piece uint8

// Empty is the token of an unoccupied square.
const Empty Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece PieceType) Piece {
	if piece == NoPiece {
		return Empty
	}
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece PieceType) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece PieceType) Piece {
	return MakeColouredPiece(Black, piece)
}

// Colour extracts the colour from a coloured piece.
// The result is meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Type extracts the piece type from a coloured piece.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// IsEmpty reports whether the token is Empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether the token is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// String returns a two character code such as "wK" or "bp", or "--" for Empty.
func (p Piece) String() string {
	if p == Empty {
		return "--"
	}
	colour := byte('b')
	if p.Colour() == White {
		colour = 'w'
	}
	letter := p.Type().Letter()
	if p.Type() == Pawn {
		letter = 'p'
	}
	return string([]byte{colour, letter})
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	FileBase = 'a'
)

// Home rows of each side. Row 0 is black's back rank, row 7 is white's.
const (
	BlackBackRow = 0
	WhiteBackRow = BoardSize - 1
)

// BackRow returns the back rank row index for the colour.
func BackRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow
	}
	return BlackBackRow
}

// PawnDirection returns the row delta of a pawn advance: -1 for White, +1 for Black.
func PawnDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// PawnStartRow returns the row from which a pawn may make a double step.
func PawnStartRow(colour Colour) int {
	if colour == White {
		return WhiteBackRow - 1
	}
	return BlackBackRow + 1
}
