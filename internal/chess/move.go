package chess

// Move is an immutable record of a half-move.
type Move struct {
	// Source and destination squares.
	Start Square
	End   Square

	// The piece being moved.
	Moved Piece

	// The token on the destination before the move, or the enemy pawn
	// for an en passant capture. Empty if nothing is captured.
	Captured Piece

	// A pawn reaching the far rank. Promotion is always to a queen.
	Promotion bool

	EnPassant bool
	Castle    bool
}

// NewMove creates a move from start to end, reading the moved and
// captured pieces from the board.
func NewMove(start, end Square, board *Board) Move {
	moved := board.Get(start)
	return Move{
		Start:     start,
		End:       end,
		Moved:     moved,
		Captured:  board.Get(end),
		Promotion: moved.Type() == Pawn && end.Row == BackRow(moved.Colour().Opposite()),
	}
}

// NewEnPassantMove creates an en passant capture. The captured token is
// synthesized since the destination square is empty.
func NewEnPassantMove(start, end Square, board *Board) Move {
	m := NewMove(start, end, board)
	m.EnPassant = true
	m.Captured = MakeColouredPiece(m.Moved.Colour().Opposite(), Pawn)
	return m
}

// NewCastleMove creates the two-square king move of a castle.
func NewCastleMove(start, end Square, board *Board) Move {
	m := NewMove(start, end, board)
	m.Castle = true
	return m
}

// ID packs the four coordinates into a stable, collision-free key.
func (m Move) ID() int {
	return m.Start.Row*1000 + m.Start.Col*100 + m.End.Row*10 + m.End.Col
}

// Equal reports whether two moves share the same key.
func (m Move) Equal(other Move) bool {
	return m.ID() == other.ID()
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsKingsideCastle reports a castle towards the h-file.
func (m Move) IsKingsideCastle() bool {
	return m.Castle && m.End.Col > m.Start.Col
}

// LongString returns start and end squares, e.g. "e2e4".
func (m Move) LongString() string {
	return m.Start.String() + m.End.String()
}

// String returns the move-log notation: "O-O", "e4", "exd5", "Nf3", "Rxe5".
// There is no disambiguation, no check suffix and no promotion suffix.
func (m Move) String() string {
	if m.Castle {
		if m.IsKingsideCastle() {
			return "O-O"
		}
		return "O-O-O"
	}

	end := m.End.String()
	if m.Moved.Type() == Pawn {
		if m.IsCapture() {
			return string(ColToFile(m.Start.Col)) + "x" + end
		}
		return end
	}

	text := string(m.Moved.Type().Letter())
	if m.IsCapture() {
		text += "x"
	}
	return text + end
}
