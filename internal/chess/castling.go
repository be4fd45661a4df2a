package chess

// Home columns of the castling pieces.
const (
	KingHomeCol      = 4
	KingsideRookCol  = BoardSize - 1
	QueensideRookCol = 0
)

// CastlingRights records which castles remain reachable for each side,
// independent of whether they are currently blocked or attacked.
// Rights are only ever cleared during a game, never restored.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with every castle available.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Kingside reports the king-side right of the colour.
func (r CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queen-side right of the colour.
func (r CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// ClearAll removes both rights of the colour.
func (r *CastlingRights) ClearAll(colour Colour) {
	r.ClearKingside(colour)
	r.ClearQueenside(colour)
}

// ClearKingside removes the king-side right of the colour.
func (r *CastlingRights) ClearKingside(colour Colour) {
	if colour == White {
		r.WhiteKingside = false
	} else {
		r.BlackKingside = false
	}
}

// ClearQueenside removes the queen-side right of the colour.
func (r *CastlingRights) ClearQueenside(colour Colour) {
	if colour == White {
		r.WhiteQueenside = false
	} else {
		r.BlackQueenside = false
	}
}

// ClearForCorner removes the right tied to a rook home square, if sq is one.
func (r *CastlingRights) ClearForCorner(colour Colour, sq Square) {
	if sq.Row != BackRow(colour) {
		return
	}
	switch sq.Col {
	case KingsideRookCol:
		r.ClearKingside(colour)
	case QueensideRookCol:
		r.ClearQueenside(colour)
	}
}

// None reports whether no castling right remains.
func (r CastlingRights) None() bool {
	return !r.WhiteKingside && !r.WhiteQueenside && !r.BlackKingside && !r.BlackQueenside
}

// String returns the FEN castling field, e.g. "KQkq" or "-".
func (r CastlingRights) String() string {
	if r.None() {
		return "-"
	}
	var buf []byte
	if r.WhiteKingside {
		buf = append(buf, 'K')
	}
	if r.WhiteQueenside {
		buf = append(buf, 'Q')
	}
	if r.BlackKingside {
		buf = append(buf, 'k')
	}
	if r.BlackQueenside {
		buf = append(buf, 'q')
	}
	return string(buf)
}
