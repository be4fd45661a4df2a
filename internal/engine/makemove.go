package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MakeMove applies a move to the state. No legality check is made: the
// move must come from ValidMoves, or be part of a transient simulation.
func (g *GameState) MakeMove(m chess.Move) {
	colour := m.Moved.Colour()

	g.board.Set(m.Start, chess.Empty)
	g.board.Set(m.End, m.Moved)
	g.moveLog = append(g.moveLog, m)
	g.toMove = g.toMove.Opposite()

	if m.Moved.Type() == chess.King {
		g.setKingSquare(colour, m.End)
	}

	// Auto-queen: there is no underpromotion.
	if m.Promotion {
		g.board.Set(m.End, chess.MakeColouredPiece(colour, chess.Queen))
	}

	if m.EnPassant {
		g.board.Set(chess.Sq(m.Start.Row, m.End.Col), chess.Empty)
	}

	if m.Moved.Type() == chess.Pawn && abs(m.Start.Row-m.End.Row) == 2 {
		g.enPassant = chess.Sq((m.Start.Row+m.End.Row)/2, m.Start.Col)
	} else {
		g.enPassant = chess.NoSquare
	}

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		g.board.Set(rookTo, g.board.Get(rookFrom))
		g.board.Set(rookFrom, chess.Empty)
	}

	g.enPassantLog = append(g.enPassantLog, g.enPassant)

	g.updateCastlingRights(m)
	g.castlingLog = append(g.castlingLog, g.castlingRights)
}

// UndoMove reverses the most recent move. It returns false, leaving the
// state untouched, if there is nothing to undo.
func (g *GameState) UndoMove() bool {
	n := len(g.moveLog)
	if n == 0 {
		return false
	}
	m := g.moveLog[n-1]
	g.moveLog = g.moveLog[:n-1]

	g.board.Set(m.Start, m.Moved)
	g.board.Set(m.End, m.Captured)
	g.toMove = g.toMove.Opposite()

	if m.Moved.Type() == chess.King {
		g.setKingSquare(m.Moved.Colour(), m.Start)
	}

	if m.EnPassant {
		g.board.Set(m.End, chess.Empty)
		g.board.Set(chess.Sq(m.Start.Row, m.End.Col), m.Captured)
	}

	g.enPassantLog = g.enPassantLog[:len(g.enPassantLog)-1]
	g.enPassant = g.enPassantLog[len(g.enPassantLog)-1]

	g.castlingLog = g.castlingLog[:len(g.castlingLog)-1]
	g.castlingRights = g.castlingLog[len(g.castlingLog)-1]

	if m.Castle {
		rookFrom, rookTo := castleRookSquares(m)
		g.board.Set(rookFrom, g.board.Get(rookTo))
		g.board.Set(rookTo, chess.Empty)
	}

	// Terminal status is only recomputed by ValidMoves.
	g.checkmate = false
	g.stalemate = false
	return true
}

// tryMove applies m, runs fn, and always reverses m afterwards.
func (g *GameState) tryMove(m chess.Move, fn func()) {
	g.MakeMove(m)
	defer g.UndoMove()
	fn()
}

// updateCastlingRights clears rights lost by this move. Rights are never re-set.
func (g *GameState) updateCastlingRights(m chess.Move) {
	colour := m.Moved.Colour()
	switch m.Moved.Type() {
	case chess.King:
		g.castlingRights.ClearAll(colour)
	case chess.Rook:
		g.castlingRights.ClearForCorner(colour, m.Start)
	}

	// A capture on a rook's home square covers a rook taken before it moved.
	if m.IsCapture() && !m.EnPassant {
		g.castlingRights.ClearForCorner(m.Captured.Colour(), m.End)
	}
}

// castleRookSquares returns the rook's home and destination for a castle.
func castleRookSquares(m chess.Move) (from, to chess.Square) {
	row := m.Start.Row
	if m.IsKingsideCastle() {
		return chess.Sq(row, chess.KingsideRookCol), chess.Sq(row, m.End.Col-1)
	}
	return chess.Sq(row, chess.QueensideRookCol), chess.Sq(row, m.End.Col+1)
}
