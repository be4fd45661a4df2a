package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ValidMoves returns the legal moves of the side to move and sets the
// checkmate and stalemate flags. Moves are ordered by source row, then
// column, then generator order, with castles last.
//
// Each candidate is simulated on the state itself, so ValidMoves must
// not run concurrently with any other access to g.
func (g *GameState) ValidMoves() []chess.Move {
	savedEnPassant := g.enPassant
	savedRights := g.castlingRights

	candidates := g.pseudoLegalMoves(g.toMove, make([]chess.Move, 0, 64))
	candidates = g.castleMoves(g.KingSquare(g.toMove), candidates)

	// Filter in place: the write index never passes the read index.
	legal := candidates[:0]
	for _, m := range candidates {
		if !g.leavesKingInCheck(m) {
			legal = append(legal, m)
		}
	}

	if len(legal) == 0 {
		inCheck := g.InCheck()
		g.checkmate = inCheck
		g.stalemate = !inCheck
	} else {
		g.checkmate = false
		g.stalemate = false
	}

	g.enPassant = savedEnPassant
	g.castlingRights = savedRights
	return legal
}

// leavesKingInCheck simulates m and tests the mover's king. The move is
// reversed on every path out of the function.
func (g *GameState) leavesKingInCheck(m chess.Move) (inCheck bool) {
	g.tryMove(m, func() {
		// Look from the mover's side for the duration of the test.
		g.toMove = g.toMove.Opposite()
		defer func() { g.toMove = g.toMove.Opposite() }()
		inCheck = g.InCheck()
	})
	return inCheck
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *GameState) HasLegalMoves() bool {
	return len(g.ValidMoves()) > 0
}

// LegalMove resolves a (start, end) intent against the current legal moves.
func (g *GameState) LegalMove(start, end chess.Square) (chess.Move, error) {
	intent := chess.Move{Start: start, End: end}
	for _, m := range g.ValidMoves() {
		if m.Equal(intent) {
			return m, nil
		}
	}
	return chess.Move{}, &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		PlyNum:   len(g.moveLog) + 1,
		MoveText: intent.LongString(),
	}
}

// ApplyIntent parses a long-form move such as "e2e4" and applies it if
// legal. A trailing promotion letter is accepted; promotion is always to
// a queen.
func (g *GameState) ApplyIntent(text string) (chess.Move, error) {
	text = strings.TrimSpace(text)
	if len(text) != 4 && len(text) != 5 {
		return chess.Move{}, &errors.MoveError{
			Err:      fmt.Errorf("expected from and to squares: %w", errors.ErrIllegalMove),
			PlyNum:   len(g.moveLog) + 1,
			MoveText: text,
		}
	}
	start, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, PlyNum: len(g.moveLog) + 1, MoveText: text}
	}
	end, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return chess.Move{}, &errors.MoveError{Err: err, PlyNum: len(g.moveLog) + 1, MoveText: text}
	}

	m, err := g.LegalMove(start, end)
	if err != nil {
		return chess.Move{}, err
	}
	g.MakeMove(m)
	return m, nil
}
