// Package agent hands positions to a move-choosing collaborator and gets a
// move back. The collaborator always works on a private snapshot; the
// caller's GameState is never shared.
package agent

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// MoveFinder chooses one of moves for the position g. It returns false when
// it has no opinion, for example after ctx is cancelled. g and moves are
// owned by the finder for the duration of the call.
type MoveFinder interface {
	FindMove(ctx context.Context, g *engine.GameState, moves []chess.Move) (chess.Move, bool)
}

// FinderFunc adapts a function to a MoveFinder.
type FinderFunc func(ctx context.Context, g *engine.GameState, moves []chess.Move) (chess.Move, bool)

// FindMove calls f.
func (f FinderFunc) FindMove(ctx context.Context, g *engine.GameState, moves []chess.Move) (chess.Move, bool) {
	return f(ctx, g, moves)
}

// Request asks finder for a move on a snapshot of g and the moves slice.
// The returned channel has one slot and receives exactly one legal move,
// falling back to a random choice when the finder offers none or offers a
// move not in moves. If moves is empty the channel is closed with no value.
//
// g may be mutated by the caller as soon as Request returns.
func Request(ctx context.Context, finder MoveFinder, g *engine.GameState, moves []chess.Move) <-chan chess.Move {
	out := make(chan chess.Move, 1)
	if len(moves) == 0 {
		close(out)
		return out
	}

	snapshot := g.Clone()
	candidates := append([]chess.Move(nil), moves...)
	fallback := NewRandomFinder(int64(snapshot.PlyCount()) + 1)

	go func() {
		defer close(out)
		m, ok := finder.FindMove(ctx, snapshot, append([]chess.Move(nil), candidates...))
		if !ok || !contains(candidates, m) {
			m, _ = fallback.FindMove(ctx, snapshot, candidates)
		}
		out <- m
	}()
	return out
}

func contains(moves []chess.Move, m chess.Move) bool {
	for _, c := range moves {
		if c.Equal(m) {
			return true
		}
	}
	return false
}
