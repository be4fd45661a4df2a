package agent

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Outcome says why a game stopped.
type Outcome int

const (
	Unfinished Outcome = iota
	Checkmate
	Stalemate
	PlyLimit
)

func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case PlyLimit:
		return "ply limit"
	default:
		return "unfinished"
	}
}

// Arena plays finders against each other on one GameState.
type Arena struct {
	White, Black MoveFinder

	// MaxPly stops the game once this many half-moves have been played.
	MaxPly int

	// Log receives one line per move when set.
	Log io.Writer
}

// Play moves on g until checkmate, stalemate or the ply limit. Each move is
// requested on a snapshot and then applied to g by the arena alone.
func (a *Arena) Play(ctx context.Context, g *engine.GameState) (Outcome, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Unfinished, errors.Wrapf(err, "ply %d", g.PlyCount()+1)
		}
		moves := g.ValidMoves()
		switch {
		case g.Checkmate():
			return Checkmate, nil
		case g.Stalemate():
			return Stalemate, nil
		case a.MaxPly > 0 && g.PlyCount() >= a.MaxPly:
			return PlyLimit, nil
		}

		finder := a.White
		if g.ToMove() == chess.Black {
			finder = a.Black
		}

		var m chess.Move
		select {
		case <-ctx.Done():
			return Unfinished, errors.Wrapf(ctx.Err(), "ply %d", g.PlyCount()+1)
		case got, ok := <-Request(ctx, finder, g, moves):
			if !ok {
				return Unfinished, fmt.Errorf("ply %d: %w", g.PlyCount()+1, errors.ErrNoMove)
			}
			m = got
		}

		g.MakeMove(m)
		if a.Log != nil {
			fmt.Fprintf(a.Log, "%d. %v %s\n", g.PlyCount(), m.Moved.Colour(), m)
		}
	}
}
