// Package perft counts the legal move tree in parallel, one root move per
// work item.
package perft

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Entry is the node count below one root move.
type Entry struct {
	Move  chess.Move
	Nodes uint64
}

// Result holds a divide, with entries sorted by long notation.
type Result struct {
	Depth   int
	Entries []Entry
	Total   uint64
}

// Divide counts the nodes below each legal root move of g at the given depth,
// spreading root moves over workers goroutines. Each worker expands its own
// clone, so g is only read while the root moves are taken.
func Divide(ctx context.Context, g *engine.GameState, depth, workers int) (*Result, error) {
	if depth < 1 {
		return nil, fmt.Errorf("divide depth %d: %w", depth, errors.ErrInvalidConfig)
	}

	moves, states := g.RootMoves()
	pool := worker.NewPoolWithOptions(countSubtree,
		worker.WithWorkers(workers),
		worker.WithBufferSize(len(moves)+1),
	)
	pool.Start()

	go func() {
		defer pool.Close()
		for i := range moves {
			if !pool.Submit(worker.WorkItem{Index: i, Move: moves[i], State: states[i], Depth: depth - 1}) {
				return
			}
		}
	}()

	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	byMove := make(map[string]Entry, len(moves))
	for res := range pool.Results() {
		byMove[res.Move.LongString()] = Entry{Move: res.Move, Nodes: res.Nodes}
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "divide at depth %d", depth)
	}

	keys := maps.Keys(byMove)
	slices.Sort(keys)

	result := &Result{Depth: depth, Entries: make([]Entry, 0, len(keys))}
	for _, k := range keys {
		e := byMove[k]
		result.Entries = append(result.Entries, e)
		result.Total += e.Nodes
	}
	return result, nil
}

// Count returns the total node count of a parallel divide.
func Count(ctx context.Context, g *engine.GameState, depth, workers int) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	r, err := Divide(ctx, g, depth, workers)
	if err != nil {
		return 0, err
	}
	return r.Total, nil
}

func countSubtree(item worker.WorkItem) worker.ProcessResult {
	return worker.ProcessResult{
		Index: item.Index,
		Move:  item.Move,
		Nodes: item.State.Perft(item.Depth),
	}
}

// WriteTo writes one "move: nodes" line per entry followed by the total.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, e := range r.Entries {
		n, err := fmt.Fprintf(w, "%s: %d\n", e.Move.LongString(), e.Nodes)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	n, err := fmt.Fprintf(w, "\nNodes searched: %d\n", r.Total)
	written += int64(n)
	return written, err
}
