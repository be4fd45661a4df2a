package agent

import (
	"context"
	"math/rand"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// RandomFinder picks uniformly among the offered moves. It is safe for
// concurrent use.
type RandomFinder struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomFinder returns a RandomFinder whose choices are fixed by seed.
func NewRandomFinder(seed int64) *RandomFinder {
	return &RandomFinder{r: rand.New(rand.NewSource(seed))}
}

// FindMove returns a random element of moves, or false if there is none.
func (f *RandomFinder) FindMove(_ context.Context, _ *engine.GameState, moves []chess.Move) (chess.Move, bool) {
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	f.mu.Lock()
	i := f.r.Intn(len(moves))
	f.mu.Unlock()
	return moves[i], true
}
