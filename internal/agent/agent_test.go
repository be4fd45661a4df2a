package agent

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

func TestRequestDeliversFinderMove(t *testing.T) {
	g := engine.NewGameState()
	moves := g.ValidMoves()
	want := moves[9] // e2e4

	finder := FinderFunc(func(_ context.Context, _ *engine.GameState, offered []chess.Move) (chess.Move, bool) {
		return offered[9], true
	})

	got, ok := <-Request(context.Background(), finder, g, moves)
	require.True(t, ok)
	require.Equal(t, want.LongString(), got.LongString())
}

func TestRequestFallsBackToRandom(t *testing.T) {
	g := engine.NewGameState()
	moves := g.ValidMoves()

	tests := []struct {
		name   string
		finder MoveFinder
	}{
		{"no opinion", FinderFunc(func(context.Context, *engine.GameState, []chess.Move) (chess.Move, bool) {
			return chess.Move{}, false
		})},
		{"illegal suggestion", FinderFunc(func(context.Context, *engine.GameState, []chess.Move) (chess.Move, bool) {
			return chess.Move{Start: chess.Sq(6, 4), End: chess.Sq(3, 4)}, true
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := <-Request(context.Background(), tt.finder, g, moves)
			require.True(t, ok)
			require.True(t, contains(moves, got), "fallback %s is not legal", got.LongString())
		})
	}
}

func TestRequestNoMovesClosesChannel(t *testing.T) {
	g := engine.MustFEN("8/8/8/8/8/1q6/2k5/K7 w - - 0 1")
	moves := g.ValidMoves()
	require.Empty(t, moves)

	called := false
	finder := FinderFunc(func(context.Context, *engine.GameState, []chess.Move) (chess.Move, bool) {
		called = true
		return chess.Move{}, false
	})
	_, ok := <-Request(context.Background(), finder, g, moves)
	require.False(t, ok)
	require.False(t, called)
}

func TestRequestUsesSnapshot(t *testing.T) {
	g := engine.NewGameState()
	moves := g.ValidMoves()

	release := make(chan struct{})
	seen := make(chan string, 1)
	finder := FinderFunc(func(_ context.Context, snap *engine.GameState, offered []chess.Move) (chess.Move, bool) {
		<-release
		// Search freely on the snapshot.
		for _, m := range snap.ValidMoves() {
			snap.MakeMove(m)
			snap.UndoMove()
		}
		seen <- snap.FEN()
		return offered[0], true
	})

	ch := Request(context.Background(), finder, g, moves)

	// The caller keeps using its own state while the finder works.
	_, err := g.ApplyIntent("d2d4")
	require.NoError(t, err)
	moves[0] = chess.Move{}
	close(release)

	got := <-ch
	require.Equal(t, "a2a3", got.LongString())
	require.Equal(t, engine.InitialFEN, <-seen)
	require.Equal(t, 1, g.PlyCount())
}

func TestRequestChannelHasOneSlot(t *testing.T) {
	g := engine.NewGameState()
	ch := Request(context.Background(), NewRandomFinder(3), g, g.ValidMoves())

	// The worker finishes without a reader.
	require.Eventually(t, func() bool { return len(ch) == 1 }, time.Second, time.Millisecond)
	require.Equal(t, 1, cap(ch))
	<-ch
	_, ok := <-ch
	require.False(t, ok)
}

func TestRandomFinder(t *testing.T) {
	g := engine.NewGameState()
	moves := g.ValidMoves()

	a, b := NewRandomFinder(42), NewRandomFinder(42)
	for i := 0; i < 10; i++ {
		ma, ok := a.FindMove(context.Background(), g, moves)
		require.True(t, ok)
		mb, _ := b.FindMove(context.Background(), g, moves)
		require.Equal(t, ma.LongString(), mb.LongString())
	}

	_, ok := a.FindMove(context.Background(), g, nil)
	require.False(t, ok)
}

func TestRandomFinderConcurrent(t *testing.T) {
	g := engine.NewGameState()
	moves := g.ValidMoves()
	f := NewRandomFinder(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m, ok := f.FindMove(context.Background(), nil, moves)
				if !ok || !contains(moves, m) {
					t.Errorf("FindMove returned %v, %v", m.LongString(), ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}
