package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// LongMoves returns the long notation of each move, sorted.
func LongMoves(moves []chess.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.LongString()
	}
	sort.Strings(out)
	return out
}

// AssertMoveSet fails unless moves are exactly the listed long-notation moves,
// in any order.
func AssertMoveSet(t testing.TB, moves []chess.Move, want ...string) {
	t.Helper()
	want = append([]string(nil), want...)
	sort.Strings(want)
	if len(want) == 0 {
		want = []string{}
	}
	AssertEqual(t, LongMoves(moves), want)
}

// MustSquare parses an algebraic square or fails the test.
func MustSquare(t testing.TB, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", s, err)
	}
	return sq
}
