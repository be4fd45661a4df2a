package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestAssertHelpers_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, "e4", "e4", "square %d", 1)
	AssertNoError(t, nil)
	AssertErrorIs(t, errors.Wrap(errors.ErrIllegalMove, "ply 3"), errors.ErrIllegalMove)
	AssertTrue(t, true)
	AssertFalse(t, false)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"value is %d", 42}, "value is 42"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLongMoves(t *testing.T) {
	board := chess.NewInitialBoard()
	moves := []chess.Move{
		chess.NewMove(MustSquare(t, "g1"), MustSquare(t, "f3"), &board),
		chess.NewMove(MustSquare(t, "e2"), MustSquare(t, "e4"), &board),
	}
	AssertEqual(t, LongMoves(moves), []string{"e2e4", "g1f3"})
	AssertMoveSet(t, moves, "g1f3", "e2e4")
	AssertMoveSet(t, nil)
}
