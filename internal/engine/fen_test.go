package engine

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewGameStateFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*GameState) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(g *GameState) bool {
				return g.Board() == chess.NewInitialBoard() &&
					g.ToMove() == chess.White &&
					g.CastlingRights() == chess.AllCastlingRights() &&
					g.EnPassantTarget() == chess.NoSquare
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(g *GameState) bool {
				return g.PieceAt(chess.Sq(4, 4)) == chess.W(chess.Pawn) &&
					g.PieceAt(chess.Sq(6, 4)) == chess.Empty &&
					g.ToMove() == chess.Black &&
					g.EnPassantTarget() == chess.Sq(5, 4)
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(g *GameState) bool {
				return g.CastlingRights().None()
			},
		},
		{
			name: "unreachable rights dropped",
			fen:  "r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1",
			checkFn: func(g *GameState) bool {
				return g.CastlingRights().String() == "Qkq"
			},
		},
		{
			name: "king off home square",
			fen:  "r3k2r/8/8/8/8/8/8/R4K1R w KQkq - 0 1",
			checkFn: func(g *GameState) bool {
				return g.CastlingRights().String() == "kq"
			},
		},
		{
			name: "en passant without pawn dropped",
			fen:  "4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1",
			checkFn: func(g *GameState) bool {
				return g.EnPassantTarget() == chess.NoSquare
			},
		},
		{
			name: "en passant onto occupied square dropped",
			fen:  "4k3/8/4n3/3Pp3/8/8/8/4K3 w - e6 0 1",
			checkFn: func(g *GameState) bool {
				return g.EnPassantTarget() == chess.NoSquare
			},
		},
		{
			name: "en passant with start square occupied dropped",
			fen:  "4k3/4n3/8/3Pp3/8/8/8/4K3 w - e6 0 1",
			checkFn: func(g *GameState) bool {
				return g.EnPassantTarget() == chess.NoSquare
			},
		},
		{
			name: "en passant after black double step kept",
			fen:  "4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 1",
			checkFn: func(g *GameState) bool {
				return g.EnPassantTarget() == chess.Sq(2, 4)
			},
		},
		{
			name: "placement only",
			fen:  "4k3/8/8/8/8/8/8/4K3",
			checkFn: func(g *GameState) bool {
				return g.ToMove() == chess.White && g.CastlingRights().None()
			},
		},
		{
			name: "kings tracked",
			fen:  "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -",
			checkFn: func(g *GameState) bool {
				return g.KingSquare(chess.White) == chess.Sq(3, 0) &&
					g.KingSquare(chess.Black) == chess.Sq(4, 7)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGameStateFromFEN(tt.fen)
			testutil.AssertNoError(t, err)
			if !tt.checkFn(g) {
				t.Errorf("NewGameStateFromFEN(%q) check failed\n%s", tt.fen, g.board.String())
			}
		})
	}
}

func TestUnreachableEnPassantLeavesBoardIntact(t *testing.T) {
	g := MustFEN("4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1")
	before := g.Board()

	if _, ok := hasMove(g.ValidMoves(), "d5e6"); ok {
		t.Error("en passant offered without a pawn to capture")
	}
	testutil.AssertEqual(t, g.Board(), before)
	testutil.AssertEqual(t, g.FEN(), "4k3/8/8/3P4/8/8/8/4K3 w - - 0 1")
}

func TestNewGameStateFromFENErrors(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		target error
		field  string
	}{
		{"empty string", "", chesserrors.ErrInvalidFEN, "placement"},
		{"too few ranks", "8/8/8 w - - 0 1", chesserrors.ErrInvalidFEN, "placement"},
		{"rank overflow", "rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN, "placement"},
		{"short rank", "rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN, "placement"},
		{"bad piece", "rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", chesserrors.ErrInvalidFEN, "placement"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", chesserrors.ErrInvalidFEN, "side to move"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1", chesserrors.ErrInvalidFEN, "castling"},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", chesserrors.ErrInvalidSquare, "en passant"},
		{"en passant wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1", chesserrors.ErrInvalidFEN, "en passant"},
		{"bad fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", chesserrors.ErrInvalidFEN, "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameStateFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, tt.target)

			var fenErr *chesserrors.FENError
			if !errors.As(err, &fenErr) {
				t.Fatalf("error %v is not a FENError", err)
			}
			testutil.AssertEqual(t, fenErr.Field, tt.field)
		})
	}
}

func TestValidatePosition(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		problems int
	}{
		{"missing white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", 1},
		{"no kings", "8/8/8/8/8/8/8/8 w - - 0 1", 2},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1", 1},
		{"pawn on back rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1", 1},
		{"pawns on both back ranks", "P3k3/8/8/8/8/8/8/4K2p w - - 0 1", 2},
		{"waiting side in check", "4k3/4R3/8/8/8/8/8/4K3 w - - 0 1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGameStateFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidPosition)

			var merr *multierror.Error
			if !errors.As(err, &merr) {
				t.Fatalf("error %v is not a multierror", err)
			}
			testutil.AssertEqual(t, len(merr.Errors), tt.problems)
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R b Kq - 0 17",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			testutil.AssertEqual(t, MustFEN(fen).FEN(), fen)
		})
	}
}

func TestFENAfterMoves(t *testing.T) {
	g := NewGameState()
	play(t, g, "e2e4")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	play(t, g, "e7e5")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")

	play(t, g, "e1e2")
	testutil.AssertEqual(t, g.FEN(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 0 2")

	g = MustFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 5")
	play(t, g, "e8d8")
	testutil.AssertEqual(t, g.FEN(), "3k4/8/8/8/8/8/8/4K3 w - - 0 6")
}

func TestMustFENPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustFEN did not panic on an invalid FEN")
		}
	}()
	MustFEN("not a fen")
}
