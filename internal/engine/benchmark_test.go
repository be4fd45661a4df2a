package engine

import "testing"

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewGameStateFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewGameStateFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := MustFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.FEN()
			}
		})
	}
}

func BenchmarkValidMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := MustFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.ValidMoves()
			}
		})
	}
}

func BenchmarkMakeUndo(b *testing.B) {
	g := MustFEN(benchFENs["Complex"])
	moves := g.ValidMoves()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := moves[i%len(moves)]
		g.MakeMove(m)
		g.UndoMove()
	}
}

func BenchmarkInCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		g := NewGameState()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.InCheck()
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		g := MustFEN(checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.InCheck()
		}
	})
}

func BenchmarkPerft3(b *testing.B) {
	g := NewGameState()
	for i := 0; i < b.N; i++ {
		g.Perft(3)
	}
}
