package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once each since they always produce a queen.
// The state, including the terminal flags, is unchanged on return.
func (g *GameState) Perft(depth int) uint64 {
	defer g.preserveFlags()()
	return g.perft(depth)
}

func (g *GameState) perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		g.tryMove(m, func() {
			nodes += g.perft(depth - 1)
		})
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the
// move's long notation.
func (g *GameState) Divide(depth int) map[string]uint64 {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result
	}
	defer g.preserveFlags()()
	for _, m := range g.ValidMoves() {
		g.tryMove(m, func() {
			result[m.LongString()] = g.Perft(depth - 1)
		})
	}
	return result
}

// RootMoves returns the legal moves paired with a cloned state after each,
// ready to be examined independently.
func (g *GameState) RootMoves() ([]chess.Move, []*GameState) {
	defer g.preserveFlags()()
	moves := g.ValidMoves()
	states := make([]*GameState, len(moves))
	for i, m := range moves {
		g.tryMove(m, func() {
			states[i] = g.Clone()
		})
	}
	return moves, states
}

// preserveFlags snapshots the terminal flags and returns a func restoring them.
// The undo calls made while walking the tree clear the flags.
func (g *GameState) preserveFlags() func() {
	checkmate, stalemate := g.checkmate, g.stalemate
	return func() { g.checkmate, g.stalemate = checkmate, stalemate }
}
