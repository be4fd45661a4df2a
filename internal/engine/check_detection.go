package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InCheck returns true if the side to move has its king attacked.
func (g *GameState) InCheck() bool {
	return g.SquareUnderAttack(g.KingSquare(g.toMove))
}

// SquareUnderAttack reports whether the opponent of the side to move could
// move onto sq.
func (g *GameState) SquareUnderAttack(sq chess.Square) bool {
	return g.attackedBy(sq, g.toMove.Opposite())
}

// attackedBy looks for an attacker move landing on sq. This set differs
// from the attacker's pseudo-legal moves for pawns only: a pawn contributes
// both diagonals whether or not they hold a piece, and never its pushes.
// So an empty square on a pawn's diagonal counts as attacked and a square
// in front of it does not.
func (g *GameState) attackedBy(sq chess.Square, attacker chess.Colour) bool {
	for _, m := range g.attackMoves(attacker, make([]chess.Move, 0, 64)) {
		if m.End == sq {
			return true
		}
	}
	return false
}

// attackMoves appends the attacking moves of the colour.
func (g *GameState) attackMoves(colour chess.Colour, moves []chess.Move) []chess.Move {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board[row][col]
			if !piece.Is(colour) {
				continue
			}
			from := chess.Sq(row, col)
			if piece.Type() == chess.Pawn {
				moves = g.pawnAttacks(from, colour, moves)
			} else {
				moves = g.pieceMoves(piece, from, moves)
			}
		}
	}
	return moves
}
