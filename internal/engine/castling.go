package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleMoves appends the castles available to the side to move, whose
// king stands on king. A castle needs the right, a king not in check,
// empty squares up to the rook, and no attacked square on the king's path.
func (g *GameState) castleMoves(king chess.Square, moves []chess.Move) []chess.Move {
	if king != chess.Sq(chess.BackRow(g.toMove), chess.KingHomeCol) || g.SquareUnderAttack(king) {
		return moves
	}
	if g.castlingRights.Kingside(g.toMove) {
		moves = g.kingsideCastleMoves(king, moves)
	}
	if g.castlingRights.Queenside(g.toMove) {
		moves = g.queensideCastleMoves(king, moves)
	}
	return moves
}

func (g *GameState) kingsideCastleMoves(king chess.Square, moves []chess.Move) []chess.Move {
	oneStep, twoStep := king.Offset(0, 1), king.Offset(0, 2)
	if !g.board.Get(oneStep).IsEmpty() || !g.board.Get(twoStep).IsEmpty() {
		return moves
	}
	if g.SquareUnderAttack(oneStep) || g.SquareUnderAttack(twoStep) {
		return moves
	}
	return append(moves, chess.NewCastleMove(king, twoStep, &g.board))
}

// queensideCastleMoves checks three empty squares but only the two the
// king crosses for attacks; the b-file square may be attacked.
func (g *GameState) queensideCastleMoves(king chess.Square, moves []chess.Move) []chess.Move {
	oneStep, twoStep, rookSide := king.Offset(0, -1), king.Offset(0, -2), king.Offset(0, -3)
	if !g.board.Get(oneStep).IsEmpty() || !g.board.Get(twoStep).IsEmpty() || !g.board.Get(rookSide).IsEmpty() {
		return moves
	}
	if g.SquareUnderAttack(oneStep) || g.SquareUnderAttack(twoStep) {
		return moves
	}
	return append(moves, chess.NewCastleMove(king, twoStep, &g.board))
}
