package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Direction and offset tables as (row, col) deltas.
var (
	rookDirections   = [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirections = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightOffsets    = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets      = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// pseudoLegalMoves appends every pseudo-legal move of the colour, scanning
// rows then columns. Castling is not included.
func (g *GameState) pseudoLegalMoves(colour chess.Colour, moves []chess.Move) []chess.Move {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := g.board[row][col]
			if !piece.Is(colour) {
				continue
			}
			moves = g.pieceMoves(piece, chess.Sq(row, col), moves)
		}
	}
	return moves
}

// pieceMoves dispatches to the generator for the piece's type.
func (g *GameState) pieceMoves(piece chess.Piece, from chess.Square, moves []chess.Move) []chess.Move {
	colour := piece.Colour()
	switch piece.Type() {
	case chess.Pawn:
		return g.pawnMoves(from, colour, moves)
	case chess.Knight:
		return g.stepMoves(from, colour, knightOffsets, moves)
	case chess.Bishop:
		return g.slidingMoves(from, colour, bishopDirections, moves)
	case chess.Rook:
		return g.slidingMoves(from, colour, rookDirections, moves)
	case chess.Queen:
		moves = g.slidingMoves(from, colour, rookDirections, moves)
		return g.slidingMoves(from, colour, bishopDirections, moves)
	case chess.King:
		return g.stepMoves(from, colour, kingOffsets, moves)
	default:
		return moves
	}
}

// pawnMoves generates pushes, double pushes from the start row, captures
// and en passant captures. Promotion is flagged by NewMove.
func (g *GameState) pawnMoves(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.PawnDirection(colour)

	one := from.Offset(dir, 0)
	if one.OnBoard() && g.board.Get(one).IsEmpty() {
		moves = append(moves, chess.NewMove(from, one, &g.board))
		two := from.Offset(2*dir, 0)
		if from.Row == chess.PawnStartRow(colour) && g.board.Get(two).IsEmpty() {
			moves = append(moves, chess.NewMove(from, two, &g.board))
		}
	}

	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if !to.OnBoard() {
			continue
		}
		if g.board.Get(to).Is(colour.Opposite()) {
			moves = append(moves, chess.NewMove(from, to, &g.board))
		} else if to == g.enPassant {
			moves = append(moves, chess.NewEnPassantMove(from, to, &g.board))
		}
	}
	return moves
}

// stepMoves generates single jumps to each offset that is on the board and
// not held by a friendly piece. Used for knights and kings.
func (g *GameState) stepMoves(from chess.Square, colour chess.Colour, offsets [][2]int, moves []chess.Move) []chess.Move {
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.OnBoard() || g.board.Get(to).Is(colour) {
			continue
		}
		moves = append(moves, chess.NewMove(from, to, &g.board))
	}
	return moves
}

// slidingMoves casts a ray per direction, including the first occupied
// square if it holds an enemy piece.
func (g *GameState) slidingMoves(from chess.Square, colour chess.Colour, directions [][2]int, moves []chess.Move) []chess.Move {
	for _, dir := range directions {
		for to := from.Offset(dir[0], dir[1]); to.OnBoard(); to = to.Offset(dir[0], dir[1]) {
			target := g.board.Get(to)
			if target.Is(colour) {
				break
			}
			moves = append(moves, chess.NewMove(from, to, &g.board))
			if !target.IsEmpty() {
				break
			}
		}
	}
	return moves
}

// pawnAttacks appends the two diagonal capture squares of a pawn whatever
// their occupancy. Pushes never attack.
func (g *GameState) pawnAttacks(from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	dir := chess.PawnDirection(colour)
	for _, dc := range [2]int{-1, 1} {
		to := from.Offset(dir, dc)
		if to.OnBoard() {
			moves = append(moves, chess.NewMove(from, to, &g.board))
		}
	}
	return moves
}
