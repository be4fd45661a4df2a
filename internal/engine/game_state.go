// Package engine provides the chess rules engine: board state, move
// application and reversal, legal move enumeration and terminal detection.
//
// A GameState must only be mutated by one goroutine at a time. Hand a
// Clone to any concurrent reader.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// GameState owns the authoritative position and its history.
type GameState struct {
	board  chess.Board
	toMove chess.Colour

	// Kept in sync with the board on every move and undo, never rescanned.
	whiteKing chess.Square
	blackKing chess.Square

	castlingRights chess.CastlingRights
	castlingLog    []chess.CastlingRights

	enPassant    chess.Square
	enPassantLog []chess.Square

	moveLog []chess.Move

	checkmate bool
	stalemate bool

	// Setup details needed to render FEN move numbers.
	startColour   chess.Colour
	startFullmove int
}

// NewGameState creates a game at the standard starting position.
func NewGameState() *GameState {
	return newGameState(chess.NewInitialBoard(), chess.White, chess.AllCastlingRights(), chess.NoSquare, 1)
}

// newGameState builds a state and seeds both logs with their initial entries.
func newGameState(board chess.Board, toMove chess.Colour, rights chess.CastlingRights, enPassant chess.Square, fullmove int) *GameState {
	g := &GameState{
		board:          board,
		toMove:         toMove,
		castlingRights: rights,
		enPassant:      enPassant,
		startColour:    toMove,
		startFullmove:  fullmove,
	}
	g.whiteKing, _ = board.Find(chess.W(chess.King))
	g.blackKing, _ = board.Find(chess.B(chess.King))
	g.castlingLog = []chess.CastlingRights{rights}
	g.enPassantLog = []chess.Square{enPassant}
	return g
}

// Board returns a copy of the board.
func (g *GameState) Board() chess.Board {
	return g.board
}

// PieceAt returns the token on the square.
func (g *GameState) PieceAt(sq chess.Square) chess.Piece {
	return g.board.Get(sq)
}

// ToMove returns the side to move.
func (g *GameState) ToMove() chess.Colour {
	return g.toMove
}

// WhiteToMove reports whether White is to move.
func (g *GameState) WhiteToMove() bool {
	return g.toMove == chess.White
}

// KingSquare returns the tracked location of the colour's king.
func (g *GameState) KingSquare(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return g.whiteKing
	}
	return g.blackKing
}

func (g *GameState) setKingSquare(colour chess.Colour, sq chess.Square) {
	if colour == chess.White {
		g.whiteKing = sq
	} else {
		g.blackKing = sq
	}
}

// CastlingRights returns the current castling rights.
func (g *GameState) CastlingRights() chess.CastlingRights {
	return g.castlingRights
}

// EnPassantTarget returns the square skipped by the last double pawn step,
// or chess.NoSquare.
func (g *GameState) EnPassantTarget() chess.Square {
	return g.enPassant
}

// MoveLog returns a copy of the applied moves, oldest first.
func (g *GameState) MoveLog() []chess.Move {
	return append([]chess.Move(nil), g.moveLog...)
}

// PlyCount returns the number of applied half-moves.
func (g *GameState) PlyCount() int {
	return len(g.moveLog)
}

// LastMove returns the most recent move, if any.
func (g *GameState) LastMove() (chess.Move, bool) {
	if len(g.moveLog) == 0 {
		return chess.Move{}, false
	}
	return g.moveLog[len(g.moveLog)-1], true
}

// StartingMove returns the side to move and fullmove number of the setup
// position, before any logged move.
func (g *GameState) StartingMove() (chess.Colour, int) {
	return g.startColour, g.startFullmove
}

// Checkmate reports the flag set by the last ValidMoves call.
func (g *GameState) Checkmate() bool {
	return g.checkmate
}

// Stalemate reports the flag set by the last ValidMoves call.
func (g *GameState) Stalemate() bool {
	return g.stalemate
}

// Clone returns an independent deep copy, suitable as a snapshot for
// a concurrent reader.
func (g *GameState) Clone() *GameState {
	c := *g
	c.castlingLog = append([]chess.CastlingRights(nil), g.castlingLog...)
	c.enPassantLog = append([]chess.Square(nil), g.enPassantLog...)
	c.moveLog = append([]chess.Move(nil), g.moveLog...)
	return &c
}
