package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// ColouredPieceToFENLetter returns the FEN letter for a coloured piece.
func ColouredPieceToFENLetter(piece chess.Piece) byte {
	letter := piece.Type().Letter()
	if piece.Colour() == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// NewGameStateFromFEN creates a game from a FEN string. The halfmove clock
// is accepted and ignored. Castling rights whose king or rook is off its
// home square are dropped, as is an en passant target no double step
// could have produced.
func NewGameStateFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement"}
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}

	toMove := chess.White
	if len(parts) >= 2 {
		if toMove, err = parseSideToMove(parts[1]); err != nil {
			return nil, err
		}
	}

	rights := chess.CastlingRights{}
	if len(parts) >= 3 {
		if rights, err = parseCastlingRights(parts[2]); err != nil {
			return nil, err
		}
	}
	rights = reachableRights(&board, rights)

	enPassant := chess.NoSquare
	if len(parts) >= 4 {
		if enPassant, err = parseEnPassant(parts[3], toMove); err != nil {
			return nil, err
		}
		enPassant = reachableEnPassant(&board, enPassant, toMove)
	}

	fullmove := 1
	if len(parts) >= 6 {
		n, convErr := strconv.Atoi(parts[5])
		if convErr != nil || n < 1 {
			return nil, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Value: parts[5]}
		}
		fullmove = n
	}

	g := newGameState(board, toMove, rights, enPassant, fullmove)
	if err := ValidatePosition(g); err != nil {
		return nil, errors.Wrapf(err, "position %q", fen)
	}
	return g, nil
}

// MustFEN is like NewGameStateFromFEN but panics on error.
// It is intended for fixed positions in tests and tools.
func MustFEN(fen string) *GameState {
	g, err := NewGameStateFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return g
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(positions string) (chess.Board, error) {
	board := chess.NewBoard()
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return board, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "placement", Value: positions}
	}

	for row, rank := range ranks {
		col := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			piece := ConvertFENCharToPiece(c)
			if piece == chess.NoPiece {
				return board, &errors.FENError{
					Err:   fmt.Errorf("invalid piece character %q: %w", c, errors.ErrInvalidFEN),
					Field: "placement",
					Value: rank,
				}
			}
			if col >= chess.BoardSize {
				return board, &errors.FENError{
					Err:   fmt.Errorf("rank overflows: %w", errors.ErrInvalidFEN),
					Field: "placement",
					Value: rank,
				}
			}
			colour := chess.White
			if unicode.IsLower(rune(c)) {
				colour = chess.Black
			}
			board[row][col] = chess.MakeColouredPiece(colour, piece)
			col++
		}
		if col != chess.BoardSize {
			return board, &errors.FENError{
				Err:   fmt.Errorf("rank covers %d squares: %w", col, errors.ErrInvalidFEN),
				Field: "placement",
				Value: rank,
			}
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "side to move", Value: field}
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	var rights chess.CastlingRights
	if field == "-" {
		return rights, nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "castling", Value: field}
		}
	}
	return rights, nil
}

// reachableRights keeps only the rights whose king and rook are at home.
func reachableRights(board *chess.Board, rights chess.CastlingRights) chess.CastlingRights {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		row := chess.BackRow(colour)
		if board.Get(chess.Sq(row, chess.KingHomeCol)) != chess.MakeColouredPiece(colour, chess.King) {
			rights.ClearAll(colour)
			continue
		}
		rook := chess.MakeColouredPiece(colour, chess.Rook)
		if board.Get(chess.Sq(row, chess.KingsideRookCol)) != rook {
			rights.ClearKingside(colour)
		}
		if board.Get(chess.Sq(row, chess.QueensideRookCol)) != rook {
			rights.ClearQueenside(colour)
		}
	}
	return rights
}

// parseEnPassant parses the en passant target square field. The target
// must lie on the rank a pawn of the side not to move has just skipped.
func parseEnPassant(field string, toMove chess.Colour) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, &errors.FENError{Err: err, Field: "en passant", Value: field}
	}
	mover := toMove.Opposite()
	if sq.Row != chess.PawnStartRow(mover)+chess.PawnDirection(mover) {
		return chess.NoSquare, &errors.FENError{Err: errors.ErrInvalidFEN, Field: "en passant", Value: field}
	}
	return sq, nil
}

// reachableEnPassant keeps the target only if the square is empty, the
// pawn that double-stepped stands beyond it and its start square is empty.
func reachableEnPassant(board *chess.Board, target chess.Square, toMove chess.Colour) chess.Square {
	if target == chess.NoSquare {
		return target
	}
	mover := toMove.Opposite()
	dir := chess.PawnDirection(mover)
	if !board.Get(target).IsEmpty() ||
		board.Get(target.Offset(dir, 0)) != chess.MakeColouredPiece(mover, chess.Pawn) ||
		!board.Get(target.Offset(-dir, 0)).IsEmpty() {
		return chess.NoSquare
	}
	return target
}

// ValidatePosition reports every problem that makes a position unplayable:
// king counts, pawns on a back rank, and the side not to move being in check.
// Each reported error wraps errors.ErrInvalidPosition.
func ValidatePosition(g *GameState) error {
	var result *multierror.Error

	kingsOK := true
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := g.board.Count(chess.MakeColouredPiece(colour, chess.King)); n != 1 {
			kingsOK = false
			result = multierror.Append(result, fmt.Errorf("%v has %d kings: %w", colour, n, errors.ErrInvalidPosition))
		}
	}

	for _, row := range []int{chess.BlackBackRow, chess.WhiteBackRow} {
		for col := 0; col < chess.BoardSize; col++ {
			if piece := g.board[row][col]; piece.Type() == chess.Pawn {
				sq := chess.Sq(row, col)
				result = multierror.Append(result, fmt.Errorf("pawn on %v: %w", sq, errors.ErrInvalidPosition))
			}
		}
	}

	if kingsOK {
		waiting := g.toMove.Opposite()
		if g.attackedBy(g.KingSquare(waiting), g.toMove) {
			result = multierror.Append(result, fmt.Errorf("%v is in check but not to move: %w", waiting, errors.ErrInvalidPosition))
		}
	}

	return result.ErrorOrNil()
}

// FEN renders the position. The halfmove clock is always written as 0.
func (g *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(g.castlingRights.String())
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
	fmt.Fprintf(&sb, " 0 %d", g.fullmoveNumber())

	return sb.String()
}

// fullmoveNumber counts full moves from the setup position.
func (g *GameState) fullmoveNumber() int {
	plies := len(g.moveLog)
	if g.startColour == chess.Black {
		plies++
	}
	return g.startFullmove + plies/2
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board[row][col]
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(ColouredPieceToFENLetter(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
