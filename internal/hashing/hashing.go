// Package hashing provides position hashing and duplicate detection for games.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// zobristSeed fixes the key tables so hashes are stable across runs.
const zobristSeed = 0x5eed

const numPieceCodes = int(chess.NumPieceTypes) << chess.PieceShift

var (
	pieceKeys     [numPieceCodes][chess.BoardSize * chess.BoardSize]uint64
	whiteToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(zobristSeed))
	for p := range pieceKeys {
		for sq := range pieceKeys[p] {
			pieceKeys[p][sq] = r.Uint64()
		}
	}
	whiteToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.Uint64()
	}
}

// BoardHash returns the Zobrist hash of the piece placement alone.
func BoardHash(board *chess.Board) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if piece := board[row][col]; !piece.IsEmpty() {
				hash ^= pieceKeys[piece][row*chess.BoardSize+col]
			}
		}
	}
	return hash
}

// PositionHash returns the Zobrist hash of the position: placement, side to
// move, castling rights and en passant file.
func PositionHash(g *engine.GameState) uint64 {
	board := g.Board()
	hash := BoardHash(&board)
	if g.WhiteToMove() {
		hash ^= whiteToMove
	}
	rights := g.CastlingRights()
	for i, set := range []bool{rights.WhiteKingside, rights.WhiteQueenside, rights.BlackKingside, rights.BlackQueenside} {
		if set {
			hash ^= castlingKeys[i]
		}
	}
	if ep := g.EnPassantTarget(); ep.OnBoard() {
		hash ^= enPassantKeys[ep.Col]
	}
	return hash
}

// MoveSequenceHash hashes the move log, so transpositions hash differently.
func MoveSequenceHash(g *engine.GameState) uint64 {
	var hash uint64
	multiplier := uint64(31)
	for _, m := range g.MoveLog() {
		hash = hash*multiplier + uint64(m.ID())
	}
	return hash
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Sequence hashes the moves that led there
	Sequence uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
}

// Signature builds the signature of a game's current state.
func Signature(g *engine.GameState) GameSignature {
	return GameSignature{
		Hash:     PositionHash(g),
		Sequence: MoveSequenceHash(g),
		PlyCount: g.PlyCount(),
	}
}

// DuplicateDetector tracks seen games.
type DuplicateDetector struct {
	hashTable map[uint64][]GameSignature
	// useExactMatch also compares the move sequence, so games reaching the
	// same final position by different moves are distinct.
	useExactMatch  bool
	duplicateCount int
	maxCapacity    int
	count          int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd checks if a game is a duplicate and records it if not.
// Returns true if the game is a duplicate. Once full, new games are still
// checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(g *engine.GameState) bool {
	sig := Signature(g)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.count++
	return false
}

func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.PlyCount != b.PlyCount {
		return false
	}
	return !d.useExactMatch || a.Sequence == b.Sequence
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.count
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.count >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.count = 0
}
