// Package output formats games as move-log text or JSON records.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DefaultLineLength is the wrap width for move-log text.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are skipped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, adding a space separator or wrapping as needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first error from the underlying writer.
func (o *OutputWriter) Err() error {
	return o.err
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// MoveLogText renders moves played from the standard start as numbered
// pairs, e.g. "1. e4 e5 2. Nf3".
func MoveLogText(moves []chess.Move) string {
	var sb strings.Builder
	writeMoves(NewOutputWriter(&sb, 1<<30), moves, chess.White, 1)
	return sb.String()
}

// WriteMoveLog writes the game's moves, numbered from its setup position,
// followed by the result and a newline. It returns the first write error.
func WriteMoveLog(w io.Writer, g *engine.GameState, maxLineLength int) error {
	ow := NewOutputWriter(w, maxLineLength)
	colour, fullmove := g.StartingMove()
	writeMoves(ow, g.MoveLog(), colour, fullmove)
	ow.Write(Result(g))
	ow.NewLine()
	return ow.Err()
}

func writeMoves(ow *OutputWriter, moves []chess.Move, colour chess.Colour, moveNum int) {
	for i, m := range moves {
		if colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(m.String())

		if colour == chess.Black {
			moveNum++
		}
		colour = colour.Opposite()
	}
}

// Result returns "1-0" or "0-1" for checkmate, "1/2-1/2" for stalemate and
// "*" for a game still in progress. The winner is the side not to move.
func Result(g *engine.GameState) string {
	g.ValidMoves()
	switch {
	case g.Checkmate() && g.ToMove() == chess.Black:
		return "1-0"
	case g.Checkmate():
		return "0-1"
	case g.Stalemate():
		return "1/2-1/2"
	default:
		return "*"
	}
}

// InitialFEN rewinds a clone of g to its setup position and renders it.
func InitialFEN(g *engine.GameState) string {
	c := g.Clone()
	for c.UndoMove() {
	}
	return c.FEN()
}
