package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *engine.GameState) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close writes any pending output.
	Close() error
}

// NewGameWriter returns a JSON writer when cfg.JSONFormat is set and a
// move-log writer otherwise.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, DefaultLineLength)
}

// TextWriter writes each game's move log as it arrives.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new move-log writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{w: w, maxLineLength: maxLineLength}
}

// WriteGame writes the move log and result.
func (tw *TextWriter) WriteGame(g *engine.GameState) error {
	return WriteMoveLog(tw.w, g, tw.maxLineLength)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers game records and writes them as one JSON document on
// Flush or Close.
type JSONWriter struct {
	w     io.Writer
	games []*GameRecord
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame records the game as it is now. Later moves on g are not included.
func (jw *JSONWriter) WriteGame(g *engine.GameState) error {
	jw.games = append(jw.games, GameToJSON(g))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	jw.games = jw.games[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
