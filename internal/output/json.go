package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameRecord represents a game in JSON format.
type GameRecord struct {
	InitialFEN string     `json:"initialFEN"`
	Moves      []JSONMove `json:"moves"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	FinalFEN   string     `json:"finalFEN"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply      int      `json:"ply"`
	Colour   string   `json:"colour"` // "white" or "black"
	SAN      string   `json:"san"`
	UCI      string   `json:"uci"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Piece    string   `json:"piece"`
	Captured string   `json:"captured,omitempty"`
	Flags    []string `json:"flags,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*GameRecord `json:"games"`
}

// GameToJSON converts a game to its JSON record.
func GameToJSON(g *engine.GameState) *GameRecord {
	log := g.MoveLog()
	rec := &GameRecord{
		InitialFEN: InitialFEN(g),
		Moves:      make([]JSONMove, 0, len(log)),
		Result:     Result(g),
		PlyCount:   len(log),
		FinalFEN:   g.FEN(),
	}
	for i, m := range log {
		rec.Moves = append(rec.Moves, convertMove(i+1, m))
	}
	return rec
}

// WriteGameJSON writes a single game record with two-space indentation.
func WriteGameJSON(w io.Writer, g *engine.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g))
}

func convertMove(ply int, m chess.Move) JSONMove {
	jm := JSONMove{
		Ply:    ply,
		Colour: strings.ToLower(m.Moved.Colour().String()),
		SAN:    m.String(),
		UCI:    m.LongString(),
		From:   m.Start.String(),
		To:     m.End.String(),
		Piece:  pieceTypeName(m.Moved.Type()),
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured.Type())
		jm.Flags = append(jm.Flags, "capture")
	}
	if m.EnPassant {
		jm.Flags = append(jm.Flags, "enPassant")
	}
	if m.Castle {
		jm.Flags = append(jm.Flags, "castle")
	}
	if m.Promotion {
		jm.UCI += "q"
		jm.Flags = append(jm.Flags, "promotion")
	}
	return jm
}

// pieceTypeName returns the piece type as a lower-case word.
func pieceTypeName(p chess.PieceType) string {
	if p == chess.NoPiece || p >= chess.NumPieceTypes {
		return ""
	}
	return strings.ToLower(p.String())
}
