package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// JSONGame represents a replayed game in JSON format.
type JSONGame struct {
	ID         string            `json:"id"`
	InitialFEN string            `json:"initialFEN"`
	FinalFEN   string            `json:"finalFEN"`
	PlyCount   int               `json:"plyCount"`
	Opening    *replay.Opening   `json:"opening,omitempty"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Captured   map[string]string `json:"captured,omitempty"` // side -> glyphs
	Positions  []replay.Snapshot `json:"positions"`
	Analysis   replay.Analysis   `json:"analysis"`
	Skipped    []string          `json:"skipped,omitempty"`
}

// JSONMove represents a single ply in JSON format.
type JSONMove struct {
	Ply        int    `json:"ply"`
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"`
	UCI        string `json:"uci"`
	SAN        string `json:"san"`
	Kind       string `json:"kind"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen"`
}

// JSONPuzzle represents a prepared puzzle in JSON format.
type JSONPuzzle struct {
	ID          string   `json:"id"`
	FEN         string   `json:"fen"`
	ToMove      string   `json:"toMove"`
	SetupPlies  int      `json:"setupPlies,omitempty"`
	Solution    []string `json:"solution"`
	SolutionSAN []string `json:"solutionSAN"`
	Rating      int      `json:"rating,omitempty"`
	Themes      []string `json:"themes,omitempty"`
}

// JSONOutput holds every record of a batch.
type JSONOutput struct {
	Games   []*JSONGame   `json:"games"`
	Puzzles []*JSONPuzzle `json:"puzzles,omitempty"`
}

// GameToJSON converts a history to its JSON form.
func GameToJSON(h *replay.History) *JSONGame {
	jg := &JSONGame{
		ID:         h.GameID,
		InitialFEN: h.InitialFEN,
		FinalFEN:   engine.EncodePosition(h.Final),
		PlyCount:   h.Len(),
		Opening:    h.Opening,
		Positions:  h.Positions(),
		Analysis:   h.Analysis,
		Skipped:    h.Skipped,
	}

	start := h.Initial.State
	for i, p := range h.Plies {
		number, side := moveNumber(start, i)
		m := JSONMove{
			Ply:        p.Number,
			MoveNumber: number,
			Color:      side.String(),
			UCI:        p.UCI,
			SAN:        p.SAN,
			Kind:       p.Result.Kind().String(),
			Piece:      p.Result.Moved.Kind.String(),
			FEN:        p.FEN,
		}
		if p.Result.IsCapture() {
			m.Captured = p.Result.Captured.Kind.String()
		}
		if p.Result.IsPromotion() {
			m.Promotion = p.Result.Promotion.String()
		}
		jg.Moves = append(jg.Moves, m)
	}

	for _, side := range sides {
		var glyphs string
		for _, piece := range h.CapturedBy(side) {
			glyphs += piece.Glyph()
		}
		if glyphs != "" {
			if jg.Captured == nil {
				jg.Captured = make(map[string]string)
			}
			jg.Captured[side.String()] = glyphs
		}
	}
	return jg
}

// PuzzleToJSON converts a puzzle to its JSON form.
func PuzzleToJSON(p *replay.Puzzle) *JSONPuzzle {
	jp := &JSONPuzzle{
		ID:          p.ID,
		FEN:         engine.EncodePosition(p.Position),
		ToMove:      p.SideToSolve().String(),
		SolutionSAN: p.SolutionSAN,
		Rating:      p.Rating,
		Themes:      p.Themes,
	}
	if p.Setup != nil {
		jp.SetupPlies = p.Setup.Len()
	}
	jp.Solution = make([]string, len(p.Solution))
	for i, m := range p.Solution {
		jp.Solution[i] = m.String()
	}
	return jp
}

// JSONWriter buffers records and writes them as one object on Flush.
type JSONWriter struct {
	w       io.Writer
	games   []*JSONGame
	puzzles []*JSONPuzzle
}

// NewJSONWriter creates a batching JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a game.
func (jw *JSONWriter) WriteGame(h *replay.History) error {
	jw.games = append(jw.games, GameToJSON(h))
	return nil
}

// WritePuzzle buffers a puzzle.
func (jw *JSONWriter) WritePuzzle(p *replay.Puzzle) error {
	jw.puzzles = append(jw.puzzles, PuzzleToJSON(p))
	return nil
}

// Flush writes all buffered records.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 && len(jw.puzzles) == 0 {
		return nil
	}
	out := &JSONOutput{Games: jw.games, Puzzles: jw.puzzles}
	if out.Games == nil {
		out.Games = []*JSONGame{}
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	jw.games, jw.puzzles = nil, nil
	return err
}

// Close flushes the writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// JSONLinesWriter writes each record as one compact JSON line as soon as
// it arrives.
type JSONLinesWriter struct {
	enc *json.Encoder
}

// NewJSONLinesWriter creates a streaming JSON writer.
func NewJSONLinesWriter(w io.Writer) *JSONLinesWriter {
	return &JSONLinesWriter{enc: json.NewEncoder(w)}
}

// WriteGame writes a game line.
func (jw *JSONLinesWriter) WriteGame(h *replay.History) error {
	return jw.enc.Encode(GameToJSON(h))
}

// WritePuzzle writes a puzzle line.
func (jw *JSONLinesWriter) WritePuzzle(p *replay.Puzzle) error {
	return jw.enc.Encode(PuzzleToJSON(p))
}

// Flush is a no-op.
func (jw *JSONLinesWriter) Flush() error { return nil }

// Close is a no-op.
func (jw *JSONLinesWriter) Close() error { return nil }
