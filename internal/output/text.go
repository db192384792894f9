package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/notation"
	"github.com/lgbarn/chesscore-go/internal/render"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// lineWriter writes space separated words, wrapping before maxLineLength.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{w: w, maxLineLength: maxLineLength}
}

func (o *lineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a word, preceded by a space or a line break.
func (o *lineWriter) Write(s string) {
	if s == "" {
		return
	}
	if o.needsSpace {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}
	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *lineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// TextWriter writes tag pairs followed by a numbered move list.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

type tag struct{ name, value string }

func (tw *TextWriter) writeTags(tags []tag) error {
	for _, t := range tags {
		if _, err := fmt.Fprintf(tw.w, "[%s \"%s\"]\n", t.name, escapeTagValue(t.value)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(tw.w, "\n")
	return err
}

// escapeTagValue escapes backslashes and quotes.
func escapeTagValue(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}

// WriteGame writes tags, the move list and optionally a diagram.
func (tw *TextWriter) WriteGame(h *replay.History) error {
	tags := []tag{{"ID", h.GameID}}
	if h.InitialFEN != engine.InitialFEN {
		tags = append(tags, tag{"FEN", h.InitialFEN})
	}
	if o := h.Opening; o != nil {
		tags = append(tags, tag{"ECO", o.ECO})
		if o.Name != "" {
			tags = append(tags, tag{"Opening", o.Name})
		}
		if o.Variation != "" {
			tags = append(tags, tag{"Variation", o.Variation})
		}
	}
	tags = append(tags,
		tag{"PlyCount", strconv.Itoa(h.Len())},
		tag{"FinalFEN", engine.EncodePosition(h.Final)},
	)
	if flags := analysisFlags(h.Analysis); len(flags) > 0 {
		tags = append(tags, tag{"Flags", strings.Join(flags, ", ")})
	}
	if len(h.Skipped) > 0 {
		tags = append(tags, tag{"Skipped", strings.Join(h.Skipped, " ")})
	}
	if err := tw.writeTags(tags); err != nil {
		return err
	}

	sans := make([]string, h.Len())
	for i, p := range h.Plies {
		sans[i] = p.SAN + tw.comment(p)
	}
	start := h.Initial.State
	if err := tw.writeMoves(sans, start, gameTerminator(h.Analysis, h.Final.State.SideToMove)); err != nil {
		return err
	}
	if tw.cfg.Diagram {
		return tw.writeDiagram(&h.Final.Board)
	}
	return nil
}

// WritePuzzle writes the puzzle position tags and its solution.
func (tw *TextWriter) WritePuzzle(p *replay.Puzzle) error {
	tags := []tag{
		{"Puzzle", p.ID},
		{"FEN", engine.EncodePosition(p.Position)},
		{"ToMove", p.SideToSolve().String()},
	}
	if p.Rating > 0 {
		tags = append(tags, tag{"Rating", strconv.Itoa(p.Rating)})
	}
	if len(p.Themes) > 0 {
		tags = append(tags, tag{"Themes", strings.Join(p.Themes, " ")})
	}
	if err := tw.writeTags(tags); err != nil {
		return err
	}
	if err := tw.writeMoves(p.SolutionSAN, p.Position.State, ""); err != nil {
		return err
	}
	if tw.cfg.Diagram {
		return tw.writeDiagram(&p.Position.Board)
	}
	return nil
}

func (tw *TextWriter) comment(p replay.Ply) string {
	var parts []string
	if tw.cfg.AddFENComments {
		parts = append(parts, p.FEN)
	}
	if tw.cfg.AddHashComments {
		parts = append(parts, fmt.Sprintf("%016x", p.Hash))
	}
	if len(parts) == 0 {
		return ""
	}
	return " {" + strings.Join(parts, " ") + "}"
}

func (tw *TextWriter) writeMoves(sans []string, start chess.GameState, terminator string) error {
	fullmove := int(start.FullmoveNumber)
	movetext := notation.RenderMoveList(sans, fullmove, start.SideToMove == chess.Black)

	ow := newLineWriter(tw.w, int(tw.cfg.MaxLineLength))
	for _, word := range strings.Fields(movetext) {
		ow.Write(word)
	}
	ow.Write(terminator)
	ow.NewLine()
	ow.NewLine()
	return ow.err
}

func (tw *TextWriter) writeDiagram(board *chess.Board) error {
	diagram := render.Text(board, render.Options{Flip: tw.cfg.Flip, Coordinates: tw.cfg.Coordinates})
	_, err := io.WriteString(tw.w, diagram+"\n")
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error { return nil }

// Close is a no-op.
func (tw *TextWriter) Close() error { return nil }

// gameTerminator returns the result marker a finished game ends with.
func gameTerminator(a replay.Analysis, toMove chess.Side) string {
	switch {
	case a.Checkmate && toMove == chess.White:
		return "0-1"
	case a.Checkmate:
		return "1-0"
	case a.Stalemate, a.Has5FoldRepetition, a.Has75MoveRule, a.HasInsufficientMaterial:
		return "1/2-1/2"
	}
	return ""
}

// analysisFlags names the set analysis flags.
func analysisFlags(a replay.Analysis) []string {
	var flags []string
	add := func(set bool, name string) {
		if set {
			flags = append(flags, name)
		}
	}
	add(a.Checkmate, "checkmate")
	add(a.Stalemate, "stalemate")
	add(a.HasRepetition, "threefold repetition")
	add(a.Has5FoldRepetition, "fivefold repetition")
	add(a.HasFiftyMoveRule, "fifty-move rule")
	add(a.Has75MoveRule, "seventy-five-move rule")
	add(a.HasInsufficientMaterial, "insufficient material")
	add(a.HasUnderpromotion, "underpromotion")
	add(a.HasMaterialOdds, "material odds")
	return flags
}
