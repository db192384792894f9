// Package output writes replayed games and puzzles as text, JSON or SVG.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/render"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

// Writer is implemented by every output format.
type Writer interface {
	// WriteGame writes one replayed game.
	WriteGame(h *replay.History) error

	// WritePuzzle writes one prepared puzzle.
	WritePuzzle(p *replay.Puzzle) error

	// Flush writes any buffered records.
	Flush() error

	// Close flushes and releases resources.
	Close() error
}

// New returns the writer for cfg.Format. SVG output ignores w and writes
// one file per record under cfg.SVGDir.
func New(w io.Writer, cfg *config.OutputConfig) (Writer, error) {
	switch cfg.Format {
	case config.FormatText:
		return NewTextWriter(w, cfg), nil
	case config.FormatJSON:
		if cfg.JSONLines {
			return NewJSONLinesWriter(w), nil
		}
		return NewJSONWriter(w), nil
	case config.FormatSVG:
		return NewSVGWriter(cfg.SVGDir, renderOptions(cfg)), nil
	}
	return nil, fmt.Errorf("output format %q: %w", cfg.Format, errors.ErrInvalidConfig)
}

func renderOptions(cfg *config.OutputConfig) render.Options {
	return render.Options{
		Flip:        cfg.Flip,
		Coordinates: cfg.Coordinates,
		SquareSize:  cfg.SquareSize,
	}
}

// moveNumber returns the fullmove number and mover of the ply at index
// i, counted from start.
func moveNumber(start chess.GameState, i int) (int, chess.Side) {
	n := i
	if start.SideToMove == chess.Black {
		n++
	}
	side := chess.White
	if n%2 == 1 {
		side = chess.Black
	}
	return int(start.FullmoveNumber) + n/2, side
}
