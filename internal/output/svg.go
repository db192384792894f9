package output

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/render"
	"github.com/lgbarn/chesscore-go/internal/replay"
)

var sides = [2]chess.Side{chess.White, chess.Black}

// SVGWriter writes the final position of each record to its own file.
type SVGWriter struct {
	dir  string
	opts render.Options
	open func(path string) (io.WriteCloser, error)
}

// NewSVGWriter creates a writer placing "<id>.svg" files in dir.
func NewSVGWriter(dir string, opts render.Options) *SVGWriter {
	return &SVGWriter{
		dir:  dir,
		opts: opts,
		open: func(path string) (io.WriteCloser, error) {
			return os.Create(path) //nolint:gosec // G304: path built from the configured output directory
		},
	}
}

// WriteGame draws the final position with the last move highlighted.
func (sw *SVGWriter) WriteGame(h *replay.History) error {
	opts := sw.opts
	if last, ok := h.LastMove(); ok {
		opts.LastMove = &last
	}
	return sw.write(h.GameID, &h.Final.Board, opts)
}

// WritePuzzle draws the puzzle position.
func (sw *SVGWriter) WritePuzzle(p *replay.Puzzle) error {
	opts := sw.opts
	opts.Flip = opts.Flip || p.SideToSolve() == chess.Black
	if p.Setup != nil {
		if last, ok := p.Setup.LastMove(); ok {
			opts.LastMove = &last
		}
	}
	return sw.write(p.ID, &p.Position.Board, opts)
}

func (sw *SVGWriter) write(id string, board *chess.Board, opts render.Options) error {
	f, err := sw.open(filepath.Join(sw.dir, fileName(id)))
	if err != nil {
		return err
	}
	if err := render.SVG(f, board, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Flush is a no-op.
func (sw *SVGWriter) Flush() error { return nil }

// Close is a no-op.
func (sw *SVGWriter) Close() error { return nil }

// fileName maps a record id to a safe file name.
func fileName(id string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, id)
	if clean == "" {
		clean = "record"
	}
	return clean + ".svg"
}
