package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// DefaultSquareSize is the edge of one square in SVG user units.
const DefaultSquareSize = 45

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	highlightFill = "fill:#cdd26a"
	dotStyle      = "fill:#000000;fill-opacity:0.25"
	labelStyle    = "font-family:sans-serif;font-size:10px;fill:#404040"
)

// SVG writes a complete SVG document for board to w. Squares of
// opts.LastMove are tinted and every square in opts.Destinations gets a dot.
func SVG(w io.Writer, board *chess.Board, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = DefaultSquareSize
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	edge := size * chess.BoardSize
	canvas.Start(edge, edge)
	canvas.Title("chess board")

	rows, cols := rowOrder(opts.Flip), colOrder(opts.Flip)
	glyphStyle := fmt.Sprintf("font-family:serif;font-size:%dpx;text-anchor:middle;dominant-baseline:central", size*3/4)

	canvas.Gid("squares")
	for y, row := range rows {
		for x, col := range cols {
			sq := chess.Square{Row: row, Col: col}
			canvas.Rect(x*size, y*size, size, size, squareFill(sq, opts.LastMove))
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	for y, row := range rows {
		for x, col := range cols {
			p := board.Squares[row][col]
			if p.IsEmpty() {
				continue
			}
			canvas.Text(x*size+size/2, y*size+size/2, p.Glyph(), glyphStyle)
		}
	}
	canvas.Gend()

	if !opts.Destinations.IsEmpty() {
		canvas.Gid("destinations")
		for y, row := range rows {
			for x, col := range cols {
				if opts.Destinations.Has(chess.Square{Row: row, Col: col}) {
					canvas.Circle(x*size+size/2, y*size+size/2, size/6, dotStyle)
				}
			}
		}
		canvas.Gend()
	}

	if opts.Coordinates {
		canvas.Gid("coordinates")
		for y, row := range rows {
			canvas.Text(2, y*size+12, string(rune('1'+row)), labelStyle)
		}
		for x, col := range cols {
			canvas.Text(x*size+size-8, edge-3, string(rune('a'+col)), labelStyle)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

func squareFill(sq chess.Square, last *chess.Move) string {
	if last != nil && (sq == last.From || sq == last.To) {
		return highlightFill
	}
	if sq.IsLight() {
		return lightFill
	}
	return darkFill
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
