// Package render draws board diagrams as Unicode text or SVG.
package render

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// Options controls diagram layout. The zero value draws rank 8 at the top
// without coordinates.
type Options struct {
	Flip        bool
	Coordinates bool

	// SVG only.
	SquareSize   int
	LastMove     *chess.Move
	Destinations chess.SquareSet
}

// emptySquare fills vacant squares in the text diagram.
const emptySquare = "·"

// rowOrder returns board rows in drawing order, top first.
func rowOrder(flip bool) []int {
	rows := make([]int, chess.BoardSize)
	for i := range rows {
		if flip {
			rows[i] = i
		} else {
			rows[i] = chess.BoardSize - 1 - i
		}
	}
	return rows
}

// colOrder returns board columns in drawing order, left first.
func colOrder(flip bool) []int {
	cols := make([]int, chess.BoardSize)
	for i := range cols {
		if flip {
			cols[i] = chess.BoardSize - 1 - i
		} else {
			cols[i] = i
		}
	}
	return cols
}

// Text returns a diagram with one line per rank and pieces separated by
// spaces. With Coordinates set each line starts with the rank digit and a
// final line names the files.
func Text(board *chess.Board, opts Options) string {
	var sb strings.Builder
	cols := colOrder(opts.Flip)
	for _, row := range rowOrder(opts.Flip) {
		if opts.Coordinates {
			sb.WriteByte(byte('1' + row))
			sb.WriteByte(' ')
		}
		for i, col := range cols {
			if i > 0 {
				sb.WriteByte(' ')
			}
			p := board.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteString(emptySquare)
			} else {
				sb.WriteString(p.Glyph())
			}
		}
		sb.WriteByte('\n')
	}
	if opts.Coordinates {
		sb.WriteString(" ")
		for _, col := range cols {
			sb.WriteByte(' ')
			sb.WriteByte(byte('a' + col))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
