package testutil

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// BoardWith builds a board from square/piece pairs written as "e4=P" or
// "d5=p" (FEN letters: uppercase white). It panics on malformed input.
func BoardWith(placements ...string) *chess.Board {
	b := chess.NewBoard()
	for _, pl := range placements {
		name, letter, ok := strings.Cut(pl, "=")
		if !ok || len(letter) != 1 {
			panic("testutil: bad placement " + pl)
		}
		piece, ok := chess.PieceFromFEN(letter[0])
		if !ok {
			panic("testutil: bad piece in " + pl)
		}
		b.Set(chess.MustSquare(name), piece)
	}
	return b
}

// Diagram renders a board as eight lines of FEN letters with '.' for empty
// squares, rank 8 first. Used in failure messages.
func Diagram(b *chess.Board) string {
	if b == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for row := chess.BoardSize - 1; row >= 0; row-- {
		for col := 0; col < chess.BoardSize; col++ {
			p := b.Squares[row][col]
			if p.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(p.FENLetter())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
