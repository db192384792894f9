package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestText_StartingPosition(t *testing.T) {
	want := strings.Join([]string{
		"♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜",
		"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟",
		"· · · · · · · ·",
		"· · · · · · · ·",
		"· · · · · · · ·",
		"· · · · · · · ·",
		"♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙",
		"♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖",
	}, "\n") + "\n"
	assert.Equal(t, want, Text(chess.StartingPosition(), Options{}))
}

func TestText_Options(t *testing.T) {
	board := testutil.BoardWith("a1=K", "h8=k", "b2=P")

	tests := []struct {
		name  string
		opts  Options
		first string
		last  string
	}{
		{"plain", Options{}, "· · · · · · · ♚", "♔ · · · · · · ·"},
		{"flipped", Options{Flip: true}, "· · · · · · · ♔", "♚ · · · · · · ·"},
		{"coordinates", Options{Coordinates: true}, "8 · · · · · · · ♚", "  a b c d e f g h"},
		{"flipped coordinates", Options{Flip: true, Coordinates: true}, "1 · · · · · · · ♔", "  h g f e d c b a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := strings.Split(strings.TrimSuffix(Text(board, tt.opts), "\n"), "\n")
			assert.Equal(t, tt.first, lines[0])
			assert.Equal(t, tt.last, lines[len(lines)-1])
			if tt.opts.Coordinates {
				assert.Len(t, lines, 9)
			} else {
				assert.Len(t, lines, 8)
			}
		})
	}
}
