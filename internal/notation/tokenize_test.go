package notation

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		movetext string
		want     []string
	}{
		{
			name:     "numbers and result",
			movetext: "1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1-0",
			want:     []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6"},
		},
		{
			name:     "comments and NAGs",
			movetext: "1. e4 {best by test} e5 $1 2. Nf3?! ; rest of line\n Nc6 *",
			want:     []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name:     "nested variations",
			movetext: "1. e4 e5 (1... c5 2. Nf3 (2. c3 d5)) 2. Nf3 0-1",
			want:     []string{"e4", "e5", "Nf3"},
		},
		{
			name:     "numbers glued to moves",
			movetext: "1.e4 e5 2.Nf3 2...Nc6",
			want:     []string{"e4", "e5", "Nf3", "Nc6"},
		},
		{
			name:     "castling with zeros",
			movetext: "10. 0-0 0-0-0 11. O-O",
			want:     []string{"0-0", "0-0-0", "O-O"},
		},
		{
			name:     "tag pairs",
			movetext: "[Event \"Casual [blitz]\"]\n[Site \"?\"]\n\n1. d4 d5 1/2-1/2",
			want:     []string{"d4", "d5"},
		},
		{
			name:     "check marks kept",
			movetext: "4. Qxf7# 1-0",
			want:     []string{"Qxf7#"},
		},
		{
			name:     "glued NAG",
			movetext: "1. e4$1 e5",
			want:     []string{"e4", "e5"},
		},
		{
			name:     "stray closing brace",
			movetext: "e4 } e5",
			want:     []string{"e4", "e5"},
		},
		{
			name:     "unterminated comment",
			movetext: "1. d4 {never closed",
			want:     []string{"d4"},
		},
		{
			name:     "empty",
			movetext: "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, Tokenize(tt.movetext), tt.want)
		})
	}
}

func TestRenderMoveList(t *testing.T) {
	tests := []struct {
		name       string
		sans       []string
		start      int
		blackFirst bool
		want       string
	}{
		{"white first", []string{"e4", "e5", "Nf3"}, 1, false, "1. e4 e5 2. Nf3"},
		{"black first", []string{"e5", "Nf3", "Nc6"}, 1, true, "1... e5 2. Nf3 Nc6"},
		{"later start", []string{"Nf6", "Bg5"}, 12, true, "12... Nf6 13. Bg5"},
		{"zero start", []string{"e4"}, 0, false, "1. e4"},
		{"empty", nil, 1, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, RenderMoveList(tt.sans, tt.start, tt.blackFirst), tt.want)
		})
	}
}
