package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

const backRankFEN = "6k1/5ppp/8/8/8/8/8/3RK3 w - - 0 1"

func TestPuzzle_FromFEN(t *testing.T) {
	p, err := New().Puzzle(PuzzleRecord{ID: "p1", FEN: backRankFEN, Solution: []string{"d1d8"}, Rating: 900})
	require.NoError(t, err)

	assert.Equal(t, chess.White, p.SideToSolve())
	assert.Equal(t, []string{"Rd8"}, p.SolutionSAN)
	assert.Equal(t, 900, p.Rating)
	assert.Equal(t, 0, p.Setup.Len())
	assert.Equal(t, backRankFEN, engine.EncodePosition(p.Position))

	assert.True(t, p.Check(0, "d1d8"))
	assert.False(t, p.Check(0, "d1d7"))
	assert.False(t, p.Check(1, "d1d8"))
	assert.False(t, p.Check(0, "junk"))

	after := p.PositionAfter(1)
	assert.Equal(t, "3R2k1/5ppp/8/8/8/8/8/4K3", engine.EncodeBoard(&after.Board))
	assert.True(t, engine.IsCheckmate(after))
	assert.Equal(t, backRankFEN, engine.EncodePosition(p.Position), "puzzle position changed")
}

func TestPuzzle_StrictSAN(t *testing.T) {
	p, err := New(WithStrict(true)).Puzzle(PuzzleRecord{ID: "p1", FEN: backRankFEN, Solution: []string{"d1d8"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rd8#"}, p.SolutionSAN)
}

func TestPuzzle_FromGamePGN(t *testing.T) {
	rec := PuzzleRecord{
		ID:         "p2",
		PGN:        "1. e4 e5 2. Nf3 Nc6 3. Bc4 Nd4 4. Nxe5",
		InitialPly: 4,
		Solution:   []string{"c6d4", "f3e5"},
	}
	p, err := New().Puzzle(rec)
	require.NoError(t, err)

	assert.Equal(t, 5, p.Setup.Len())
	assert.Equal(t, chess.Black, p.SideToSolve())
	assert.Equal(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3", engine.EncodePosition(p.Position))
	assert.Equal(t, []string{"Nd4", "Nxe5"}, p.SolutionSAN)
	assert.Len(t, p.Solution, 2)
}

func TestPuzzle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		rec      PuzzleRecord
		sentinel error
	}{
		{"bad FEN", PuzzleRecord{ID: "x", FEN: "nonsense"}, errors.ErrInvalidFEN},
		{"solution from empty square", PuzzleRecord{ID: "x", FEN: backRankFEN, Solution: []string{"e2e4"}}, errors.ErrNoPieceAtSource},
		{"malformed solution", PuzzleRecord{ID: "x", FEN: backRankFEN, Solution: []string{"d1"}}, errors.ErrMalformedMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New().Puzzle(tt.rec)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}
