package notation

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func mustPosition(t testing.TB, fen string) *chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
	}
	return pos
}

func mustMove(t testing.TB, uci string) chess.Move {
	t.Helper()
	move, err := engine.ParseMove(uci)
	if err != nil {
		t.Fatalf("ParseMove(%q) failed: %v", uci, err)
	}
	return move
}

func TestToAlgebraic(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e2e4", "e4"},
		{"knight", engine.InitialFEN, "g1f3", "Nf3"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", "exd5"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1c1", "O-O-O"},
		{"black queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8c8", "O-O-O"},
		{"king step", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "e1f1", "Kf1"},
		{"piece capture", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", "Rxd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "e5d6", "exd6"},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", "a8=Q"},
		{"capture promotion", "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7b8n", "axb8=N"},
		{"promotion letter on a rook", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a5q", "Ra5"},
		{"empty source", engine.InitialFEN, "e4e5", "e4e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := engine.Decode(tt.fen)
			testutil.AssertNoError(t, err)
			if got := ToAlgebraic(board, mustMove(t, tt.uci)); got != tt.want {
				t.Errorf("ToAlgebraic(%s) = %q; want %q", tt.uci, got, tt.want)
			}
		})
	}
}

func TestToAlgebraic_DoesNotMutate(t *testing.T) {
	board := chess.StartingPosition()
	ToAlgebraic(board, mustMove(t, "e2e4"))
	testutil.AssertBoardEqual(t, board, chess.StartingPosition())
}

func TestToAlgebraicUCI(t *testing.T) {
	got, err := ToAlgebraicUCI(chess.StartingPosition(), "b1c3")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "Nc3")

	_, err = ToAlgebraicUCI(chess.StartingPosition(), "b1")
	testutil.AssertErrorIs(t, err, errors.ErrMalformedMove)
}

func TestToSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e2e4", "e4"},
		{"file disambiguation", "4k3/8/8/8/8/8/8/1N1K1N2 w - - 0 1", "b1d2", "Nbd2"},
		{"other knight", "4k3/8/8/8/8/8/8/1N1K1N2 w - - 0 1", "f1d2", "Nfd2"},
		{"rank disambiguation", "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3"},
		{"square disambiguation", "4k3/8/8/8/7K/Q7/8/Q1Q5 w - - 0 1", "a1b2", "Qa1b2"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/3RK3 w - - 0 1", "d1d8", "Rd8#"},
		{"fool's mate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", "d8h4", "Qh4#"},
		{"castle with check", "5k2/8/8/8/8/8/8/4K2R w K - 0 1", "e1g1", "O-O+"},
		{"empty source", engine.InitialFEN, "e4e5", "e4e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			before := engine.EncodePosition(pos)
			if got := ToSAN(pos, mustMove(t, tt.uci)); got != tt.want {
				t.Errorf("ToSAN(%s) = %q; want %q", tt.uci, got, tt.want)
			}
			testutil.AssertEqual(t, engine.EncodePosition(pos), before, "position changed")
		})
	}
}

func TestToCoordinate(t *testing.T) {
	tests := []struct {
		from, to  string
		promotion chess.PieceKind
		want      string
	}{
		{"e2", "e4", chess.NoKind, "e2e4"},
		{"e7", "e8", chess.Queen, "e7e8q"},
		{"a2", "b1", chess.Knight, "a2b1n"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := ToCoordinate(chess.MustSquare(tt.from), chess.MustSquare(tt.to), tt.promotion)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}
