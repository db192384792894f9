package engine

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

func sq(name string) chess.Square {
	return chess.MustSquare(name)
}

func TestApplyMove_PawnMoves(t *testing.T) {
	tests := []struct {
		name      string
		uci       string
		wantPawn  string
		wantEmpty []string
	}{
		{"double push", "e2e4", "e4", []string{"e2", "e3"}},
		{"single push", "e2e3", "e3", []string{"e2", "e4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.StartingPosition()
			result, err := ApplyUCI(board, tt.uci)
			testutil.AssertNoError(t, err)

			if got := board.Get(sq(tt.wantPawn)); got != chess.W(chess.Pawn) {
				t.Errorf("%s = %v; want white pawn", tt.wantPawn, got)
			}
			for _, name := range tt.wantEmpty {
				if !board.IsEmpty(sq(name)) {
					t.Errorf("%s = %v; want empty", name, board.Get(sq(name)))
				}
			}
			if result.Kind() != chess.PlainMove || result.IsCapture() {
				t.Errorf("result = %+v; want plain move", result)
			}
			if result.Moved != chess.W(chess.Pawn) {
				t.Errorf("Moved = %v; want white pawn", result.Moved)
			}
		})
	}
}

func TestApplyMove_PawnCapture(t *testing.T) {
	board := chess.StartingPosition()
	results, err := ApplyMoveList(board, []string{"e2e4", "d7d5", "e4d5"})
	testutil.AssertNoError(t, err)

	if got := board.Get(sq("d5")); got != chess.W(chess.Pawn) {
		t.Errorf("d5 = %v; want white pawn", got)
	}
	if !board.IsEmpty(sq("e4")) {
		t.Errorf("e4 = %v; want empty", board.Get(sq("e4")))
	}

	last := results[len(results)-1]
	testutil.AssertEqual(t, last.Captured, chess.B(chess.Pawn))
	testutil.AssertEqual(t, last.CapturedSquare, sq("d5"))
	if last.EnPassant {
		t.Error("ordinary capture reported as en passant")
	}
	if last.Kind() != chess.CaptureMove {
		t.Errorf("Kind() = %v; want capture", last.Kind())
	}
}

func TestApplyMove_EnPassant(t *testing.T) {
	tests := []struct {
		name         string
		board        *chess.Board
		uci          string
		wantPiece    string
		wantCaptured string
		capturedBy   chess.Piece
		victim       chess.Piece
	}{
		{
			name:         "white captures on d6",
			board:        testutil.BoardWith("e1=K", "e8=k", "e5=P", "d5=p"),
			uci:          "e5d6",
			wantPiece:    "d6",
			wantCaptured: "d5",
			capturedBy:   chess.W(chess.Pawn),
			victim:       chess.B(chess.Pawn),
		},
		{
			name:         "black captures on e3",
			board:        testutil.BoardWith("e1=K", "e8=k", "d4=p", "e4=P"),
			uci:          "d4e3",
			wantPiece:    "e3",
			wantCaptured: "e4",
			capturedBy:   chess.B(chess.Pawn),
			victim:       chess.W(chess.Pawn),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ApplyUCI(tt.board, tt.uci)
			testutil.AssertNoError(t, err)

			if got := tt.board.Get(sq(tt.wantPiece)); got != tt.capturedBy {
				t.Errorf("%s = %v; want %v", tt.wantPiece, got, tt.capturedBy)
			}
			if !tt.board.IsEmpty(sq(tt.wantCaptured)) {
				t.Errorf("captured pawn still on %s", tt.wantCaptured)
			}
			if !tt.board.IsEmpty(sq(tt.uci[0:2])) {
				t.Errorf("origin %s not vacated", tt.uci[0:2])
			}
			if !result.EnPassant {
				t.Error("EnPassant = false; want true")
			}
			testutil.AssertEqual(t, result.Captured, tt.victim)
			testutil.AssertEqual(t, result.CapturedSquare, sq(tt.wantCaptured))
			testutil.AssertEqual(t, result.Kind(), chess.CaptureMove)
		})
	}
}

// A diagonal pawn move onto an empty square with nothing beside it is
// applied as a plain move.
func TestApplyMove_DiagonalWithoutVictim(t *testing.T) {
	board := testutil.BoardWith("e5=P")
	result, err := ApplyUCI(board, "e5d6")
	testutil.AssertNoError(t, err)
	testutil.AssertBoardEqual(t, board, testutil.BoardWith("d6=P"))
	if result.EnPassant || result.IsCapture() {
		t.Errorf("result = %+v; want no capture", result)
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name     string
		clear    []string
		uci      string
		king     chess.Piece
		wantKing string
		wantRook string
		vacated  []string
		wing     chess.CastleSide
	}{
		{
			name:     "white kingside",
			clear:    []string{"f1", "g1"},
			uci:      "e1g1",
			king:     chess.W(chess.King),
			wantKing: "g1",
			wantRook: "f1",
			vacated:  []string{"e1", "h1"},
			wing:     chess.Kingside,
		},
		{
			name:     "white queenside",
			clear:    []string{"b1", "c1", "d1"},
			uci:      "e1c1",
			king:     chess.W(chess.King),
			wantKing: "c1",
			wantRook: "d1",
			vacated:  []string{"e1", "a1", "b1"},
			wing:     chess.Queenside,
		},
		{
			name:     "black kingside",
			clear:    []string{"f8", "g8"},
			uci:      "e8g8",
			king:     chess.B(chess.King),
			wantKing: "g8",
			wantRook: "f8",
			vacated:  []string{"e8", "h8"},
			wing:     chess.Kingside,
		},
		{
			name:     "black queenside",
			clear:    []string{"b8", "c8", "d8"},
			uci:      "e8c8",
			king:     chess.B(chess.King),
			wantKing: "c8",
			wantRook: "d8",
			vacated:  []string{"e8", "a8", "b8"},
			wing:     chess.Queenside,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := chess.StartingPosition()
			for _, name := range tt.clear {
				board.Set(sq(name), chess.NoPiece)
			}

			result, err := ApplyUCI(board, tt.uci)
			testutil.AssertNoError(t, err)

			rook := chess.Piece{Kind: chess.Rook, Side: tt.king.Side}
			if got := board.Get(sq(tt.wantKing)); got != tt.king {
				t.Errorf("%s = %v; want %v", tt.wantKing, got, tt.king)
			}
			if got := board.Get(sq(tt.wantRook)); got != rook {
				t.Errorf("%s = %v; want %v", tt.wantRook, got, rook)
			}
			for _, name := range tt.vacated {
				if !board.IsEmpty(sq(name)) {
					t.Errorf("%s = %v; want empty", name, board.Get(sq(name)))
				}
			}
			testutil.AssertEqual(t, result.Castle, tt.wing)
			testutil.AssertEqual(t, result.RookTo, sq(tt.wantRook))
			testutil.AssertEqual(t, result.Kind(), chess.CastleMove)
		})
	}
}

func TestApplyMove_CastleWithoutRook(t *testing.T) {
	tests := []struct {
		name  string
		board *chess.Board
		uci   string
		want  *chess.Board
		wing  chess.CastleSide
	}{
		{
			name:  "empty corner keeps the bishop on f1",
			board: testutil.BoardWith("e1=K", "f1=B"),
			uci:   "e1g1",
			want:  testutil.BoardWith("g1=K", "f1=B"),
			wing:  chess.Kingside,
		},
		{
			name:  "enemy rook stays in the corner",
			board: testutil.BoardWith("e1=K", "h1=r"),
			uci:   "e1g1",
			want:  testutil.BoardWith("g1=K", "h1=r"),
			wing:  chess.Kingside,
		},
		{
			name:  "knight in the corner is not a rook",
			board: testutil.BoardWith("e8=k", "a8=n", "d8=b"),
			uci:   "e8c8",
			want:  testutil.BoardWith("c8=k", "a8=n", "d8=b"),
			wing:  chess.Queenside,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ApplyUCI(tt.board, tt.uci)
			testutil.AssertNoError(t, err)
			testutil.AssertBoardEqual(t, tt.board, tt.want)
			testutil.AssertEqual(t, result.Castle, tt.wing)
			testutil.AssertEqual(t, result.RookTo, chess.Square{})
		})
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name         string
		board        *chess.Board
		uci          string
		want         *chess.Board
		wantKind     chess.MoveKind
		wantCaptured chess.Piece
	}{
		{
			name:     "queen",
			board:    testutil.BoardWith("a7=P"),
			uci:      "a7a8q",
			want:     testutil.BoardWith("a8=Q"),
			wantKind: chess.PromotionMove,
		},
		{
			name:     "uppercase letter",
			board:    testutil.BoardWith("a7=P"),
			uci:      "a7a8N",
			want:     testutil.BoardWith("a8=N"),
			wantKind: chess.PromotionMove,
		},
		{
			name:     "no letter stays a pawn",
			board:    testutil.BoardWith("a7=P"),
			uci:      "a7a8",
			want:     testutil.BoardWith("a8=P"),
			wantKind: chess.PlainMove,
		},
		{
			name:         "capture and promote",
			board:        testutil.BoardWith("b7=P", "a8=r"),
			uci:          "b7a8r",
			want:         testutil.BoardWith("a8=R"),
			wantKind:     chess.PromotionMove,
			wantCaptured: chess.B(chess.Rook),
		},
		{
			name:     "black underpromotion",
			board:    testutil.BoardWith("h2=p"),
			uci:      "h2h1b",
			want:     testutil.BoardWith("h1=b"),
			wantKind: chess.PromotionMove,
		},
		{
			name:     "letter ignored for a rook",
			board:    testutil.BoardWith("a1=R"),
			uci:      "a1a8q",
			want:     testutil.BoardWith("a8=R"),
			wantKind: chess.PlainMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ApplyUCI(tt.board, tt.uci)
			testutil.AssertNoError(t, err)
			testutil.AssertBoardEqual(t, tt.board, tt.want)
			testutil.AssertEqual(t, result.Kind(), tt.wantKind)
			testutil.AssertEqual(t, result.Captured, tt.wantCaptured)
		})
	}
}

func TestApplyMove_NoPieceAtSource(t *testing.T) {
	for _, uci := range []string{"e4e5", "e3e4", "a5h5"} {
		t.Run(uci, func(t *testing.T) {
			board := chess.StartingPosition()
			before := *board

			result, err := ApplyUCI(board, uci)
			testutil.AssertErrorIs(t, err, errors.ErrNoPieceAtSource)
			if *board != before {
				t.Errorf("board changed by no-op move:\n%s", testutil.Diagram(board))
			}
			if !result.Moved.IsEmpty() {
				t.Errorf("Moved = %v; want empty", result.Moved)
			}
		})
	}
}

func TestApplyMove_NoPieceAtSourceLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	defer SetLogger(zerolog.Nop())

	_, err := ApplyUCI(chess.StartingPosition(), "e4e5")
	testutil.AssertErrorIs(t, err, errors.ErrNoPieceAtSource)
	testutil.AssertContains(t, buf.String(), "no piece at source square")
	testutil.AssertContains(t, buf.String(), `"move":"e4e5"`)
	testutil.AssertContains(t, buf.String(), `"component":"engine"`)
}

func TestApplyMove_Malformed(t *testing.T) {
	for _, uci := range []string{"", "e2", "e2e", "e2e9", "z2e4", "e0e4", "e2e4x", "e2e4k", "e2e4qq"} {
		t.Run(uci, func(t *testing.T) {
			board := chess.StartingPosition()
			before := *board

			_, err := ApplyUCI(board, uci)
			testutil.AssertErrorIs(t, err, errors.ErrMalformedMove)
			if *board != before {
				t.Error("board changed by malformed move")
			}
		})
	}

	t.Run("off-board square", func(t *testing.T) {
		board := chess.StartingPosition()
		_, err := ApplyMove(board, chess.Move{From: sq("e2"), To: chess.Square{Row: 8, Col: 4}})
		testutil.AssertErrorIs(t, err, errors.ErrMalformedMove)
		testutil.AssertBoardEqual(t, board, chess.StartingPosition())
	})
}

func TestApplyMoveList_StopsAtFailure(t *testing.T) {
	board := chess.StartingPosition()
	results, err := ApplyMoveList(board, []string{"e2e4", "e3e4", "d7d5"})

	testutil.AssertErrorIs(t, err, errors.ErrNoPieceAtSource)
	var gameErr *errors.GameError
	if !errors.As(err, &gameErr) {
		t.Fatalf("error %v is not a *GameError", err)
	}
	testutil.AssertEqual(t, gameErr.PlyNum, 2)
	testutil.AssertEqual(t, gameErr.MoveText, "e3e4")
	testutil.AssertEqual(t, len(results), 1)
	if !board.IsEmpty(sq("d5")) {
		t.Error("moves after the failure were applied")
	}
}

func TestApplyToPosition_State(t *testing.T) {
	pos := NewInitialPosition()

	steps := []struct {
		uci  string
		want string
	}{
		{"e2e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"},
		{"e7e5", "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"},
		{"g1f3", "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"},
		{"b8c6", "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3"},
		{"f1c4", "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"},
		{"g8f6", "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"},
		{"e1g1", "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4"},
		{"f6e4", "r1bqkb1r/pppp1ppp/2n5/4p3/2B1n3/5N2/PPPP1PPP/RNBQ1RK1 w kq - 0 5"},
	}

	for _, step := range steps {
		if _, err := ApplyUCIToPosition(pos, step.uci); err != nil {
			t.Fatalf("ApplyUCIToPosition(%q) failed: %v", step.uci, err)
		}
		if got := EncodePosition(pos); got != step.want {
			t.Fatalf("after %s:\n got %q\nwant %q", step.uci, got, step.want)
		}
	}
}

func TestApplyToPosition_CastlingRights(t *testing.T) {
	const start = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	tests := []struct {
		name string
		uci  string
		want string
	}{
		{"king move revokes both", "e1e2", "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1"},
		{"queenside rook leaves", "a1b1", "r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1"},
		{"rook captures rook", "h1h8", "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1"},
		{"castle kingside", "e1g1", "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1"},
		{"castle queenside", "e1c1", "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(start)
			testutil.AssertNoError(t, err)
			_, err = ApplyUCIToPosition(pos, tt.uci)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, EncodePosition(pos), tt.want)
		})
	}
}

func TestApplyToPosition_ErrorLeavesState(t *testing.T) {
	pos := NewInitialPosition()
	_, err := ApplyUCIToPosition(pos, "e4e5")
	testutil.AssertErrorIs(t, err, errors.ErrNoPieceAtSource)
	testutil.AssertEqual(t, EncodePosition(pos), InitialFEN)
}

func TestApplyStrict(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		uci     string
		wantErr error
		wantFEN string
	}{
		{
			name:    "legal opening move",
			fen:     InitialFEN,
			uci:     "e2e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "wrong side",
			fen:     InitialFEN,
			uci:     "e7e5",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "empty source",
			fen:     InitialFEN,
			uci:     "e3e4",
			wantErr: errors.ErrNoPieceAtSource,
		},
		{
			name:    "geometrically impossible",
			fen:     InitialFEN,
			uci:     "e2e5",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "pinned bishop",
			fen:     "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			uci:     "e2d3",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "promotion letter required",
			fen:     "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			uci:     "a7a8",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "promotion",
			fen:     "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			uci:     "a7a8q",
			wantFEN: "Q3k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "promotion letter on a short pawn move",
			fen:     InitialFEN,
			uci:     "e2e3q",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "promotion letter on a double push",
			fen:     InitialFEN,
			uci:     "e2e4n",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "promotion letter on a knight move",
			fen:     InitialFEN,
			uci:     "g1f3q",
			wantErr: errors.ErrIllegalMove,
		},
		{
			name:    "black underpromotion",
			fen:     "4k3/8/8/8/8/8/p7/4K3 b - - 0 1",
			uci:     "a2a1n",
			wantFEN: "4k3/8/8/8/8/8/8/n3K3 w - - 0 2",
		},
		{
			name:    "en passant from state",
			fen:     "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			uci:     "e5d6",
			wantFEN: "4k3/8/3P4/8/8/8/8/4K3 b - - 0 2",
		},
		{
			name:    "castling without right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1",
			uci:     "e1g1",
			wantErr: errors.ErrIllegalMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen)
			testutil.AssertNoError(t, err)
			move, err := ParseMove(tt.uci)
			testutil.AssertNoError(t, err)

			_, err = ApplyStrict(pos, move)
			if tt.wantErr != nil {
				testutil.AssertErrorIs(t, err, tt.wantErr)
				testutil.AssertEqual(t, EncodePosition(pos), tt.fen, "rejected move changed the position")
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, EncodePosition(pos), tt.wantFEN)
		})
	}
}

func TestCastleSideOf(t *testing.T) {
	tests := []struct {
		piece chess.Piece
		uci   string
		want  chess.CastleSide
	}{
		{chess.W(chess.King), "e1g1", chess.Kingside},
		{chess.W(chess.King), "e1c1", chess.Queenside},
		{chess.B(chess.King), "e8g8", chess.Kingside},
		{chess.W(chess.King), "e1f1", chess.NoCastle},
		{chess.W(chess.Rook), "e1g1", chess.NoCastle},
	}
	for _, tt := range tests {
		t.Run(tt.uci, func(t *testing.T) {
			move, err := ParseMove(tt.uci)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, CastleSideOf(tt.piece, move), tt.want)
		})
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0}, {5, 5}, {-5, 5}, {-1, 1},
	}
	for _, tt := range tests {
		if got := abs(tt.in); got != tt.want {
			t.Errorf("abs(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0}, {7, 1}, {-2, -1},
	}
	for _, tt := range tests {
		if got := sign(tt.in); got != tt.want {
			t.Errorf("sign(%d) = %d; want %d", tt.in, got, tt.want)
		}
	}
}
