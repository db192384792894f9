package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrNoPieceAtSource", ErrNoPieceAtSource, ErrNoPieceAtSource},
		{"ErrMalformedMove", ErrMalformedMove, ErrMalformedMove},
		{"ErrNotFound", ErrNotFound, ErrNotFound},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrSessionNotFound", ErrSessionNotFound, ErrSessionNotFound},
		{"ErrStaleUpdate", ErrStaleUpdate, ErrStaleUpdate},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrNotFound, ErrMalformedMove) {
		t.Error("ErrNotFound matches ErrMalformedMove")
	}
	if errors.Is(ErrNoPieceAtSource, ErrIllegalMove) {
		t.Error("ErrNoPieceAtSource matches ErrIllegalMove")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestDecodeError(t *testing.T) {
	tests := []struct {
		name     string
		err      *DecodeError
		contains []string
	}{
		{
			name:     "location and reason",
			err:      &DecodeError{FEN: "8/8/9", Rank: 3, Column: 1, Reason: "column overflow"},
			contains: []string{"invalid FEN", "rank string 3", "column 1", "column overflow", "8/8/9"},
		},
		{
			name:     "reason only",
			err:      &DecodeError{Reason: "expected 8 ranks, got 7"},
			contains: []string{"invalid FEN", "expected 8 ranks"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("DecodeError.Error() = %q, should contain %q", msg, s)
				}
			}
			if !errors.Is(tt.err, ErrInvalidFEN) {
				t.Error("errors.Is(DecodeError, ErrInvalidFEN) = false, want true")
			}
		})
	}
}

func TestDecodeError_As(t *testing.T) {
	err := Wrap(&DecodeError{Rank: 2, Reason: "bad piece"}, "loading puzzle")

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatal("errors.As(err, &DecodeError) = false, want true")
	}
	if decodeErr.Rank != 2 {
		t.Errorf("decodeErr.Rank = %d, want 2", decodeErr.Rank)
	}
}

// TestGameError_Error verifies the error message format
func TestGameError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GameError
		contains []string
	}{
		{
			name: "full context",
			err: &GameError{
				Err:      ErrNoPieceAtSource,
				GameID:   "q8Xb2",
				PlyNum:   12,
				MoveText: "e2e4",
			},
			contains: []string{"game q8Xb2", "ply 12", "e2e4", "no piece at source"},
		},
		{
			name: "minimal context",
			err: &GameError{
				Err:    ErrMalformedMove,
				GameID: "abc",
			},
			contains: []string{"game abc", "malformed move"},
		},
		{
			name:     "no context",
			err:      &GameError{Err: ErrNotFound},
			contains: []string{"no matching move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("GameError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestGameError_Unwrap verifies that GameError properly implements Unwrap
func TestGameError_Unwrap(t *testing.T) {
	gameErr := &GameError{
		Err:    ErrInvalidFEN,
		GameID: "x",
	}

	if !errors.Is(gameErr, ErrInvalidFEN) {
		t.Error("errors.Is(gameErr, ErrInvalidFEN) = false, want true")
	}

	var target *GameError
	if !errors.As(fmt.Errorf("replay: %w", gameErr), &target) {
		t.Error("errors.As(wrapped, &GameError) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrNotFound, "token %q", "Nbd7")
	if !errors.Is(err, ErrNotFound) {
		t.Error("Wrapf lost the underlying error")
	}
	if got := err.Error(); got != `token "Nbd7": no matching move` {
		t.Errorf("Wrapf().Error() = %q", got)
	}
}
