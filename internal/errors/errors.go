// Package errors provides sentinel errors and error types for chesscore.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrNoPieceAtSource indicates a move whose origin square is empty.
	ErrNoPieceAtSource = errors.New("no piece at source square")

	// ErrMalformedMove indicates a coordinate move string that does not parse.
	ErrMalformedMove = errors.New("malformed move")

	// ErrNotFound indicates an algebraic token with no matching source piece.
	ErrNotFound = errors.New("no matching move")

	// ErrIllegalMove indicates a move rejected by the strict legality layer.
	ErrIllegalMove = errors.New("illegal move")

	// ErrSessionNotFound indicates an unknown game session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStaleUpdate indicates a server update older than the session state.
	ErrStaleUpdate = errors.New("stale update")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// DecodeError describes where a FEN placement field failed to decode.
// It unwraps to ErrInvalidFEN.
type DecodeError struct {
	FEN    string // The offending input
	Rank   int    // 1-based rank string index counted from rank 8 (0 if not applicable)
	Column int    // 1-based column within the rank (0 if not applicable)
	Reason string
}

// Error returns a formatted error message including the location.
func (e *DecodeError) Error() string {
	var parts []string
	parts = append(parts, ErrInvalidFEN.Error())
	if e.Rank > 0 {
		loc := fmt.Sprintf("rank string %d", e.Rank)
		if e.Column > 0 {
			loc += fmt.Sprintf(" column %d", e.Column)
		}
		parts = append(parts, loc)
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("%q", e.FEN))
	}
	return strings.Join(parts, ": ")
}

// Unwrap returns ErrInvalidFEN so errors.Is(err, ErrInvalidFEN) holds.
func (e *DecodeError) Unwrap() error {
	return ErrInvalidFEN
}

// GameError wraps errors with replay context, including the record id,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Record identifier (if known)
	PlyNum   int    // 1-based ply where the error occurred (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "game error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
