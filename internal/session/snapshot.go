package session

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Status values reported in snapshots.
const (
	StatusActive    = "active"
	StatusCheck     = "check"
	StatusCheckmate = "checkmate"
	StatusStalemate = "stalemate"
)

// Snapshot is a copy of a session's state at one version.
type Snapshot struct {
	ID           string   `json:"id"`
	Version      int      `json:"version"`
	FEN          string   `json:"fen"`
	SideToMove   string   `json:"sideToMove"`
	Status       string   `json:"status"`
	Moves        []string `json:"moves"`
	SAN          []string `json:"san"`
	LastMove     string   `json:"lastMove,omitempty"`
	LastMoveKind string   `json:"lastMoveKind,omitempty"`
	Premove      string   `json:"premove,omitempty"`

	Position *chess.Position `json:"-"`
}

func statusOf(pos *chess.Position) string {
	switch {
	case engine.IsCheckmate(pos):
		return StatusCheckmate
	case engine.IsStalemate(pos):
		return StatusStalemate
	case engine.IsInCheck(&pos.Board, pos.State.SideToMove):
		return StatusCheck
	}
	return StatusActive
}
