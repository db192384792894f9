package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// FilterConfig selects which replayed games are written. All filters are
// off by default; enabled match conditions must all hold.
type FilterConfig struct {
	// Ply bounds
	CheckPlyBounds bool
	MinPlies       uint
	MaxPlies       uint

	// Match conditions
	MatchCheckmate            bool
	MatchStalemate            bool
	MatchUnderpromotion       bool
	MatchRepetition           bool
	MatchFiftyMoveRule        bool
	MatchInsufficientMaterial bool

	// Material is a pattern like "QR:qr" some position must reach.
	Material      string
	MaterialExact bool

	// Positions are FENs or wildcard placements; a game matches when it
	// passes through any of them.
	Positions []string

	// StopAfter ends the run after this many matches (0 = no limit).
	StopAfter uint
}

// NewFilterConfig creates a FilterConfig with every filter disabled.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckPlyBounds && f.MinPlies > f.MaxPlies {
		return fmt.Errorf("minimum plies (%d) > maximum plies (%d): %w",
			f.MinPlies, f.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}
