package config

import (
	"fmt"
	"io"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress drops games whose final position was already written.
	Suppress bool

	// ExactMatch also requires the same ply count for a duplicate.
	ExactMatch bool

	// Capacity bounds the number of remembered positions (0 = unlimited).
	Capacity int

	// DuplicateFile receives duplicates instead of discarding them.
	DuplicateFile io.Writer
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{ExactMatch: true}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.Capacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", d.Capacity, errors.ErrInvalidConfig)
	}
	return nil
}
