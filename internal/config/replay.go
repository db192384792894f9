package config

// ReplayConfig holds settings for move replay.
type ReplayConfig struct {
	// Strict rejects moves that leave the mover's king in check or are
	// played by the side not to move.
	Strict bool
}

// NewReplayConfig creates a ReplayConfig with default values.
func NewReplayConfig() *ReplayConfig {
	return &ReplayConfig{}
}
