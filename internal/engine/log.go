package engine

import "github.com/rs/zerolog"

var logger = zerolog.Nop()

// SetLogger replaces the logger used for engine warnings. It is not safe to
// call concurrently with move application; set it once at startup.
func SetLogger(l zerolog.Logger) {
	logger = l.With().Str("component", "engine").Logger()
}
