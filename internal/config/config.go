// Package config holds settings shared by the replay CLI and the server.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// OutputFormat selects how replay results are written.
type OutputFormat string

const (
	FormatText OutputFormat = "text" // tag pairs, numbered move list, final FEN
	FormatJSON OutputFormat = "json"
	FormatSVG  OutputFormat = "svg" // one diagram per record
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case FormatText, FormatJSON, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// Config holds all program configuration.
type Config struct {
	Workers    int
	BufferSize int

	// Logging
	LogLevel  string
	PrettyLog bool

	Output    *OutputConfig
	Replay    *ReplayConfig
	Filter    *FilterConfig
	Duplicate *DuplicateConfig
	Server    *ServerConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Workers:    runtime.NumCPU(),
		BufferSize: 100,
		LogLevel:   zerolog.LevelInfoValue,
		Output:     NewOutputConfig(),
		Replay:     NewReplayConfig(),
		Filter:     NewFilterConfig(),
		Duplicate:  NewDuplicateConfig(),
		Server:     NewServerConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Level returns the parsed log level.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks the configuration and every sub-config.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size must be at least 1, got %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := ParseOutputFormat(string(c.Output.Format)); err != nil {
		return err
	}
	if err := c.Filter.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}
