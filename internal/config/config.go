// Package config provides configuration for the chess-rules tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary

	// Starting position, and long-algebraic intents applied to it first.
	FEN   string
	Moves []string

	// JSONFormat writes game records as JSON instead of move-log text.
	JSONFormat bool

	Perft    *PerftConfig
	SelfPlay *SelfPlayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Perft:      NewPerftConfig(),
		SelfPlay:   NewSelfPlayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section and reports all problems together.
func (c *Config) Validate() error {
	var result *multierror.Error
	if err := c.Perft.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := c.SelfPlay.Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// SetOutput sets the destination for results.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the destination for progress and diagnostics.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
