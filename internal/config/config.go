// Package config provides configuration for the oolong replay tool.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/oolong/internal/chess"
	"github.com/lgbarn/oolong/internal/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvWorkers   = "OOLONG_WORKERS"
	EnvVerbosity = "OOLONG_VERBOSITY"
	EnvFormat    = "OOLONG_FORMAT"
	EnvPromotion = "OOLONG_PROMOTION"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=running commentary
	Workers   int // Scripts replayed in parallel

	Replay *ReplayConfig
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Replay:     NewReplayConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the configuration and all sub-configurations.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0-2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d < 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Replay.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// ApplyEnv overrides defaults from environment variables. lookup is usually
// os.LookupEnv. Unset variables leave the config alone.
func ApplyEnv(c *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvVerbosity); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvVerbosity, v, errors.ErrInvalidConfig)
		}
		c.Verbosity = n
	}
	if v, ok := lookup(EnvFormat); ok {
		format, err := ParseOutputFormat(v)
		if err != nil {
			return err
		}
		c.Output.Format = format
	}
	if v, ok := lookup(EnvPromotion); ok {
		kind, err := ParsePromotion(v)
		if err != nil {
			return err
		}
		c.Replay.DefaultPromotion = kind
	}
	return c.Validate()
}

// ParsePromotion converts a piece letter or name to a promotion kind.
func ParsePromotion(s string) (chess.Kind, error) {
	s = strings.TrimSpace(s)
	var kind chess.Kind
	if len(s) == 1 {
		kind = chess.KindFromLetter(s[0])
	} else {
		for k := chess.Pawn; k < chess.NumKinds; k++ {
			if strings.EqualFold(k.String(), s) {
				kind = k
			}
		}
	}
	if !kind.Promotable() {
		return chess.NoKind, fmt.Errorf("promotion %q: %w", s, errors.ErrInvalidConfig)
	}
	return kind, nil
}
