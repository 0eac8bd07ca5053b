package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/oolong/internal/errors"
)

// OutputFormat selects how replay reports are written.
type OutputFormat int

const (
	Text OutputFormat = iota // One line per move plus a summary
	JSON                     // A JSON array of reports
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	}
	return Text, fmt.Errorf("output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to report output.
type OutputConfig struct {
	// Format specifies the report format
	Format OutputFormat

	// IncludeMoves lists every move; otherwise only the summary is written
	IncludeMoves bool

	// IncludeFEN adds the final placement to each report
	IncludeFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:       Text,
		IncludeMoves: true,
		IncludeFEN:   true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format != Text && o.Format != JSON {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
