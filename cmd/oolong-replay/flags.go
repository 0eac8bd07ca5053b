// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/oolong/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	summaryOnly  = flag.Bool("s", false, "Write only the per-script summary")
	noFEN        = flag.Bool("nofen", false, "Don't write start and final placements")

	// Replay options
	startFEN   = flag.String("fen", "", "Starting placement for scripts without a fen line")
	stopOnErr  = flag.Bool("stop", false, "Stop each script at its first rejected move")
	promotion  = flag.String("promote", "", "Default promotion piece: q, r, b or n")
	numWorkers = flag.Int("workers", 0, "Scripts to replay in parallel (default: $OOLONG_WORKERS or 1)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file")
	verbosity = flag.Int("v", -1, "Verbosity: 0 silent, 1 summary, 2 every move")
	quiet     = flag.Bool("q", false, "Quiet mode (same as -v 0)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies command-line settings into cfg. Flags left at their
// defaults keep whatever the environment set.
func applyFlags(cfg *config.Config) error {
	if *jsonOutput {
		cfg.Output.Format = config.JSON
	}
	if *summaryOnly {
		cfg.Output.IncludeMoves = false
	}
	if *noFEN {
		cfg.Output.IncludeFEN = false
	}

	if *startFEN != "" {
		cfg.Replay.StartFEN = *startFEN
	}
	cfg.Replay.StopOnError = *stopOnErr
	if *promotion != "" {
		kind, err := config.ParsePromotion(*promotion)
		if err != nil {
			return fmt.Errorf("-promote: %w", err)
		}
		cfg.Replay.DefaultPromotion = kind
	}
	if *numWorkers > 0 {
		cfg.Workers = *numWorkers
	}

	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if *quiet {
		cfg.Verbosity = 0
	}

	return cfg.Validate()
}
