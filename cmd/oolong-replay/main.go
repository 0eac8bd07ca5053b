// oolong-replay plays move scripts against a chess board and reports which
// moves were applied and why the others were rejected.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/lgbarn/oolong/internal/config"
	"github.com/lgbarn/oolong/internal/output"
	"github.com/lgbarn/oolong/internal/replay"
	"github.com/lgbarn/oolong/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("oolong-replay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := loadEnv(cfg, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error in environment: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	scripts, failed := loadScripts(flag.Args(), os.Stdin, cfg)
	stats, err := replayAndWrite(scripts, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	stats.failed += failed

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, stats)
	}
	if stats.failed > 0 {
		os.Exit(1)
	}
}

// loadEnv reads an optional dotenv file into the process environment and
// then applies the OOLONG_* variables to cfg.
func loadEnv(cfg *config.Config, path string) error {
	if err := godotenv.Load(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}
	return config.ApplyEnv(cfg, os.LookupEnv)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// loadScripts parses every named file, or stdin when there are none.
// Unreadable or malformed files are logged and counted.
func loadScripts(args []string, stdin io.Reader, cfg *config.Config) (scripts []*replay.Script, failed int) {
	if len(args) == 0 {
		script, err := replay.ParseScript(stdin, "stdin")
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			return nil, 1
		}
		return []*replay.Script{script}, 0
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			failed++
			continue
		}

		script, err := replay.ParseScript(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			failed++
			continue
		}
		scripts = append(scripts, script)
	}
	return scripts, failed
}

// stats totals a run.
type stats struct {
	scripts  int
	applied  int
	rejected int
	failed   int
	skipped  int
}

// replayAndWrite replays scripts on the worker pool and writes each report
// in input order.
func replayAndWrite(scripts []*replay.Script, cfg *config.Config) (stats, error) {
	var st stats
	writer := output.NewWriter(cfg.OutputFile, cfg.Output)

	for _, res := range worker.ReplayAll(scripts, cfg.Replay, cfg.Workers) {
		if res.Error != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", res.Error)
			st.failed++
			continue
		}
		if res.Skipped {
			if cfg.Verbosity > 1 {
				fmt.Fprintf(cfg.LogFile, "%s: skipped after an earlier script stopped\n", res.Name)
			}
			st.skipped++
			continue
		}

		st.scripts++
		st.applied += res.Report.Applied
		st.rejected += res.Report.Rejected
		if cfg.Verbosity > 1 {
			logOutcomes(cfg.LogFile, res.Report)
		}

		if err := writer.WriteReport(res.Report); err != nil {
			return st, err
		}
	}
	return st, writer.Close()
}

// logOutcomes writes a running commentary of rejected moves.
func logOutcomes(w io.Writer, report *replay.Report) {
	for _, o := range report.Outcomes {
		if !o.Applied {
			fmt.Fprintf(w, "%s:%d: %s rejected: %v\n", report.Script, o.Line, o.Move, o.Err)
		}
	}
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, st stats) {
	fmt.Fprintf(w, "%d script(s) replayed, %d move(s) applied, %d rejected", st.scripts, st.applied, st.rejected)
	if st.failed > 0 {
		fmt.Fprintf(w, ", %d script(s) failed", st.failed)
	}
	if st.skipped > 0 {
		fmt.Fprintf(w, ", %d script(s) skipped", st.skipped)
	}
	fmt.Fprintln(w, ".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: oolong-replay [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess move scripts and reports each move's fate.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  fen <placement>   optional, before the first move\n")
	fmt.Fprintf(os.Stderr, "  e2e4 e7e5 ...     long algebraic moves; e7e8q promotes\n")
	fmt.Fprintf(os.Stderr, "  # comment\n")
	fmt.Fprintf(os.Stderr, "\nEnvironment (also read from .env):\n")
	fmt.Fprintf(os.Stderr, "  %s, %s, %s, %s\n", config.EnvWorkers, config.EnvVerbosity, config.EnvFormat, config.EnvPromotion)
}
