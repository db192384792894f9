// chessreplay replays JSON-lines game and puzzle records and writes the
// resulting histories as annotated movetext, JSON or SVG diagrams.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/eco"
	"github.com/lgbarn/chesscore-go/internal/logging"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/replay"
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
		fmt.Printf("chessreplay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)
	setupDuplicateFile(cfg)

	level, err := cfg.Level()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	logger := logging.New(cfg.LogFile, level, cfg.PrettyLog)

	if err := run(cfg, logger, flag.Args()); err != nil {
		logger.Error().Err(err).Msg("chessreplay failed")
		os.Exit(1)
	}
}

// run wires the writers and the processor and replays every input.
func run(cfg *config.Config, logger zerolog.Logger, inputs []string) error {
	out, err := output.New(cfg.OutputFile, cfg.Output)
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck // flushed explicitly below

	var dupOut output.Writer
	if cfg.Duplicate.DuplicateFile != nil {
		dupOut, err = output.New(cfg.Duplicate.DuplicateFile, duplicateOutputConfig(cfg.Output))
		if err != nil {
			return err
		}
		defer dupOut.Close() //nolint:errcheck // flushed explicitly below
	}

	proc, err := newProcessor(cfg, logger, out, dupOut)
	if err != nil {
		return err
	}

	if *ecoFile != "" {
		classifier := eco.NewClassifier()
		if err := classifier.LoadFromFile(*ecoFile); err != nil {
			return err
		}
		logger.Info().Int("entries", classifier.EntriesLoaded()).Str("file", *ecoFile).Msg("loaded ECO book")
		proc.classifyWith(classifier)
	}

	if *checkFile != "" {
		records, err := loadRecords(*checkFile, logger)
		if err != nil {
			return err
		}
		n := proc.seed(records)
		logger.Info().Int("games", n).Str("file", *checkFile).Msg("loaded check file")
	}

	records, err := loadInputs(inputs, logger)
	if err != nil {
		return err
	}

	if *progress > 0 {
		done := make(chan struct{})
		defer close(done)
		go proc.reportProgress(*progress, done)
	}

	if err := proc.run(records); err != nil {
		return err
	}
	proc.report()

	if dupOut != nil {
		if err := dupOut.Flush(); err != nil {
			return err
		}
	}
	return out.Flush()
}

// duplicateOutputConfig writes duplicates as text when the main output is
// a directory of diagrams.
func duplicateOutputConfig(cfg *config.OutputConfig) *config.OutputConfig {
	if cfg.Format != config.FormatSVG {
		return cfg
	}
	dup := *cfg
	dup.Format = config.FormatText
	return &dup
}

// loadInputs reads records from each named file, or stdin when there are
// none.
func loadInputs(names []string, logger zerolog.Logger) ([]replay.Record, error) {
	if len(names) == 0 {
		return readRecords(os.Stdin, "stdin", logger)
	}

	var all []replay.Record
	for _, name := range names {
		records, err := loadRecords(name, logger)
		if err != nil {
			logger.Error().Err(err).Str("file", name).Msg("skipping input")
			continue
		}
		all = append(all, records...)
	}
	return all, nil
}

func loadRecords(name string, logger zerolog.Logger) ([]replay.Record, error) {
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck // read-only
	return readRecords(file, name, logger)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		cfg.LogFile = createFile(*logFile, "log")
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	if !*appendOutput {
		cfg.SetOutput(createFile(*outputFile, "output"))
		return
	}

	file, err := os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// setupDuplicateFile configures the duplicate output file.
func setupDuplicateFile(cfg *config.Config) {
	if *duplicateFile != "" {
		cfg.Duplicate.DuplicateFile = createFile(*duplicateFile, "duplicate")
	}
}

func createFile(name, kind string) io.Writer {
	file, err := os.Create(name) //nolint:gosec // G304: CLI tool creates user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s file %s: %v\n", kind, name, err)
		os.Exit(1)
	}
	return file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessreplay [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess game and puzzle records (JSON lines).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInput records, one per line:\n")
	fmt.Fprintf(os.Stderr, "  {\"game\": {\"id\": \"g1\", \"moves\": \"e2e4 e7e5\"}}\n")
	fmt.Fprintf(os.Stderr, "  {\"game\": {\"id\": \"g2\", \"pgn\": \"1. e4 e5 2. Nf3\"}}\n")
	fmt.Fprintf(os.Stderr, "  {\"puzzle\": {\"id\": \"p1\", \"fen\": \"...\", \"solution\": [\"e2e4\"]}}\n")
	fmt.Fprintf(os.Stderr, "  {\"id\": \"g3\", \"moves\": \"d2d4\"}   (bare game record)\n")
}
