// flags.go - Command-line flag definitions
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/config"
)

// Output flags
var (
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to the output file instead of truncating it")
	format       = flag.String("format", "text", "Output format: text, json, svg")
	jsonLines    = flag.Bool("jsonl", false, "With -format json, write one object per line")
	lineLength   = flag.Uint("w", 80, "Maximum line length for move lists")
	diagram      = flag.Bool("diagram", false, "Append a diagram of the final position")
	flipBoard    = flag.Bool("flip", false, "Draw diagrams from Black's side")
	coordinates  = flag.Bool("coords", false, "Label ranks and files in diagrams")
	svgDir       = flag.String("svgdir", ".", "Directory for -format svg diagrams")
	squareSize   = flag.Int("square", 45, "SVG square size in pixels")
	fenComments  = flag.Bool("fencomments", false, "Add a FEN comment after each move")
	hashComments = flag.Bool("hashcomments", false, "Add a position hash comment after each move")
)

// Replay flags
var (
	strict     = flag.Bool("strict", false, "Reject moves that leave the mover's king in check")
	workers    = flag.Int("workers", runtime.NumCPU(), "Number of replay workers")
	bufferSize = flag.Int("buffer", 100, "Job and result queue size")
)

// Duplicate flags
var (
	suppressDuplicates = flag.Bool("dedup", false, "Suppress games whose final position was already output")
	duplicateFile      = flag.String("d", "", "Write duplicate games to this file")
	checkFile          = flag.String("c", "", "Records whose final positions count as already seen")
	loosePositions     = flag.Bool("loose", false, "Treat equal final positions as duplicates regardless of length")
	duplicateCapacity  = flag.Int("dupcap", 0, "Maximum remembered positions (0 = unlimited)")
)

// Filter flags
var (
	minPly         = flag.Uint("minply", 0, "Only games with at least this many plies")
	maxPly         = flag.Uint("maxply", 0, "Only games with at most this many plies (0 = no limit)")
	checkmate      = flag.Bool("checkmate", false, "Only games ending in checkmate")
	stalemate      = flag.Bool("stalemate", false, "Only games ending in stalemate")
	underpromotion = flag.Bool("underpromotion", false, "Only games with an underpromotion")
	repetition     = flag.Bool("repetition", false, "Only games with a threefold repetition")
	fiftyMove      = flag.Bool("fifty", false, "Only games reaching the fifty-move rule")
	insufficient   = flag.Bool("insufficient", false, "Only games ending with insufficient material")
	stopAfter      = flag.Uint("stopafter", 0, "Stop after this many games are output")
	material       = flag.String("material", "", "Only games reaching this material, e.g. QR:qr")
	exactMaterial  = flag.Bool("exactmaterial", false, "With -material, no other pieces may be present")
	positions      []string
)

// Classification flags
var (
	ecoFile = flag.String("eco", "", "Opening book (JSON lines) used to add ECO tags")
)

func init() {
	flag.Func("position", "Only games passing through this FEN or placement pattern (repeatable)", func(s string) error {
		positions = append(positions, s)
		return nil
	})
}

// Logging flags
var (
	logLevel  = flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	prettyLog = flag.Bool("pretty", false, "Human-readable log output")
	logFile   = flag.String("l", "", "Write log to this file")
	appendLog = flag.String("L", "", "Append log to this file")
	progress  = flag.Duration("progress", 0, "Log progress at this interval (0 = off)")
)

// Misc flags
var (
	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies flag values into cfg.
func applyFlags(cfg *config.Config) error {
	outFormat, err := config.ParseOutputFormat(*format)
	if err != nil {
		return err
	}

	cfg.Workers = *workers
	cfg.BufferSize = *bufferSize
	cfg.LogLevel = *logLevel
	cfg.PrettyLog = *prettyLog

	cfg.Output.Format = outFormat
	cfg.Output.JSONLines = *jsonLines
	cfg.Output.MaxLineLength = *lineLength
	cfg.Output.Diagram = *diagram
	cfg.Output.Flip = *flipBoard
	cfg.Output.Coordinates = *coordinates
	cfg.Output.SVGDir = *svgDir
	cfg.Output.SquareSize = *squareSize
	cfg.Output.AddFENComments = *fenComments
	cfg.Output.AddHashComments = *hashComments

	cfg.Replay.Strict = *strict

	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = !*loosePositions
	cfg.Duplicate.Capacity = *duplicateCapacity

	applyFilterFlags(cfg.Filter)
	return nil
}

func applyFilterFlags(f *config.FilterConfig) {
	if *minPly > 0 || *maxPly > 0 {
		f.CheckPlyBounds = true
		f.MinPlies = *minPly
		f.MaxPlies = *maxPly
		if f.MaxPlies == 0 {
			f.MaxPlies = ^uint(0)
		}
	}
	f.MatchCheckmate = *checkmate
	f.MatchStalemate = *stalemate
	f.MatchUnderpromotion = *underpromotion
	f.MatchRepetition = *repetition
	f.MatchFiftyMoveRule = *fiftyMove
	f.MatchInsufficientMaterial = *insufficient
	f.StopAfter = *stopAfter
	f.Material = *material
	f.MaterialExact = *exactMaterial
	f.Positions = positions
}
