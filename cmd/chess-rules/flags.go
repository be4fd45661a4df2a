// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	moveList  = flag.String("moves", "", "Comma-separated long-algebraic moves to apply first (e.g. e2e4,e7e5)")

	// Perft options
	perftDepth  = flag.Int("perft", 0, "Count leaf nodes to this depth")
	divideDepth = flag.Int("divide", 0, "Count leaf nodes to this depth for each root move")
	workers     = flag.Int("workers", 0, "Number of perft workers (default: number of CPUs)")

	// Self-play options
	selfPlayGames = flag.Int("selfplay", 0, "Play N games between random movers")
	maxPly        = flag.Int("maxply", config.DefaultMaxPly, "Stop a self-play game after N half-moves")
	seed          = flag.Int64("seed", 1, "Seed for the random movers")
	suppressDups  = flag.Bool("D", false, "Suppress duplicate self-play games")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Write self-play games as JSON")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")

	// Verbosity
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	applySelfPlayFlags(cfg)

	cfg.JSONFormat = *jsonOutput
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config) {
	cfg.FEN = strings.TrimSpace(*fenString)
	cfg.Moves = splitMoves(*moveList)
}

// applyPerftFlags configures perft. -divide takes precedence over -perft.
func applyPerftFlags(cfg *config.Config) {
	switch {
	case *divideDepth != 0:
		cfg.Perft.Depth = *divideDepth
		cfg.Perft.Divide = true
	case *perftDepth != 0:
		cfg.Perft.Depth = *perftDepth
	}
	if *workers != 0 {
		cfg.Perft.Workers = *workers
	}
}

// applySelfPlayFlags configures self-play.
func applySelfPlayFlags(cfg *config.Config) {
	cfg.SelfPlay.Games = *selfPlayGames
	cfg.SelfPlay.MaxPly = *maxPly
	cfg.SelfPlay.Seed = *seed
	cfg.SelfPlay.SuppressDuplicates = *suppressDups
}

// splitMoves splits a comma or space separated move list.
func splitMoves(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil
	}
	return fields
}
