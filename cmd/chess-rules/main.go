// chess-rules is a tool for exploring chess positions: it lists legal
// moves, counts move trees and plays random games.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/agent"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
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
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
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
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// run sets up the position and dispatches to the requested mode.
func run(ctx context.Context, cfg *config.Config) error {
	g, err := setupPosition(cfg)
	if err != nil {
		return err
	}

	switch {
	case cfg.Perft.Depth > 0:
		return runPerft(ctx, cfg, g)
	case cfg.SelfPlay.Games > 0:
		return runSelfPlay(ctx, cfg, g)
	default:
		showPosition(cfg.OutputFile, g)
		return nil
	}
}

// setupPosition builds the starting state and applies any configured moves.
func setupPosition(cfg *config.Config) (*engine.GameState, error) {
	g := engine.NewGameState()
	if cfg.FEN != "" {
		var err error
		if g, err = engine.NewGameStateFromFEN(cfg.FEN); err != nil {
			return nil, err
		}
	}
	for _, text := range cfg.Moves {
		m, err := g.ApplyIntent(text)
		if err != nil {
			return nil, err
		}
		cfg.Logf(2, "%d. %v %s\n", g.PlyCount(), m.Moved.Colour(), m)
	}
	return g, nil
}

// runPerft counts the move tree below g and writes the totals.
func runPerft(ctx context.Context, cfg *config.Config, g *engine.GameState) error {
	pc := cfg.Perft
	start := time.Now()

	var nodes uint64
	if pc.Divide {
		result, err := perft.Divide(ctx, g, pc.Depth, pc.Workers)
		if err != nil {
			return err
		}
		if _, err := result.WriteTo(cfg.OutputFile); err != nil {
			return errors.Wrap(err, "writing divide")
		}
		nodes = result.Total
	} else {
		var err error
		if nodes, err = perft.Count(ctx, g, pc.Depth, pc.Workers); err != nil {
			return err
		}
		fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", pc.Depth, nodes)
	}

	elapsed := time.Since(start)
	cfg.Logf(1, "%d nodes in %v (%.0f nodes/s, %d workers)\n",
		nodes, elapsed.Round(time.Millisecond), float64(nodes)/elapsed.Seconds(), pc.Workers)
	return nil
}

// runSelfPlay plays random games from g and writes each one.
func runSelfPlay(ctx context.Context, cfg *config.Config, g *engine.GameState) error {
	sp := cfg.SelfPlay
	gw := output.NewGameWriter(cfg.OutputFile, cfg)

	var moveLog io.Writer
	if cfg.Verbosity > 1 {
		moveLog = cfg.LogFile
	}

	var detector *hashing.DuplicateDetector
	if sp.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(true, 0)
	}

	outcomes := make(map[agent.Outcome]int)
	for i := 0; i < sp.Games; i++ {
		// Each game gets its own pair of seeds so games differ.
		gameSeed := sp.Seed + int64(2*i)
		arena := &agent.Arena{
			White:  agent.NewRandomFinder(gameSeed),
			Black:  agent.NewRandomFinder(gameSeed + 1),
			MaxPly: g.PlyCount() + sp.MaxPly,
			Log:    moveLog,
		}

		game := g.Clone()
		outcome, err := arena.Play(ctx, game)
		if err != nil {
			return errors.Wrapf(err, "game %d", i+1)
		}
		outcomes[outcome]++
		if detector != nil && detector.CheckAndAdd(game) {
			cfg.Logf(2, "Game %d: duplicate\n", i+1)
			continue
		}
		if err := gw.WriteGame(game); err != nil {
			return errors.Wrapf(err, "writing game %d", i+1)
		}
		cfg.Logf(2, "Game %d: %v after %d plies\n", i+1, outcome, game.PlyCount())
	}

	if err := gw.Close(); err != nil {
		return errors.Wrap(err, "closing output")
	}
	cfg.Logf(1, "%d games: %d checkmate, %d stalemate, %d ply limit\n",
		sp.Games, outcomes[agent.Checkmate], outcomes[agent.Stalemate], outcomes[agent.PlyLimit])
	if detector != nil {
		cfg.Logf(1, "%d duplicates suppressed\n", detector.DuplicateCount())
	}
	return nil
}

// showPosition writes the board, the side to move and the legal moves.
func showPosition(w io.Writer, g *engine.GameState) {
	moves := g.ValidMoves()

	board := g.Board()
	fmt.Fprint(w, board.String())
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	fmt.Fprintf(w, "To move: %v\n", g.ToMove())

	switch {
	case g.Checkmate():
		fmt.Fprintln(w, "Checkmate")
		return
	case g.Stalemate():
		fmt.Fprintln(w, "Stalemate")
		return
	case g.InCheck():
		fmt.Fprintln(w, "Check")
	}

	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.LongString()
	}
	fmt.Fprintf(w, "Legal moves (%d): %s\n", len(moves), strings.Join(names, " "))
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Lists legal moves, counts move trees and plays random games.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  (default)      show the position and its legal moves\n")
	fmt.Fprintf(os.Stderr, "  -perft N       count leaf nodes to depth N\n")
	fmt.Fprintf(os.Stderr, "  -divide N      count leaf nodes per root move\n")
	fmt.Fprintf(os.Stderr, "  -selfplay N    play N random games\n")
}
