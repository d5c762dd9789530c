package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// run drives the simulation and returns the process exit code
func run(ctx context.Context, args []string, out io.Writer) int {
	config, opts, err := parseFlags(args, out)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return exitError
	}

	grid, pool, err := initializeGame(config, out)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return exitError
	}

	renderer := &model.TerminalRenderer{Out: out}
	stats := utils.NewStats()
	history := model.NewHistory(config.HistorySize)
	displayGameInfo(config, grid, out)

	lastFrameTime := time.Now()
	for generation := 0; ; generation++ {
		frameStart := time.Now()
		if !opts.quiet {
			if config.FrameRate > 0 {
				renderer.Clear()
			}
			renderer.Display(grid)
		}

		livingCells, density, status, isStagnant := updateGameState(
			grid, generation, frameStart.Sub(lastFrameTime), stats, history)
		lastFrameTime = frameStart
		displayGameStatus(generation, livingCells, density, status, out)

		if generation >= config.MaxGenerations {
			fmt.Fprintf(out, "\nReached generation limit (%d)\n", config.MaxGenerations)
			break
		}
		if config.StopOnStagnation && (isStagnant || livingCells == 0) {
			fmt.Fprintf(out, "\nStopping: board is %s\n", status)
			break
		}

		if ctx.Err() != nil {
			return shutdown(stats, out)
		}
		next, err := advance(ctx, grid, config, pool)
		if err != nil {
			if ctx.Err() != nil {
				return shutdown(stats, out)
			}
			fmt.Fprintf(out, "Error: %v\n", err)
			return exitError
		}
		grid = next

		select {
		case <-ctx.Done():
			return shutdown(stats, out)
		case <-time.After(config.FrameRate):
		}
	}

	displayFinalStats(stats, out)
	return exitOK
}

// shutdown reports an interrupted run
func shutdown(stats *utils.Stats, out io.Writer) int {
	fmt.Fprintln(out, "\nShutting down gracefully...")
	displayFinalStats(stats, out)
	return exitOK
}
