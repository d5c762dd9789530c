package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// options are the command line settings that are not part of the config file
type options struct {
	configPath string
	quiet      bool
}

// parseFlags layers command line flags over the config file, which is layered over the defaults
func parseFlags(args []string, out io.Writer) (utils.Config, options, error) {
	var (
		opts     options
		defaults = utils.DefaultConfig()
		fs       = flag.NewFlagSet("go-life", flag.ContinueOnError)

		width       = fs.Int("width", defaults.Width, "board width in cells")
		height      = fs.Int("height", defaults.Height, "board height in cells")
		pattern     = fs.String("pattern", defaults.Pattern, fmt.Sprintf("named seed pattern %v", model.PatternNames()))
		cells       = fs.String("cells", "", `explicit seed cells as "x,y;x,y" (overrides -pattern)`)
		generations = fs.Int("generations", defaults.MaxGenerations, "number of generations to evolve")
		delay       = fs.Duration("delay", defaults.FrameRate, "pause between generations")
		parallel    = fs.Bool("parallel", defaults.UseParallel, "split each generation across CPUs")
	)
	fs.SetOutput(out)
	fs.StringVar(&opts.configPath, "config", "", "path to a JSON config file")
	fs.BoolVar(&opts.quiet, "quiet", false, "print status lines only, no board")

	if err := fs.Parse(args); err != nil {
		return utils.Config{}, opts, errors.Wrap(err, "[parseFlags] failed to parse arguments")
	}

	config := defaults
	if opts.configPath != "" {
		var err error
		if config, err = utils.LoadConfig(opts.configPath); err != nil {
			return config, opts, err
		}
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			config.Width = *width
		case "height":
			config.Height = *height
		case "pattern":
			config.Pattern = *pattern
			config.Cells = nil
		case "cells":
			coords, err := model.ParseCoordinates(*cells)
			if err != nil {
				parseErr = err
				return
			}
			config.Cells = coords
		case "generations":
			config.MaxGenerations = *generations
		case "delay":
			config.FrameRate = *delay
		case "parallel":
			config.UseParallel = *parallel
		}
	})
	if parseErr != nil {
		return config, opts, parseErr
	}

	// -cells wins over -pattern regardless of flag order
	if *cells != "" && len(config.Cells) == 0 {
		config.Cells, parseErr = model.ParseCoordinates(*cells)
	}
	return config, opts, parseErr
}

// initializeGame validates the config and builds the first generation
func initializeGame(config utils.Config, out io.Writer) (*model.Grid, *model.GridPool, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	seed, err := config.Seed()
	if err != nil {
		return nil, nil, err
	}
	for _, c := range model.OutOfBounds(config.Width, config.Height, seed) {
		fmt.Fprintf(out, "Warning: seed cell (%d,%d) is outside the %dx%d board, ignoring\n",
			c.X, c.Y, config.Width, config.Height)
	}

	grid, err := model.NewGrid(config.Width, config.Height, seed)
	if err != nil {
		return nil, nil, err
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}
	return grid, pool, nil
}

// displayGameInfo shows the run settings
func displayGameInfo(config utils.Config, grid *model.Grid, out io.Writer) {
	fmt.Fprintf(out, "Features: Memory Pool: %v, Parallel: %v, Stop on stagnation: %v\n",
		config.UseMemoryPool, config.UseParallel, config.StopOnStagnation)
	fmt.Fprintf(out, "Grid: %dx%d | Initial living cells: %d | Generations: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells(), config.MaxGenerations)
}

// updateGameState records the generation and returns its population, density and status
func updateGameState(
	grid *model.Grid,
	generation int,
	frameDuration time.Duration,
	stats *utils.Stats,
	history *model.History,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100

	stats.Update(generation, livingCells, frameDuration)
	isStagnant := history.Observe(grid)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the status line for one generation
func displayGameStatus(generation, livingCells int, density float64, status string, out io.Writer) {
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
}

// displayFinalStats summarizes the run
func displayFinalStats(stats *utils.Stats, out io.Writer) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population, %d peak population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation)
}

// advance produces the next generation and recycles the current one
func advance(ctx context.Context, grid *model.Grid, config utils.Config, pool *model.GridPool) (*model.Grid, error) {
	var next *model.Grid
	if config.UseParallel {
		populated, err := grid.EvolveParallel(ctx, config.Workers)
		if err != nil {
			return nil, err
		}
		if next, err = model.NewGrid(grid.GetWidth(), grid.GetHeight(), populated); err != nil {
			return nil, err
		}
	} else {
		next = grid.NextGeneration(pool)
	}

	model.GridToPool(grid, pool)
	return next, nil
}
