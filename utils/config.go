package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// Config holds the configuration for a run
type Config struct {
	Width            int                `json:"width"`
	Height           int                `json:"height"`
	FrameRate        time.Duration      `json:"frame_rate"`
	MaxGenerations   int                `json:"max_generations"`
	Pattern          string             `json:"pattern"`
	Cells            []model.Coordinate `json:"cells"`
	UseParallel      bool               `json:"use_parallel"`
	Workers          int                `json:"workers"`
	UseMemoryPool    bool               `json:"use_memory_pool"`
	StopOnStagnation bool               `json:"stop_on_stagnation"`
	HistorySize      int                `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            25,
		Height:           25,
		FrameRate:        250 * time.Millisecond,
		MaxGenerations:   50,
		Pattern:          "glider",
		UseParallel:      false,
		UseMemoryPool:    true,
		StopOnStagnation: false,
		HistorySize:      5,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the simulation cannot run
func (c Config) Validate() error {
	if err := model.ValidateDimensions(c.Width, c.Height); err != nil {
		return errors.Wrap(err, "[Validate] invalid board size")
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// Seed resolves the initial population: explicit cells win over a named pattern,
// which is centered on the board.
func (c Config) Seed() ([]model.Coordinate, error) {
	if len(c.Cells) > 0 {
		return c.Cells, nil
	}
	if c.Pattern == "" {
		return nil, nil
	}
	cells, err := model.Pattern(c.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[Seed] failed to resolve pattern")
	}
	return model.Centered(cells, c.Width, c.Height), nil
}
