package model

import (
	"sort"

	"github.com/pkg/errors"
)

// patterns holds well-known seeds anchored at the origin
var patterns = map[string][]Coordinate{
	// .#.
	// ..#
	// ###
	"glider": {{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	// period 2 oscillator
	"blinker": {{0, 0}, {1, 0}, {2, 0}},
	"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	"beehive": {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}},
	"toad":    {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
	"beacon":  {{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
}

// PatternNames returns the catalogue names in sorted order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern returns a copy of the named pattern anchored at the origin
func Pattern(name string) ([]Coordinate, error) {
	cells, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q (known: %v)", name, PatternNames())
	}
	return append([]Coordinate(nil), cells...), nil
}

// Translate returns coords shifted by offset
func Translate(coords []Coordinate, offset Coordinate) []Coordinate {
	moved := make([]Coordinate, len(coords))
	for i, c := range coords {
		moved[i] = c.Add(offset)
	}
	return moved
}

// Centered translates coords so their bounding box sits in the middle of a width x height board
func Centered(coords []Coordinate, width, height int) []Coordinate {
	if len(coords) == 0 {
		return nil
	}

	minX, maxX := coords[0].X, coords[0].X
	minY, maxY := coords[0].Y, coords[0].Y
	for _, c := range coords[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}

	offset := Coordinate{
		X: (width-(maxX-minX+1))/2 - minX,
		Y: (height-(maxY-minY+1))/2 - minY,
	}
	return Translate(coords, offset)
}
