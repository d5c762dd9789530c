package model

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseCoordinates parses "x,y;x,y;..." into coordinates. An empty string yields no coordinates.
func ParseCoordinates(s string) ([]Coordinate, error) {
	var coords []Coordinate
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, errors.Wrapf(ErrMalformedCoordinate, "[ParseCoordinates] missing comma in %q", pair)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedCoordinate, "[ParseCoordinates] bad x in %q", pair)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedCoordinate, "[ParseCoordinates] bad y in %q", pair)
		}
		coords = append(coords, Coordinate{X: x, Y: y})
	}
	return coords, nil
}
