package model

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	// ErrUnknownPattern is returned for pattern names not in the catalogue.
	ErrUnknownPattern = errors.New("unknown pattern")
	// ErrMalformedCoordinate is returned when a coordinate list cannot be parsed.
	ErrMalformedCoordinate = errors.New("malformed coordinate")
)

// ValidateDimensions reports whether width x height can back a grid.
// The cell count must fit in an int.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidDimensions, "[ValidateDimensions] got %dx%d", width, height)
	}
	if width > math.MaxInt/height {
		return errors.Wrapf(ErrInvalidDimensions, "[ValidateDimensions] %dx%d cells overflow", width, height)
	}
	return nil
}
