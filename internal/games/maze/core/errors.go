package core

import "errors"

var (
	// ErrInvalidDimensions is returned when a grid is too small to carve.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// ErrOutOfBounds is returned for cell access outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")

	// ErrInsufficientSpace is returned when spawn placement runs out of attempts.
	ErrInsufficientSpace = errors.New("insufficient space for placement")
)

// ErrInvalidPolicy is returned for an unknown damage-wall policy or a probability outside [0, 1].
var ErrInvalidPolicy = errors.New("invalid damage wall policy")
