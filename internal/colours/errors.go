package colours

import "errors"

var (
	// ErrInvalidParameter is returned when a reader setting or hue range is out of range.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptySampleSet is returned when sampling an image produced no pixels.
	ErrEmptySampleSet = errors.New("no pixels sampled")
)
