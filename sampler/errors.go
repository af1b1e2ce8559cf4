package sampler

import "errors"

var (
	// ErrInvalidRange is returned when a caller-supplied sampling range is
	// empty or has its bounds reversed.
	ErrInvalidRange = errors.New("invalid sampling range")

	// ErrEmptyChoices is returned when a positive number of items is
	// requested from an empty choice set.
	ErrEmptyChoices = errors.New("empty choice set")
)
