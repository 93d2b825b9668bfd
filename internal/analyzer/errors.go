package analyzer

import "errors"

var (
	// ErrMissingInput is returned when the hackathon name is empty.
	ErrMissingInput = errors.New("hackathon name is required")
	// ErrInternal wraps unexpected failures inside classification or synthesis.
	ErrInternal = errors.New("analysis failed")
)
