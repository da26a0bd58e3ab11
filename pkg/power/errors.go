package power

import "errors"

var (
	// ErrConflict is returned by the Error handler when the mutually
	// exclusive feature is confirmed enabled. No hardware call has been
	// made; retry with a different handler or disable the blocker first.
	ErrConflict = errors.New("conflicting feature is enabled")

	// ErrModeMismatch is returned when the SPMO and FCMO status bits report
	// different performance presets. This should not happen on supported
	// hardware.
	ErrModeMismatch = errors.New("spmo and fcmo report different performance modes")

	// ErrInvalidMode is returned when a status bit matches no known
	// performance preset.
	ErrInvalidMode = errors.New("invalid performance mode bit")
)
