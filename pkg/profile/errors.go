package profile

import "errors"

var (
	// ErrOperationNotSupported is returned when a profile declares no
	// control code for the requested feature/operation pair.
	ErrOperationNotSupported = errors.New("operation not supported by profile")

	// ErrNotDetected is returned when no built-in profile matches the
	// machine's product name.
	ErrNotDetected = errors.New("no profile matches this machine")
)
