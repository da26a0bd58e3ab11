// Package config holds the daemon's file-backed configuration. Feature
// state itself is never persisted; it lives in firmware and is re-queried on
// every call. This config only carries daemon behavior.
package config

import "github.com/sirupsen/logrus"

// Config is what the daemon reads its behavior from.
type Config interface {
	// AllowNonRootAccess reports whether the daemon socket should be
	// world-accessible.
	AllowNonRootAccess() bool
	SetAllowNonRootAccess(bool)

	// DefaultHandler is the conflict handler used when a request does not
	// name one ("switch", "ignore" or "error").
	DefaultHandler() string

	// DisableRapidChargeOnExit reports whether the daemon should switch
	// rapid charge off when shutting down, leaving the battery in its
	// gentlest state.
	DisableRapidChargeOnExit() bool

	// ProfileOverride names a built-in profile to use instead of
	// auto-detection. Empty means auto-detect.
	ProfileOverride() string

	Load() error
	Save() error

	LogrusFields() logrus.Fields
}
