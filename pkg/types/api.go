// Package types holds the JSON shapes shared by the daemon and its clients.
package types

// FeatureRequest asks the daemon to toggle battery conservation or rapid
// charge.
type FeatureRequest struct {
	Enable bool `json:"enable"`
	// Handler resolves a conflict with the mutually exclusive feature:
	// "switch", "ignore" or "error". Empty means the daemon's configured
	// default. Ignored when Enable is false.
	Handler string `json:"handler,omitempty"`
	// Unchecked bypasses conflict resolution entirely. Same effect as
	// Handler "ignore".
	Unchecked bool `json:"unchecked,omitempty"`
}

// PerformanceRequest asks the daemon to set the performance preset.
type PerformanceRequest struct {
	Mode string `json:"mode"`
}

// ProfileInfo describes the active hardware profile.
type ProfileInfo struct {
	Name     string   `json:"name"`
	Products []string `json:"products"`
}
