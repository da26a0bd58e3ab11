package version

// These are set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
)
