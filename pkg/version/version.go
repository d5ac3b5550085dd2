package version

// Set by the linker at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)
