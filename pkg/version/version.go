// Package version carries build metadata stamped in at link time.
package version

// Set via -ldflags "-X github.com/facebook/libfbjs/pkg/version.Version=..."
// and friends by the release build.
//
//nolint:gochecknoglobals // Link-time variables.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
