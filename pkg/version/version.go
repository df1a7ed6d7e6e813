// Package version holds build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/county-estate/scaffold/pkg/version.Version=v0.2.0"
package version

import "fmt"

// Overridden by -ldflags in release builds.
var (
	Version = "v0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
