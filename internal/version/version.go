// Package version exposes build metadata for the running binary.
package version

// Overridden at build time with ldflags, e.g.
// -ldflags "-X pingpong/internal/version.Version=1.2.3 -X pingpong/internal/version.Commit=$(git rev-parse --short HEAD)"
var (
	// Version is the semantic version reported by /health and the home page.
	Version = "1.0.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)
