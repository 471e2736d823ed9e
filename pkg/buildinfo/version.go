// Package buildinfo carries the version identity stamped into the binary.
//
// The release process injects all three values with ldflags; a plain
// `go build` leaves the dev placeholders in place:
//
//	go build -ldflags "-X github.com/menuforge/menuforge/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/menuforge/menuforge/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/menuforge/menuforge/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Injected at link time; see the package comment.
var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the full identity, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
