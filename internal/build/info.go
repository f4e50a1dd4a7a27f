// Package build exposes build-time metadata injected via ldflags.
package build

import "fmt"

// Set at link time:
//
//	go build -ldflags "-X github.com/joestump/restful-notes/internal/build.Version=v1.2.0 -X ...Commit=abc123"
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
)

// String renders the build metadata on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, branch %s)", Version, Commit, Branch)
}
