// Package version reports the build stamped into the leadfunnel binary.
package version

import "fmt"

// These variables are set at build time via ldflags, e.g.
//
//	-X github.com/example/leadfunnel/internal/version.Commit=$(git rev-parse HEAD)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("leadfunnel %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
