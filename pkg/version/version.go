// Package version holds build metadata injected with -ldflags, e.g.
//
//	-X github.com/Sumatoshi-tech/tally/pkg/version.Version=v1.2.0
package version

import (
	"fmt"
	"runtime/debug"
)

// Build metadata. Overridden at link time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the build metadata of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Get returns the build metadata, falling back to the module version
// recorded by the Go toolchain when Version was not injected.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion

		if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}
	}

	return info
}

func (i Info) String() string {
	return fmt.Sprintf("tally %s (commit: %s, built: %s)", i.Version, i.Commit, i.Date)
}
