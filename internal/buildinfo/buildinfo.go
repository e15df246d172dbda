// Package buildinfo carries release metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/aidanlsb/interlink/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "runtime/debug"

var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// readBuildInfo is swapped out in tests.
var readBuildInfo = debug.ReadBuildInfo

// ResolvedVersion returns the stamped version, then the module version
// recorded by "go install", then "devel".
func ResolvedVersion() string {
	if Version != "" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info != nil {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "devel"
}
