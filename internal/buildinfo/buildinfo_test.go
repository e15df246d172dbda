package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestResolvedVersion(t *testing.T) {
	prevRead, prevVersion := readBuildInfo, Version
	t.Cleanup(func() {
		readBuildInfo = prevRead
		Version = prevVersion
	})

	tests := []struct {
		name    string
		stamped string
		module  string
		ok      bool
		want    string
	}{
		{name: "stamped wins", stamped: "v1.0.0", module: "v0.9.0", ok: true, want: "v1.0.0"},
		{name: "go install version", module: "v0.9.0", ok: true, want: "v0.9.0"},
		{name: "local build", module: "(devel)", ok: true, want: "devel"},
		{name: "no build info", want: "devel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version = tt.stamped
			readBuildInfo = func() (*debug.BuildInfo, bool) {
				if !tt.ok {
					return nil, false
				}
				return &debug.BuildInfo{Main: debug.Module{Version: tt.module}}, true
			}
			if got := ResolvedVersion(); got != tt.want {
				t.Errorf("ResolvedVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}
