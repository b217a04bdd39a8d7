// Package version reports the repoclone build stamp.
package version

import (
	"fmt"
	"runtime"
)

// Stamped by the release build, e.g.
//
//	go build -ldflags "-X github.com/quantmind-br/repoclone/pkg/version.Version=v1.0.0"
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

// Info is the build stamp printed by `repoclone version`. The linked
// libgit2 version is reported separately since it is resolved at runtime.
type Info struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Get reads the stamp together with the Go toolchain and target platform.
func Get() Info {
	return Info{
		Version:   Version,
		BuildTime: BuildTime,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// String renders the single line printed by `repoclone version`.
func (i Info) String() string {
	return fmt.Sprintf("repoclone %s (commit: %s, built: %s, %s %s/%s)",
		i.Version, i.Commit, i.BuildTime, i.GoVersion, i.OS, i.Arch)
}

// Short is the value cobra shows for --version.
func Short() string {
	return Version
}

// Full is Get().String().
func Full() string {
	return Get().String()
}
