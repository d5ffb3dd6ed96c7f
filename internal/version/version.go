// Package version exposes build version information for plugin
// binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/goxbar/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/goxbar/internal/version.Commit=abc123"
//
// If not set, they are populated from Go build info when available.
var (
	// Version is the semantic version of the binary
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version != "" && Commit != "" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		fallback()
		return
	}

	for _, setting := range info.Settings {
		if setting.Key != "vcs.revision" || Commit != "" {
			continue
		}
		Commit = setting.Value
		if len(Commit) > 7 {
			Commit = Commit[:7]
		}
	}
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	fallback()
}

func fallback() {
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
