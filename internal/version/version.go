// Package version provides the build-time version string for the sched binary.
// The Version variable is overridden at build time via -ldflags:
//
//	go build -ldflags "-X github.com/senna-lang/schedtrack/internal/version.Version=v0.1.0" -o sched .
package version

import (
	"fmt"
	"runtime"
)

// Version is set at build time via -ldflags.
// It defaults to "dev" for local builds without ldflags.
var Version = "dev"

// String returns a human-readable version string including OS and architecture.
// Example: "sched v0.1.0 (linux/amd64)". Builds without a release version
// are marked "(development build)".
func String() string {
	s := fmt.Sprintf("sched %s (%s/%s)", Version, runtime.GOOS, runtime.GOARCH)
	if IsDev() {
		s += " (development build)"
	}
	return s
}

// IsDev reports whether this is a development (non-release) build.
func IsDev() bool {
	return Version == "dev"
}
