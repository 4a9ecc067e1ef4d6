package build

import (
	"fmt"
	"runtime"
	"strings"
)

// These are set via -ldflags at build time; they default to
// placeholders for local `go build`/`go run` invocations.
var (
	// Commit is the git commit hash the binary was built from.
	Commit string

	// CommitHash is an alias for Commit kept for callers that look for
	// the longer form name.
	CommitHash string

	// GoVersion records the toolchain version used for the build. It
	// defaults to the running binary's toolchain version if unset.
	GoVersion = runtime.Version()

	// RawTags is the comma-separated build tag list passed at build
	// time, if any.
	RawTags string
)

const (
	appMajor uint = 0
	appMinor uint = 1
	appPatch uint = 0

	// appPreRelease is appended to the version string when non-empty,
	// e.g. "alpha", "beta", "rc1".
	appPreRelease = "alpha"
)

// Version returns the application version as a properly formed string
// per the semantic versioning 2.0.0 spec (http://semver.org/).
func Version() string {
	version := fmt.Sprintf("%d.%d.%d", appMajor, appMinor, appPatch)

	if appPreRelease != "" {
		version += "-" + appPreRelease
	}

	return version
}

// Tags returns the list of build tags the binary was compiled with.
func Tags() []string {
	if RawTags == "" {
		return nil
	}

	return strings.Split(RawTags, ",")
}
