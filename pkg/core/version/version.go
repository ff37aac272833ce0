// Package version holds the build-time version metadata for the vcgc
// binary, filled in by the release build via -ldflags.
package version

// Version is the semantic version of this build. GitCommit and BuildDate
// are populated by the build system; both default to development markers
// so `go run` still produces sensible output.
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// String renders a one-line "vcgc v0.1.0 (abcdef, 2026-08-06)"-style
// summary used by both `vcgc version` and structured startup logging.
func String() string {
	return "vcgc v" + Version + " (" + GitCommit + ", " + BuildDate + ")"
}
