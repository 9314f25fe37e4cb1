// Package version provides build and version information.
package version

// Version is the current application version. Overridable at build
// time with -ldflags "-X .../internal/version.Version=...".
var Version = "0.4.0"

// Commit is the VCS revision the binary was built from, set the same
// way.
var Commit = ""

// String returns the version with the commit suffix when known.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}

// Milestones:
// 0.4.0 - Job files, JSON/track/event reports, jump-to-date prompt
// 0.3.0 - JPL DE and VSOP87 providers, provider auto-selection
// 0.2.0 - Event scanning (elongations, conjunctions, transits, occultations)
// 0.1.0 - Initial release: satellite theory, disk view, coordinate table
