// Package meta exposes build metadata recorded in the binary by the Go
// toolchain.
//
// Goals:
//   - Zero external dependencies (stdlib only)
//   - Best-effort: every field may be empty for local, unstamped builds
package meta

import "runtime/debug"

// Info is a minimal, display-friendly summary of the binary's build.
type Info struct {
	Version  string // module version, "(devel)" for local builds
	Revision string // VCS revision, if stamped
	Time     string // VCS commit time (RFC 3339), if stamped
	Modified bool   // true when built from a dirty working tree
	GoVer    string // toolchain version the binary was built with
}

// Detect reads the build info embedded in the running binary. Missing
// settings simply leave their fields empty.
func Detect() Info {
	var inf Info
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return inf
	}
	inf.Version = bi.Main.Version
	inf.GoVer = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.time":
			inf.Time = s.Value
		case "vcs.modified":
			inf.Modified = s.Value == "true"
		}
	}
	return inf
}

// ShortRevision trims a VCS revision to the conventional 12 characters.
func (i Info) ShortRevision() string {
	if len(i.Revision) > 12 {
		return i.Revision[:12]
	}
	return i.Revision
}
