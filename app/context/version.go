package context

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// VersionInfo contains version metadata extracted from the build info embedded
// in the binary.
type VersionInfo struct {
	Semantic string
	Commit   string
	Dirty    bool
}

// GetVersion returns the application version information.
func GetVersion() (*VersionInfo, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, errors.New("failed reading build info")
	}

	v := &VersionInfo{Semantic: info.Main.Version}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			v.Commit = s.Value
		case "vcs.modified":
			v.Dirty = s.Value == "true"
		}
	}

	return v, nil
}

// String renders the version in a single line.
func (v *VersionInfo) String() string {
	ver := v.Semantic
	if v.Commit != "" {
		commit := v.Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		ver = fmt.Sprintf("%s (%s)", ver, commit)
	}
	if v.Dirty {
		ver += " dirty"
	}

	return ver
}
