package version

import (
	"runtime"
	"runtime/debug"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set with -ldflags at build time
var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Version returns the tag, the branch, or a short vcs revision, in that
// order of preference, falling back to "dev"
func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	if rev := setting("vcs.revision"); len(rev) >= 12 {
		return rev[:12]
	} else if rev != "" {
		return rev
	}
	return "dev"
}

// Metadata returns build metadata for the named executable
func Metadata(execName string) map[string]string {
	metadata := map[string]string{
		"name":     execName,
		"version":  Version(),
		"compiler": runtime.Version(),
		"platform": runtime.GOOS + "/" + runtime.GOARCH,
	}
	if GitTag != "" {
		metadata["tag"] = GitTag
	}
	if GitBranch != "" {
		metadata["branch"] = GitBranch
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Path != "" {
		metadata["source"] = info.Main.Path
	}
	for key, name := range map[string]string{"hash": "vcs.revision", "build_time": "vcs.time"} {
		if value := setting(name); value != "" {
			metadata[key] = value
		}
	}
	if setting("vcs.modified") == "true" {
		metadata["modified"] = "true"
	}
	return metadata
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func setting(key string) string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == key {
				return s.Value
			}
		}
	}
	return ""
}
