package version

import (
	"fmt"
	"runtime"
)

// These variables are set by ldflags during build, e.g.
// -X github.com/younsl/shotty/internal/version.version=v1.0.0
var (
	version   = "dev"
	buildDate = "unknown" // RFC3339
	gitCommit = "unknown"
)

// BuildInfo contains version and build details.
type BuildInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the build information.
func Get() BuildInfo {
	return BuildInfo{
		Version:   version,
		BuildDate: buildDate,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("shotty version %s (built: %s, commit: %s, %s %s)",
		b.Version, b.BuildDate, b.GitCommit, b.GoVersion, b.Platform)
}
