// Package version reports what build is running
package version

// BuildInfo holds version information about the service build
type BuildInfo struct {
	Service string `json:"service" example:"seatime-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"abcd123"`
	Date    string `json:"date"    example:"2025-03-01"`
}

// Info returns the build information for service
// version, commit and date are set with
// -ldflags "-X 'seatime/internal/core/version.version=v0.1.0' -X 'seatime/internal/core/version.commit=abcd123'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
