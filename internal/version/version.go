package version

// These variables are overridden at build time using -ldflags, e.g.
// -X github.com/avg-cs-student/jcblocks/internal/version.Version=v0.2.0
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info is the build metadata reported by the API and the CLI.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   string `json:"dirty"`
}

// Get returns the current build metadata.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date, Dirty: Dirty}
}
