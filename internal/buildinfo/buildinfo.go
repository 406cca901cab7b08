// Package buildinfo exposes build-time version information.
package buildinfo

// Set via -ldflags at build time.
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the build date.
	Date = "unknown"
)

// Info holds version information for display.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}
