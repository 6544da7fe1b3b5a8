// Package version holds build metadata, overridable at link time via
// -ldflags "-X github.com/doeshing/calcli/internal/version.Version=...".
package version

var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = ""
	// BuildDate is the build timestamp.
	BuildDate = ""
)
