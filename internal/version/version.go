// Package version holds build information set through -ldflags.
package version

var (
	// Version is the released version of fieldcard.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
)
