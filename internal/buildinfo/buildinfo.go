// Package buildinfo holds values stamped into the binary at build time.
// It has no imports so that any package can depend on it.
package buildinfo

// Set with -ldflags "-X github.com/LinusU/emoji-commit-type/internal/buildinfo.Version=...".
var (
	Version   string = "0.0.0"
	GitCommit string
	BuiltBy   string
)
