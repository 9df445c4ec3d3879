// Package versioninfo renders build metadata as a human readable string.
package versioninfo

import (
	"strings"

	"github.com/coreos/go-semver/semver"
)

// Info describes the build of a binary.
type Info struct {
	Version string
	Commit  string
	BuiltBy string
}

// String renders the info as "v1.2.3, commit abc, built by ci". A missing
// version is shown as "dev"; one that is not valid semver is shown verbatim.
func (vi Info) String() string {
	elems := []string{vi.version()}
	if vi.Commit != "" {
		elems = append(elems, "commit "+vi.Commit)
	}
	if vi.BuiltBy != "" {
		elems = append(elems, "built by "+vi.BuiltBy)
	}
	return strings.Join(elems, ", ")
}

func (vi Info) version() string {
	if vi.Version == "" {
		return "dev"
	}
	version, err := semver.NewVersion(strings.TrimPrefix(vi.Version, "v"))
	if err != nil {
		return vi.Version
	}
	return "v" + version.String()
}
