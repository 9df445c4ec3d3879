package committype

import (
	"fmt"

	"github.com/coreos/go-semver/semver"
	"github.com/thediveo/enumflag/v2"
)

// BumpLevel is the part of a semantic version a commit type increments.
type BumpLevel enumflag.Flag

const (
	// BumpMajor increments the major version.
	BumpMajor BumpLevel = iota
	// BumpMinor increments the minor version.
	BumpMinor
	// BumpPatch increments the patch version.
	BumpPatch
	// BumpNone leaves the version unchanged.
	BumpNone
)

// BumpLevelIds maps BumpLevel to their string representations.
var BumpLevelIds = map[BumpLevel][]string{
	BumpMajor: {"Major"},
	BumpMinor: {"Minor"},
	BumpPatch: {"Patch"},
	BumpNone:  {"None"},
}

// Name returns the name of this bump level.
func (l BumpLevel) Name() string {
	if val, ok := BumpLevelIds[l]; ok {
		return val[0]
	}
	return fmt.Sprintf("UnknownBumpLevel(%d)", l)
}

func (l BumpLevel) String() string {
	return l.Name()
}

// Apply returns v bumped by this level. Bumping resets the lower
// components along with any pre-release and metadata.
func (l BumpLevel) Apply(v semver.Version) semver.Version {
	switch l {
	case BumpMajor:
		v.BumpMajor()
	case BumpMinor:
		v.BumpMinor()
	case BumpPatch:
		v.BumpPatch()
	}
	return v
}
