// Package committype defines the closed set of emoji commit types together
// with their display emoji, description and semver bump level.
package committype

import (
	"fmt"
	"iter"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/thediveo/enumflag/v2"
)

// CommitType represents one category of the emoji commit convention.
type CommitType enumflag.Flag

const (
	// Breaking denotes a change that breaks backwards compatibility.
	Breaking CommitType = iota
	// Feature denotes new functionality.
	Feature
	// Bugfix denotes a fix for a bug.
	Bugfix
	// Other denotes cleanup or performance work.
	Other
	// Meta denotes changes to the project itself rather than its code.
	Meta
)

// CommitTypeIds maps CommitType to their string representations.
var CommitTypeIds = map[CommitType][]string{
	Breaking: {"breaking"},
	Feature:  {"feature"},
	Bugfix:   {"bugfix"},
	Other:    {"other"},
	Meta:     {"meta"},
}

// variants is the declared order of all commit types.
var variants = [...]CommitType{
	Breaking,
	Feature,
	Bugfix,
	Other,
	Meta,
}

var commitTypeEmojis = map[CommitType]string{
	Breaking: "💥",
	Feature:  "🎉",
	Bugfix:   "🐛",
	Other:    "🔥",
	Meta:     "🌹",
}

var commitTypeDescriptions = map[CommitType]string{
	Breaking: "Breaking change",
	Feature:  "New functionality",
	Bugfix:   "Bugfix",
	Other:    "Cleanup / Performance",
	Meta:     "Meta",
}

var commitTypeBumpLevels = map[CommitType]BumpLevel{
	Breaking: BumpMajor,
	Feature:  BumpMinor,
	Bugfix:   BumpPatch,
	Other:    BumpPatch,
	Meta:     BumpNone,
}

// AllVariants returns every commit type in declared order. The returned
// slice is a fresh copy on each call.
func AllVariants() []CommitType {
	out := make([]CommitType, len(variants))
	copy(out, variants[:])
	return out
}

// All returns an iterator over every commit type in declared order.
func All() iter.Seq[CommitType] {
	return func(yield func(CommitType) bool) {
		for _, t := range variants {
			if !yield(t) {
				return
			}
		}
	}
}

// First returns the first declared commit type.
func First() CommitType { return variants[0] }

// Last returns the last declared commit type.
func Last() CommitType { return variants[len(variants)-1] }

// Next returns the commit type declared after t. The second return value
// is false when t is the last one.
func (t CommitType) Next() (CommitType, bool) {
	i := slice.IndexOf(variants[:], t)
	if i < 0 || i+1 >= len(variants) {
		return 0, false
	}
	return variants[i+1], true
}

// Prev returns the commit type declared before t. The second return value
// is false when t is the first one.
func (t CommitType) Prev() (CommitType, bool) {
	i := slice.IndexOf(variants[:], t)
	if i <= 0 {
		return 0, false
	}
	return variants[i-1], true
}

// Emoji returns the emoji for this commit type.
func (t CommitType) Emoji() string {
	return commitTypeEmojis[t]
}

// Description returns the description for this commit type.
func (t CommitType) Description() string {
	return commitTypeDescriptions[t]
}

// BumpLevel returns the semver bump level implied by this commit type.
func (t CommitType) BumpLevel() BumpLevel {
	if level, ok := commitTypeBumpLevels[t]; ok {
		return level
	}
	return BumpNone
}

func (t CommitType) String() string {
	if val, ok := CommitTypeIds[t]; ok {
		return val[0]
	}
	return fmt.Sprintf("CommitType(%d)", t)
}

// GoString renders the commit type for %#v.
func (t CommitType) GoString() string {
	emoji := t.Emoji()
	if emoji == "" {
		return t.String()
	}
	return fmt.Sprintf("CommitType { %s }", emoji)
}
