// Package version implements the MCCMD target-version triple and the
// version predicates grammar branches are gated on.
package version

import "fmt"

// Version is the (major, minor, patch) triple a parse is targeting.
// Comparisons are lexicographic.
type Version struct {
	Major, Minor, Patch int
}

func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or 1 the way bytes.Compare does.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return sign(v.Major - o.Major)
	case v.Minor != o.Minor:
		return sign(v.Minor - o.Minor)
	case v.Patch != o.Patch:
		return sign(v.Patch - o.Patch)
	default:
		return 0
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func (v Version) LessThan(o Version) bool    { return v.Compare(o) < 0 }
func (v Version) LessEqual(o Version) bool    { return v.Compare(o) <= 0 }
func (v Version) GreaterThan(o Version) bool  { return v.Compare(o) > 0 }
func (v Version) GreaterEqual(o Version) bool { return v.Compare(o) >= 0 }
func (v Version) Equal(o Version) bool        { return v.Compare(o) == 0 }

// Predicate gates a grammar branch on the target version. A nil
// Predicate always holds.
type Predicate func(Version) bool

func Le(v Version) Predicate { return func(o Version) bool { return o.LessEqual(v) } }
func Ge(v Version) Predicate { return func(o Version) bool { return o.GreaterEqual(v) } }
func Lt(v Version) Predicate { return func(o Version) bool { return o.LessThan(v) } }

// Default is the target version used when a parser is constructed
// without an explicit one.
var Default = Version{Major: 1, Minor: 19, Patch: 80}
