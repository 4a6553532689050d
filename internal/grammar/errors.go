package grammar

import "github.com/mccmdhl/mccmdhl2/internal/diag"

// leafError is what a LeafParse/SubparseFn returns to signal failure;
// Expect and ArgParse are the only ways to construct one, matching the
// two syntactic failure tiers (Semantic failures never come from a
// parse function, only from a Checker).
type leafError struct {
	kind   diag.Kind
	key    string
	kwargs diag.Kwargs
}

func (e *leafError) Error() string { return e.key }

// Expect reports a cheap, non-committal mismatch: the engine simply
// tries the next branch. It carries a message only in case every
// branch at every level ultimately fails and this turns out to be the
// deepest-reaching one.
func Expect(key string, kwargs diag.Kwargs) error {
	return &leafError{kind: diag.Expectation, key: key, kwargs: kwargs}
}

// ArgParse reports a committed mismatch: the characters consumed so
// far are recognisably an attempt at this argument, just a malformed
// one (e.g. a quoted string whose opening '"' was read but that is
// never closed, or that holds an unknown escape).
func ArgParse(key string, kwargs diag.Kwargs) error {
	return &leafError{kind: diag.ArgParse, key: key, kwargs: kwargs}
}

// failure is the engine-internal propagation type: it tracks how deep
// into the source the failing attempt reached, so selectBranch can
// keep only the deepest-reaching failure among sibling branches (the
// "best error" tiebreak).
type failure struct {
	depth  int
	d      diag.Diagnostic
}

func (f *failure) Error() string { return f.d.MessageKey }

func deeper(a, b *failure) *failure {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.depth > a.depth {
		return b
	}
	return a
}
