// Package suggest defines autocompletion Suggestions and the weighted
// ordering used to rank them against a user-typed prefix.
package suggest

import "github.com/sahilm/fuzzy"

// RuleWeight totally orders suggestions: lower sorts first. Failed is
// a distinguished value meaning "drop this suggestion entirely".
type RuleWeight int

const (
	// Failed marks a suggestion that does not match the typed prefix
	// at all; it is filtered out before sorting.
	Failed RuleWeight = -1
	// Other is the coarse "matches, no particular rank" band.
	Other RuleWeight = 2000
	// StrFind is the band used by fuzzy/substring matches; rules that
	// find a better (earlier, tighter) match return StrFind minus a
	// non-negative offset, so closer matches sort first but never
	// below StrFind itself minus whatever headroom the rule wants.
	StrFind RuleWeight = 1000
)

// MatchRule scores a user-typed prefix against one suggestion. It is
// evaluated by the suggestion engine (internal/grammar) after
// collecting every Suggestion reachable from an AutoCompleteUnit.
type MatchRule func(prefix string) RuleWeight

// Suggestion is a single candidate autocompletion, matched against the
// text the user has typed so far.
type Suggestion struct {
	LabelKey    string
	LabelKwargs map[string]any
	Inserts     string
	NoteKey     string
	MatchRule   MatchRule
}

// CharRule matches only the empty prefix or the prefix equal to the
// single character itself (used for Char() nodes: "," partially typed
// is either nothing yet, or the character committed).
func CharRule(char string) MatchRule {
	return func(s string) RuleWeight {
		if s == "" || s == char {
			return Other
		}
		return Failed
	}
}

// CharCheckRule accepts any prefix all of whose runes satisfy checker
// (used for Integer/Float/Word-style character-class suggestions).
func CharCheckRule(checker func(rune) bool) MatchRule {
	return func(s string) RuleWeight {
		for _, r := range s {
			if !checker(r) {
				return Failed
			}
		}
		return Other
	}
}

// StrFindRule fuzzy-matches prefix against word: an empty prefix
// always matches (weight StrFind); otherwise fuzzy.Index locates the
// best subsequence match and nearer/tighter matches rank better. No
// match at all is Failed.
func StrFindRule(word string) MatchRule {
	return func(prefix string) RuleWeight {
		if prefix == "" {
			return StrFind
		}
		matches := fuzzy.Find(prefix, []string{word})
		if len(matches) == 0 {
			return Failed
		}
		// fuzzy.Match.Score is higher-is-better; invert and clamp so
		// the result still sorts ahead of the generic Other band.
		score := matches[0].Score
		w := RuleWeight(int(StrFind) - score)
		if w < 0 {
			w = 0
		}
		return w
	}
}

// AlwaysOther accepts any input, used by nodes whose suggestion is
// always offered regardless of what has been typed (e.g. bare text).
func AlwaysOther(string) RuleWeight { return Other }
