package grammar

import (
	"sort"

	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// autoCompleteUnit is the Unit implementation handed to Marker's
// AutoCompleteMark: a closure over the node the cursor landed in and
// the version the line was parsed against, deferring suggestion
// production until a caller actually asks for it (component E).
type autoCompleteUnit struct {
	engine  *Engine
	nodeID  NodeID
	version version.Version
}

// Suggestions collects def's own suggestions plus, when prefix is
// empty, the suggestions of every node reachable by following
// is_close branches (arguments the grammar treats as a direct
// continuation, such as the "L" suffix of an xp amount), scores each
// against prefix and returns them sorted best-match first with failed
// matches dropped.
func (u *autoCompleteUnit) Suggestions(prefix string) []suggest.Suggestion {
	var collected []suggest.Suggestion
	seen := map[NodeID]bool{}
	u.collect(u.nodeID, prefix, seen, &collected)
	return rank(collected, prefix)
}

func (u *autoCompleteUnit) collect(id NodeID, prefix string, seen map[NodeID]bool, out *[]suggest.Suggestion) {
	if seen[id] {
		return
	}
	seen[id] = true
	def := u.engine.arena.def(id)
	if def.suggestFn != nil {
		*out = append(*out, def.suggestFn(u.version)...)
	}
	if prefix != "" {
		return
	}
	for _, br := range def.branches {
		if !br.IsClose {
			continue
		}
		if br.VersionPred != nil && !br.VersionPred(u.version) {
			continue
		}
		u.collect(br.Target, prefix, seen, out)
	}
}

func rank(in []suggest.Suggestion, prefix string) []suggest.Suggestion {
	type scored struct {
		s suggest.Suggestion
		w suggest.RuleWeight
	}
	scoredList := make([]scored, 0, len(in))
	for _, s := range in {
		w := suggest.RuleWeight(suggest.Other)
		if s.MatchRule != nil {
			w = s.MatchRule(prefix)
		}
		if w == suggest.Failed {
			continue
		}
		scoredList = append(scoredList, scored{s: s, w: w})
	}
	sort.SliceStable(scoredList, func(i, j int) bool { return scoredList[i].w < scoredList[j].w })
	out := make([]suggest.Suggestion, len(scoredList))
	for i, sc := range scoredList {
		out[i] = sc.s
	}
	return out
}
