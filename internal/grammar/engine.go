package grammar

import (
	"github.com/mccmdhl/mccmdhl2/internal/diag"
	"github.com/mccmdhl/mccmdhl2/internal/marker"
	"github.com/mccmdhl/mccmdhl2/internal/pos"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// Engine walks a frozen Arena's Node/Branch DAG, starting from root,
// to parse one line of text into a Marker's worth of font marks,
// autocompletion marks and diagnostics.
type Engine struct {
	arena *Arena
	root  NodeID
}

// NewEngine binds an Engine to a frozen arena and its entry node.
// Passing an arena that hasn't been frozen yet is a construction bug.
func NewEngine(arena *Arena, root NodeID) *Engine {
	if !arena.frozen {
		panic("grammar: NewEngine requires a frozen Arena")
	}
	return &Engine{arena: arena, root: root}
}

// ParseLine runs the grammar against line, targeting v, and returns
// the resulting Marker. A line that fails to match anywhere carries
// exactly one Diagnostic (the deepest-reaching failure); a line that
// matches may still carry Semantic diagnostics from deferred checkers.
func (e *Engine) ParseLine(line string, v version.Version) *marker.Marker {
	m := marker.New(reader.New(line), v)
	if f := e.parseNode(m, e.root); f != nil {
		m.AddDiagnostic(f.d)
		return m
	}
	m.RunDeferred()
	return m
}

// parseNode attempts to parse node id at the Marker's current reader
// position. It returns nil on success (marks already committed to m)
// or the deepest-reaching failure encountered while exploring id's own
// parse and its branches.
func (e *Engine) parseNode(m *marker.Marker, id NodeID) *failure {
	def := e.arena.def(id)
	prePos := m.Reader.GetLocation()

	var val any
	switch def.kind {
	case kindCompressed:
		// zero-width: no characters consumed, no marks generated.
	case kindSubparsing:
		v, err := def.subparse(m)
		if err != nil {
			return toFailure(err, prePos, m)
		}
		val = v
	default: // kindLeaf, kindFinish
		v, err := def.leafParse(m.Reader)
		if err != nil {
			return toFailure(err, prePos, m)
		}
		val = v
	}

	postPos := m.Reader.GetLocation()
	span := pos.NewSpan(prePos, postPos)

	if def.kind != kindCompressed && def.kind != kindSubparsing {
		f := def.defaultFont
		if !def.hasFont {
			f = m.TopFont()
		}
		m.AddFontMark(span, f)
	}
	if def.kind != kindCompressed {
		m.AddACMark(span, &autoCompleteUnit{engine: e, nodeID: id, version: m.Version})
	}
	for _, chk := range def.checkers {
		chkCopy, valCopy, spanCopy := chk, val, span
		m.Defer(func() *diag.Diagnostic {
			r := chkCopy(valCopy)
			if r == nil {
				return nil
			}
			d := diag.New(spanCopy, r.Kind, r.Key, r.Kwargs)
			return &d
		})
	}

	return e.selectBranch(m, def, postPos)
}

// selectBranch tries def's branches in declared order, rolling back
// the Marker after each failed attempt, and returns nil as soon as one
// fully succeeds. Invariant P2 (deepest-reaching wins, ties broken by
// declaration order) falls out of deeper() only ever replacing the
// current best on a strictly greater depth.
func (e *Engine) selectBranch(m *marker.Marker, def *nodeDef, curPos pos.Position) *failure {
	if len(def.branches) == 0 {
		return nil
	}
	var best *failure
	for _, br := range def.branches {
		if br.VersionPred != nil && !br.VersionPred(m.Version) {
			continue
		}
		snap := m.Snapshot()
		if def.argumentEnd && !br.IsClose {
			ch := m.Reader.Peek()
			switch {
			case ch == ' ':
				m.Reader.Next()
			case m.Reader.IsLineEnd(ch):
				// line end is the terminator but is left for the
				// branch's own target (typically an EOL node) to see.
			default:
				best = deeper(best, &failure{
					depth: curPos.Offset,
					d:     diag.New(pos.NewSpan(curPos, curPos), diag.Expectation, "error.expect.terminator", nil),
				})
				continue
			}
		}
		if cf := e.parseNode(m, br.Target); cf != nil {
			m.Restore(snap)
			best = deeper(best, cf)
			continue
		}
		return nil
	}
	return best
}

func toFailure(err error, prePos pos.Position, m *marker.Marker) *failure {
	postPos := m.Reader.GetLocation()
	span := pos.NewSpan(prePos, postPos)
	if le, ok := err.(*leafError); ok {
		return &failure{depth: postPos.Offset, d: diag.New(span, le.kind, le.key, le.kwargs)}
	}
	if f, ok := err.(*failure); ok {
		return f
	}
	return &failure{depth: postPos.Offset, d: diag.New(span, diag.Expectation, "error.expect.token", diag.Kwargs{"detail": err.Error()})}
}
