package grammar

import (
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// newEolEngine wires exit to a line-end sentinel the way grammar.go's
// Build does for every real command, so a subtree tested in isolation
// still rejects trailing garbage instead of accepting as soon as it
// reaches a branch-less node.
func newEolEngine(g *G, entry, exit *Builder) *Engine {
	eol := g.a.Finish("eol", func(r *reader.Reader) (any, error) {
		ch := r.Peek()
		if !r.IsLineEnd(ch) {
			return nil, Expect("error.expect.eol", nil)
		}
		return nil, nil
	}, func(version.Version) []suggest.Suggestion { return nil })
	exit.FinishWith(eol)
	g.a.Freeze()
	return NewEngine(g.a, entry.ID())
}
