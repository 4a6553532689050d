package grammar

import (
	"sync"

	"github.com/mccmdhl/mccmdhl2/internal/idtable"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// Build constructs the full command grammar: every command from
// buildCommands and buildCommandsExtra branching off a shared
// dispatcher node, execute's subcommand chain tail-recursing back into
// that same dispatcher, and a line-end sentinel every command's own
// exit eventually reaches. ids may be nil, in which case dynamic
// suggestions (block/item/entity ids) degrade to bare notes.
func Build(ids *idtable.IdTable) *Engine {
	g := NewG(ids)

	root := g.a.Compressed("command_root")
	eol := g.a.Finish("eol", func(r *reader.Reader) (any, error) {
		ch := r.Peek()
		if !r.IsLineEnd(ch) {
			return nil, Expect("error.expect.eol", nil)
		}
		return nil, nil
	}, func(version.Version) []suggest.Suggestion { return nil })

	g.buildCommands(root, eol)
	g.buildCommandsExtra(root, eol)

	g.a.Freeze()
	return NewEngine(g.a, root.ID())
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide grammar built with no dynamic id
// catalogue, built once and reused by every caller that doesn't need a
// version- or pack-specific catalogue.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = Build(nil)
	})
	return defaultEngine
}
