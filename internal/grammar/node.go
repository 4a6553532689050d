// Package grammar implements the immutable Node/Branch DAG that is
// the MCCMD command grammar (component C), the depth-first parse
// engine that walks it (component D), the suggestion engine that
// replays it at a cursor column (component E), the sub-parser bridge
// for quoted strings and embedded JSON (component G), and the literal
// grammar definition itself (component H).
package grammar

import (
	"github.com/mccmdhl/mccmdhl2/internal/diag"
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/marker"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// NodeID addresses a node in an Arena by stable index rather than by
// pointer, so a branch can reference a node that is built later (the
// `_execute -> _execute` tail-recursive back-edge).
type NodeID int

type kind int

const (
	kindLeaf kind = iota
	kindCompressed
	kindSubparsing
	kindFinish
)

// LeafParse consumes characters from r and returns a value, or an
// error produced by Expect/ArgParse.
type LeafParse func(r *reader.Reader) (any, error)

// SubparseFn is invoked for Subparsing nodes: it owns the Marker
// directly and is responsible for pushing its own font marks; the
// engine still adds the node's autocompletion mark.
type SubparseFn func(m *marker.Marker) (any, error)

// SuggestFn produces a node's own suggestions (not those reachable
// through its branches, which the suggestion engine walks itself),
// targeting version v. It is evaluated lazily, only when the cursor
// actually lands on this node's autocomplete mark.
type SuggestFn func(v version.Version) []suggest.Suggestion

// CheckResult is what a Checker returns when a parsed value violates a
// constraint; the engine fills in the node's span before recording it
// as a Diagnostic.
type CheckResult struct {
	Kind   diag.Kind
	Key    string
	Kwargs diag.Kwargs
}

// Checker validates a parsed value, returning nil when it holds.
type Checker func(value any) *CheckResult

// Branch connects a node to a target, gated by an optional version
// predicate. IsClose marks a branch that continues the same argument
// (e.g. the "L" level suffix right after an xp amount) rather than
// starting a new one, so
// the engine does not demand a terminator before taking it even when
// the source node has ArgumentEnd set.
type Branch struct {
	Target      NodeID
	VersionPred version.Predicate
	IsClose     bool
}

type nodeDef struct {
	kind        kind
	name        string
	leafParse   LeafParse
	subparse    SubparseFn
	hasFont     bool
	defaultFont font.Font
	noteKey     string
	checkers    []Checker
	argumentEnd bool
	suggestFn   SuggestFn
	branches    []Branch
}

// Arena owns every node built for one grammar; branches reference
// NodeIDs into it. Once Freeze is called the arena is read-only and
// safe to share across concurrently executing parses.
type Arena struct {
	defs   []*nodeDef
	frozen bool
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) mustNotBeFrozen() {
	if a.frozen {
		panic("grammar: arena is frozen; construction must happen before Freeze")
	}
}

// Freeze finalizes branch ordering and forbids further mutation. It
// is idempotent.
func (a *Arena) Freeze() { a.frozen = true }

func (a *Arena) def(id NodeID) *nodeDef { return a.defs[id] }

// Builder is the construction-time handle for a node: a thin wrapper
// that is discarded once Freeze() is called, matching the teacher
// repo's chaining-helper-then-frozen-AST pattern (e.g. ast.Node values
// built via Parser methods, never mutated again after parse).
type Builder struct {
	arena *Arena
	id    NodeID
}

func (a *Arena) newNode(k kind, name string) *Builder {
	a.mustNotBeFrozen()
	a.defs = append(a.defs, &nodeDef{kind: k, name: name})
	return &Builder{arena: a, id: NodeID(len(a.defs) - 1)}
}

// Leaf creates a node that consumes characters directly via the
// Reader and cannot itself push onto the Marker.
func (a *Arena) Leaf(name string, parse LeafParse, suggestFn SuggestFn) *Builder {
	b := a.newNode(kindLeaf, name)
	b.arena.def(b.id).leafParse = parse
	b.arena.def(b.id).suggestFn = suggestFn
	return b
}

// Finish is a terminal sentinel (end of line, end of argument). It
// behaves like a Leaf for marking purposes but signals intent.
func (a *Arena) Finish(name string, parse LeafParse, suggestFn SuggestFn) *Builder {
	b := a.newNode(kindFinish, name)
	b.arena.def(b.id).leafParse = parse
	b.arena.def(b.id).suggestFn = suggestFn
	return b
}

// Compressed creates a zero-width join/split point: it contributes no
// parsing of its own and generates no marks, only branches.
func (a *Arena) Compressed(name string) *Builder {
	return a.newNode(kindCompressed, name)
}

// Subparsing creates a node that owns the Marker during its own parse
// and is responsible for its own font marks; the engine adds its
// autocompletion mark.
func (a *Arena) Subparsing(name string, parse SubparseFn, suggestFn SuggestFn) *Builder {
	b := a.newNode(kindSubparsing, name)
	b.arena.def(b.id).subparse = parse
	b.arena.def(b.id).suggestFn = suggestFn
	return b
}

// ID returns the stable index of the node under construction, usable
// as a Branch target before the node's own branches are populated
// (needed for back-edges like _execute -> _execute).
func (b *Builder) ID() NodeID { return b.id }

// Font overrides the node's default font.
func (b *Builder) Font(f font.Font) *Builder {
	d := b.arena.def(b.id)
	d.hasFont = true
	d.defaultFont = f
	return b
}

// Note attaches a note key describing what the user is typing at this
// node, surfaced alongside suggestions.
func (b *Builder) Note(key string) *Builder {
	b.arena.def(b.id).noteKey = key
	return b
}

// ArgumentEnd marks that, after this node parses successfully, the
// engine must see a terminator before descending into any non-close
// branch.
func (b *Builder) ArgumentEnd(v bool) *Builder {
	b.arena.def(b.id).argumentEnd = v
	return b
}

// Checker attaches a deferred semantic check run only if the branch
// through this node is ultimately accepted.
func (b *Builder) Checker(c Checker) *Builder {
	d := b.arena.def(b.id)
	d.checkers = append(d.checkers, c)
	return b
}

// BranchOpt configures one outgoing edge.
type BranchOpt func(*Branch)

func WithVersion(p version.Predicate) BranchOpt { return func(br *Branch) { br.VersionPred = p } }
func IsClose() BranchOpt                        { return func(br *Branch) { br.IsClose = true } }

// Branch appends an outgoing edge from b to target, in declared order,
// and returns b so chained .Branch calls add siblings the way the
// original grammar's fluent builder does.
func (b *Builder) Branch(target *Builder, opts ...BranchOpt) *Builder {
	return b.BranchTo(target.id, opts...)
}

// BranchTo is Branch's by-ID form, used for back-edges where the
// target Builder isn't in scope (only its ID, captured earlier).
func (b *Builder) BranchTo(target NodeID, opts ...BranchOpt) *Builder {
	br := Branch{Target: target}
	for _, o := range opts {
		o(&br)
	}
	d := b.arena.def(b.id)
	d.branches = append(d.branches, br)
	return b
}

// FinishWith is shorthand for Branch(eol), matching the grammar
// definition's `.finish(EOL)` calls.
func (b *Builder) FinishWith(eol *Builder) *Builder {
	return b.Branch(eol)
}
