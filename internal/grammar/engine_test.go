package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func TestEngineArgumentEndRequiresSeparator(t *testing.T) {
	g := NewG(nil)
	x := g.Char('x').ArgumentEnd(true)
	y := g.Keyword("abc")
	x.Branch(y)
	g.a.Freeze()
	e := NewEngine(g.a, x.ID())

	noSpace := e.ParseLine("xabc", version.Default)
	require.Len(t, noSpace.Diags, 1)
	assert.Equal(t, "error.expect.terminator", noSpace.Diags[0].MessageKey)

	withSpace := e.ParseLine("x abc", version.Default)
	assert.Empty(t, withSpace.Diags)
}

func TestEngineDeepestFailureWins(t *testing.T) {
	g := NewG(nil)
	root := g.a.Compressed("root")

	shallow := g.Keyword("xyz")
	root.Branch(shallow, IsClose())

	a := g.Keyword("a")
	deep := g.Keyword("bbb")
	a.Branch(deep)
	root.Branch(a, IsClose())

	g.a.Freeze()
	e := NewEngine(g.a, root.ID())

	m := e.ParseLine("a bcd", version.Default)
	require.Len(t, m.Diags, 1)
	assert.Equal(t, "error.expect.keyword", m.Diags[0].MessageKey)
	assert.Equal(t, "bbb", m.Diags[0].Kwargs["word"])
}

func TestEngineRollbackPurity(t *testing.T) {
	g := NewG(nil)
	root := g.a.Compressed("root")
	first := g.Keyword("give")
	second := g.Keyword("gamemode")
	root.Branch(first, IsClose())
	root.Branch(second, IsClose())
	g.a.Freeze()
	e := NewEngine(g.a, root.ID())

	m := e.ParseLine("gamemode", version.Default)
	assert.Empty(t, m.Diags)
	assert.Len(t, m.FontMarks, 1)
}

func TestEngineDeferredCheckerFlagsOutOfRangeValue(t *testing.T) {
	g := NewG(nil)
	root := g.Integer(Min(10), Max(20))
	g.a.Freeze()
	e := NewEngine(g.a, root.ID())

	ok := e.ParseLine("15", version.Default)
	assert.Empty(t, ok.Diags)

	bad := e.ParseLine("999", version.Default)
	require.Len(t, bad.Diags, 1)
	assert.Equal(t, "error.semantic.number.out_of_range", bad.Diags[0].MessageKey)
}
