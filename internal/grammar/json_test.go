package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func newJsonEngine(t *testing.T) *Engine {
	t.Helper()
	g := NewG(nil)
	entry, exit := g.Json()
	return newEolEngine(g, entry, exit)
}

func TestJsonAcceptsEveryValueKind(t *testing.T) {
	e := newJsonEngine(t)
	for _, line := range []string{
		`"hello"`,
		"42",
		"-3.5",
		"true",
		"false",
		"null",
		`[1, 2, "three"]`,
		`{"a": 1, "b": [true, false]}`,
		`{"nested": {"deeper": [1, {"x": "y"}]}}`,
	} {
		m := e.ParseLine(line, version.Default)
		assert.Emptyf(t, m.Diags, "expected %q to parse cleanly, got %v", line, m.Diags)
	}
}

func TestJsonRejectsMalformed(t *testing.T) {
	e := newJsonEngine(t)
	for _, line := range []string{
		`{"a": }`,
		`[1, 2,]`,
		`{unquoted: 1}`,
	} {
		m := e.ParseLine(line, version.Default)
		require.NotEmptyf(t, m.Diags, "expected %q to fail", line)
	}
}

func TestJsonRecursesWithoutRebuildingSubtree(t *testing.T) {
	g := NewG(nil)
	e1, x1 := g.Json()
	e2, x2 := g.Json()
	assert.Equal(t, e1.ID(), e2.ID())
	assert.Equal(t, x1.ID(), x2.ID())
}

func TestItemComponentsIsJson(t *testing.T) {
	g := NewG(nil)
	jsonEntry, jsonExit := g.Json()
	icEntry, icExit := g.ItemComponents()
	assert.Equal(t, jsonEntry.ID(), icEntry.ID())
	assert.Equal(t, jsonExit.ID(), icExit.ID())
}

func newRawTextEngine(t *testing.T) *Engine {
	t.Helper()
	g := NewG(nil)
	entry, exit := g.RawText()
	return newEolEngine(g, entry, exit)
}

func TestRawTextAcceptsEveryComponentShape(t *testing.T) {
	e := newRawTextEngine(t)
	for _, line := range []string{
		`{"rawtext":[{"text":"hello"}]}`,
		`{"rawtext":[{"translate":"key.name"}]}`,
		`{"rawtext":[{"translate":"key.name","with":["a","b"]}]}`,
		`{"rawtext":[{"selector":"@a[type=minecraft:cow]"}]}`,
		`{"rawtext":[{"score":{"name":"@s","objective":"my_obj"}}]}`,
		`{"rawtext":[{"text":"a"},{"selector":"@p"}]}`,
		`{"rawtext":[]}`,
	} {
		m := e.ParseLine(line, version.Default)
		assert.Emptyf(t, m.Diags, "expected %q to parse cleanly, got %v", line, m.Diags)
	}
}

func TestRawTextRejectsMalformed(t *testing.T) {
	e := newRawTextEngine(t)
	for _, line := range []string{
		`{"rawtext":[{"bogus":"x"}]}`,
		`{"rawtext":[{"text":1}]}`,
		`{"text":"hello"}`,
		`{"rawtext":[{"score":{"name":"@s"}}]}`,
	} {
		m := e.ParseLine(line, version.Default)
		require.NotEmptyf(t, m.Diags, "expected %q to fail", line)
	}
}

func TestRawTextSelectorFieldPaintsInnerSelectorMarks(t *testing.T) {
	e := newRawTextEngine(t)
	line := `{"rawtext":[{"selector":"@a[type=minecraft:cow]"}]}`
	m := e.ParseLine(line, version.Default)
	require.Empty(t, m.Diags)

	quoteStart := len(`{"rawtext":[{"selector":`)
	quoteEnd := len(line) - len(`}]}`)
	var sawInnerMark bool
	for _, fm := range m.FontMarks {
		if fm.Span.Begin.Offset > quoteStart && fm.Span.End.Offset < quoteEnd {
			sawInnerMark = true
		}
	}
	assert.True(t, sawInnerMark, "expected at least one font mark strictly inside the selector's quotes, got %#v", m.FontMarks)
}
