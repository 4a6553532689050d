package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func newSelectorEngine(t *testing.T) *Engine {
	t.Helper()
	g := NewG(nil)
	entry, exit := g.Selector()
	return newEolEngine(g, entry, exit)
}

func TestSelectorBareForms(t *testing.T) {
	e := newSelectorEngine(t)
	for _, line := range []string{"@s", "@p", "@a", "@e", "@r"} {
		m := e.ParseLine(line, version.Default)
		assert.Emptyf(t, m.Diags, "expected %q to parse cleanly, got %v", line, m.Diags)
	}
}

func TestSelectorRejectsUnknownKind(t *testing.T) {
	e := newSelectorEngine(t)
	m := e.ParseLine("@z", version.Default)
	require.NotEmpty(t, m.Diags)
}

func TestSelectorWithArguments(t *testing.T) {
	e := newSelectorEngine(t)
	for _, line := range []string{
		"@a[type=minecraft:cow]",
		"@e[type=!minecraft:cow,r=10]",
		`@a[name="Steve",tag=admin]`,
		"@e[x=1,y=2,z=3,dx=5,dy=5,dz=5]",
		"@a[scores={score1=1..5}]",
		"@a[]",
	} {
		m := e.ParseLine(line, version.Default)
		assert.Emptyf(t, m.Diags, "expected %q to parse cleanly, got %v", line, m.Diags)
	}
}

func TestSelectorRejectsMalformedArguments(t *testing.T) {
	e := newSelectorEngine(t)
	for _, line := range []string{
		"@a[type=]",
		"@a[name=]",
		"@a[notanarg=1]",
		"@a[x=1",
	} {
		m := e.ParseLine(line, version.Default)
		require.NotEmptyf(t, m.Diags, "expected %q to fail", line)
	}
}
