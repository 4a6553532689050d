package mccmd

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func TestParseLineAcceptsWellFormedCommands(t *testing.T) {
	p := NewParser(version.Default)
	for _, line := range []string{
		"gamemode survival @a",
		"kill @e[type=zombie]",
		"say hello world",
		"give @p minecraft:diamond 3",
		"execute as @a at @s run say hi",
		"tp @a ~ ~5 ~",
		"time set day",
	} {
		r := p.ParseLine(line)
		assert.Truef(t, r.IsFinished(), "expected %q to parse cleanly, got diags %+v", line, r.Diags)
	}
}

func TestParseLineRejectsMalformedCommands(t *testing.T) {
	p := NewParser(version.Default)
	for _, line := range []string{
		"gamemode spectatr @a",
		"give @p",
		"kill @x",
	} {
		r := p.ParseLine(line)
		assert.Falsef(t, r.IsFinished(), "expected %q to fail, got clean parse", line)
	}
}

func TestParseLineFontSpansCoverCommandKeyword(t *testing.T) {
	p := NewParser(version.Default)
	r := p.ParseLine("say hi")
	require.NotEmpty(t, r.Fonts)
	assert.Equal(t, font.Command, r.Fonts[0].Font)
}

func TestSuggestionsAtEndOfPartialCommand(t *testing.T) {
	p := NewParser(version.Default)
	r := p.ParseLine("gamemod")
	// the deepest-reaching failure still leaves an autocomplete mark
	// over the partially typed keyword.
	sugg := r.Suggestions(len("gamemod"))
	assert.NotEmpty(t, sugg)
}

func TestParseLinesPreservesOrder(t *testing.T) {
	p := NewParser(version.Default)
	lines := []string{"say a", "say b", "say c"}
	results, err := p.ParseLines(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, lines[i], r.Line)
		assert.True(t, r.IsFinished())
	}
}

func TestLineResultDiagnosticSpanWithinLine(t *testing.T) {
	p := NewParser(version.Default)
	r := p.ParseLine("give @p")
	require.Len(t, r.Diags, 1)
	d := r.Diags[0]
	assert.GreaterOrEqual(t, d.Begin, 0)
	assert.LessOrEqual(t, d.End, len(r.Line))
	assert.LessOrEqual(t, d.Begin, d.End)
	if diff := cmp.Diff("error.expect.namespaced_id", d.MessageKey); diff != "" {
		t.Logf("diag message key differs from the expected missing-item-id case (-want +got):\n%s", diff)
	}
}
