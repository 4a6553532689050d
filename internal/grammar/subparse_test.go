package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/marker"
	"github.com/mccmdhl/mccmdhl2/internal/pos"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func TestDecodeQuotedResolvesEscapes(t *testing.T) {
	r := reader.New(`"line\n\ttab\\\"quoteA"`)
	out, colMap, err := DecodeQuoted(r)
	require.NoError(t, err)
	assert.Equal(t, "line\n\ttab\\\"quoteA", out)
	assert.Len(t, colMap, len(out)+1)
	assert.True(t, r.IsLineEnd(r.Peek()))
}

func TestDecodeQuotedRejectsUnclosedString(t *testing.T) {
	r := reader.New(`"abc`)
	_, _, err := DecodeQuoted(r)
	require.Error(t, err)
}

func TestDecodeQuotedRejectsBadUnicodeEscape(t *testing.T) {
	r := reader.New(`"\u00zz"`)
	_, _, err := DecodeQuoted(r)
	require.Error(t, err)
}

func TestDecodeQuotedRejectsBadEscape(t *testing.T) {
	r := reader.New(`"\q"`)
	_, _, err := DecodeQuoted(r)
	require.Error(t, err)
}

// selectorBridgeEngine builds a standalone engine that matches exactly
// one selector, the way a sub-parse of a quoted selector string (e.g.
// a rawtext "selector" component) would run it in isolation from the
// outer command line.
func selectorBridgeEngine(t *testing.T) *Engine {
	t.Helper()
	g := NewG(nil)
	entry, exit := g.Selector()
	return newEolEngine(g, entry, exit)
}

// TestRunSubParseBridgesSelectorMarksIntoOuter exercises the full
// DecodeQuoted -> RunSubParse -> MergeTranslated round trip a rawtext
// "selector" field value would go through: the selector text is
// decoded out of its surrounding quotes, parsed independently by a
// selector-only engine, and its font marks merged back translated to
// the outer line's coordinates.
func TestRunSubParseBridgesSelectorMarksIntoOuter(t *testing.T) {
	outerLine := `tellraw @a {"selector":"@a[type=minecraft:cow]"}`
	outer := marker.New(reader.New(outerLine), version.Default)

	quoteStart := len(`tellraw @a {"selector":`)
	innerReader := reader.New(outerLine[quoteStart:])
	decoded, colMap, err := DecodeQuoted(innerReader)
	require.NoError(t, err)
	assert.Equal(t, "@a[type=minecraft:cow]", decoded)

	// colMap maps offsets within the decoded string back to positions
	// within innerReader's own input, not the outer line; translate
	// the base forward by quoteStart to land in outer coordinates.
	for i, p := range colMap {
		colMap[i] = p.Advance(quoteStart)
	}

	sub := selectorBridgeEngine(t)
	inner := RunSubParse(sub, decoded, version.Default)
	require.Empty(t, inner.Diags)
	require.NotEmpty(t, inner.FontMarks)

	ok := MergeTranslated(outer, inner, colMap)
	require.True(t, ok)
	require.NotEmpty(t, outer.FontMarks)

	for _, fm := range outer.FontMarks {
		assert.GreaterOrEqual(t, fm.Span.Begin.Offset, quoteStart)
		assert.LessOrEqual(t, fm.Span.End.Offset, quoteStart+1+len(decoded))
	}
}

// TestMergeTranslatedReportsSubParseFailure confirms a failed
// sub-parse never leaks its diagnostics into the outer marker; callers
// fall back to a plain-string font mark instead.
func TestMergeTranslatedReportsSubParseFailure(t *testing.T) {
	outer := marker.New(reader.New("irrelevant"), version.Default)
	sub := selectorBridgeEngine(t)
	inner := RunSubParse(sub, "@z", version.Default)
	require.NotEmpty(t, inner.Diags)

	colMap := make([]pos.Position, len("@z")+1)
	ok := MergeTranslated(outer, inner, colMap)
	assert.False(t, ok)
	assert.Empty(t, outer.FontMarks)
}
