package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func newBlockSpecEngine(t *testing.T) *Engine {
	t.Helper()
	g := NewG(nil)
	entry, exit := g.BlockSpec()
	return newEolEngine(g, entry, exit)
}

func TestBlockSpecBareId(t *testing.T) {
	e := newBlockSpecEngine(t)
	m := e.ParseLine("minecraft:stone", version.Default)
	assert.Empty(t, m.Diags)
}

func TestBlockSpecStateListOnNewVersions(t *testing.T) {
	e := newBlockSpecEngine(t)
	m := e.ParseLine(`minecraft:stone[stone_type="granite"]`, version.New(1, 19, 80))
	assert.Empty(t, m.Diags)
}

func TestBlockSpecStateListRejectedOnOldVersions(t *testing.T) {
	e := newBlockSpecEngine(t)
	m := e.ParseLine(`minecraft:stone[stone_type="granite"]`, version.New(1, 19, 70))
	require.NotEmpty(t, m.Diags)
}

func TestBlockSpecDataValueOnOldVersions(t *testing.T) {
	e := newBlockSpecEngine(t)
	m := e.ParseLine("minecraft:stone 3", version.New(1, 19, 70))
	assert.Empty(t, m.Diags)
}

func TestBlockSpecDataValueRejectedOnNewVersions(t *testing.T) {
	e := newBlockSpecEngine(t)
	m := e.ParseLine("minecraft:stone 3", version.New(1, 19, 80))
	require.NotEmpty(t, m.Diags)
}
