package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func TestExecuteAcceptsSubcommandChainsThenRun(t *testing.T) {
	e := Build(nil)
	for _, line := range []string{
		"execute as @a at @s run say hi",
		"execute as @a positioned 0 0 0 run kill",
		"execute if entity @e[type=minecraft:zombie] run say found one",
		"execute if block ~ ~ ~ minecraft:stone run say stone",
		"execute if score @s obj matches 1..5 run say hi",
		"execute unless score @a counter matches ..10 run say low",
		"execute if score @s a >= score @s b run say ge",
		"execute in overworld run time set day",
		"execute as @a at @a facing 0 0 0 rotated 0 0 run say facing",
		"execute unless entity @p run say nobody",
	} {
		m := e.ParseLine(line, version.Default)
		assert.Emptyf(t, m.Diags, "expected %q to parse cleanly, got %v", line, m.Diags)
	}
}

func TestExecuteNestsIntoItself(t *testing.T) {
	e := Build(nil)
	m := e.ParseLine("execute as @a run execute at @s run say nested", version.Default)
	assert.Empty(t, m.Diags)
}

func TestExecuteRejectsMissingRun(t *testing.T) {
	e := Build(nil)
	m := e.ParseLine("execute as @a", version.Default)
	require.NotEmpty(t, m.Diags)
}

func TestExecuteRejectsUnknownSubcommand(t *testing.T) {
	e := Build(nil)
	m := e.ParseLine("execute nonsense @a run say hi", version.Default)
	require.NotEmpty(t, m.Diags)
}
