package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

func TestCommandsAcceptWellFormedLines(t *testing.T) {
	e := Build(nil)
	for _, line := range []string{
		"help",
		"help teleport",
		"list",
		"me waves",
		"tell @a hello there",
		"kill",
		"kill @e[type=minecraft:zombie]",
		"gamemode survival",
		"gamemode creative @a",
		"gamerule keepinventory true",
		"difficulty hard",
		"effect @a clear",
		"effect @p speed 30 2 true",
		"enchant @s sharpness 5",
		"give @p minecraft:diamond_sword 1",
		"clear",
		"clear @a minecraft:stick",
		"fill ~ ~ ~ ~5 ~5 ~5 minecraft:air",
		"clone ~ ~ ~ ~5 ~5 ~5 ~10 ~10 ~10",
		"locate stronghold",
		"function my_pack/my_function",
		"ability @s mayfly true",
		"alwaysday true",
		"daylock false",
		"camerashake add @a 1 2 positional",
		"camerashake stop @a",
		"clearspawnpoint @a",
		"damage @e 5 fire",
		"deop Steve",
		"permission @a member",
		"dialogue open my:npc @a my_scene",
		"connect play.example.com",
		"event entity @e my:event",
		"fog @a push my:fog userkey",
		"immutableworld true",
		"inputpermission set @a movement enabled",
		"kick @a being silly",
		"loot spawn ~ ~ ~ loot my:table",
		"tellraw @a {\"rawtext\":[{\"text\":\"hi\"}]}",
		"say hello world",
		"tp @a @p",
		"teleport @a ~ ~10 ~",
		"setblock ~ ~ ~ minecraft:stone",
		"summon minecraft:cow",
		"summon minecraft:cow ~ ~ ~ minecraft:entity_born",
		"title @a clear",
		"title @a title \"Welcome\"",
		"title @a times 10 70 20",
		"scoreboard objectives add my_obj dummy",
		"scoreboard players set @a my_obj 5",
		"time set day",
		"time add 100",
		"weather clear",
		"weather rain 1000",
		"playsound random.levelup @a",
		"xp add 10 @a",
		"experience set 5L @p",
	} {
		m := e.ParseLine(line, version.Default)
		assert.Emptyf(t, m.Diags, "expected %q to parse cleanly, got %v", line, m.Diags)
	}
}

func TestCommandsRejectTrailingGarbage(t *testing.T) {
	e := Build(nil)
	for _, line := range []string{
		"gamemode survival @a extra_garbage_here",
		"title @a clear extra",
		"scoreboard objectives add my_obj dummy Display extra",
		"time set day extra",
		"list extra",
	} {
		m := e.ParseLine(line, version.Default)
		require.NotEmptyf(t, m.Diags, "expected %q to be rejected for trailing garbage", line)
	}
}

func TestCommandsRejectUnknownKeyword(t *testing.T) {
	e := Build(nil)
	m := e.ParseLine("notacommand @a", version.Default)
	require.NotEmpty(t, m.Diags)
}

func TestCommandsEnforceSemanticRanges(t *testing.T) {
	e := Build(nil)
	m := e.ParseLine("give @p minecraft:diamond_sword 99999", version.Default)
	require.Len(t, m.Diags, 1)
	assert.Equal(t, "error.semantic.number.out_of_range", m.Diags[0].MessageKey)
}

func TestCommandFontsPaintKeywordAsCommand(t *testing.T) {
	e := Build(nil)
	m := e.ParseLine("kill", version.Default)
	require.NotEmpty(t, m.FontMarks)
	assert.Equal(t, 0, m.FontMarks[0].Span.Begin.Offset)
	assert.Equal(t, 4, m.FontMarks[0].Span.End.Offset)
	assert.Equal(t, font.Command, m.FontMarks[0].Font)
}
