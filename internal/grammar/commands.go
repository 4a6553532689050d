package grammar

import (
	"github.com/mccmdhl/mccmdhl2/internal/font"
)

// registerCommand wires a command keyword onto root: name is the
// leading keyword (painted Command rather than Keyword), argEntry/
// argExit bracket whatever arguments follow it. A nil argEntry means
// the command takes no arguments at all.
func (g *G) registerCommand(root *Builder, eol *Builder, name string, argEntry, argExit *Builder) {
	kw := g.Keyword(name).Font(font.Command)
	if argEntry == nil {
		kw.FinishWith(eol)
	} else {
		kw.Branch(argEntry)
		argExit.FinishWith(eol)
	}
	root.Branch(kw, IsClose())
}

// buildCommands wires the commands grounded directly on the original
// grammar's node definitions, plus me, tell/msg/w, reload, op and
// permission, onto root, each one finishing at eol.
func (g *G) buildCommands(root, eol *Builder) {
	// help [page|command]
	g.registerCommand(root, eol, "help", nil, nil)
	helpArg := g.Word().Note("note.help_topic")
	g.registerCommand(root, eol, "help", helpArg, helpArg)

	// list
	g.registerCommand(root, eol, "list", nil, nil)

	// me <message>
	meArg := g.BareText()
	g.registerCommand(root, eol, "me", meArg, meArg)

	// tell/msg/w <target> <message>
	for _, alias := range []string{"tell", "msg", "w"} {
		tgtE, tgtX := g.Selector()
		msgArg := g.BareText()
		tgtX.Branch(msgArg)
		g.registerCommand(root, eol, alias, tgtE, msgArg)
	}

	// kill [target]
	g.registerCommand(root, eol, "kill", nil, nil)
	killE, killX := g.Selector()
	g.registerCommand(root, eol, "kill", killE, killX)

	// gamemode <mode> [target]
	gm := g.GameMode()
	gmTgtE, gmTgtX := g.Selector()
	gm.Branch(gmTgtE)
	gmExit := g.a.Compressed("gamemode_exit")
	gm.Branch(gmExit, IsClose())
	gmTgtX.Branch(gmExit, IsClose())
	g.registerCommand(root, eol, "gamemode", gm, gmExit)

	// gamerule <rule> <value>
	ruleKw := g.Enumerate(
		"commandblockoutput", "dodaylightcycle", "dofiretick", "domobspawning",
		"keepinventory", "mobgriefing", "pvp", "showcoordinates", "tntexplodes").
		Note("note.gamerule")
	boolVal := g.Boolean()
	intVal := g.Integer()
	valEntry := g.a.Compressed("gamerule_value")
	valEntry.Branch(boolVal, IsClose())
	valEntry.Branch(intVal, IsClose())
	valExit := g.a.Compressed("gamerule_value_exit")
	boolVal.Branch(valExit, IsClose())
	intVal.Branch(valExit, IsClose())
	ruleKw.Branch(valEntry)
	g.registerCommand(root, eol, "gamerule", ruleKw, valExit)

	// difficulty <value>
	diff := g.Enumerate("peaceful", "easy", "normal", "hard", "0", "1", "2", "3")
	g.registerCommand(root, eol, "difficulty", diff, diff)

	// effect <target> clear
	// effect <target> <effect> [seconds] [amplifier] [hideParticles]
	effTgtE, effTgtX := g.Selector()
	clearKw := g.Keyword("clear")
	effTgtX.Branch(clearKw)
	effName := g.Enumerate(
		"speed", "slowness", "haste", "mining_fatigue", "strength", "instant_health",
		"instant_damage", "jump_boost", "nausea", "regeneration", "resistance",
		"fire_resistance", "water_breathing", "invisibility", "blindness",
		"night_vision", "hunger", "weakness", "poison", "wither", "health_boost",
		"absorption", "saturation", "levitation").Note("note.effect")
	effTgtX.Branch(effName)
	effSeconds := g.Integer(Min(0), Max(1000000))
	effName.Branch(effSeconds)
	effAmplifier := g.Integer(Min(0), Max(255))
	effSeconds.Branch(effAmplifier)
	effHide := g.Boolean()
	effAmplifier.Branch(effHide)
	effExit := g.a.Compressed("effect_exit")
	clearKw.Branch(effExit, IsClose())
	effName.Branch(effExit, IsClose())
	effSeconds.Branch(effExit, IsClose())
	effAmplifier.Branch(effExit, IsClose())
	effHide.Branch(effExit, IsClose())
	g.registerCommand(root, eol, "effect", effTgtE, effExit)

	// enchant <target> <enchantment> [level]
	enchTgtE, enchTgtX := g.Selector()
	enchName := g.Word().Note("note.enchantment")
	enchTgtX.Branch(enchName)
	enchLevel := g.Integer(Min(1), Max(255))
	enchName.Branch(enchLevel)
	enchExit := g.a.Compressed("enchant_exit")
	enchName.Branch(enchExit, IsClose())
	enchLevel.Branch(enchExit, IsClose())
	g.registerCommand(root, eol, "enchant", enchTgtE, enchExit)

	// give <target> <item> [amount] [data] [components]
	giveTgtE, giveTgtX := g.Selector()
	giveItem := g.NamespacedIdFrom("item")
	giveTgtX.Branch(giveItem)
	giveAmount := g.Integer(Min(1), Max(32767))
	giveItem.Branch(giveAmount)
	giveData := g.Integer(Min(0), Max(32767))
	giveAmount.Branch(giveData)
	giveComponentsE, giveComponentsX := g.ItemComponents()
	giveData.Branch(giveComponentsE)
	giveExit := g.a.Compressed("give_exit")
	giveItem.Branch(giveExit, IsClose())
	giveAmount.Branch(giveExit, IsClose())
	giveData.Branch(giveExit, IsClose())
	giveComponentsX.Branch(giveExit, IsClose())
	g.registerCommand(root, eol, "give", giveTgtE, giveExit)

	// clear [target] [item] [data] [maxCount]
	g.registerCommand(root, eol, "clear", nil, nil)
	clearTgtE, clearTgtX := g.Selector()
	clearItem := g.NamespacedIdFrom("item")
	clearTgtX.Branch(clearItem)
	clearData := g.Integer(Min(-1), Max(32767))
	clearItem.Branch(clearData)
	clearMax := g.Integer(Min(-1), Max(2147483647))
	clearData.Branch(clearMax)
	clearExit := g.a.Compressed("clear_exit")
	clearTgtX.Branch(clearExit, IsClose())
	clearItem.Branch(clearExit, IsClose())
	clearData.Branch(clearExit, IsClose())
	clearMax.Branch(clearExit, IsClose())
	g.registerCommand(root, eol, "clear", clearTgtE, clearExit)

	// fill <from> <to> <block> [destroy|hollow|keep|outline|replace]
	// (no filter block is parsed after "replace")
	fromE, fromX := g.Pos3D()
	toE, toX := g.Pos3D()
	fromX.Branch(toE)
	fillBlockE, fillBlockX := g.BlockSpec()
	toX.Branch(fillBlockE)
	fillMode := g.Enumerate("destroy", "hollow", "keep", "outline", "replace")
	fillBlockX.Branch(fillMode)
	fillExit := g.a.Compressed("fill_exit")
	fillBlockX.Branch(fillExit, IsClose())
	fillMode.Branch(fillExit, IsClose())
	g.registerCommand(root, eol, "fill", fromE, fillExit)

	// clone <begin> <end> <destination> [maskMode] [cloneMode]
	cBeginE, cBeginX := g.Pos3D()
	cEndE, cEndX := g.Pos3D()
	cBeginX.Branch(cEndE)
	cDestE, cDestX := g.Pos3D()
	cEndX.Branch(cDestE)
	cMask := g.Enumerate("replace", "masked", "filtered")
	cDestX.Branch(cMask)
	cMode := g.Enumerate("force", "move", "normal")
	cMask.Branch(cMode)
	cExit := g.a.Compressed("clone_exit")
	cDestX.Branch(cExit, IsClose())
	cMask.Branch(cExit, IsClose())
	cMode.Branch(cExit, IsClose())
	g.registerCommand(root, eol, "clone", cBeginE, cExit)

	// setblock is in commands_extra.go (supplemented feature).

	// locate <feature>
	locateArg := g.Word().Note("note.feature")
	g.registerCommand(root, eol, "locate", locateArg, locateArg)

	// function <name>
	funcArg := g.Word().Note("note.function_name")
	g.registerCommand(root, eol, "function", funcArg, funcArg)

	// reload
	g.registerCommand(root, eol, "reload", nil, nil)

	// ability <target> <ability> [value]
	abilTgtE, abilTgtX := g.Selector()
	abilName := g.Enumerate("worldbuilder", "mayfly", "mute")
	abilTgtX.Branch(abilName)
	abilVal := g.Boolean()
	abilName.Branch(abilVal)
	abilExit := g.a.Compressed("ability_exit")
	abilName.Branch(abilExit, IsClose())
	abilVal.Branch(abilExit, IsClose())
	g.registerCommand(root, eol, "ability", abilTgtE, abilExit)

	// alwaysday [value]
	g.registerCommand(root, eol, "alwaysday", nil, nil)
	alwaysdayVal := g.Boolean()
	g.registerCommand(root, eol, "alwaysday", alwaysdayVal, alwaysdayVal)

	// camerashake add <target> [intensity] [seconds] [shakeType]
	camTgtE, camTgtX := g.Selector()
	camAddKw := g.Keyword("add")
	camAddKw.Branch(camTgtE)
	camIntensity := g.Float()
	camTgtX.Branch(camIntensity)
	camSeconds := g.Float()
	camIntensity.Branch(camSeconds)
	camType := g.Enumerate("positional", "rotational")
	camSeconds.Branch(camType)
	camStopKw := g.Keyword("stop")
	camStopTgtE, camStopTgtX := g.Selector()
	camStopKw.Branch(camStopTgtE)
	camEntry := g.a.Compressed("camerashake_entry")
	camEntry.Branch(camAddKw, IsClose())
	camEntry.Branch(camStopKw, IsClose())
	camExit := g.a.Compressed("camerashake_exit")
	camTgtX.Branch(camExit, IsClose())
	camIntensity.Branch(camExit, IsClose())
	camSeconds.Branch(camExit, IsClose())
	camType.Branch(camExit, IsClose())
	camStopTgtX.Branch(camExit, IsClose())
	g.registerCommand(root, eol, "camerashake", camEntry, camExit)

	// clearspawnpoint [target]
	g.registerCommand(root, eol, "clearspawnpoint", nil, nil)
	cspE, cspX := g.Selector()
	g.registerCommand(root, eol, "clearspawnpoint", cspE, cspX)

	// damage <target> <amount> [cause] [entity <selector>]
	dmgTgtE, dmgTgtX := g.Selector()
	dmgAmount := g.Integer(Min(0))
	dmgTgtX.Branch(dmgAmount)
	dmgCause := g.Enumerate("fire", "fall", "magic", "lava", "drowning", "contact", "none").Note("note.damage_cause")
	dmgAmount.Branch(dmgCause)
	dmgEntKw := g.Keyword("entity")
	dmgEntSelE, dmgEntSelX := g.Selector()
	dmgEntKw.Branch(dmgEntSelE)
	dmgCause.Branch(dmgEntKw)
	dmgExit := g.a.Compressed("damage_exit")
	dmgAmount.Branch(dmgExit, IsClose())
	dmgCause.Branch(dmgExit, IsClose())
	dmgEntSelX.Branch(dmgExit, IsClose())
	g.registerCommand(root, eol, "damage", dmgTgtE, dmgExit)

	// deop <target>
	deopArg := g.Word().Note("note.player_name")
	g.registerCommand(root, eol, "deop", deopArg, deopArg)

	// op <target>
	opArg := g.Word().Note("note.player_name")
	g.registerCommand(root, eol, "op", opArg, opArg)

	// permission <target> <state>
	permTgtE, permTgtX := g.Selector()
	permState := g.PermissionState()
	permTgtX.Branch(permState)
	g.registerCommand(root, eol, "permission", permTgtE, permState)

	// dialogue open <npc> <player> [sceneName]
	dlgTgtE, dlgTgtX := g.Selector()
	dlgOpenKw := g.Keyword("open")
	dlgOpenKw.Branch(dlgTgtE)
	dlgPlayerE, dlgPlayerX := g.Selector()
	dlgTgtX.Branch(dlgPlayerE)
	dlgScene := g.Word().Note("note.scene_name")
	dlgPlayerX.Branch(dlgScene)
	dlgExit := g.a.Compressed("dialogue_exit")
	dlgPlayerX.Branch(dlgExit, IsClose())
	dlgScene.Branch(dlgExit, IsClose())
	g.registerCommand(root, eol, "dialogue", dlgOpenKw, dlgExit)

	// execute (the tail-recursive command chain). executeSubtree
	// terminates itself by recursing back into root via "run", so it
	// cannot be wired through registerCommand's eol-finishing path.
	execKw := g.Keyword("execute").Font(font.Command)
	execChain := g.executeSubtree(root)
	execKw.Branch(execChain)
	root.Branch(execKw, IsClose())

	// daylock is alwaysday's alias.
	g.registerCommand(root, eol, "daylock", nil, nil)
	daylockVal := g.Boolean()
	g.registerCommand(root, eol, "daylock", daylockVal, daylockVal)

	// connect/wsserver <serverUri>
	for _, alias := range []string{"connect", "wsserver"} {
		uri := g.BareText().Note("note.server_uri")
		g.registerCommand(root, eol, alias, uri, uri)
	}

	// event entity <target> <event>
	evEntityKw := g.Keyword("entity")
	evTgtE, evTgtX := g.Selector()
	evEntityKw.Branch(evTgtE)
	evName := g.Word().Note("note.event_name")
	evTgtX.Branch(evName)
	g.registerCommand(root, eol, "event", evEntityKw, evName)

	// fog <target> push/pop/remove <fogId> [userProvidedId]
	fogTgtE, fogTgtX := g.Selector()
	fogOp := g.Enumerate("push", "pop", "remove")
	fogTgtX.Branch(fogOp)
	fogId := g.Word().Note("note.fog_id")
	fogOp.Branch(fogId)
	fogUserId := g.Word().Note("note.fog_user_id")
	fogId.Branch(fogUserId)
	fogExit := g.a.Compressed("fog_exit")
	fogId.Branch(fogExit, IsClose())
	fogUserId.Branch(fogExit, IsClose())
	g.registerCommand(root, eol, "fog", fogTgtE, fogExit)

	// immutableworld [value]
	g.registerCommand(root, eol, "immutableworld", nil, nil)
	immutableVal := g.Boolean()
	g.registerCommand(root, eol, "immutableworld", immutableVal, immutableVal)

	// inputpermission query/set <target> <permission> [state]
	ipAction := g.Enumerate("query", "set")
	ipTgtE, ipTgtX := g.Selector()
	ipAction.Branch(ipTgtE)
	ipPerm := g.Enumerate("camera", "movement").Note("note.input_permission")
	ipTgtX.Branch(ipPerm)
	ipState := g.Enumerate("enabled", "disabled")
	ipPerm.Branch(ipState)
	ipExit := g.a.Compressed("inputpermission_exit")
	ipPerm.Branch(ipExit, IsClose())
	ipState.Branch(ipExit, IsClose())
	g.registerCommand(root, eol, "inputpermission", ipAction, ipExit)

	// kick <target> [reason]
	kickTgtE, kickTgtX := g.Selector()
	kickReason := g.BareText()
	kickTgtX.Branch(kickReason)
	kickExit := g.a.Compressed("kick_exit")
	kickTgtX.Branch(kickExit, IsClose())
	kickReason.Branch(kickExit, IsClose())
	g.registerCommand(root, eol, "kick", kickTgtE, kickExit)

	// loot spawn/give <pos-or-target> loot <lootTable>
	lootDestKind := g.Enumerate("spawn", "give")
	lootPosE, lootPosX := g.Pos3D()
	lootTgtE, lootTgtX := g.Selector()
	lootDestExit := g.a.Compressed("loot_dest_exit").ArgumentEnd(true)
	lootPosX.Branch(lootDestExit, IsClose())
	lootTgtX.Branch(lootDestExit, IsClose())
	lootDestKind.Branch(lootPosE)
	lootDestKind.Branch(lootTgtE)
	lootKw := g.Keyword("loot")
	lootDestExit.Branch(lootKw)
	lootTable := g.Word().Note("note.loot_table")
	lootKw.Branch(lootTable)
	lootExit := g.a.Compressed("loot_exit")
	lootTable.Branch(lootExit, IsClose())
	g.registerCommand(root, eol, "loot", lootDestKind, lootExit)

	// tellraw <target> <rawtextJson>
	trTgtE, trTgtX := g.Selector()
	trJsonE, trJsonX := g.RawText()
	trTgtX.Branch(trJsonE)
	g.registerCommand(root, eol, "tellraw", trTgtE, trJsonX)
}
