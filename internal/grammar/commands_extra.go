package grammar

// buildCommandsExtra wires the commands that the original grammar did
// not cover but that a realistic Bedrock command-line implementation
// needs: say, tp/teleport, setblock, summon, title, scoreboard, time,
// weather, playsound and xp/experience. Kept separate from
// buildCommands to keep the grounding boundary visible between what
// came directly from the source grammar and what was added to round
// out coverage.
func (g *G) buildCommandsExtra(root, eol *Builder) {
	// say <message>
	sayArg := g.BareText()
	g.registerCommand(root, eol, "say", sayArg, sayArg)

	// tp/teleport <destination>|<target> <destination>
	for _, alias := range []string{"tp", "teleport"} {
		destE, destX := g.teleportDestination()
		g.registerCommand(root, eol, alias, destE, destX)

		tgtE, tgtX := g.Selector()
		dest2E, dest2X := g.teleportDestination()
		tgtX.Branch(dest2E)
		g.registerCommand(root, eol, alias, tgtE, dest2X)
	}

	// setblock <pos> <block> [mode]
	posE, posX := g.Pos3D()
	blockE, blockX := g.BlockSpec()
	posX.Branch(blockE)
	mode := g.Enumerate("destroy", "keep", "replace")
	blockX.Branch(mode)
	setblockExit := g.a.Compressed("setblock_exit")
	blockX.Branch(setblockExit, IsClose())
	mode.Branch(setblockExit, IsClose())
	g.registerCommand(root, eol, "setblock", posE, setblockExit)

	// summon <entity> [pos] [event] [nameTag]
	entId := g.NamespacedIdFrom("entity")
	summonPosE, summonPosX := g.Pos3D()
	entId.Branch(summonPosE)
	event := g.Word().Note("note.spawn_event")
	summonPosX.Branch(event)
	nameTagE, nameTagX := g.QuotedStringOrWord()
	event.Branch(nameTagE)
	summonExit := g.a.Compressed("summon_exit")
	entId.Branch(summonExit, IsClose())
	summonPosX.Branch(summonExit, IsClose())
	event.Branch(summonExit, IsClose())
	nameTagX.Branch(summonExit, IsClose())
	g.registerCommand(root, eol, "summon", entId, summonExit)

	// title <target> <clear|reset|title <text>|subtitle <text>|actionbar <text>|times <fadeIn> <stay> <fadeOut>>
	titleTgtE, titleTgtX := g.Selector()
	titleActionE, titleActionX := g.titleAction()
	titleTgtX.Branch(titleActionE)
	g.registerCommand(root, eol, "title", titleTgtE, titleActionX)

	// scoreboard objectives add/remove/list, players set/add/remove/reset
	scbE, scbX := g.scoreboardSubtree()
	g.registerCommand(root, eol, "scoreboard", scbE, scbX)

	// time set/add/query <value>
	timeE, timeX := g.timeSubtree()
	g.registerCommand(root, eol, "time", timeE, timeX)

	// weather clear/rain/thunder [duration]
	weatherKind := g.Enumerate("clear", "rain", "thunder")
	weatherDuration := g.Integer(Min(0))
	weatherKind.Branch(weatherDuration)
	weatherExit := g.a.Compressed("weather_exit")
	weatherKind.Branch(weatherExit, IsClose())
	weatherDuration.Branch(weatherExit, IsClose())
	g.registerCommand(root, eol, "weather", weatherKind, weatherExit)

	// playsound <sound> <target> [pos] [volume] [pitch] [minVolume]
	sound := g.Word().Note("note.sound_id")
	psTgtE, psTgtX := g.Selector()
	sound.Branch(psTgtE)
	psPosE, psPosX := g.Pos3D()
	psTgtX.Branch(psPosE)
	volume := g.Float()
	psPosX.Branch(volume)
	pitch := g.Float()
	volume.Branch(pitch)
	minVolume := g.Float()
	pitch.Branch(minVolume)
	psExit := g.a.Compressed("playsound_exit")
	psTgtX.Branch(psExit, IsClose())
	psPosX.Branch(psExit, IsClose())
	volume.Branch(psExit, IsClose())
	pitch.Branch(psExit, IsClose())
	minVolume.Branch(psExit, IsClose())
	g.registerCommand(root, eol, "playsound", sound, psExit)

	// xp/experience add|set|query <amount>[L] <target>
	for _, alias := range []string{"xp", "experience"} {
		xpKind := g.Enumerate("add", "set", "query")
		xpAmount := g.Integer().Note("note.xp_amount")
		xpKind.Branch(xpAmount)
		xpLevels := g.Chars("lL").ArgumentEnd(true)
		xpAmount.Branch(xpLevels, IsClose())
		xpTgtE, xpTgtX := g.Selector()
		xpAmount.Branch(xpTgtE)
		xpLevels.Branch(xpTgtE)
		xpExit := g.a.Compressed("xp_exit")
		xpTgtX.Branch(xpExit, IsClose())
		g.registerCommand(root, eol, alias, xpKind, xpExit)
	}
}

// teleportDestination is either a bare Pos3D or a target selector,
// converging on a shared exit.
func (g *G) teleportDestination() (entry, exit *Builder) {
	exit = g.a.Compressed("tp_dest_exit")
	posE, posX := g.Pos3D()
	posX.Branch(exit, IsClose())
	selE, selX := g.Selector()
	selX.Branch(exit, IsClose())
	entry = g.a.Compressed("tp_dest_entry")
	entry.Branch(posE, IsClose())
	entry.Branch(selE, IsClose())
	return entry, exit
}

func (g *G) titleAction() (entry, exit *Builder) {
	entry = g.a.Compressed("title_action")
	exit = g.a.Compressed("title_action_exit")

	clearKw := g.Keyword("clear")
	resetKw := g.Keyword("reset")
	clearKw.Branch(exit, IsClose())
	resetKw.Branch(exit, IsClose())
	entry.Branch(clearKw, IsClose())
	entry.Branch(resetKw, IsClose())

	for _, kind := range []string{"title", "subtitle", "actionbar"} {
		kw := g.Keyword(kind)
		text := g.BareText()
		kw.Branch(text)
		text.Branch(exit, IsClose())
		entry.Branch(kw, IsClose())
	}

	timesKw := g.Keyword("times")
	fadeIn := g.Integer(Min(0))
	stay := g.Integer(Min(0))
	fadeOut := g.Integer(Min(0))
	timesKw.Branch(fadeIn)
	fadeIn.Branch(stay)
	stay.Branch(fadeOut)
	fadeOut.Branch(exit, IsClose())
	entry.Branch(timesKw, IsClose())

	return entry, exit
}

func (g *G) scoreboardSubtree() (entry, exit *Builder) {
	entry = g.a.Compressed("scoreboard")
	exit = g.a.Compressed("scoreboard_exit")

	objectivesKw := g.Keyword("objectives")
	objAddKw := g.Keyword("add")
	objName := g.Word().Note("note.objective")
	objCriteria := g.Word().Note("note.criteria")
	objDisplayE, objDisplayX := g.QuotedStringOrWord()
	objAddKw.Branch(objName)
	objName.Branch(objCriteria)
	objCriteria.Branch(objDisplayE)
	objCriteria.Branch(exit, IsClose())
	objDisplayX.Branch(exit, IsClose())

	objRemoveKw := g.Keyword("remove")
	objRemoveName := g.Word().Note("note.objective")
	objRemoveKw.Branch(objRemoveName)
	objRemoveName.Branch(exit, IsClose())

	objListKw := g.Keyword("list")
	objListKw.Branch(exit, IsClose())

	objectivesKw.Branch(objAddKw)
	objectivesKw.Branch(objRemoveKw)
	objectivesKw.Branch(objListKw)
	entry.Branch(objectivesKw, IsClose())

	playersKw := g.Keyword("players")
	playersAction := g.Enumerate("set", "add", "remove", "reset")
	playersTgtE, playersTgtX := g.Selector()
	playersAction.Branch(playersTgtE)
	playersObj := g.Word().Note("note.objective")
	playersTgtX.Branch(playersObj)
	playersScore := g.Integer()
	playersObj.Branch(playersScore)
	playersObj.Branch(exit, IsClose())
	playersScore.Branch(exit, IsClose())
	playersKw.Branch(playersAction)
	entry.Branch(playersKw, IsClose())

	return entry, exit
}

func (g *G) timeSubtree() (entry, exit *Builder) {
	entry = g.a.Compressed("time")
	exit = g.a.Compressed("time_exit")

	setKw := g.Keyword("set")
	setVal := g.a.Compressed("time_set_value")
	namedTime := g.Enumerate("day", "night", "noon", "midnight", "sunrise", "sunset")
	numericTime := g.Integer(Min(0))
	setVal.Branch(namedTime, IsClose())
	setVal.Branch(numericTime, IsClose())
	namedTime.Branch(exit, IsClose())
	numericTime.Branch(exit, IsClose())
	setKw.Branch(setVal)

	addKw := g.Keyword("add")
	addVal := g.Integer(Min(0))
	addKw.Branch(addVal)
	addVal.Branch(exit, IsClose())

	queryKw := g.Keyword("query")
	queryVal := g.Enumerate("daytime", "gametime", "day")
	queryKw.Branch(queryVal)
	queryVal.Branch(exit, IsClose())

	entry.Branch(setKw, IsClose())
	entry.Branch(addKw, IsClose())
	entry.Branch(queryKw, IsClose())
	return entry, exit
}
