package grammar

import "github.com/mccmdhl/mccmdhl2/internal/font"

// executeSubtree builds the chain of /execute subcommands (as, at,
// positioned, rotated, align, facing, in, anchored, if, unless), each
// optional and repeatable in any order, terminated by "run <command>"
// which tail-recurses into cmdRoot — the same dispatcher entry every
// other command hangs off, including execute itself.
func (g *G) executeSubtree(cmdRoot *Builder) (entry *Builder) {
	entry = g.a.Compressed("execute_chain")

	runKw := g.Keyword("run")
	runKw.Branch(cmdRoot)
	entry.Branch(runKw, IsClose())

	addSub := func(name string, argEntry, argExit *Builder) {
		kw := g.Keyword(name)
		kw.Branch(argEntry)
		argExit.Branch(entry)
		entry.Branch(kw, IsClose())
	}

	asE, asX := g.Selector()
	addSub("as", asE, asX)

	atE, atX := g.Selector()
	addSub("at", atE, atX)

	posE, posX := g.Pos3D()
	addSub("positioned", posE, posX)

	rotE, rotX := g.YawPitch()
	addSub("rotated", rotE, rotX)

	align := g.Swizzle()
	addSub("align", align, align)

	facE, facX := g.Pos3D()
	addSub("facing", facE, facX)

	dim := g.Enumerate("overworld", "nether", "the_end").Note("note.dimension")
	addSub("in", dim, dim)

	anchor := g.Enumerate("eyes", "feet")
	addSub("anchored", anchor, anchor)

	for _, kind := range []string{"if", "unless"} {
		condEntry, condExit := g.executeCondition()
		addSub(kind, condEntry, condExit)
	}

	return entry
}

// executeCondition matches the argument of an "if"/"unless" clause:
// "entity <selector>", "block <pos3d> <blockspec>" or a scoreboard
// comparison, either "score <target> <objective> matches <range>" or
// "score <target> <objective> <op> score <target2> <objective2>".
func (g *G) executeCondition() (entry, exit *Builder) {
	entry = g.a.Compressed("execute_cond")
	exit = g.a.Compressed("execute_cond_exit").ArgumentEnd(true)

	entityKw := g.Keyword("entity")
	selE, selX := g.Selector()
	entityKw.Branch(selE)
	selX.Branch(exit, IsClose())
	entry.Branch(entityKw, IsClose())

	blockKw := g.Keyword("block")
	posE, posX := g.Pos3D()
	blockKw.Branch(posE)
	bsE, bsX := g.BlockSpec()
	posX.Branch(bsE)
	bsX.Branch(exit, IsClose())
	entry.Branch(blockKw, IsClose())

	scoreKw := g.Keyword("score")
	scoreTgtE, scoreTgtX := g.Selector()
	scoreKw.Branch(scoreTgtE)
	scoreObj := g.Word().Note("note.objective").Font(font.Scoreboard)
	scoreTgtX.Branch(scoreObj)
	entry.Branch(scoreKw, IsClose())

	matchesKw := g.Keyword("matches")
	rng := g.IntRange()
	matchesKw.Branch(rng)
	rng.Branch(exit, IsClose())
	scoreObj.Branch(matchesKw)

	op := g.CharsEnumerate("<=", ">=", "=", "<", ">").ArgumentEnd(true)
	scoreObj.Branch(op)
	score2Kw := g.Keyword("score")
	op.Branch(score2Kw)
	score2TgtE, score2TgtX := g.Selector()
	score2Kw.Branch(score2TgtE)
	score2Obj := g.Word().Note("note.objective").Font(font.Scoreboard)
	score2TgtX.Branch(score2Obj)
	score2Obj.Branch(exit, IsClose())

	return entry, exit
}
