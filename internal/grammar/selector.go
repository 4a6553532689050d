package grammar

import (
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
)

// Selector matches a target: either a selector "@s", "@p", "@a", "@e",
// "@r", optionally followed by a bracketed, comma-separated argument
// list, or a bare player name (any word not starting with '@').
// It returns the node a preceding branch should target and the node a
// following branch should continue from.
func (g *G) Selector() (entry, exit *Builder) {
	at := g.Char('@').ArgumentEnd(false)
	kind := g.Enumerate("s", "p", "a", "e", "r").Font(font.Target)
	at.Branch(kind, IsClose())

	exit = g.a.Compressed("selector_exit").ArgumentEnd(true)
	kind.Branch(exit, IsClose()) // bare "@s" with no argument list

	argsOpen := g.Char('[').ArgumentEnd(false)
	kind.Branch(argsOpen, IsClose())

	argEntry, argExit := g.selectorArg()
	se, sx := g.Series(func() (*Builder, *Builder) { return argEntry, argExit }, ',', true)
	argsOpen.Branch(se, IsClose())

	argsClose := g.Char(']')
	sx.Branch(argsClose, IsClose())
	argsClose.Branch(exit, IsClose())

	name := g.a.Leaf("selector_name", func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		if w := r.ReadWord(); w != "" && w[0] != '@' {
			return w, nil
		}
		r.SetLocation(start)
		return nil, Expect("error.expect.selector", nil)
	}, nil).Font(font.Target).ArgumentEnd(true)
	name.Branch(exit, IsClose())

	entry = g.a.Compressed("selector_entry")
	entry.Branch(at, IsClose())
	entry.Branch(name, IsClose())
	return entry, exit
}

// selectorArg is one key=value pair inside a selector's bracketed
// argument list.
func (g *G) selectorArg() (entry, exit *Builder) {
	entry = g.a.Compressed("selector_arg")
	exit = g.a.Compressed("selector_arg_exit")

	add := func(key string, valEntry, valExit *Builder) {
		kw := g.Keyword(key).ArgumentEnd(false)
		eqSign := g.Char('=').ArgumentEnd(false)
		kw.Branch(eqSign, IsClose())
		eqSign.Branch(valEntry, IsClose())
		valExit.Branch(exit, IsClose())
		entry.Branch(kw, IsClose())
	}

	typeE, typeX := g.Invertable(func() *Builder { return g.NamespacedIdFrom("entity") })
	add("type", typeE, typeX)

	nameBang := g.Char('!').ArgumentEnd(false)
	nameQW, nameQWX := g.QuotedStringOrWord()
	nameBang.Branch(nameQW, IsClose())
	nameEntry := g.a.Compressed("name_invertable_entry")
	nameEntry.Branch(nameBang, IsClose())
	nameEntry.Branch(nameQW, IsClose())
	add("name", nameEntry, nameQWX)

	tagE, tagX := g.Invertable(func() *Builder { return g.Word() })
	add("tag", tagE, tagX)

	familyE, familyX := g.Invertable(func() *Builder { return g.Word() })
	add("family", familyE, familyX)

	for _, k := range []string{"x", "y", "z", "dx", "dy", "dz", "r", "rm", "rx", "rxm", "ry", "rym"} {
		f := g.Float()
		add(k, f, f)
	}
	for _, k := range []string{"l", "lm", "c"} {
		n := g.Integer()
		add(k, n, n)
	}

	mE, mX := g.Invertable(func() *Builder { return g.GameMode() })
	add("m", mE, mX)

	scoresE, scoresX := g.scoresBlock()
	add("scores", scoresE, scoresX)

	permE, permX := g.hasPermissionBlock()
	add("haspermission", permE, permX)

	itemE, itemX := g.hasItemBlock()
	add("hasitem", itemE, itemX)

	return entry, exit
}

func (g *G) scoresBlock() (entry, exit *Builder) {
	open := g.Char('{').ArgumentEnd(false)
	se, sx := g.Series(func() (*Builder, *Builder) {
		obj := g.Word().Note("note.objective").ArgumentEnd(false)
		eqSign := g.Char('=').ArgumentEnd(false)
		obj.Branch(eqSign, IsClose())
		rng := g.IntRange()
		eqSign.Branch(rng, IsClose())
		return obj, rng
	}, ',', false)
	open.Branch(se, IsClose())
	closeBrace := g.Char('}')
	sx.Branch(closeBrace, IsClose())
	return open, closeBrace
}

func (g *G) hasPermissionBlock() (entry, exit *Builder) {
	open := g.Char('{').ArgumentEnd(false)
	se, sx := g.Series(func() (*Builder, *Builder) {
		name := g.Word().Note("note.permission_name").ArgumentEnd(false)
		eqSign := g.Char('=').ArgumentEnd(false)
		name.Branch(eqSign, IsClose())
		val := g.PermissionState()
		eqSign.Branch(val, IsClose())
		return name, val
	}, ',', false)
	open.Branch(se, IsClose())
	closeBrace := g.Char('}')
	sx.Branch(closeBrace, IsClose())
	return open, closeBrace
}

func (g *G) hasItemBlock() (entry, exit *Builder) {
	open := g.Char('{').ArgumentEnd(false)
	fieldEntry := g.a.Compressed("hasitem_field")
	fieldExit := g.a.Compressed("hasitem_field_exit")

	add := func(key string, val *Builder) {
		kw := g.Keyword(key).ArgumentEnd(false)
		eqSign := g.Char('=').ArgumentEnd(false)
		kw.Branch(eqSign, IsClose())
		eqSign.Branch(val, IsClose())
		val.Branch(fieldExit, IsClose())
		fieldEntry.Branch(kw, IsClose())
	}
	add("item", g.NamespacedIdFrom("item"))
	add("data", g.Integer())
	add("quantity", g.IntRange())
	add("location", g.Word().Note("note.slot"))

	se, sx := g.Series(func() (*Builder, *Builder) { return fieldEntry, fieldExit }, ',', false)
	open.Branch(se, IsClose())
	closeBrace := g.Char('}')
	sx.Branch(closeBrace, IsClose())
	return open, closeBrace
}
