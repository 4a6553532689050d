package grammar

import (
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

var v11980 = version.New(1, 19, 80)
var v11970 = version.New(1, 19, 70)

// BlockSpec matches a block id, followed either by a bracketed list of
// block-state key=value pairs (the >=1.19.80 form) or a single
// deprecated integer data value (the <=1.19.70 form).
func (g *G) BlockSpec() (entry, exit *Builder) {
	id := g.NamespacedIdFrom("block")
	exit = g.a.Compressed("blockspec_exit").ArgumentEnd(true)

	statesOpen := g.Char('[').ArgumentEnd(false)
	stateE, stateX := g.blockStatePair()
	se, sx := g.Series(func() (*Builder, *Builder) { return stateE, stateX }, ',', true)
	statesOpen.Branch(se, IsClose())
	statesClose := g.Char(']')
	sx.Branch(statesClose, IsClose())

	id.Branch(statesOpen, IsClose(), WithVersion(version.Ge(v11980)))
	statesClose.Branch(exit, WithVersion(version.Ge(v11980)))
	id.Branch(exit, IsClose(), WithVersion(version.Ge(v11980)))

	dataInt := g.Integer(Min(0), Max(65535)).Font(font.Numeric)
	id.Branch(dataInt, WithVersion(version.Le(v11970)))
	dataInt.Branch(exit, IsClose(), WithVersion(version.Le(v11970)))
	id.Branch(exit, IsClose(), WithVersion(version.Le(v11970)))

	return id, exit
}

// blockStatePair is one "key"="value" pair inside a block-state list,
// where value may be an integer, boolean or quoted string.
func (g *G) blockStatePair() (entry, exit *Builder) {
	key := g.Word().Note("note.block_state_key").ArgumentEnd(false)
	eqSign := g.Char('=').ArgumentEnd(false)
	key.Branch(eqSign, IsClose())

	exit = g.a.Compressed("block_state_value_exit")
	valEntry := g.a.Compressed("block_state_value_entry")
	intV := g.Integer()
	boolV := g.Boolean()
	strV := g.QuotedString()
	valEntry.Branch(intV, IsClose())
	valEntry.Branch(boolV, IsClose())
	valEntry.Branch(strV, IsClose())
	intV.Branch(exit, IsClose())
	boolV.Branch(exit, IsClose())
	strV.Branch(exit, IsClose())

	eqSign.Branch(valEntry, IsClose())
	return key, exit
}
