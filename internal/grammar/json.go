package grammar

import (
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// Json matches one JSON value: an object, array, string, number,
// boolean or null. It is memoized on g, so every call site (including
// Json's own recursive use inside object values and array elements)
// shares one subtree rather than rebuilding it. Spaces are skipped
// before a value and before an object key, not before ',', ':' or a
// closing bracket.
func (g *G) Json() (entry, exit *Builder) {
	if g.jsonEntry != nil {
		return g.jsonEntry, g.jsonExit
	}
	entry = g.jsonSpace("json_value")
	exit = g.a.Compressed("json_value_exit")
	g.jsonEntry, g.jsonExit = entry, exit

	str := g.QuotedString()
	str.Branch(exit, IsClose())
	entry.Branch(str, IsClose())

	num := g.a.Leaf("json_number", func(r *reader.Reader) (any, error) {
		f, err := r.ReadFloat(false)
		if err != nil {
			return nil, Expect("error.expect.json_number", nil)
		}
		return f, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.CharCheckRule(isFloatChar)}}
	}).Font(font.Numeric).ArgumentEnd(true)
	num.Branch(exit, IsClose())
	entry.Branch(num, IsClose())

	lit := g.CharsEnumerate("true", "false", "null").Font(font.Keyword)
	lit.Branch(exit, IsClose())
	entry.Branch(lit, IsClose())

	arrOpen := g.Char('[').ArgumentEnd(false)
	arrClose := g.Char(']')
	itemEntry, itemExit := g.Json()
	arrSe, arrSx := g.Series(func() (*Builder, *Builder) { return itemEntry, itemExit }, ',', true)
	arrOpen.Branch(arrSe, IsClose())
	arrSx.Branch(arrClose, IsClose())
	arrClose.Branch(exit, IsClose())
	entry.Branch(arrOpen, IsClose())

	objOpen := g.Char('{').ArgumentEnd(false)
	objClose := g.Char('}')
	kvE, kvX := g.jsonKeyValPair()
	objSe, objSx := g.Series(func() (*Builder, *Builder) { return kvE, kvX }, ',', true)
	objOpen.Branch(objSe, IsClose())
	objSx.Branch(objClose, IsClose())
	objClose.Branch(exit, IsClose())
	entry.Branch(objOpen, IsClose())

	return entry, exit
}

// jsonKeyValPair is one "key": value entry inside a JSON object.
func (g *G) jsonKeyValPair() (entry, exit *Builder) {
	space := g.jsonSpace("json_key_space")
	key := g.QuotedString().ArgumentEnd(false)
	space.Branch(key, IsClose())
	colon := g.Char(':').ArgumentEnd(false)
	key.Branch(colon, IsClose())
	valEntry, valExit := g.Json()
	colon.Branch(valEntry, IsClose())
	return space, valExit
}

// jsonSpace consumes any run of spaces ahead of a JSON value or key.
func (g *G) jsonSpace(name string) *Builder {
	return g.a.Leaf(name, func(r *reader.Reader) (any, error) {
		for r.Peek() == ' ' {
			r.Next()
		}
		return nil, nil
	}, nil)
}

// quotedKey matches a quoted JSON object key against a literal word,
// backtracking on any mismatch the way Keyword does for bare words.
func (g *G) quotedKey(word string) *Builder {
	return g.a.Leaf("json_key:"+word, func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		got, _, err := DecodeQuoted(r)
		if err != nil {
			r.SetLocation(start)
			return nil, Expect("error.expect.json_key", nil)
		}
		if got != word {
			r.SetLocation(start)
			return nil, Expect("error.expect.json_key", nil)
		}
		return word, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{Inserts: `"` + word + `"`, MatchRule: suggest.StrFindRule(word)}}
	}).Font(font.Meta).ArgumentEnd(false)
}

// RawText matches a rawtext value, "{"rawtext":[<component>,...]}",
// where each component is one of the four shapes Bedrock's rawtext
// resolver accepts. "selector" values and a "score" component's
// "name" are themselves quoted selectors, so their contents are
// sub-parsed and painted through QuotedStringAsSelector instead of
// the flat string treatment Json() gives every other string.
func (g *G) RawText() (entry, exit *Builder) {
	entry = g.a.Compressed("rawtext_root")
	exit = g.a.Compressed("rawtext_root_exit").ArgumentEnd(true)

	open := g.Char('{').ArgumentEnd(false)
	rawtextKey := g.quotedKey("rawtext").ArgumentEnd(false)
	colon := g.Char(':').ArgumentEnd(false)
	arrOpen := g.Char('[').ArgumentEnd(false)
	entry.Branch(open, IsClose())
	open.Branch(rawtextKey, IsClose())
	rawtextKey.Branch(colon, IsClose())
	colon.Branch(arrOpen, IsClose())

	compEntry, compExit := g.rawtextComponent()
	se, sx := g.Series(func() (*Builder, *Builder) { return compEntry, compExit }, ',', true)
	arrOpen.Branch(se, IsClose())

	arrClose := g.Char(']')
	sx.Branch(arrClose, IsClose())
	objClose := g.Char('}')
	arrClose.Branch(objClose, IsClose())
	objClose.Branch(exit, IsClose())

	return entry, exit
}

// rawtextComponent matches one "{"<field>": ...}" entry of a rawtext
// array: "text"/"translate" (plain strings, "translate" optionally
// paired with a "with" array of JSON substitution values), "score" (an
// object naming a target selector and an objective) or "selector" (a
// bare quoted selector).
func (g *G) rawtextComponent() (entry, exit *Builder) {
	entry = g.a.Compressed("rawtext_component")
	exit = g.a.Compressed("rawtext_component_exit")

	open := g.Char('{').ArgumentEnd(false)
	entry.Branch(open, IsClose())

	add := func(key string, valEntry, valExit *Builder) {
		k := g.quotedKey(key).ArgumentEnd(false)
		colon := g.Char(':').ArgumentEnd(false)
		k.Branch(colon, IsClose())
		colon.Branch(valEntry, IsClose())
		closeBrace := g.Char('}')
		valExit.Branch(closeBrace, IsClose())
		closeBrace.Branch(exit, IsClose())
		open.Branch(k, IsClose())
	}

	textVal := g.QuotedString()
	add("text", textVal, textVal)

	translateKw := g.quotedKey("translate").ArgumentEnd(false)
	translateColon := g.Char(':').ArgumentEnd(false)
	translateVal := g.QuotedString()
	translateKw.Branch(translateColon, IsClose())
	translateColon.Branch(translateVal, IsClose())
	open.Branch(translateKw, IsClose())

	withComma := g.Char(',').ArgumentEnd(false)
	withKey := g.quotedKey("with").ArgumentEnd(false)
	withColon := g.Char(':').ArgumentEnd(false)
	withArrOpen := g.Char('[').ArgumentEnd(false)
	withEntryE, withEntryX := g.Json()
	withSe, withSx := g.Series(func() (*Builder, *Builder) { return withEntryE, withEntryX }, ',', true)
	withArrClose := g.Char(']')
	translateVal.Branch(withComma, IsClose())
	withComma.Branch(withKey, IsClose())
	withKey.Branch(withColon, IsClose())
	withColon.Branch(withArrOpen, IsClose())
	withArrOpen.Branch(withSe, IsClose())
	withSx.Branch(withArrClose, IsClose())

	translateClose := g.Char('}')
	withArrClose.Branch(translateClose, IsClose())
	translateVal.Branch(translateClose, IsClose())
	translateClose.Branch(exit, IsClose())

	scoreEntry, scoreExit := g.rawtextScoreValue()
	add("score", scoreEntry, scoreExit)

	selVal := g.QuotedStringAsSelector()
	add("selector", selVal, selVal)

	return entry, exit
}

// rawtextScoreValue matches a "score" component's value object,
// "{"name":<selector>,"objective":<string>}"; "name" holds a quoted
// selector, sub-parsed the same way "selector" components are.
func (g *G) rawtextScoreValue() (entry, exit *Builder) {
	open := g.Char('{').ArgumentEnd(false)
	nameKey := g.quotedKey("name").ArgumentEnd(false)
	nameColon := g.Char(':').ArgumentEnd(false)
	nameVal := g.QuotedStringAsSelector()
	open.Branch(nameKey, IsClose())
	nameKey.Branch(nameColon, IsClose())
	nameColon.Branch(nameVal, IsClose())

	comma := g.Char(',').ArgumentEnd(false)
	objKey := g.quotedKey("objective").ArgumentEnd(false)
	objColon := g.Char(':').ArgumentEnd(false)
	objVal := g.QuotedString()
	nameVal.Branch(comma, IsClose())
	comma.Branch(objKey, IsClose())
	objKey.Branch(objColon, IsClose())
	objColon.Branch(objVal, IsClose())

	closeBrace := g.Char('}')
	objVal.Branch(closeBrace, IsClose())
	return open, closeBrace
}

// ItemComponents matches the JSON component map accepted by commands
// like "give" for item stack customisation.
func (g *G) ItemComponents() (entry, exit *Builder) {
	return g.Json()
}
