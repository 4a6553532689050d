package grammar

import (
	"strings"
	"sync"

	"github.com/mccmdhl/mccmdhl2/internal/diag"
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/idtable"
	"github.com/mccmdhl/mccmdhl2/internal/marker"
	"github.com/mccmdhl/mccmdhl2/internal/pos"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// G is the grammar-construction context: an Arena plus the primitive
// constructors every command definition is built from. A fresh G is
// created once, used to build the whole command tree, then frozen.
// idTable is consulted by NamespacedIdFrom for dynamic suggestions; a
// nil table degrades to "no catalogue" notes rather than failing.
type G struct {
	a   *Arena
	ids *idtable.IdTable

	// jsonEntry/jsonExit memoize Json()'s recursive value subtree: the
	// first call builds it, every call thereafter (including Json()'s
	// own recursive use for object values and array elements) returns
	// the same cached pair, which is what breaks what would otherwise
	// be infinite recursion at grammar-construction time.
	jsonEntry, jsonExit *Builder

	// selectorSubEngine memoizes the standalone engine QuotedStringAsSelector
	// sub-parses a decoded selector string with; built lazily (ParseLines
	// runs concurrently, hence the Once) in its own Arena, frozen
	// independently of g's, since a node's Subparsing function can't
	// reach into an arena that's still under construction.
	selectorSubEngineOnce sync.Once
	selectorSubEngine     *Engine
}

func NewG(ids *idtable.IdTable) *G { return &G{a: NewArena(), ids: ids} }

func (g *G) Arena() *Arena { return g.a }

// Char matches exactly one literal rune, with no word-boundary logic:
// used for punctuation such as ',', '=', '~', '^'.
func (g *G) Char(ch rune) *Builder {
	return g.a.Leaf("char:"+string(ch), func(r *reader.Reader) (any, error) {
		if r.Peek() != ch {
			return nil, Expect("error.expect.char", diag.Kwargs{"char": string(ch)})
		}
		r.Next()
		return string(ch), nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{Inserts: string(ch), MatchRule: suggest.CharRule(string(ch))}}
	}).Font(font.Meta)
}

// Chars matches exactly one rune out of set.
func (g *G) Chars(set string) *Builder {
	return g.a.Leaf("chars:"+set, func(r *reader.Reader) (any, error) {
		ch := r.Peek()
		if !strings.ContainsRune(set, ch) {
			return nil, Expect("error.expect.one_of_chars", diag.Kwargs{"set": set})
		}
		r.Next()
		return string(ch), nil
	}, func(version.Version) []suggest.Suggestion {
		out := make([]suggest.Suggestion, 0, len(set))
		for _, c := range set {
			out = append(out, suggest.Suggestion{Inserts: string(c), MatchRule: suggest.CharRule(string(c))})
		}
		return out
	}).Font(font.Meta)
}

// Keyword matches one exact, case-sensitive literal word (a whole
// ReadWord token, not a prefix), such as a command's subcommand name.
func (g *G) Keyword(word string) *Builder {
	return g.a.Leaf("keyword:"+word, func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		got := r.ReadWord()
		if got != word {
			r.SetLocation(start)
			return nil, Expect("error.expect.keyword", diag.Kwargs{"word": word})
		}
		return word, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{Inserts: word, MatchRule: suggest.StrFindRule(word)}}
	}).Font(font.Keyword).ArgumentEnd(true)
}

// Enumerate matches one of several keywords, each becoming its own
// branch target in spirit but collapsed into a single node since they
// share identical surrounding grammar; label carries the accepted
// word as the node's value.
func (g *G) Enumerate(words ...string) *Builder {
	return g.NotedEnumerate("", words...)
}

// NotedEnumerate is Enumerate with an explicit note key, used when the
// set of words needs a more specific description than the bare list
// (e.g. "gamemode" rather than "one of: survival, creative, ...").
func (g *G) NotedEnumerate(note string, words ...string) *Builder {
	b := g.a.Leaf("enum", func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		got := r.ReadWord()
		for _, w := range words {
			if got == w {
				return w, nil
			}
		}
		r.SetLocation(start)
		return nil, Expect("error.expect.one_of", diag.Kwargs{"words": words})
	}, func(version.Version) []suggest.Suggestion {
		out := make([]suggest.Suggestion, 0, len(words))
		for _, w := range words {
			out = append(out, suggest.Suggestion{Inserts: w, MatchRule: suggest.StrFindRule(w)})
		}
		return out
	}).Font(font.Keyword).ArgumentEnd(true)
	if note != "" {
		b.Note(note)
	}
	return b
}

type intBounds struct {
	hasMin, hasMax bool
	min, max       int64
}

// IntOpt configures Integer's accepted range.
type IntOpt func(*intBounds)

func Min(n int64) IntOpt { return func(b *intBounds) { b.hasMin, b.min = true, n } }
func Max(n int64) IntOpt { return func(b *intBounds) { b.hasMax, b.max = true, n } }

// Integer matches a signed decimal integer, optionally range-checked
// by a deferred Semantic checker (so an out-of-range literal still
// produces font/autocompletion marks up to and including itself).
func (g *G) Integer(opts ...IntOpt) *Builder {
	var b intBounds
	for _, o := range opts {
		o(&b)
	}
	node := g.a.Leaf("integer", func(r *reader.Reader) (any, error) {
		n, err := r.ReadInt()
		if err != nil {
			return nil, Expect("error.expect.integer", nil)
		}
		return n, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.CharCheckRule(isIntChar)}}
	}).Font(font.Numeric).ArgumentEnd(true)
	if b.hasMin || b.hasMax {
		node.Checker(func(v any) *CheckResult {
			n := v.(int64)
			if b.hasMin && n < b.min {
				return &CheckResult{Kind: diag.Semantic, Key: "error.semantic.number.out_of_range", Kwargs: diag.Kwargs{"min": b.min, "max": b.max, "got": n}}
			}
			if b.hasMax && n > b.max {
				return &CheckResult{Kind: diag.Semantic, Key: "error.semantic.number.out_of_range", Kwargs: diag.Kwargs{"min": b.min, "max": b.max, "got": n}}
			}
			return nil
		})
	}
	return node
}

func isIntChar(r rune) bool { return strings.ContainsRune(reader.DIGITS+reader.SIGNS, r) }
func isFloatChar(r rune) bool {
	return strings.ContainsRune(reader.DIGITS+reader.SIGNS+".", r)
}

// Float matches a signed decimal float with no exponent notation.
func (g *G) Float() *Builder {
	return g.a.Leaf("float", func(r *reader.Reader) (any, error) {
		f, err := r.ReadFloat(false)
		if err != nil {
			return nil, Expect("error.expect.float", nil)
		}
		return f, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.CharCheckRule(isFloatChar)}}
	}).Font(font.Numeric).ArgumentEnd(true)
}

// OffsetFloat matches a Bedrock relative/local coordinate: a bare
// float, or '~'/'^' optionally followed by a float with no integer
// part required (e.g. "~-.5").
func (g *G) OffsetFloat(prefix rune) *Builder {
	return g.a.Leaf("offset_float", func(r *reader.Reader) (any, error) {
		if r.Peek() == prefix {
			r.Next()
			if f, err := r.ReadFloat(true); err == nil {
				return f, nil
			}
			return 0.0, nil
		}
		f, err := r.ReadFloat(false)
		if err != nil {
			return nil, Expect("error.expect.coordinate", nil)
		}
		return f, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{
			{Inserts: string(prefix), MatchRule: suggest.CharRule(string(prefix))},
			{MatchRule: suggest.CharCheckRule(isFloatChar)},
		}
	}).Font(font.Position).ArgumentEnd(true)
}

// Boolean matches "true" or "false".
func (g *G) Boolean() *Builder {
	return g.Enumerate("true", "false")
}

// Word matches a bare terminator-delimited token with no further
// validation (player name components, tag literals, and the like).
func (g *G) Word() *Builder {
	return g.a.Leaf("word", func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		w := r.ReadWord()
		if w == "" {
			r.SetLocation(start)
			return nil, Expect("error.expect.word", nil)
		}
		return w, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.AlwaysOther}}
	}).Font(font.Default).ArgumentEnd(true)
}

// NamespacedId matches an identifier of the form "namespace:path" or a
// bare "path" (defaulting to the "minecraft" namespace), used for
// block/item/entity ids.
func (g *G) NamespacedId() *Builder {
	return g.a.Leaf("namespaced_id", func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		w := r.ReadWord()
		if w == "" {
			r.SetLocation(start)
			return nil, Expect("error.expect.namespaced_id", nil)
		}
		return w, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.AlwaysOther, NoteKey: "note.namespaced_id"}}
	}).Font(font.Tag).ArgumentEnd(true)
}

// NamespacedIdFrom is NamespacedId but with its suggestion list
// populated dynamically from g.ids's category (e.g. "block", "item",
// "entity"), offering the category's keys exactly as the catalogue
// stores them: no "minecraft:" prefix is added or removed, and the
// parsed id is not checked against the catalogue. A missing or
// catalogue-less lookup
// degrades to a bare note rather than failing the node.
func (g *G) NamespacedIdFrom(category string) *Builder {
	ids := g.ids
	return g.a.Leaf("namespaced_id:"+category, func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		w := r.ReadWord()
		if w == "" {
			r.SetLocation(start)
			return nil, Expect("error.expect.namespaced_id", nil)
		}
		return w, nil
	}, func(version.Version) []suggest.Suggestion {
		if ids == nil {
			return []suggest.Suggestion{{MatchRule: suggest.AlwaysOther, NoteKey: "note.no_catalogue"}}
		}
		node := ids.Get([]string{category})
		if node == nil || node.Leaf {
			return []suggest.Suggestion{{MatchRule: suggest.AlwaysOther, NoteKey: "note.no_catalogue"}}
		}
		out := make([]suggest.Suggestion, 0, len(node.Children))
		for name := range node.Children {
			out = append(out, suggest.Suggestion{Inserts: name, MatchRule: suggest.StrFindRule(name)})
		}
		return out
	}).Font(font.Tag).ArgumentEnd(true)
}

// BareText matches everything remaining on the line, unparsed: used
// for the trailing message argument of commands like "say" and "tell".
func (g *G) BareText() *Builder {
	return g.a.Leaf("bare_text", func(r *reader.Reader) (any, error) {
		return r.ReadUntilEOL(), nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.AlwaysOther}}
	}).Font(font.String)
}

// QuotedString matches a JSON-style double-quoted string with
// \\, \", \n, \t, \r and \uXXXX escapes, painted as a single string
// span regardless of its contents. Being a Subparsing node it must
// push its own font mark: the engine never does that on its behalf.
func (g *G) QuotedString() *Builder {
	return g.a.Subparsing("quoted_string", func(m *marker.Marker) (any, error) {
		start := m.Reader.GetLocation()
		decoded, _, err := DecodeQuoted(m.Reader)
		if err != nil {
			return nil, err
		}
		m.AddFontMark(pos.NewSpan(start, m.Reader.GetLocation()), font.String)
		return decoded, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{Inserts: `""`, MatchRule: suggest.CharRule("")}}
	}).ArgumentEnd(true)
}

// QuotedStringAsSelector matches a double-quoted string whose decoded
// contents are themselves a target selector, the way rawtext's
// "selector" component and a rawtext "score" component's "name" field
// embed one inside JSON. The decoded text is re-parsed in isolation
// by a memoized selector-only Engine and its marks translated back
// into the outer line's coordinates; a selector that fails to parse
// falls back to a flat string mark rather than surfacing its own
// diagnostic, matching RunSubParse/MergeTranslated's documented
// failure contract.
func (g *G) QuotedStringAsSelector() *Builder {
	return g.a.Subparsing("quoted_string_selector", func(m *marker.Marker) (any, error) {
		start := m.Reader.GetLocation()
		decoded, colMap, err := DecodeQuoted(m.Reader)
		if err != nil {
			return nil, err
		}
		inner := RunSubParse(g.ensureSelectorSubEngine(), decoded, m.Version)
		if !MergeTranslated(m, inner, colMap) {
			m.AddFontMark(pos.NewSpan(start, m.Reader.GetLocation()), font.String)
		}
		return decoded, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{Inserts: `""`, MatchRule: suggest.CharRule("")}}
	}).ArgumentEnd(true)
}

// ensureSelectorSubEngine builds, the first time it's needed, the
// standalone Engine QuotedStringAsSelector sub-parses decoded selector
// strings with. It lives in its own Arena so freezing it doesn't touch
// the outer grammar g is still assembling; sync.Once guards it since
// Parser.ParseLines (mccmd.go) runs the same engine from multiple
// goroutines at once.
func (g *G) ensureSelectorSubEngine() *Engine {
	g.selectorSubEngineOnce.Do(func() {
		sub := NewG(g.ids)
		entry, exit := sub.Selector()
		eol := sub.a.Finish("eol", func(r *reader.Reader) (any, error) {
			ch := r.Peek()
			if !r.IsLineEnd(ch) {
				return nil, Expect("error.expect.eol", nil)
			}
			return nil, nil
		}, func(version.Version) []suggest.Suggestion { return nil })
		exit.FinishWith(eol)
		sub.a.Freeze()
		g.selectorSubEngine = NewEngine(sub.a, entry.ID())
	})
	return g.selectorSubEngine
}

