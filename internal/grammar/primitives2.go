package grammar

import (
	"sort"

	"github.com/mccmdhl/mccmdhl2/internal/diag"
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// Series wires item (called once; both the entry and exit nodes it
// returns are reentered via the back-edge through sep) into a
// sep-separated repetition: entry is where a caller's preceding
// branch should point, exit is where the caller should attach what
// comes after the whole series. When emptyOK, entry also accepts zero
// items.
func (g *G) Series(item func() (entry, exit *Builder), sep rune, emptyOK bool) (entry, exit *Builder) {
	exit = g.a.Compressed("series_exit")
	ie, ix := item()
	sepNode := g.Char(sep).ArgumentEnd(false)
	sepNode.Branch(ie, IsClose())
	ix.Branch(exit, IsClose())
	ix.Branch(sepNode, IsClose())
	if emptyOK {
		pre := g.a.Compressed("series_pre")
		pre.Branch(ie, IsClose())
		pre.Branch(exit, IsClose())
		return pre, exit
	}
	return ie, exit
}

// Pos3D matches three space-separated relative/absolute coordinates
// ("~" prefixed or bare floats), x y z.
func (g *G) Pos3D() (entry, exit *Builder) {
	x := g.OffsetFloat('~')
	y := g.OffsetFloat('~')
	z := g.OffsetFloat('~')
	x.Branch(y)
	y.Branch(z)
	return x, z
}

// LocalPos3D matches three space-separated "^"-local coordinates.
func (g *G) LocalPos3D() (entry, exit *Builder) {
	x := g.OffsetFloat('^')
	y := g.OffsetFloat('^')
	z := g.OffsetFloat('^')
	x.Branch(y)
	y.Branch(z)
	return x, z
}

// YawPitch matches two space-separated relative/absolute rotation
// components.
func (g *G) YawPitch() (entry, exit *Builder) {
	yaw := g.OffsetFloat('~').Font(font.Rotation)
	pitch := g.OffsetFloat('~').Font(font.Rotation)
	yaw.Branch(pitch)
	return yaw, pitch
}

func isAxis(r rune) bool { return r == 'x' || r == 'y' || r == 'z' }

// Swizzle matches a bare word drawn only from 'x', 'y', 'z' with no
// axis repeated, such as "xz" in "execute align xz run ...".
func (g *G) Swizzle() *Builder {
	return g.a.Leaf("swizzle", func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		w := r.ReadWord()
		if w == "" {
			r.SetLocation(start)
			return nil, Expect("error.expect.swizzle", nil)
		}
		return w, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.CharCheckRule(isAxis)}}
	}).Font(font.Rotation).ArgumentEnd(true).Checker(func(v any) *CheckResult {
		w := v.(string)
		seen := map[rune]bool{}
		for _, c := range w {
			if !isAxis(c) {
				return &CheckResult{Kind: diag.Semantic, Key: "error.semantic.swizzle.invalid_axis", Kwargs: diag.Kwargs{"char": string(c)}}
			}
			if seen[c] {
				return &CheckResult{Kind: diag.Semantic, Key: "error.semantic.swizzle.duplicate_axis", Kwargs: diag.Kwargs{"axis": string(c)}}
			}
			seen[c] = true
		}
		return nil
	})
}

// IntRangeValue is the parsed value of an IntRange node.
type IntRangeValue struct {
	HasMin, HasMax bool
	Min, Max       int64
}

// IntRange matches "n", "min..", "..max" or "min..max".
func (g *G) IntRange() *Builder {
	return g.a.Leaf("int_range", func(r *reader.Reader) (any, error) {
		start := r.GetLocation()
		var v IntRangeValue
		if n, err := r.ReadInt(); err == nil {
			v.HasMin, v.Min = true, n
		}
		if r.Peek() == '.' {
			dot1 := r.GetLocation()
			r.Next()
			if r.Peek() != '.' {
				r.SetLocation(dot1)
				if !v.HasMin {
					r.SetLocation(start)
					return nil, Expect("error.expect.int_range", nil)
				}
				v.HasMax, v.Max = true, v.Min
				return v, nil
			}
			r.Next()
			if n, err := r.ReadInt(); err == nil {
				v.HasMax, v.Max = true, n
			}
		} else if v.HasMin {
			v.HasMax, v.Max = true, v.Min
		}
		if !v.HasMin && !v.HasMax {
			r.SetLocation(start)
			return nil, Expect("error.expect.int_range", nil)
		}
		return v, nil
	}, func(version.Version) []suggest.Suggestion {
		return []suggest.Suggestion{{MatchRule: suggest.CharCheckRule(func(r rune) bool {
			return isIntChar(r) || r == '.'
		})}}
	}).Font(font.Numeric).ArgumentEnd(true).Checker(func(val any) *CheckResult {
		v := val.(IntRangeValue)
		if v.HasMin && v.HasMax && v.Min > v.Max {
			return &CheckResult{Kind: diag.Semantic, Key: "error.semantic.int_range.empty", Kwargs: diag.Kwargs{"min": v.Min, "max": v.Max}}
		}
		return nil
	})
}

// GameMode matches a /gamemode argument, including its numeric and
// single-letter aliases.
func (g *G) GameMode() *Builder {
	return g.NotedEnumerate("note.gamemode",
		"survival", "creative", "adventure", "spectator",
		"s", "c", "a", "sp", "0", "1", "2", "6")
}

// PermissionState matches a /permission argument.
func (g *G) PermissionState() *Builder {
	return g.NotedEnumerate("note.permission", "enabled", "disabled", "op", "member", "visitor")
}

// Invertable wraps inner with an optional leading '!', used by
// selector arguments like "type=!skeleton".
func (g *G) Invertable(inner func() *Builder) (entry, exit *Builder) {
	in := inner()
	bang := g.Char('!').ArgumentEnd(false)
	bang.Branch(in, IsClose())
	entry = g.a.Compressed("invertable_entry")
	entry.Branch(bang, IsClose())
	entry.Branch(in, IsClose())
	return entry, in
}

// Wildcard wraps inner with an alternative bare "*" meaning "any".
func (g *G) Wildcard(inner func() (entry, exit *Builder)) (entry, exit *Builder) {
	exit = g.a.Compressed("wildcard_exit")
	star := g.Char('*').ArgumentEnd(true)
	star.Branch(exit, IsClose())
	ie, ix := inner()
	ix.Branch(exit, IsClose())
	entry = g.a.Compressed("wildcard_entry")
	entry.Branch(star, IsClose())
	entry.Branch(ie, IsClose())
	return entry, exit
}

// QuotedStringOrWord accepts either a quoted string or a bare word,
// converging on a shared exit so callers can treat it as one subtree.
func (g *G) QuotedStringOrWord() (entry, exit *Builder) {
	exit = g.a.Compressed("qs_or_word_exit")
	qs := g.QuotedString()
	w := g.Word()
	qs.Branch(exit, IsClose())
	w.Branch(exit, IsClose())
	entry = g.a.Compressed("qs_or_word_entry")
	entry.Branch(qs, IsClose())
	entry.Branch(w, IsClose())
	return entry, exit
}

// CharsEnumerate matches the longest of ops that is a literal prefix
// of what remains, used for multi-character operators like "<=".
func (g *G) CharsEnumerate(ops ...string) *Builder {
	sorted := append([]string(nil), ops...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	return g.a.Leaf("ops", func(r *reader.Reader) (any, error) {
		for _, op := range sorted {
			if matchLiteral(r, op) {
				return op, nil
			}
		}
		return nil, Expect("error.expect.operator", diag.Kwargs{"ops": ops})
	}, func(version.Version) []suggest.Suggestion {
		out := make([]suggest.Suggestion, 0, len(ops))
		for _, op := range ops {
			out = append(out, suggest.Suggestion{Inserts: op, MatchRule: suggest.CharRule(op)})
		}
		return out
	}).Font(font.Meta).ArgumentEnd(false)
}

func matchLiteral(r *reader.Reader, lit string) bool {
	start := r.GetLocation()
	for _, want := range lit {
		if r.Peek() != want {
			r.SetLocation(start)
			return false
		}
		r.Next()
	}
	return true
}
