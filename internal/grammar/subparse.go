package grammar

import (
	"strconv"

	"github.com/mccmdhl/mccmdhl2/internal/marker"
	"github.com/mccmdhl/mccmdhl2/internal/pos"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// DecodeQuoted reads a double-quoted string starting at the reader's
// current '"' and returns its decoded (escapes resolved) contents
// together with colMap, a slice one longer than the decoded string
// mapping each decoded byte offset back to the outer Reader position
// it came from, plus one sentinel past the end: the position of the
// closing '"'. Recognised escapes are \\, \", \n, \t, \r and \uXXXX;
// any other escape is an ArgParse failure.
func DecodeQuoted(r *reader.Reader) (string, []pos.Position, error) {
	if r.Peek() != '"' {
		return "", nil, Expect("error.expect.quoted_str", nil)
	}
	r.Next()
	var out []byte
	var colMap []pos.Position
	for {
		ch := r.Peek()
		if reader.IsEOF(ch) || r.IsLineEnd(ch) {
			return "", nil, ArgParse("error.argparse.unclosed_str", nil)
		}
		if ch == '"' {
			colMap = append(colMap, r.GetLocation())
			r.Next()
			return string(out), colMap, nil
		}
		at := r.GetLocation()
		if ch == '\\' {
			r.Next()
			esc := r.Peek()
			switch esc {
			case '\\', '"':
				r.Next()
				out = append(out, byte(esc))
				colMap = append(colMap, at)
			case 'n':
				r.Next()
				out = append(out, '\n')
				colMap = append(colMap, at)
			case 't':
				r.Next()
				out = append(out, '\t')
				colMap = append(colMap, at)
			case 'r':
				r.Next()
				out = append(out, '\r')
				colMap = append(colMap, at)
			case 'u':
				r.Next()
				digits := make([]rune, 0, 4)
				for i := 0; i < 4; i++ {
					d := r.Peek()
					if !isHex(d) {
						return "", nil, ArgParse("error.argparse.bad_unicode_escape", nil)
					}
					digits = append(digits, d)
					r.Next()
				}
				n, _ := strconv.ParseInt(string(digits), 16, 32)
				encoded := string(rune(n))
				for range encoded {
					colMap = append(colMap, at)
				}
				out = append(out, encoded...)
			default:
				return "", nil, ArgParse("error.argparse.bad_escape", nil)
			}
			continue
		}
		r.Next()
		out = append(out, string(ch)...)
		colMap = append(colMap, at)
	}
}

func isHex(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// TranslateSpan maps a span measured in the decoded inner string's
// byte offsets back to outer Reader coordinates via colMap.
func TranslateSpan(inner pos.Span, colMap []pos.Position) pos.Span {
	begin := colMap[inner.Begin.Offset]
	end := colMap[inner.End.Offset]
	return pos.Span{Begin: begin, End: end}
}

// RunSubParse re-enters eng over decoded text, as component G
// requires: a fresh Reader and Marker targeting v, independent of the
// outer parse in progress.
func RunSubParse(eng *Engine, decoded string, v version.Version) *marker.Marker {
	return eng.ParseLine(decoded, v)
}

// MergeTranslated copies inner's font and autocompletion marks into
// outer, translating every span through colMap, and reports whether
// inner parsed without error. A sub-parse failure is never propagated
// as an outer diagnostic (per G3); callers fall back to a plain-string
// font mark over the whole outer span when this returns false.
func MergeTranslated(outer, inner *marker.Marker, colMap []pos.Position) bool {
	if len(inner.Diags) > 0 {
		return false
	}
	for _, fm := range inner.FontMarks {
		outer.AddFontMark(TranslateSpan(fm.Span, colMap), fm.Font)
	}
	for _, ac := range inner.ACMarks {
		outer.AddACMark(TranslateSpan(ac.Span, colMap), ac.Unit)
	}
	return true
}
