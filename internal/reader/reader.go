// Package reader implements the character cursor MCCMD parsing runs
// on: line/column tracking plus the lexical primitives (word, int,
// float, literal line) every grammar leaf is built from.
package reader

import (
	"strings"
	"unicode/utf8"

	"github.com/mccmdhl/mccmdhl2/internal/pos"
)

// TERMINATORS are the characters (or EOF) that end a bare word.
var TERMINATORS = map[rune]bool{' ': true, '\n': true, '\r': true}

// DIGITS and SIGNS are exposed so grammar leaves can build
// character-class match rules without re-declaring them.
var DIGITS = "0123456789"
var SIGNS = "+-"

const eof = rune(-1)

// Error is raised by a lexical primitive (read_int, read_float, ...)
// when the input does not match; it is always an expectation-level
// failure in the parser's sense, never an ArgParse failure.
type Error struct {
	Kind string
}

func (e *Error) Error() string { return "reader: expected " + e.Kind }

func newError(kind string) error { return &Error{Kind: kind} }

// Reader is a character cursor over one line's source text (or, for a
// sub-parse, over a decoded inner string). It is cheap to construct
// and carries no parse-engine state of its own.
type Reader struct {
	input string
	pos   int // byte offset of the next rune to read
	line  int
	col   int
}

func New(input string) *Reader {
	return &Reader{input: input, line: 1, col: 0}
}

// Peek returns the current rune without consuming it, or EOF.
func (r *Reader) Peek() rune {
	if r.pos >= len(r.input) {
		return eof
	}
	ru, _ := utf8.DecodeRuneInString(r.input[r.pos:])
	return ru
}

// Next consumes and returns the current rune, advancing line/column.
func (r *Reader) Next() rune {
	if r.pos >= len(r.input) {
		return eof
	}
	ru, size := utf8.DecodeRuneInString(r.input[r.pos:])
	r.pos += size
	if ru == '\n' {
		r.line++
		r.col = 0
	} else {
		r.col++
	}
	return ru
}

// IsLineEnd reports whether ch ends a line: '\n', '\r' or EOF.
func (r *Reader) IsLineEnd(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == eof
}

func IsEOF(ch rune) bool { return ch == eof }

// GetLocation returns the current cursor position.
func (r *Reader) GetLocation() pos.Position {
	return pos.Position{Offset: r.pos, Line: r.line, Column: r.col}
}

// SetLocation rewinds (or fast-forwards) the cursor. It is used by the
// parse engine to restore a Marker snapshot on branch failure.
func (r *Reader) SetLocation(p pos.Position) {
	r.pos = p.Offset
	r.line = p.Line
	r.col = p.Column
}

// ReadWord greedily consumes a run of non-terminator characters. It
// may return the empty string.
func (r *Reader) ReadWord() string {
	start := r.pos
	for {
		ch := r.Peek()
		if ch == eof || TERMINATORS[ch] {
			break
		}
		r.Next()
	}
	return r.input[start:r.pos]
}

// ReadInt parses an optionally-signed decimal integer.
func (r *Reader) ReadInt() (int64, error) {
	start := r.pos
	if ch := r.Peek(); ch == '+' || ch == '-' {
		r.Next()
	}
	digitsStart := r.pos
	for strings.ContainsRune(DIGITS, r.Peek()) {
		r.Next()
	}
	if r.pos == digitsStart {
		r.pos = start
		return 0, newError("int")
	}
	return parseInt(r.input[start:r.pos]), nil
}

// ReadFloat parses a decimal float. No exponent notation is ever
// accepted (MCCMD has none). When noIntPartOk is true, a leading sign
// with no integer digits before the '.' is allowed (offset floats like
// "~-.5").
func (r *Reader) ReadFloat(noIntPartOk bool) (float64, error) {
	start := r.pos
	if ch := r.Peek(); ch == '+' || ch == '-' {
		r.Next()
	}
	intStart := r.pos
	for strings.ContainsRune(DIGITS, r.Peek()) {
		r.Next()
	}
	hasInt := r.pos > intStart
	hasFrac := false
	if r.Peek() == '.' {
		dot := r.pos
		r.Next()
		fracStart := r.pos
		for strings.ContainsRune(DIGITS, r.Peek()) {
			r.Next()
		}
		if r.pos == fracStart {
			// A bare trailing '.' with no digits is not part of the
			// float; back off so callers see it as a separate token.
			r.pos = dot
		} else {
			hasFrac = true
		}
	}
	if !hasInt && !hasFrac {
		r.pos = start
		return 0, newError("float")
	}
	if !hasInt && !noIntPartOk {
		r.pos = start
		return 0, newError("float")
	}
	return parseFloat(r.input[start:r.pos]), nil
}

// ReadUntilEOL consumes the remainder of the current line, excluding
// the newline itself.
func (r *Reader) ReadUntilEOL() string {
	start := r.pos
	for !r.IsLineEnd(r.Peek()) {
		r.Next()
	}
	return r.input[start:r.pos]
}

func parseInt(s string) int64 {
	neg := false
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i = 1
	}
	var v int64
	for ; i < len(s); i++ {
		v = v*10 + int64(s[i]-'0')
	}
	if neg {
		v = -v
	}
	return v
}

func parseFloat(s string) float64 {
	neg := false
	i := 0
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i = 1
	}
	var intPart, fracPart float64
	fracDiv := 1.0
	seenDot := false
	for ; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			seenDot = true
			continue
		}
		d := float64(c - '0')
		if seenDot {
			fracDiv *= 10
			fracPart += d / fracDiv
		} else {
			intPart = intPart*10 + d
		}
	}
	v := intPart + fracPart
	if neg {
		v = -v
	}
	return v
}
