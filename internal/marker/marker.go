// Package marker implements the per-parse mutable state threaded
// through the grammar engine: the reader, accumulated diagnostics,
// font and autocompletion marks, the active font stack, deferred
// semantic checkers, and the target MCCMD version.
package marker

import (
	"github.com/mccmdhl/mccmdhl2/internal/diag"
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/pos"
	"github.com/mccmdhl/mccmdhl2/internal/reader"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// FontMark is a coloured span. Marks may overlap; later marks override
// earlier ones for the overlapping columns (traversal order, not
// sorted order, per the engine's append-only guarantee).
type FontMark struct {
	Span pos.Span
	Font font.Font
}

// Unit is the minimal surface an AutoCompleteMark's payload must
// expose: deferred suggestion production for a typed prefix. It is
// implemented by internal/grammar's autoCompleteUnit so this package
// never needs to import the grammar graph.
type Unit interface {
	Suggestions(prefix string) []suggest.Suggestion
}

// AutoCompleteMark associates a source span with a Unit that can
// produce suggestions on demand. Marks are appended in traversal
// order, so lookup is a single binary search. They do not cover every
// column: the space consumed between two arguments lies inside no
// mark, and Compressed nodes add none.
type AutoCompleteMark struct {
	Span pos.Span
	Unit Unit
}

// Marker bundles everything a single parse_line call mutates.
type Marker struct {
	Reader    *reader.Reader
	Version   version.Version
	Diags     diag.List
	FontMarks []FontMark
	ACMarks   []AutoCompleteMark

	fontStack []font.Font
	checkers  []deferredChecker
}

type deferredChecker struct {
	run func() *diag.Diagnostic
}

func New(r *reader.Reader, v version.Version) *Marker {
	return &Marker{Reader: r, Version: v}
}

// PushFont pushes f as the active default font for nodes that don't
// specify their own.
func (m *Marker) PushFont(f font.Font) { m.fontStack = append(m.fontStack, f) }

// PopFont pops the active default font.
func (m *Marker) PopFont() {
	if len(m.fontStack) > 0 {
		m.fontStack = m.fontStack[:len(m.fontStack)-1]
	}
}

// TopFont returns the active default font, or font.Default if the
// stack is empty.
func (m *Marker) TopFont() font.Font {
	if len(m.fontStack) == 0 {
		return font.Default
	}
	return m.fontStack[len(m.fontStack)-1]
}

// AddFontMark appends a font mark over span with f.
func (m *Marker) AddFontMark(span pos.Span, f font.Font) {
	m.FontMarks = append(m.FontMarks, FontMark{Span: span, Font: f})
}

// AddACMark appends an autocompletion mark.
func (m *Marker) AddACMark(span pos.Span, u Unit) {
	m.ACMarks = append(m.ACMarks, AutoCompleteMark{Span: span, Unit: u})
}

// AddDiagnostic records a diagnostic immediately (used for
// ArgParse/Expectation failures surfaced on the accepted path).
func (m *Marker) AddDiagnostic(d diag.Diagnostic) { m.Diags.Add(d) }

// Defer schedules a semantic checker to run only if the branch being
// explored is ultimately accepted. check returns a non-nil diagnostic
// on violation.
func (m *Marker) Defer(check func() *diag.Diagnostic) {
	m.checkers = append(m.checkers, deferredChecker{run: check})
}

// RunDeferred executes every deferred checker (in registration order)
// and appends any resulting diagnostics. Called once, after the root
// grammar node has accepted the whole line.
func (m *Marker) RunDeferred() {
	for _, c := range m.checkers {
		if d := c.run(); d != nil {
			m.Diags.Add(*d)
		}
	}
}

// Snapshot is an opaque save point for Marker + Reader state, taken
// before attempting a branch and restored if that branch fails.
type Snapshot struct {
	readerPos    pos.Position
	fontMarksLen int
	acMarksLen   int
	fontStackLen int
	checkersLen  int
	diagsLen     int
}

// Snapshot captures the current state.
func (m *Marker) Snapshot() Snapshot {
	return Snapshot{
		readerPos:    m.Reader.GetLocation(),
		fontMarksLen: len(m.FontMarks),
		acMarksLen:   len(m.ACMarks),
		fontStackLen: len(m.fontStack),
		checkersLen:  len(m.checkers),
		diagsLen:     len(m.Diags),
	}
}

// Restore rewinds the reader position, truncates the mark lists, the
// font stack and the deferred-checker list back to the snapshot. This
// is the engine's sole mechanism for branch rollback; see P3.
func (m *Marker) Restore(s Snapshot) {
	m.Reader.SetLocation(s.readerPos)
	m.FontMarks = m.FontMarks[:s.fontMarksLen]
	m.ACMarks = m.ACMarks[:s.acMarksLen]
	m.fontStack = m.fontStack[:s.fontStackLen]
	m.checkers = m.checkers[:s.checkersLen]
	m.Diags = m.Diags[:s.diagsLen]
}
