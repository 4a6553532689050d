// Package mccmd is the public surface of the command parser: it wraps
// internal/grammar's Engine with the line-oriented API callers use to
// parse, query and autocomplete Minecraft Bedrock command text.
package mccmd

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mccmdhl/mccmdhl2/internal/diag"
	"github.com/mccmdhl/mccmdhl2/internal/font"
	"github.com/mccmdhl/mccmdhl2/internal/grammar"
	"github.com/mccmdhl/mccmdhl2/internal/idtable"
	"github.com/mccmdhl/mccmdhl2/internal/marker"
	"github.com/mccmdhl/mccmdhl2/internal/suggest"
	"github.com/mccmdhl/mccmdhl2/internal/version"
)

// FontSpan is one coloured range of a parsed line, ready for a
// highlighter to render.
type FontSpan struct {
	Begin, End int
	Font       font.Font
}

// Diagnostic is a positioned, still-unlocalised finding from parsing
// one line.
type Diagnostic struct {
	Begin, End int
	Kind       diag.Kind
	MessageKey string
	Kwargs     diag.Kwargs
}

// LineResult is everything Parser produces for a single line: the
// font spans to paint, the diagnostics to surface, and enough state to
// answer Suggestions at any column without reparsing.
type LineResult struct {
	Line  string
	Fonts []FontSpan
	Diags []Diagnostic
	m     *marker.Marker
}

// IsFinished reports whether the line parsed with no diagnostics at
// all: a command a player could submit as-is.
func (r *LineResult) IsFinished() bool {
	return len(r.Diags) == 0
}

// Suggestions returns the ranked autocompletions available at column
// offset, matched against whatever the user has already typed in that
// mark's span.
func (r *LineResult) Suggestions(offset int) []suggest.Suggestion {
	i := sort.Search(len(r.m.ACMarks), func(i int) bool {
		return r.m.ACMarks[i].Span.End.Offset > offset
	})
	if i >= len(r.m.ACMarks) {
		return nil
	}
	mark := r.m.ACMarks[i]
	if !mark.Span.Contains(offset) && mark.Span.Begin.Offset != offset {
		return nil
	}
	prefix := r.Line[mark.Span.Begin.Offset:offset]
	return mark.Unit.Suggestions(prefix)
}

// Parser parses Bedrock command lines against one target version,
// using the grammar Engine it was built with.
type Parser struct {
	engine *grammar.Engine
	v      version.Version
}

// NewParser builds a Parser targeting v using the default, no-catalogue
// grammar. Use NewParserWithCatalogue to wire in dynamic block/item/
// entity id suggestions.
func NewParser(v version.Version) *Parser {
	return &Parser{engine: grammar.Default(), v: v}
}

// NewParserWithCatalogue builds a Parser whose NamespacedIdFrom
// suggestions are resolved against ids.
func NewParserWithCatalogue(v version.Version, ids *idtable.IdTable) *Parser {
	return &Parser{engine: grammar.Build(ids), v: v}
}

// ParseLine parses one line of command text.
func (p *Parser) ParseLine(line string) *LineResult {
	m := p.engine.ParseLine(line, p.v)
	return toLineResult(line, m)
}

// ParseLines parses every line in lines concurrently, preserving input
// order in the returned slice. Parsing one line never depends on
// another, so this purely exploits the grammar Engine's read-only,
// post-Freeze arena to parallelize a batch (e.g. an entire function
// file) instead of parsing it line by line.
func (p *Parser) ParseLines(ctx context.Context, lines []string) ([]*LineResult, error) {
	results := make([]*LineResult, len(lines))
	g, _ := errgroup.WithContext(ctx)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			results[i] = p.ParseLine(line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func toLineResult(line string, m *marker.Marker) *LineResult {
	r := &LineResult{Line: line, m: m}
	for _, fm := range m.FontMarks {
		r.Fonts = append(r.Fonts, FontSpan{Begin: fm.Span.Begin.Offset, End: fm.Span.End.Offset, Font: fm.Font})
	}
	for _, d := range m.Diags {
		r.Diags = append(r.Diags, Diagnostic{
			Begin: d.Span.Begin.Offset, End: d.Span.End.Offset,
			Kind: d.Kind, MessageKey: d.MessageKey, Kwargs: d.Kwargs,
		})
	}
	return r
}
