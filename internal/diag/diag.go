// Package diag defines the diagnostics emitted by the parse engine:
// i18n message keys plus the keyword arguments that parameterise them,
// never localised text.
package diag

import "github.com/mccmdhl/mccmdhl2/internal/pos"

// Kind classifies why a diagnostic was raised.
type Kind int

const (
	ArgParse Kind = iota
	Expectation
	Semantic
	UnreachableBranch
)

func (k Kind) String() string {
	switch k {
	case ArgParse:
		return "ArgParse"
	case Expectation:
		return "Expectation"
	case Semantic:
		return "Semantic"
	case UnreachableBranch:
		return "UnreachableBranch"
	default:
		return "Unknown"
	}
}

// Kwargs carries the substitution values named by a message key, e.g.
// {"min": 1, "max": 32767} for error.semantic.number.out_of_range.
type Kwargs map[string]any

// Diagnostic is a single syntactic or semantic finding, positioned in
// source and keyed for i18n rather than carrying literal text.
type Diagnostic struct {
	Span       pos.Span
	Kind       Kind
	MessageKey string
	Kwargs     Kwargs
}

func New(span pos.Span, kind Kind, key string, kwargs Kwargs) Diagnostic {
	return Diagnostic{Span: span, Kind: kind, MessageKey: key, Kwargs: kwargs}
}

// List accumulates diagnostics during a single parse.
type List []Diagnostic

func (l *List) Add(d Diagnostic) {
	*l = append(*l, d)
}

func (l List) HasErrors() bool {
	return len(l) > 0
}
