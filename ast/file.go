package ast

import "strings"

// File owns the full source of a parsed ledger and the ordered list of
// directives produced from it. All spans of all nodes reachable from a File
// refer into File.Content. A File is immutable once returned by the parser;
// nodes never outlive it (Go's GC makes the explicit "destroying File
// destroys its nodes" lifecycle from spec.md §3 implicit rather than manual).
type File struct {
	Filename string
	Content  string

	// Directives holds every top-level item in source order: the narrow
	// directives of spec.md §3 plus Option, Include, Plugin, Tag (push/pop),
	// PushMeta/PopMeta, Comment, and Headline, each a Directive. Order is
	// the order the parser encountered them (spec invariant 3); nothing
	// sorts this slice.
	Directives []Directive
}

// DumpAll reconstructs the whole file by concatenating each directive's
// Dump output, filling the gaps between them (blank lines, which the
// parser does not retain as nodes) with the original Content. For a File
// produced by the parser this is always byte-identical to Content; the
// fallback to Content for the gaps means a File is never corrupted by a
// directive whose span the caller has tampered with.
func (f *File) DumpAll() string {
	if len(f.Directives) == 0 {
		return f.Content
	}

	var b strings.Builder
	prevEnd := 0
	for _, d := range f.Directives {
		span := d.Span()
		if !span.IsZero() && span.Start < prevEnd && span.End <= prevEnd {
			// Already written as part of the previous directive's text, as
			// a `;` comment trailing a directive on the same line is.
			continue
		}
		if span.Start > prevEnd && span.Start <= len(f.Content) {
			b.WriteString(f.Content[prevEnd:span.Start])
		}
		b.WriteString(d.Dump())
		prevEnd = span.End
	}
	if prevEnd >= 0 && prevEnd < len(f.Content) {
		b.WriteString(f.Content[prevEnd:])
	}
	return b.String()
}

// Node is implemented by every AST element, directive or sub-node, that
// carries a span and can render itself back to text.
type Node interface {
	Span() Span
	Dump() string
	File() *File
}

// Directive is implemented by every top-level item in File.Directives.
type Directive interface {
	Node
	// Kind names the directive variant, e.g. "open", "transaction",
	// "comment". Used for dispatch and diagnostics, never for parsing.
	Kind() string
}
