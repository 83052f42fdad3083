package ast

// base is embedded by every span-carrying node. It stores a handle to the
// owning File (shared by all nodes from one parse) plus the node's own
// span, per the representation chosen in spec.md §9: nodes stay small and
// the source text is never copied.
//
// A node built by the programmatic constructors in builders.go has a nil
// file and a zero span; its Dump method then falls back to synthesizing
// canonical text instead of slicing source.
type base struct {
	file *File
	span Span
}

// Span returns the node's byte range into its owning File's content.
func (b base) Span() Span { return b.span }

// File returns the File this node was parsed from, or nil for a node built
// by the programmatic constructors in builders.go.
func (b base) File() *File { return b.file }

// sourceText returns the exact source slice for this node's span, and
// whether one is available. When available, Dump must return it verbatim
// to satisfy byte fidelity (spec invariant 2).
func (b base) sourceText() (string, bool) {
	if b.file == nil || b.span.IsZero() {
		return "", false
	}
	if b.span.Start < 0 || b.span.End < b.span.Start || b.span.End > len(b.file.Content) {
		return "", false
	}
	return b.file.Content[b.span.Start:b.span.End], true
}

// Attach sets a node's owning File and Span after construction. It exists
// so the parser package, which builds nodes as plain composite literals,
// can wire each node to its source span without base's fields being
// exported. Promoted from base onto every concrete node type through
// Go's embedding rules (a pointer to the outer struct gets base's pointer
// methods).
func (b *base) Attach(f *File, span Span) {
	b.file = f
	b.span = span
}
