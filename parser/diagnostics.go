package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ledgerspan/ledgerspan/ast"
)

// DiagnosticKind classifies a Diagnostic by the phase that produced it.
type DiagnosticKind string

const (
	KindLex           DiagnosticKind = "lex"
	KindSyntax        DiagnosticKind = "syntax"
	KindSemanticLocal DiagnosticKind = "semantic-local"
)

// Diagnostic is a single parse-time problem: a span into the offending
// file, a human-readable message, and the phase that raised it. It is the
// only error type this package returns from parsing entry points.
type Diagnostic struct {
	Kind     DiagnosticKind
	Filename string
	Span     ast.Span
	Pos      ast.Position
	Message  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Snippet renders the diagnostic's source line with a caret under the
// offending column, matching spec.md §4.5's "filename:line:col: message"
// plus caret-annotated source line format.
func (d *Diagnostic) Snippet(content string) string {
	lines := strings.Split(content, "\n")
	if d.Pos.Line < 1 || d.Pos.Line > len(lines) {
		return ""
	}
	line := lines[d.Pos.Line-1]

	col := d.Pos.Column
	if col < 1 {
		col = 1
	}
	if col > len(line)+1 {
		col = len(line) + 1
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteByte('^')
	return b.String()
}

func (d *Diagnostic) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"kind":     d.Kind,
		"filename": d.Filename,
		"line":     d.Pos.Line,
		"column":   d.Pos.Column,
		"message":  d.Message,
	})
}

func newDiagnostic(kind DiagnosticKind, filename, content string, span ast.Span, format string, args ...any) *Diagnostic {
	pos := ast.PositionAt(filename, content, span.Start)
	return &Diagnostic{
		Kind:     kind,
		Filename: filename,
		Span:     span,
		Pos:      pos,
		Message:  fmt.Sprintf(format, args...),
	}
}
