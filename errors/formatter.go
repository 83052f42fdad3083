// Package errors renders parser.Diagnostic values for different consumers:
// TextFormatter for command-line output (the "file:line:col: message" form
// from spec.md §4.5, with a caret-annotated source snippet), JSONFormatter
// for editor/LSP-style structured consumers.
package errors

import (
	"bytes"
	"encoding/json"

	"github.com/ledgerspan/ledgerspan/output"
	"github.com/ledgerspan/ledgerspan/parser"
)

// Formatter renders one or more diagnostics to a display string.
type Formatter interface {
	Format(d *parser.Diagnostic, content string) string
	FormatAll(ds []*parser.Diagnostic, content string) string
}

// TextFormatter renders diagnostics in the "file:line:col: message" form
// followed by a caret-annotated source snippet, optionally styled via
// output.Styles.
type TextFormatter struct {
	styles *output.Styles
}

// NewTextFormatter creates a TextFormatter. styles may be nil, in which
// case output is unstyled plain text.
func NewTextFormatter(styles *output.Styles) *TextFormatter {
	return &TextFormatter{styles: styles}
}

func (tf *TextFormatter) Format(d *parser.Diagnostic, content string) string {
	if d == nil {
		return ""
	}

	header := d.Error()
	if tf.styles != nil {
		header = tf.styles.Error(header)
	}

	snippet := d.Snippet(content)
	if snippet == "" {
		return header
	}
	return header + "\n" + snippet
}

func (tf *TextFormatter) FormatAll(ds []*parser.Diagnostic, content string) string {
	var buf bytes.Buffer
	for i, d := range ds {
		buf.WriteString(tf.Format(d, content))
		if i < len(ds)-1 {
			buf.WriteString("\n\n")
		}
	}
	return buf.String()
}

// JSONFormatter renders diagnostics as JSON, one object per diagnostic.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter { return &JSONFormatter{} }

func (jf *JSONFormatter) Format(d *parser.Diagnostic, content string) string {
	data, _ := json.Marshal(d)
	return string(data)
}

func (jf *JSONFormatter) FormatAll(ds []*parser.Diagnostic, content string) string {
	data, _ := json.MarshalIndent(ds, "", "  ")
	return string(data)
}
