package errors

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerspan/ledgerspan/parser"
)

func TestTextFormatter_FormatWithSnippet(t *testing.T) {
	content := "open Assets:Checking\n"
	_, err := parser.Parse("test.bean", content)
	assert.NotZero(t, err, "expected a parse error")

	diag := err.(*parser.Diagnostic)
	formatter := NewTextFormatter(nil)
	output := formatter.Format(diag, content)

	assert.Contains(t, output, "test.bean:1:1")
	assert.Contains(t, output, "open Assets:Checking")
	assert.Contains(t, output, "^")
}

func TestTextFormatter_FormatNilDiagnostic(t *testing.T) {
	formatter := NewTextFormatter(nil)
	assert.Equal(t, "", formatter.Format(nil, ""))
}

func TestTextFormatter_FormatAllJoinsWithBlankLine(t *testing.T) {
	content := "open Assets:Checking\n"
	_, err := parser.Parse("test.bean", content)
	assert.NotZero(t, err)
	diag := err.(*parser.Diagnostic)

	formatter := NewTextFormatter(nil)
	output := formatter.FormatAll([]*parser.Diagnostic{diag, diag}, content)

	assert.Equal(t, 2, strings.Count(output, "test.bean:1:1"))
	assert.Contains(t, output, "\n\n")
}

func TestJSONFormatter_FormatAllProducesArray(t *testing.T) {
	content := "open Assets:Checking\n"
	_, err := parser.Parse("test.bean", content)
	assert.NotZero(t, err)
	diag := err.(*parser.Diagnostic)

	formatter := NewJSONFormatter()
	output := formatter.FormatAll([]*parser.Diagnostic{diag}, content)

	assert.Contains(t, output, `"filename": "test.bean"`)
	assert.Contains(t, output, `"line": 1`)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(output), "["))
}

func TestJSONFormatter_FormatSingle(t *testing.T) {
	content := "open Assets:Checking\n"
	_, err := parser.Parse("test.bean", content)
	assert.NotZero(t, err)
	diag := err.(*parser.Diagnostic)

	formatter := NewJSONFormatter()
	output := formatter.Format(diag, content)

	assert.Contains(t, output, `"kind":"syntax"`)
}
