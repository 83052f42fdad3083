// Package ledgerspan parses plain-text double-entry ledger files into a
// span-carrying syntax tree, and renders any node back to text byte-for-
// byte through its Dump method. See ast.File for the parsed representation.
package ledgerspan

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ledgerspan/ledgerspan/ast"
	"github.com/ledgerspan/ledgerspan/parser"
)

// ParseString parses content as a ledger source file named filename. It is
// a pure function of its input, so callers may invoke it concurrently from
// multiple goroutines with no shared mutable state.
func ParseString(content, filename string) (*ast.File, error) {
	return parser.Parse(filename, content)
}

// ParseStringContext is ParseString with a context carrying a
// telemetry.Collector (see telemetry.WithCollector), for callers that want
// lex/parse phase timings.
func ParseStringContext(ctx context.Context, content, filename string) (*ast.File, error) {
	return parser.ParseContext(ctx, filename, content)
}

// ParseFile reads path as UTF-8 and forwards to ParseString. I/O failures
// (missing file, read error, invalid UTF-8) are returned directly rather
// than wrapped in a *parser.Diagnostic, since they precede parsing
// entirely.
func ParseFile(path string) (*ast.File, error) {
	return ParseFileContext(context.Background(), path)
}

// ParseFileContext is ParseFile with a context carrying a
// telemetry.Collector.
func ParseFileContext(ctx context.Context, path string) (*ast.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading %s: not valid UTF-8", path)
	}
	return ParseStringContext(ctx, string(data), path)
}
