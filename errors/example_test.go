package errors_test

import (
	"fmt"

	"github.com/ledgerspan/ledgerspan/errors"
	"github.com/ledgerspan/ledgerspan/parser"
)

// Example showing how to use TextFormatter for CLI output.
func ExampleTextFormatter() {
	content := "open Assets:Checking\n"
	_, err := parser.Parse("test.bean", content)
	if err == nil {
		return
	}

	formatter := errors.NewTextFormatter(nil)
	fmt.Println(formatter.Format(err.(*parser.Diagnostic), content))
}

// Example showing how to use JSONFormatter for editor/LSP-style consumers.
func ExampleJSONFormatter() {
	content := "open Assets:Checking\n"
	_, err := parser.Parse("test.bean", content)
	if err == nil {
		return
	}

	formatter := errors.NewJSONFormatter()
	fmt.Println(formatter.FormatAll([]*parser.Diagnostic{err.(*parser.Diagnostic)}, content))
	// Output will be a JSON array with structured diagnostic information
}
