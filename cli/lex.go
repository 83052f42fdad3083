package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/ledgerspan/ledgerspan/parser"
)

// LexCmd prints the raw token stream from a file, for debugging grammar
// issues without going through the parser.
type LexCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
}

func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	content, err := cmd.File.Content()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	tokens, lerr := parser.Lex(cmd.File.DisplayName(), content)
	if lerr != nil {
		return fmt.Errorf("lex error: %w", lerr)
	}

	for _, tok := range tokens {
		if tok.Type == parser.EOF {
			continue
		}
		_, _ = fmt.Fprintf(ctx.Stdout, "%-10s %d:%d    %q\n",
			tok.Type.String(), tok.Line, tok.Column, tok.Text(content))
	}
	return nil
}
