package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ledgerspan/ledgerspan/errors"
	"github.com/ledgerspan/ledgerspan/output"
	"github.com/ledgerspan/ledgerspan/parser"
)

// ParseCmd parses a file and prints a directive-count summary.
type ParseCmd struct {
	File FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Tree bool        `help:"Also print a structural repr.Dump of the parsed File."`
}

func (cmd *ParseCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}
	content, err := cmd.File.Content()
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	styles := output.NewStyles(ctx.Stdout)

	runCtx, report := telemetryContext(globals, ctx.Stderr)
	defer report()

	file, perr := parser.ParseContext(runCtx, cmd.File.DisplayName(), content)
	if perr != nil {
		formatter := errors.NewTextFormatter(styles)
		_, _ = fmt.Fprintln(ctx.Stderr, formatter.Format(perr.(*parser.Diagnostic), content))
		printError(ctx.Stderr, styles, "parse error")
		return NewCommandError(1)
	}

	counts := map[string]int{}
	for _, d := range file.Directives {
		counts[d.Kind()]++
	}

	printSuccess(ctx.Stdout, styles, fmt.Sprintf("parsed %d directives from %s", len(file.Directives), styles.FilePath(cmd.File.DisplayName())))
	kinds := maps.Keys(counts)
	slices.Sort(kinds)
	for _, kind := range kinds {
		_, _ = fmt.Fprintf(ctx.Stdout, "  %-12s %d\n", kind, counts[kind])
	}

	if cmd.Tree {
		_, _ = fmt.Fprintln(ctx.Stdout, repr.String(file, repr.Indent("  ")))
	}

	return nil
}
