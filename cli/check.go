package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/ledgerspan/ledgerspan/errors"
	"github.com/ledgerspan/ledgerspan/output"
	"github.com/ledgerspan/ledgerspan/parser"
)

// CheckCmd parses N files concurrently and reports every diagnostic found.
type CheckCmd struct {
	Files []string `help:"Ledger input filenames." arg:"" optional:""`
}

type checkResult struct {
	filename string
	content  string
	diag     *parser.Diagnostic
}

func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	files := cmd.Files
	if len(files) == 0 {
		return fmt.Errorf("check requires at least one filename")
	}

	runCtx, report := telemetryContext(globals, ctx.Stderr)
	defer report()

	results := make([]checkResult, len(files))
	g, _ := errgroup.WithContext(runCtx)

	for i, filename := range files {
		i, filename := i, filename
		g.Go(func() error {
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("%s: %w", filename, err)
			}
			content := string(data)

			_, perr := parser.ParseContext(runCtx, filename, content)
			results[i] = checkResult{filename: filename, content: content}
			if perr != nil {
				results[i].diag = perr.(*parser.Diagnostic)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	styles := output.NewStyles(ctx.Stdout)
	formatter := errors.NewTextFormatter(styles)

	failed := 0
	for _, r := range results {
		if r.diag == nil {
			printSuccess(ctx.Stdout, styles, r.filename)
			continue
		}
		failed++
		_, _ = fmt.Fprintln(ctx.Stderr, formatter.Format(r.diag, r.content))
		printError(ctx.Stderr, styles, r.filename)
	}

	if failed > 0 {
		return NewCommandError(1)
	}
	return nil
}
