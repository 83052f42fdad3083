package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ledgerspan/ledgerspan/errors"
	"github.com/ledgerspan/ledgerspan/output"
	"github.com/ledgerspan/ledgerspan/parser"
)

// DumpCmd re-serializes a parsed file via ast.File.Directives[i].Dump and
// writes the result to stdout, or back to the file after confirmation.
type DumpCmd struct {
	File  FileOrStdin `help:"Ledger input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Write bool        `help:"Write the dump back to the input file instead of stdout (prompts for confirmation)."`
}

func (cmd *DumpCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	dumped := file.DumpAll()

	if dumped != content {
		printError(ctx.Stderr, styles, "dump does not round-trip byte-for-byte; refusing to write")
		return NewCommandError(1)
	}

	if !cmd.Write || cmd.File.Filename == "<stdin>" {
		_, _ = fmt.Fprint(ctx.Stdout, dumped)
		return nil
	}

	confirmed, err := promptYesNo(fmt.Sprintf("Overwrite %s with the dumped output?", cmd.File.DisplayName()))
	if err != nil {
		return err
	}
	if !confirmed {
		printError(ctx.Stderr, styles, "aborted")
		return NewCommandError(1)
	}

	if err := os.WriteFile(cmd.File.Filename, []byte(dumped), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	printSuccess(ctx.Stdout, styles, "wrote "+cmd.File.DisplayName())
	return nil
}

func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool
	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}
	return confirm, nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
