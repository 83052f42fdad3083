package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/ledgerspan/ledgerspan/errors"
	"github.com/ledgerspan/ledgerspan/output"
	"github.com/ledgerspan/ledgerspan/parser"
)

// WatchCmd re-parses and re-reports a file every time it is saved, until
// interrupted.
type WatchCmd struct {
	File string `help:"Ledger input filename to watch." arg:""`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cmd.File); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cmd.File, err)
	}

	styles := output.NewStyles(ctx.Stdout)
	formatter := errors.NewTextFormatter(styles)

	report := func() {
		data, err := os.ReadFile(cmd.File)
		if err != nil {
			printError(ctx.Stderr, styles, err.Error())
			return
		}
		content := string(data)

		file, perr := parser.Parse(cmd.File, content)
		if perr != nil {
			_, _ = fmt.Fprintln(ctx.Stderr, formatter.Format(perr.(*parser.Diagnostic), content))
			printError(ctx.Stderr, styles, "parse error")
			return
		}
		printSuccess(ctx.Stdout, styles, fmt.Sprintf("%d directives", len(file.Directives)))
	}

	report()
	_, _ = fmt.Fprintf(ctx.Stdout, "watching %s for changes (ctrl-c to stop)\n", styles.FilePath(cmd.File))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) {
				report()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, styles, err.Error())
		}
	}
}
