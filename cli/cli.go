// Package cli provides the command implementations for cmd/ledgerspan.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ledgerspan/ledgerspan/output"
	"github.com/ledgerspan/ledgerspan/telemetry"
)

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines flags available to every command.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

// Commands is the kong root command tree.
type Commands struct {
	Globals

	Parse ParseCmd `cmd:"" help:"Parse a file and summarize its directives."`
	Dump  DumpCmd  `cmd:"" help:"Re-serialize a parsed file via Dump."`
	Check CheckCmd `cmd:"" help:"Parse one or more files concurrently and report diagnostics."`
	Lex   LexCmd   `cmd:"" help:"Print the raw token stream from a file."`
	Watch WatchCmd `cmd:"" help:"Re-parse and re-report a file on every save."`
}

// FileOrStdin accepts either a file path or "-" for stdin.
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}

	if filename == "-" || filename == "" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		f.Filename = "<stdin>"
		f.Contents = contents
		return nil
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.Filename = filename
	return nil
}

// EnsureContents populates Contents from stdin when no filename was given.
func (f *FileOrStdin) EnsureContents() error {
	if f.Filename == "" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		f.Filename = "<stdin>"
		f.Contents = contents
	}
	return nil
}

// Content returns the file's source text, reading from disk if it was not
// already captured from stdin.
func (f *FileOrStdin) Content() (string, error) {
	if f.Filename == "<stdin>" {
		return string(f.Contents), nil
	}
	data, err := os.ReadFile(f.Filename)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DisplayName returns the absolute path for a real file, or "<stdin>".
func (f *FileOrStdin) DisplayName() string {
	if f.Filename == "<stdin>" {
		return f.Filename
	}
	abs, err := filepath.Abs(f.Filename)
	if err != nil {
		return f.Filename
	}
	return abs
}

// telemetryContext builds a context carrying a telemetry.Collector when
// globals.Telemetry is set, and a report func to call (typically deferred)
// once the command is done, which prints the collected timings to w.
func telemetryContext(globals *Globals, w io.Writer) (context.Context, func()) {
	ctx := context.Background()
	if !globals.Telemetry {
		return ctx, func() {}
	}
	collector := telemetry.NewTimingCollector()
	ctx = telemetry.WithCollector(ctx, collector)
	return ctx, func() {
		_, _ = fmt.Fprintln(w)
		collector.Report(w)
	}
}

func printSuccess(w io.Writer, styles *output.Styles, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", styles.Success("✓"), message)
}

func printError(w io.Writer, styles *output.Styles, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", styles.Error("✗"), styles.Error(message))
}
