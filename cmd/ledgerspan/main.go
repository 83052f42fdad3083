// Command ledgerspan parses, dumps, and checks ledger files from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ledgerspan/ledgerspan/cli"
)

var (
	// Version and CommitSHA are set via ldflags when building.
	Version   = ""
	CommitSHA = ""

	cliStruct struct {
		Version kong.VersionFlag `help:"Show version information"`
		cli.Commands
	}
)

func main() {
	cli.Version = Version
	cli.CommitSHA = CommitSHA

	ctx := kong.Parse(&cliStruct,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("ledgerspan"),
		kong.Description("A span-carrying ledger file parser and dumper."),
		kong.UsageOnError(),
		kong.Bind(&cliStruct.Globals),
	)

	err := ctx.Run()
	if cmdErr, ok := err.(*cli.CommandError); ok {
		os.Exit(cmdErr.ExitCode())
	}
	ctx.FatalIfErrorf(err)
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
