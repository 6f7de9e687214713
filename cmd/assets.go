package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stonks/renderer"
	"github.com/google/subcommands"
)

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the tradable assets" }
func (*assetsCmd) Usage() string {
	return `stonks assets

  Lists the tradable assets and their default prices.
`
}
func (*assetsCmd) SetFlags(f *flag.FlagSet) {}

func (*assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := displayCurrency()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.AssetsMarkdown(cur))
	return subcommands.ExitSuccess
}
