package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stonks"
	"github.com/etnz/stonks/renderer"
	"github.com/google/subcommands"
)

// pricesCmd holds the flags for the 'prices' subcommand.
type pricesCmd struct {
	historyFlags
	days int
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "display the first days of a price history" }
func (*pricesCmd) Usage() string {
	return `stonks prices [-history real|chill|chaos] [-n <days>]

  Displays the quotes of the first days of a price history.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	c.historyFlags.SetFlags(f)
	f.IntVar(&c.days, "n", 10, "Number of days to display")
}

func (c *pricesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := displayCurrency()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.days <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive, got %d\n", c.days)
		return subcommands.ExitUsageError
	}
	h, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.HistoryMarkdown(c.title(h), stonks.Take(h, c.days), cur))
	return subcommands.ExitSuccess
}

// title names the selected history, with its period when it is finite.
func (c *pricesCmd) title(h stonks.History) string {
	name := fmt.Sprintf("Prices of the %s history", c.history)
	if c.file != "" {
		name = fmt.Sprintf("Prices from %s", c.file)
	}
	if r, ok := h.(*stonks.ReplayHistory); ok && r.Len() > 0 {
		first, last := r.Period()
		name += fmt.Sprintf(" (%s to %s)", first, last)
	}
	return name
}
