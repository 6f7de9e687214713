package cmd

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/stonks"
	"github.com/etnz/stonks/renderer"
	"github.com/google/subcommands"
)

//go:embed banner.txt
var banner string

// playCmd holds the flags for the 'play' subcommand.
type playCmd struct {
	historyFlags
	cash string
	html string
}

func (*playCmd) Name() string     { return "play" }
func (*playCmd) Synopsis() string { return "play an interactive trading session" }
func (*playCmd) Usage() string {
	return `stonks play [-history real|chill|chaos] [-cash <amount>] [-html <file>]

  Starts a trading session. Every day you can buy and sell assets at the
  day's prices, then end the day to move on to the next quotes.
  The session stops when you quit or when the history runs out.
`
}

func (c *playCmd) SetFlags(f *flag.FlagSet) {
	c.historyFlags.SetFlags(f)
	f.StringVar(&c.cash, "cash", envOr(EnvCash, defaultCash), "Initial cash")
	f.StringVar(&c.html, "html", "", "Write the session report as HTML to this file")
}

func (c *playCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cur, err := displayCurrency()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	cash, err := parseCash(c.cash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	h, err := c.open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		return subcommands.ExitUsageError
	}
	sim, err := stonks.NewSimulator(h, cash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting the session: %v\n", err)
		return subcommands.ExitFailure
	}
	defer sim.Close()

	g := &game{sim: sim, cur: cur, in: bufio.NewScanner(os.Stdin), out: os.Stdout, show: printMarkdown}
	if err := g.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.html != "" {
		if err := writeReport(c.html, sim, cur); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report %q: %v\n", c.html, err)
			return subcommands.ExitFailure
		}
		log.Printf("session report written to %q", c.html)
	}
	return subcommands.ExitSuccess
}

// writeReport writes the HTML report of a session.
func writeReport(filename string, sim *stonks.Simulator, cur string) error {
	page, err := renderer.HTML("Stonks session", renderer.ReportMarkdown(sim, cur))
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(page), 0644)
}

const menu = `
What do you want to do?
1. Buy an asset
2. Sell an asset
3. End the day
4. Stop trading and quit
> `

// game is an interactive session on a simulator.
type game struct {
	sim  *stonks.Simulator
	cur  string
	in   *bufio.Scanner
	out  io.Writer
	show func(markdown string)
}

// run plays turns until the user quits, the input ends or the history runs out.
func (g *game) run() error {
	fmt.Fprintln(g.out, banner)
	fmt.Fprintln(g.out, "Welcome to the trading simulator!")
	fmt.Fprintln(g.out, "Try not to go broke on the first day :>")

	for {
		g.show(renderer.SummaryMarkdown(g.sim, g.cur))
		stop, err := g.turn()
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	g.show(renderer.ResultMarkdown(g.sim, g.cur))
	return nil
}

// turn reads and executes one menu choice. It reports whether the session is over.
func (g *game) turn() (stop bool, err error) {
	choice, err := g.ask(menu)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	switch choice {
	case "1":
		return g.order("buy", g.sim.Buy)
	case "2":
		return g.order("sell", g.sim.Sell)
	case "3":
		err := g.sim.AdvanceDay()
		if errors.Is(err, stonks.ErrEndOfHistory) {
			fmt.Fprintln(g.out, "The price history is over, the market is closed.")
			return true, nil
		}
		return false, err
	case "4":
		return true, nil
	default:
		fmt.Fprintln(g.out, "Invalid choice, try again.")
		return false, nil
	}
}

// order asks for an asset and a quantity and passes them to place.
func (g *game) order(verb string, place func(stonks.Asset, int64) error) (stop bool, err error) {
	name, err := g.ask(fmt.Sprintf("Which asset do you want to %s? ", verb))
	if err != nil {
		return errors.Is(err, io.EOF), ignoreEOF(err)
	}
	quantity, err := g.askInt("How many? ")
	if err != nil {
		return errors.Is(err, io.EOF), ignoreEOF(err)
	}

	asset, err := stonks.ParseAsset(name)
	if err == nil {
		err = place(asset, quantity)
	}
	if err != nil {
		fmt.Fprintf(g.out, "Error: %v\n", err)
		return false, nil
	}
	trades := g.sim.Trades()
	fmt.Fprintln(g.out, renderer.Trade(trades[len(trades)-1], g.cur))
	return false, nil
}

// ask prints a prompt and reads a trimmed line. It returns io.EOF when the input is exhausted.
func (g *game) ask(prompt string) (string, error) {
	fmt.Fprint(g.out, prompt)
	if !g.in.Scan() {
		if err := g.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(g.in.Text()), nil
}

// askInt prompts until the user types an integer.
func (g *game) askInt(prompt string) (int64, error) {
	for {
		line, err := g.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseInt(line, 10, 64)
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(g.out, "Invalid input, try again. A number is needed!")
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
