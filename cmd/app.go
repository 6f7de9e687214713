// Package cmd implements the CLI application to play the trading simulator.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stonks"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&playCmd{}, "game")
	c.Register(&pricesCmd{}, "market")
	c.Register(&assetsCmd{}, "market")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", envOr(EnvCurrency, stonks.DefaultCurrency), "Currency used to display amounts (ISO 4217 code)")

// Names of the histories selectable from the command line.
const (
	historyReal  = "real"
	historyChill = "chill"
	historyChaos = "chaos"
)

// HistoryNames lists the values accepted by the -history flag.
var HistoryNames = []string{historyReal, historyChill, historyChaos}

// defaultCash is the initial cash of a session when neither -cash nor STONKS_CASH is set.
const defaultCash = "100000"

// envOr returns the value of the environment variable key, or def if it is unset or empty.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// historyFlags are the flags shared by every command that needs a price history.
type historyFlags struct {
	history string
	min     float64
	max     float64
	seed    int64
	file    string
	path    string
}

func (h *historyFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&h.history, "history", envOr(EnvHistory, historyReal), "Price history: "+strings.Join(HistoryNames, ", "))
	f.Float64Var(&h.min, "min", stonks.DefaultMinMultiplier, "Lowest daily multiplier of the chaos history")
	f.Float64Var(&h.max, "max", stonks.DefaultMaxMultiplier, "Highest daily multiplier of the chaos history")
	f.Int64Var(&h.seed, "seed", stonks.DefaultSeed, "Random seed of the chaos history")
	f.StringVar(&h.file, "file", "", "Replay quotes from a JSON file instead of a built-in history")
	f.StringVar(&h.path, "path", stonks.DefaultReplayPath, "JSONPath selecting the days in -file")
}

// open returns the history selected by the flags.
func (h *historyFlags) open() (stonks.History, error) {
	if h.file != "" {
		return stonks.OpenReplay(h.file, h.path)
	}
	switch strings.ToLower(h.history) {
	case historyReal:
		return stonks.RealHistory(), nil
	case historyChill:
		return stonks.NewChillHistory(), nil
	case historyChaos:
		return stonks.NewChaosHistory(h.min, h.max, h.seed)
	default:
		return nil, fmt.Errorf("unknown history %q, want one of %s", h.history, strings.Join(HistoryNames, ", "))
	}
}

// parseCash parses an initial cash amount.
func parseCash(s string) (decimal.Decimal, error) {
	cash, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid cash amount %q: %w", s, err)
	}
	return cash, nil
}

// displayCurrency returns the validated -currency flag value.
func displayCurrency() (string, error) {
	cur := strings.ToUpper(*currency)
	if err := stonks.ValidateCurrency(cur); err != nil {
		return "", err
	}
	return cur, nil
}

// printMarkdown renders markdown on the terminal, falling back to the raw text.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
