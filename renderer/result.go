package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/stonks"
	md "github.com/nao1215/markdown"
)

// Verdict returns the closing message for a session outcome.
func Verdict(o stonks.Outcome) string {
	switch o {
	case stonks.Profit:
		return "Stonks! You closed the session with a profit. Sending your details to the tax office }:)"
	case stonks.Loss:
		return "Not stonks! You closed the session with a loss. Oh well, it happens :["
	default:
		return "At least you did not go broke, that is already something."
	}
}

// ResultMarkdown renders the final result of a session.
func ResultMarkdown(s *stonks.Simulator, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Result")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Initial Value", money(s.InitialValue(), cur)},
			{"Final Value", money(s.TotalValue(), cur)},
			{"Profit", signed(s.Profit(), cur)},
		},
	})
	doc.PlainText(Verdict(s.Outcome()))
	return doc.String()
}

// ReportMarkdown renders a complete session report: the last day summary, the trade log and the result.
func ReportMarkdown(s *stonks.Simulator, cur string) string {
	var b strings.Builder
	fmt.Fprintln(&b, SummaryMarkdown(s, cur))
	fmt.Fprintln(&b, TradesMarkdown(s.Trades(), cur))
	fmt.Fprint(&b, ResultMarkdown(s, cur))
	return b.String()
}
