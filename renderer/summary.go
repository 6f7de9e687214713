package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stonks"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the state of the session on the current day: positions,
// account values and today's quotes.
func SummaryMarkdown(s *stonks.Simulator, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Day %d, %s", s.Day(), s.Date()))

	doc.H2("Holdings")
	if vals := s.Valuations(); len(vals) == 0 {
		doc.PlainText("(empty)")
	} else {
		rows := make([][]string, 0, len(vals))
		for _, v := range vals {
			rows = append(rows, []string{v.Asset.String(), strconv.FormatInt(v.Quantity, 10), money(v.Value, cur)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Asset", "Quantity", "Value"},
			Rows:   rows,
		})
	}

	doc.H2("Account")
	doc.Table(md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Cash", money(s.Cash(), cur)},
			{"Portfolio Value", money(s.TotalValue(), cur)},
			{"Profit", signed(s.Profit(), cur)},
		},
	})

	doc.H2("Today's Quotes")
	doc.Table(quotesTable(s.Prices(), cur))

	return doc.String()
}

func quotesTable(p stonks.Prices, cur string) md.TableSet {
	var rows [][]string
	for a, price := range p.All() {
		rows = append(rows, []string{a.String(), money(price, cur)})
	}
	return md.TableSet{Header: []string{"Asset", "Price"}, Rows: rows}
}

// AssetsMarkdown lists the tradable assets with their default quotes.
func AssetsMarkdown(cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Tradable Assets")
	doc.Table(quotesTable(stonks.DefaultPrices(), cur))
	return doc.String()
}
