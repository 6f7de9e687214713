package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/stonks"
	md "github.com/nao1215/markdown"
)

// Trade renders a trade to a string.
func Trade(t stonks.Trade, cur string) string {
	switch t.Side {
	case stonks.SideBuy:
		return fmt.Sprintf("Bought %d %s for %s", t.Quantity, t.Asset, money(t.Amount, cur))
	case stonks.SideSell:
		return fmt.Sprintf("Sold %d %s for %s", t.Quantity, t.Asset, money(t.Amount, cur))
	default:
		return string(t.Side)
	}
}

// TradesMarkdown renders the trade log.
func TradesMarkdown(trades []stonks.Trade, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Trades")
	if len(trades) == 0 {
		doc.PlainText("No trade.")
		return doc.String()
	}

	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			t.Date.String(),
			string(t.Side),
			t.Asset.String(),
			strconv.FormatInt(t.Quantity, 10),
			money(t.Price, cur),
			signed(t.CashFlow(), cur),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Side", "Asset", "Quantity", "Price", "Cash Flow"},
		Rows:   rows,
	})
	return doc.String()
}
