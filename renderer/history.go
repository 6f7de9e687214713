package renderer

import (
	"bytes"

	"github.com/etnz/stonks"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a price history as a table, one row per day.
func HistoryMarkdown(title string, days []stonks.Day, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)

	header := []string{"Date"}
	for a := range stonks.Assets() {
		header = append(header, a.String())
	}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		row := []string{d.Date.String()}
		for _, price := range d.Prices.All() {
			row = append(row, money(price, cur))
		}
		rows = append(rows, row)
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})
	return doc.String()
}
