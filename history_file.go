package stonks

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/stonks/date"
	"github.com/shopspring/decimal"
)

// DefaultReplayPath is the JSONPath of the day array in a price file.
const DefaultReplayPath = "$.days"

// LoadReplay decodes a replay history from a JSON document.
//
// path is a JSONPath expression selecting the array of days inside the
// document, DefaultReplayPath if empty. Each day is an object like:
//
//	{"date": "2023-09-10", "prices": {"LKOH": 6669, "SBER": "255.5"}}
//
// Prices can be JSON numbers or strings, they are decoded without loss of precision.
func LoadReplay(r io.Reader, path string) (*ReplayHistory, error) {
	if path == "" {
		path = DefaultReplayPath
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid price file: %w", err)
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	rows, ok := selected.([]any)
	if !ok {
		return nil, fmt.Errorf("path %q does not select an array of days", path)
	}

	days := make([]Day, 0, len(rows))
	for i, row := range rows {
		d, err := decodeDay(row)
		if err != nil {
			return nil, fmt.Errorf("day #%d: %w", i, err)
		}
		days = append(days, d)
	}
	return NewReplayHistory(days...)
}

// OpenReplay loads a replay history from a JSON file, see LoadReplay.
func OpenReplay(filename, path string) (*ReplayHistory, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h, err := LoadReplay(f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return h, nil
}

func decodeDay(row any) (Day, error) {
	obj, ok := row.(map[string]any)
	if !ok {
		return Day{}, fmt.Errorf("want an object got %T", row)
	}

	str, ok := obj["date"].(string)
	if !ok {
		return Day{}, fmt.Errorf("missing date")
	}
	on, err := date.Parse(str)
	if err != nil {
		return Day{}, err
	}

	raw, ok := obj["prices"].(map[string]any)
	if !ok {
		return Day{}, fmt.Errorf("%v: missing prices", on)
	}
	quotes := make(map[Asset]decimal.Decimal, len(raw))
	for symbol, v := range raw {
		a, err := ParseAsset(symbol)
		if err != nil {
			return Day{}, fmt.Errorf("%v: %w", on, err)
		}
		price, err := decodePrice(v)
		if err != nil {
			return Day{}, fmt.Errorf("%v: %s: %w", on, a, err)
		}
		quotes[a] = price
	}
	prices, err := NewPrices(quotes)
	if err != nil {
		return Day{}, fmt.Errorf("%v: %w", on, err)
	}
	return Day{Date: on, Prices: prices}, nil
}

func decodePrice(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case json.Number:
		return decimal.NewFromString(x.String())
	case string:
		return decimal.NewFromString(x)
	default:
		return decimal.Zero, fmt.Errorf("%w: want a number got %T", ErrInvalidPrice, v)
	}
}
