package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stonks"
	"github.com/etnz/stonks/date"
	"github.com/shopspring/decimal"
)

func newSession(t *testing.T) *stonks.Simulator {
	t.Helper()
	h := &stonks.ChillHistory{Start: date.New(2023, 9, 10)}
	s, err := stonks.NewSimulator(h, decimal.NewFromInt(100000))
	if err != nil {
		t.Fatalf("NewSimulator() error = %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func assertContains(t *testing.T, doc string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(doc, w) {
			t.Errorf("document does not contain %q:\n%s", w, doc)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	s := newSession(t)

	got := SummaryMarkdown(s, "USD")
	assertContains(t, got, "# Day 1, 2023-09-10", "## Holdings", "(empty)", "## Account", "$100,000.00", "LKOH", "$5,896.00")

	if err := s.Buy(stonks.SBER, 4); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	got = SummaryMarkdown(s, "USD")
	assertContains(t, got, "| SBER", "$1,000.00", "$99,000.00")
	if strings.Contains(got, "(empty)") {
		t.Errorf("SummaryMarkdown() reports empty holdings after a buy:\n%s", got)
	}
}

func TestTrade(t *testing.T) {
	s := newSession(t)
	if err := s.Buy(stonks.LKOH, 2); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if err := s.Sell(stonks.LKOH, 1); err != nil {
		t.Fatalf("Sell() error = %v", err)
	}
	trades := s.Trades()

	if got, want := Trade(trades[0], "USD"), "Bought 2 LKOH for $11,792.00"; got != want {
		t.Errorf("Trade() = %q, want %q", got, want)
	}
	if got, want := Trade(trades[1], "USD"), "Sold 1 LKOH for $5,896.00"; got != want {
		t.Errorf("Trade() = %q, want %q", got, want)
	}

	assertContains(t, TradesMarkdown(trades, "USD"), "## Trades", "buy", "sell", "-$11,792.00", "+$5,896.00")
	assertContains(t, TradesMarkdown(nil, "USD"), "No trade.")
}

func TestResultMarkdown(t *testing.T) {
	days := []stonks.Day{}
	for _, price := range []int64{250, 300} {
		p, err := stonks.NewPrices(map[stonks.Asset]decimal.Decimal{
			stonks.LKOH: decimal.NewFromInt(5896),
			stonks.SBER: decimal.NewFromInt(price),
		})
		if err != nil {
			t.Fatalf("NewPrices() error = %v", err)
		}
		days = append(days, stonks.Day{Date: date.New(2023, 9, 10).Add(len(days)), Prices: p})
	}
	h, err := stonks.NewReplayHistory(days...)
	if err != nil {
		t.Fatalf("NewReplayHistory() error = %v", err)
	}
	s, err := stonks.NewSimulator(h, decimal.NewFromInt(1000))
	if err != nil {
		t.Fatalf("NewSimulator() error = %v", err)
	}
	defer s.Close()

	assertContains(t, ResultMarkdown(s, "USD"), "# Result", Verdict(stonks.BreakEven))

	if err := s.Buy(stonks.SBER, 4); err != nil {
		t.Fatalf("Buy() error = %v", err)
	}
	if err := s.AdvanceDay(); err != nil {
		t.Fatalf("AdvanceDay() error = %v", err)
	}
	assertContains(t, ResultMarkdown(s, "USD"), "$1,000.00", "$1,200.00", "+$200.00", Verdict(stonks.Profit))
	assertContains(t, ReportMarkdown(s, "USD"), "# Day 2, 2023-09-11", "## Trades", "# Result")
}

func TestVerdict(t *testing.T) {
	seen := map[string]bool{}
	for _, o := range []stonks.Outcome{stonks.Profit, stonks.BreakEven, stonks.Loss} {
		v := Verdict(o)
		if v == "" || seen[v] {
			t.Errorf("Verdict(%v) = %q, want a distinct message", o, v)
		}
		seen[v] = true
	}
}

func TestHistoryMarkdown(t *testing.T) {
	days := stonks.Take(stonks.RealHistory(), 2)
	got := HistoryMarkdown("Real", days, "USD")
	assertContains(t, got, "# Real", "2023-09-10", "2023-09-11", "$6,669.00", "$256.00")
}

func TestAssetsMarkdown(t *testing.T) {
	assertContains(t, AssetsMarkdown("USD"), "LKOH", "SBER", "$250.00")
}

func TestHTML(t *testing.T) {
	got, err := HTML("a <b>", "# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n")
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	assertContains(t, got, "<title>a &lt;b&gt;</title>", "<h1>Title</h1>", "<table>", "<td>1</td>")
}
