package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	history := map[string]complete.Predictor{
		"history": predict.Set(HistoryNames),
		"min":     predict.Something,
		"max":     predict.Something,
		"seed":    predict.Something,
		"file":    predict.Files("*.json"),
		"path":    predict.Something,
	}
	play := map[string]complete.Predictor{
		"cash": predict.Something,
		"html": predict.Files("*.html"),
	}
	prices := map[string]complete.Predictor{
		"n": predict.Something,
	}
	for name, p := range history {
		play[name] = p
		prices[name] = p
	}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"play":     {Flags: play},
			"prices":   {Flags: prices},
			"assets":   {},
			"topic":    {Args: predict.Set{"rules", "histories", "replay", "*"}},
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"RUB", "USD", "EUR", "GBP", "CNY"},
		},
	}
}
