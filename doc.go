// Package stonks simulates a trading portfolio, one day at a time.
//
// The package is made of two parts:
//   - Price histories: a History produces dated quotes for a small, fixed set
//     of assets. ReplayHistory replays recorded quotes, ChillHistory repeats
//     today's quotes forever and ChaosHistory is a seeded random walk.
//   - The Simulator: it pulls one day at a time from a History, holds cash and
//     positions, executes buy and sell orders instantly at the day's quotes, and
//     reports the portfolio value and the profit since the first day.
//
// All amounts are exact decimals. Money only attaches a currency to an amount
// for display.
//
// This package is the foundation of the `stonks` command-line game.
package stonks
