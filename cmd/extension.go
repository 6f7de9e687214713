package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
)

// Environment variables read by stonks and passed on to extensions.
const (
	EnvCash     = "STONKS_CASH"     // default of -cash
	EnvHistory  = "STONKS_HISTORY"  // default of -history
	EnvCurrency = "STONKS_CURRENCY" // default of -currency, set for extensions
)

// extensionPrefix prefixes the name of external commands.
const extensionPrefix = "stonks-"

// RunExtension runs the external stonks-<subcommand> binary found in PATH.
//
// The extension shares the standard streams of stonks and receives the
// display currency in STONKS_CURRENCY. RunExtension returns (true, exitCode)
// if an extension was found, and (false, 0) otherwise.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := extensionPrefix + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	// the explicit value wins over an inherited one.
	cmd.Env = append(os.Environ(), EnvCurrency+"="+*currency)

	return true, exitCode(name, cmd.Run())
}

// exitCode converts the result of an extension run into a process exit code.
func exitCode(name string, err error) int {
	if err == nil {
		return 0
	}
	var exit *exec.ExitError
	if errors.As(err, &exit) && exit.ExitCode() >= 0 {
		return exit.ExitCode()
	}
	// not started, or killed by a signal
	fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
	return 1
}
