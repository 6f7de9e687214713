// Command stonks is a turn-by-turn trading simulator.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/etnz/stonks/cmd"
	"github.com/google/subcommands"
)

func main() {
	log.SetFlags(0)
	cmd.Completion().Complete("stonks")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// unknown subcommands are looked up as stonks-<name> binaries.
	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
