// Command stk manages the inventory of an electronics shop: its catalog, the
// stock movements and the reports derived from them.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stock/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	cmd.Complete(commander, "stk")

	cmd.LoadEnv()
	flag.Parse()
	cmd.Setup()

	// Unknown subcommands may be provided by an stk-<name> binary.
	if name := flag.Arg(0); name != "" && !cmd.IsCommand(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}
