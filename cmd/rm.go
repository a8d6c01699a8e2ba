package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

type rmCmd struct {
	id  string
	yes bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove an item from the catalog" }
func (*rmCmd) Usage() string {
	return `stk rm -id <id> [-y]

  Removes an item from the catalog. Its transactions are kept in the ledger.
  This cannot be undone, stk asks for a confirmation unless -y is given.

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item ID")
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usage("-id is required")
	}
	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	item, err := inv.Item(c.id)
	if err != nil {
		return fail(err)
	}
	if !c.yes && !confirm(fmt.Sprintf("Remove %q (%d in stock)?", item.Title(), item.Stock)) {
		fmt.Fprintln(stdout, "Cancelled")
		return subcommands.ExitSuccess
	}
	if err := inv.RemoveItem(c.id); err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Removed %s %q\n", item.ID, item.Title())
	return subcommands.ExitSuccess
}

// confirm asks a yes/no question on stdin. Anything but yes is a no.
func confirm(question string) bool {
	fmt.Fprintf(stdout, "%s [y/N] ", question)
	answer, _ := bufio.NewReader(stdin).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
