package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	id string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show an item and its transactions" }
func (*showCmd) Usage() string {
	return `stk show -id <id>

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item ID")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.ItemMarkdown(item, inv.EntriesFor(c.id)))
	return subcommands.ExitSuccess
}

type shareCmd struct {
	id  string
	url bool
}

func (*shareCmd) Name() string     { return "share" }
func (*shareCmd) Synopsis() string { return "print a WhatsApp message presenting an item" }
func (*shareCmd) Usage() string {
	return `stk share -id <id> [-url]

  Prints the message, or with -url the wa.me link that opens it in WhatsApp.

`
}

func (c *shareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item ID")
	f.BoolVar(&c.url, "url", false, "Print the wa.me link instead of the text")
}

func (c *shareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if c.url {
		fmt.Fprintln(stdout, renderer.ShareURL(item))
	} else {
		fmt.Fprintln(stdout, renderer.ShareText(item))
	}
	return subcommands.ExitSuccess
}
