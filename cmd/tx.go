package cmd

import (
	"context"
	"flag"

	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	id   string
	head int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions, most recent first" }
func (*txCmd) Usage() string {
	return `stk tx [-id <id>] [-head <n>]

  Lists the stock movements of the ledger, most recent first. With -id only the
  movements of one item, even if it was removed from the catalog.

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Only list the transactions of this item")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head < 0 {
		return usage("-head must not be negative")
	}
	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	entries := inv.Entries()
	if c.id != "" {
		entries = inv.EntriesFor(c.id)
	}
	if c.head > 0 && len(entries) > c.head {
		entries = entries[:c.head]
	}
	printMarkdown(renderer.LedgerMarkdown(entries))
	return subcommands.ExitSuccess
}
