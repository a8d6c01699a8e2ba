package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stock"
	"github.com/etnz/stock/renderer"
	"github.com/etnz/stock/workbook"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	low int
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show stock totals, low stock and stock per category" }
func (*dashboardCmd) Usage() string {
	return `stk dashboard [-low <n>]

  Shows the number of products, the total units in stock, the stock value, the
  items at or below the low stock threshold and the stock per category and
  company. The threshold defaults to the global -low flag.

`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.low, "low", 0, "Low stock threshold")
}

func (c *dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	threshold := lowStock()
	if c.low > 0 {
		threshold = c.low
	}
	printMarkdown(renderer.DashboardMarkdown(stock.NewDashboard(inv.Items(), threshold)))
	return subcommands.ExitSuccess
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the catalog and the ledger to an Excel workbook" }
func (*exportCmd) Usage() string {
	return `stk export -o <file.xlsx>

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "inventory.xlsx", "Output file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	out, err := os.Create(c.output)
	if err != nil {
		return fail(err)
	}
	items, entries := inv.Items(), inv.Entries()
	if err := workbook.Write(out, items, entries); err != nil {
		out.Close()
		return fail(err)
	}
	if err := out.Close(); err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Exported %d items and %d transactions to %s\n", len(items), len(entries), c.output)
	return subcommands.ExitSuccess
}
