package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "ask the AI advisor for business insights" }
func (*insightsCmd) Usage() string {
	return `stk insights

  Asks Gemini for 3 actionable insights on the inventory: brand dominance, low
  stock and missing opportunities. Requires GEMINI_API_KEY.

`
}

func (*insightsCmd) SetFlags(f *flag.FlagSet) {}

func (*insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	printMarkdown(inv.Insights(ctx))
	return subcommands.ExitSuccess
}

type askCmd struct{}

func (*askCmd) Name() string     { return "ask" }
func (*askCmd) Synopsis() string { return "ask the AI advisor a question about the inventory" }
func (*askCmd) Usage() string {
	return `stk ask <question>

  The answer is based strictly on the current inventory. Requires GEMINI_API_KEY.

`
}

func (*askCmd) SetFlags(f *flag.FlagSet) {}

func (*askCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	question := strings.TrimSpace(strings.Join(f.Args(), " "))
	if question == "" {
		return usage("a question is required")
	}
	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	printMarkdown(inv.Ask(ctx, question))
	return subcommands.ExitSuccess
}

type describeCmd struct {
	name     string
	category string
}

func (*describeCmd) Name() string     { return "describe" }
func (*describeCmd) Synopsis() string { return "generate a marketing description of a product" }
func (*describeCmd) Usage() string {
	return `stk describe -n <model> -k <category>

  Requires GEMINI_API_KEY. Use 'stk add -gen' to store it with new stock.

`
}

func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Model name")
	f.StringVar(&c.category, "k", "", "Category")
}

func (c *describeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return usage("-n model name is required")
	}
	category, err := stock.ParseCategory(c.category)
	if err != nil {
		return usage("%v, valid categories are %v", err, stock.Categories())
	}
	// No store needed, the description does not depend on the inventory.
	inv := stock.New(stock.WithAdvisor(newAdvisor(ctx)))
	fmt.Fprintln(stdout, inv.DescribeProduct(ctx, c.name, category))
	return subcommands.ExitSuccess
}
