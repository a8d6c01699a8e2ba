package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stock"
	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type specsCmd struct {
	category string
}

func (*specsCmd) Name() string     { return "specs" }
func (*specsCmd) Synopsis() string { return "show the specifications asked for each category" }
func (*specsCmd) Usage() string {
	return `stk specs [-k <category>]

`
}

func (c *specsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "k", "", "Only show this category")
}

func (c *specsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	categories := stock.Categories()
	if c.category != "" {
		category, err := stock.ParseCategory(c.category)
		if err != nil {
			return usage("%v, valid categories are %v", err, stock.Categories())
		}
		categories = []stock.Category{category}
	}
	printMarkdown(renderer.SchemaMarkdown(categories...))
	return subcommands.ExitSuccess
}

type suggestCmd struct {
	company  string
	category string
}

func (*suggestCmd) Name() string     { return "suggest" }
func (*suggestCmd) Synopsis() string { return "suggest model names already stocked" }
func (*suggestCmd) Usage() string {
	return `stk suggest -c <company> -k <category>

  Prints up to 5 model names already in the catalog for this company and
  category, to reuse the exact same name when adding stock.

`
}

func (c *suggestCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "c", "", "Company")
	f.StringVar(&c.category, "k", "", "Category")
}

func (c *suggestCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	company, err := stock.ParseCompany(c.company)
	if err != nil {
		return usage("%v, valid companies are %v", err, stock.Companies())
	}
	category, err := stock.ParseCategory(c.category)
	if err != nil {
		return usage("%v, valid categories are %v", err, stock.Categories())
	}

	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	for _, name := range stock.SuggestModels(inv.Items(), company, category) {
		fmt.Fprintln(stdout, name)
	}
	if values := stock.SuggestedValues(category); len(values) > 0 {
		key, _ := stock.PrimarySpecKey(category)
		fmt.Fprintf(stderr, "%s: %v\n", key, values)
	}
	return subcommands.ExitSuccess
}
