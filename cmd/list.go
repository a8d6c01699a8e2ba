package cmd

import (
	"context"
	"flag"

	"github.com/etnz/stock"
	"github.com/etnz/stock/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	category   string
	spec       string
	search     string
	categories bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the catalog grouped by company" }
func (*listCmd) Usage() string {
	return `stk list [-k <category> [-spec <value>]] [-s <search>] | -categories

  Lists the items of the catalog, grouped by company. -spec filters on the value
  of the primary specification of the category, e.g. 43" for a TV.

`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "k", "", "Only list this category")
	f.StringVar(&c.spec, "spec", "", "Only list items with this primary specification value")
	f.StringVar(&c.search, "s", "", "Only list items whose model or company contains this text")
	f.BoolVar(&c.categories, "categories", false, "Print the number of items per category instead")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter := stock.Filter{Spec: c.spec, Search: c.search}
	if c.category != "" {
		category, err := stock.ParseCategory(c.category)
		if err != nil {
			return usage("%v, valid categories are %v", err, stock.Categories())
		}
		filter.Category = category
	}
	if c.spec != "" && filter.Category == "" {
		return usage("-spec requires -k")
	}

	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	if c.categories {
		printMarkdown(renderer.CategoriesMarkdown(inv.Items()))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.CatalogMarkdown(renderer.NewCatalog(inv.Items(), filter)))
	return subcommands.ExitSuccess
}
