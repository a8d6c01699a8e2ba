package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

type editCmd struct {
	id          string
	company     string
	category    string
	name        string
	specs       specsFlag
	price       string
	description string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "correct the attributes of an item" }
func (*editCmd) Usage() string {
	return `stk edit -id <id> [-c <company>] [-k <category>] [-n <model>] [-spec key=value]... [-p <price>] [-desc <text>]

  Changes only the attributes given. The stock never changes, use 'stk receive'
  or 'stk sell' instead. Giving -spec replaces all the specifications.

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item ID")
	f.StringVar(&c.company, "c", "", "New company")
	f.StringVar(&c.category, "k", "", "New category")
	f.StringVar(&c.name, "n", "", "New model name")
	f.Var(&c.specs, "spec", "Specification as key=value, repeatable")
	f.StringVar(&c.price, "p", "", "New unit price")
	f.StringVar(&c.description, "desc", "", "New description")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usage("-id is required")
	}

	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var patch stock.ItemPatch
	if set["c"] {
		company, err := stock.ParseCompany(c.company)
		if err != nil {
			return usage("%v, valid companies are %v", err, stock.Companies())
		}
		patch.Company = &company
	}
	if set["k"] {
		category, err := stock.ParseCategory(c.category)
		if err != nil {
			return usage("%v, valid categories are %v", err, stock.Categories())
		}
		patch.Category = &category
	}
	if set["n"] {
		patch.Name = &c.name
	}
	if set["p"] {
		price, err := parsePrice(c.price)
		if err != nil {
			return usage("%v", err)
		}
		patch.Price = &price
	}
	if set["desc"] {
		patch.Description = &c.description
	}
	if patch.IsEmpty() && !set["spec"] {
		return usage("nothing to edit")
	}

	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	if set["spec"] || patch.Category != nil {
		item, err := inv.Item(c.id)
		if err != nil {
			return fail(err)
		}
		category, specs := item.Category, item.Specs
		if patch.Category != nil {
			category = *patch.Category
		}
		if set["spec"] {
			specs = stock.Specs(c.specs)
		}
		specs = stock.NormalizeSpecs(category, specs)
		patch.Specs = &specs
	}

	item, err := inv.EditItem(c.id, patch)
	if err != nil {
		return fail(err)
	}
	fmt.Fprintf(stdout, "Updated %s %q\n", item.ID, item.Title())
	return subcommands.ExitSuccess
}
