package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

type addCmd struct {
	company     string
	category    string
	name        string
	specs       specsFlag
	price       string
	quantity    int
	description string
	generate    bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add incoming stock of a new or existing product" }
func (*addCmd) Usage() string {
	return `stk add -c <company> -k <category> -n <model> [-spec key=value]... -p <price> -q <quantity> [-desc <text> | -gen]

  Describes a new arrival. If the same product is already stocked (same company,
  category, model name ignoring case, and specifications) the arrival is merged
  into it: its stock increases and its price becomes the new one. Otherwise a
  new item is created. See 'stk topic identity'.

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.company, "c", "", "Company (brand), e.g. Samsung")
	f.StringVar(&c.category, "k", "", "Category, e.g. TV")
	f.StringVar(&c.name, "n", "", "Model name")
	f.Var(&c.specs, "spec", "Specification as key=value, repeatable. See 'stk specs'")
	f.StringVar(&c.price, "p", "", "Unit price")
	f.IntVar(&c.quantity, "q", 0, "Quantity received")
	f.StringVar(&c.description, "desc", "", "Description")
	f.BoolVar(&c.generate, "gen", false, "Generate the description with the AI advisor")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	company, err := stock.ParseCompany(c.company)
	if err != nil {
		return usage("%v, valid companies are %v", err, stock.Companies())
	}
	category, err := stock.ParseCategory(c.category)
	if err != nil {
		return usage("%v, valid categories are %v", err, stock.Categories())
	}
	if c.name == "" {
		return usage("-n model name is required")
	}
	price, err := parsePrice(c.price)
	if err != nil {
		return usage("%v", err)
	}
	if c.quantity < 0 {
		return usage("-q quantity must not be negative")
	}

	inv, closeInv, err := openInventory(ctx)
	if err != nil {
		return fail(err)
	}
	defer closeInv()

	description := c.description
	if c.generate && description == "" {
		description = inv.DescribeProduct(ctx, c.name, category)
		if isFallback(description) {
			warn("%s", description)
			description = ""
		}
	}

	res, err := inv.DescribeNewArrival(stock.Arrival{
		Company:     company,
		Category:    category,
		Name:        c.name,
		Specs:       stock.NormalizeSpecs(category, stock.Specs(c.specs)),
		Price:       price,
		Quantity:    c.quantity,
		Description: description,
	})
	if err != nil {
		return fail(err)
	}

	if res.Merged {
		fmt.Fprintf(stdout, "Merged %d into %s %q, stock is now %d at %s\n", c.quantity, res.Item.ID, res.Item.Title(), res.Item.Stock, stock.FormatPrice(res.Item.Price))
	} else {
		fmt.Fprintf(stdout, "Created %s %q with %d in stock at %s\n", res.Item.ID, res.Item.Title(), res.Item.Stock, stock.FormatPrice(res.Item.Price))
	}
	return subcommands.ExitSuccess
}

// isFallback reports whether a description is one of the fixed messages
// returned when no description could be generated.
func isFallback(description string) bool {
	switch description {
	case stock.FallbackDescription, stock.UnavailableDescribe:
		return true
	}
	return false
}
