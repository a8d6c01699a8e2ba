package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/stock"
	"github.com/google/subcommands"
)

// movementCmd records stock received (receive) or sold (sell).
type movementCmd struct {
	direction    stock.Direction
	id           string
	quantity     int
	price        string
	counterparty string
	note         string
}

func (c *movementCmd) Name() string {
	if c.direction == stock.Out {
		return "sell"
	}
	return "receive"
}

func (c *movementCmd) Synopsis() string {
	if c.direction == stock.Out {
		return "record stock sold to a customer"
	}
	return "record stock received from a supplier"
}

func (c *movementCmd) Usage() string {
	party := "supplier"
	if c.direction == stock.Out {
		party = "customer"
	}
	return fmt.Sprintf(`stk %s -id <id> -q <quantity> [-p <unit price>] [-party <%s>] [-m <note>]

  Records a %s movement in the ledger and updates the stock. The unit price
  defaults to the catalog price.

`, c.Name(), party, c.direction)
}

func (c *movementCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item ID")
	f.IntVar(&c.quantity, "q", 0, "Quantity, must be positive")
	f.StringVar(&c.price, "p", "", "Unit price of this transaction. Defaults to the catalog price")
	f.StringVar(&c.counterparty, "party", "", "Supplier or customer name")
	f.StringVar(&c.note, "m", "", "Note")
}

func (c *movementCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		return usage("-id is required")
	}
	if c.quantity <= 0 {
		return usage("-q quantity must be positive")
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
	price := item.Price
	if c.price != "" {
		if price, err = parsePrice(c.price); err != nil {
			return usage("%v", err)
		}
	}

	res, err := inv.RecordTransaction(stock.Movement{
		ItemID:       c.id,
		Direction:    c.direction,
		Quantity:     c.quantity,
		UnitPrice:    price,
		Counterparty: c.counterparty,
		Note:         c.note,
	})
	if err != nil {
		return fail(err)
	}
	if res.Shortfall > 0 {
		warn("only %d of %q were in stock, %d missing", item.Stock, item.Title(), res.Shortfall)
	}
	fmt.Fprintf(stdout, "%s %d × %q for %s, stock is now %d\n", res.Entry.Direction, res.Entry.Quantity, res.Entry.ItemName, stock.FormatPrice(res.Entry.Total()), res.Item.Stock)
	return subcommands.ExitSuccess
}
