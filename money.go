package stock

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code of every price in the inventory.
const Currency = money.INR

// FormatPrice returns the amount in the shop currency, e.g. "₹32,990.00".
func FormatPrice(amount decimal.Decimal) string {
	cur := money.GetCurrency(Currency)
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
