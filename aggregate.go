package stock

import (
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultLowStock is the stock level at or below which an item is reported as
// low on stock.
const DefaultLowStock = 5

// rollupOrder is the display order of the category rollup. Categories not
// listed come after, in enumeration order.
var rollupOrder = []Category{
	TV, Fridge, WashingMachine, AC, Inverter, Battery, WaterFilter, JuicerMixer, Transformer,
}

// TotalUnits returns the sum of the stock of all items.
func TotalUnits(items []StockItem) int {
	total := 0
	for _, it := range items {
		total += it.Stock
	}
	return total
}

// TotalValue returns the sum of stock × price over all items.
func TotalValue(items []StockItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Value())
	}
	return total
}

// LowStock returns the items whose stock is at or below threshold, in catalog
// order.
func LowStock(items []StockItem, threshold int) []StockItem {
	var low []StockItem
	for _, it := range items {
		if it.Stock <= threshold {
			low = append(low, it)
		}
	}
	return low
}

// CategoryStock is the stock of one category.
type CategoryStock struct {
	Category Category
	Stock    int
}

// CategoryRollup sums stock per category. Categories with no stock are
// omitted.
func CategoryRollup(items []StockItem) []CategoryStock {
	sums := make(map[Category]int)
	for _, it := range items {
		sums[it.Category] += it.Stock
	}
	order := slices.Clone(rollupOrder)
	for _, c := range categories {
		if !slices.Contains(order, c) {
			order = append(order, c)
		}
	}
	var rollup []CategoryStock
	for _, c := range order {
		if n := sums[c]; n > 0 {
			rollup = append(rollup, CategoryStock{Category: c, Stock: n})
		}
	}
	return rollup
}

// CompanyStock is the stock and value of one company.
type CompanyStock struct {
	Company Company
	Stock   int
	Value   decimal.Decimal
}

// CompanyRollup sums stock and value per company, in enumeration order.
// Companies with no items are omitted.
func CompanyRollup(items []StockItem) []CompanyStock {
	var rollup []CompanyStock
	for _, c := range companies {
		row := CompanyStock{Company: c, Value: decimal.Zero}
		found := false
		for _, it := range items {
			if it.Company != c {
				continue
			}
			found = true
			row.Stock += it.Stock
			row.Value = row.Value.Add(it.Value())
		}
		if found {
			rollup = append(rollup, row)
		}
	}
	return rollup
}

// Dashboard is the summary of a catalog snapshot.
type Dashboard struct {
	Items      int
	Units      int
	Value      decimal.Decimal
	Threshold  int
	LowStock   []StockItem
	Categories []CategoryStock
	Companies  []CompanyStock
}

// NewDashboard computes the dashboard of items. It is recomputed from scratch
// at every call.
func NewDashboard(items []StockItem, threshold int) Dashboard {
	return Dashboard{
		Items:      len(items),
		Units:      TotalUnits(items),
		Value:      TotalValue(items),
		Threshold:  threshold,
		LowStock:   LowStock(items, threshold),
		Categories: CategoryRollup(items),
		Companies:  CompanyRollup(items),
	}
}
