package stock

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Specs maps a specification attribute to its value, e.g. "screenSize": `43"`.
type Specs map[string]string

// Clone returns a copy of s. The clone of an empty Specs is nil.
func (s Specs) Clone() Specs {
	if len(s) == 0 {
		return nil
	}
	return maps.Clone(s)
}

// Equal reports whether s and o have the same keys with the same values. A nil
// and an empty Specs are equal.
func (s Specs) Equal(o Specs) bool { return maps.Equal(s, o) }

// Keys returns the attribute names in alphabetical order.
func (s Specs) Keys() []string { return slices.Sorted(maps.Keys(s)) }

// String returns the specs as "key: value" pairs, sorted by key.
func (s Specs) String() string {
	parts := make([]string, 0, len(s))
	for _, k := range s.Keys() {
		parts = append(parts, k+": "+s[k])
	}
	return strings.Join(parts, ", ")
}

// StockItem is a catalog entry: a distinct stocked product variant.
type StockItem struct {
	ID          string
	Company     Company
	Category    Category
	Name        string
	Specs       Specs
	Price       decimal.Decimal // Price is the current unit price.
	Stock       int             // Stock is the quantity on hand, never negative.
	Description string
	LastUpdated time.Time
}

// Identity returns the key that decides whether two descriptions refer to the
// same stocked item.
func (it StockItem) Identity() IdentityKey {
	return NewIdentityKey(it.Company, it.Category, it.Name, it.Specs)
}

// Value returns stock × price.
func (it StockItem) Value() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Stock)))
}

// Title returns the company and model name, e.g. "Samsung Crystal 4K".
func (it StockItem) Title() string {
	return string(it.Company) + " " + it.Name
}

// clone returns a deep copy, so that callers never share the Specs map with
// the catalog.
func (it StockItem) clone() StockItem {
	it.Specs = it.Specs.Clone()
	return it
}

// validate checks the attributes required for a catalog entry.
func (it StockItem) validate() error {
	switch {
	case !it.Company.Valid():
		return fmt.Errorf("%w: company %q", ErrInvalidItem, it.Company)
	case !it.Category.Valid():
		return fmt.Errorf("%w: category %q", ErrInvalidItem, it.Category)
	case strings.TrimSpace(it.Name) == "":
		return fmt.Errorf("%w: name is missing", ErrInvalidItem)
	case it.Price.IsNegative():
		return fmt.Errorf("%w: %s", ErrInvalidPrice, it.Price)
	case it.Stock < 0:
		return fmt.Errorf("%w: stock %d is negative", ErrInvalidQuantity, it.Stock)
	}
	return nil
}

// ItemPatch is a partial update of the descriptive attributes of an item. Nil
// fields are left untouched. Stock is deliberately absent: stock only changes
// through ledger movements.
type ItemPatch struct {
	Company     *Company
	Category    *Category
	Name        *string
	Specs       *Specs
	Price       *decimal.Decimal
	Description *string
}

// apply returns a copy of it with the patch applied.
func (p ItemPatch) apply(it StockItem) StockItem {
	if p.Company != nil {
		it.Company = *p.Company
	}
	if p.Category != nil {
		it.Category = *p.Category
	}
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Specs != nil {
		it.Specs = p.Specs.Clone()
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	return it
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p == ItemPatch{}
}
