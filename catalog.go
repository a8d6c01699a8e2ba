package stock

import (
	"fmt"
	"iter"
	"slices"

	"github.com/shopspring/decimal"
)

// Catalog is the set of stocked items.
//
// In a Catalog items are always in creation order. The Catalog is not safe for
// concurrent use, the Inventory serializes access to it.
type Catalog struct {
	items    []StockItem
	index    map[string]int         // index items by id
	identity map[IdentityKey]string // index item ids by identity
	newID    IDGenerator
	now      Clock
}

// NewCatalog creates an empty catalog. Nil arguments select the defaults:
// NewUUID and the system clock.
func NewCatalog(newID IDGenerator, now Clock) *Catalog {
	if newID == nil {
		newID = NewUUID
	}
	if now == nil {
		now = systemClock
	}
	return &Catalog{
		items:    make([]StockItem, 0),
		index:    make(map[string]int),
		identity: make(map[IdentityKey]string),
		newID:    newID,
		now:      now,
	}
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Items returns a snapshot of all items in catalog order.
func (c *Catalog) Items() []StockItem {
	out := make([]StockItem, len(c.items))
	for i, it := range c.items {
		out[i] = it.clone()
	}
	return out
}

// All returns an iterator over the items in catalog order. Yielded items are
// copies.
func (c *Catalog) All() iter.Seq[StockItem] {
	return func(yield func(StockItem) bool) {
		for _, it := range c.items {
			if !yield(it.clone()) {
				return
			}
		}
	}
}

// Item returns the item with this id.
func (c *Catalog) Item(id string) (StockItem, error) {
	i, ok := c.index[id]
	if !ok {
		return StockItem{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return c.items[i].clone(), nil
}

// FindByIdentity returns the item matching the description, if any. Company
// and category must match exactly, the name ignoring case and specs
// structurally. It is the only merge-detection rule.
func (c *Catalog) FindByIdentity(company Company, category Category, name string, specs Specs) (StockItem, bool) {
	id, ok := c.identity[NewIdentityKey(company, category, name, specs)]
	if !ok {
		return StockItem{}, false
	}
	return c.items[c.index[id]].clone(), true
}

// Create adds a new item built from attrs. The id and the update time are
// assigned by the catalog, any value in attrs is ignored.
func (c *Catalog) Create(attrs StockItem) (StockItem, error) {
	it := attrs.clone()
	it.ID = c.newID()
	it.LastUpdated = c.now()
	if err := it.validate(); err != nil {
		return StockItem{}, err
	}
	if _, exists := c.index[it.ID]; exists {
		return StockItem{}, fmt.Errorf("%w: generated id %q is already used", ErrIdentityConflict, it.ID)
	}
	key := it.Identity()
	if other, exists := c.identity[key]; exists {
		return StockItem{}, fmt.Errorf("%w: %q is already stocked as %q", ErrIdentityConflict, it.Title(), other)
	}
	c.insert(it)
	return it.clone(), nil
}

// AdjustStock adds delta to the stock of an item. A negative result is clamped
// to zero; it is not an error.
func (c *Catalog) AdjustStock(id string, delta int) (StockItem, error) {
	return c.update(id, func(it *StockItem) error {
		it.Stock = max(0, it.Stock+delta)
		return nil
	})
}

// SetPrice sets the unit price of an item.
func (c *Catalog) SetPrice(id string, price decimal.Decimal) (StockItem, error) {
	if price.IsNegative() {
		return StockItem{}, fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}
	return c.update(id, func(it *StockItem) error {
		it.Price = price
		return nil
	})
}

// Edit applies a patch to the descriptive attributes of an item. An edit
// never merges: if the new identity belongs to another item, the edit fails
// with ErrIdentityConflict.
func (c *Catalog) Edit(id string, patch ItemPatch) (StockItem, error) {
	i, ok := c.index[id]
	if !ok {
		return StockItem{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	old := c.items[i]
	it := patch.apply(old.clone())
	if err := it.validate(); err != nil {
		return StockItem{}, err
	}
	oldKey, newKey := old.Identity(), it.Identity()
	if oldKey != newKey {
		if other, exists := c.identity[newKey]; exists {
			return StockItem{}, fmt.Errorf("%w: %q is already stocked as %q", ErrIdentityConflict, it.Title(), other)
		}
		delete(c.identity, oldKey)
		c.identity[newKey] = id
	}
	it.LastUpdated = c.now()
	c.items[i] = it
	return it.clone(), nil
}

// Remove deletes an item. It is irreversible.
func (c *Catalog) Remove(id string) error {
	i, ok := c.index[id]
	if !ok {
		return fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	delete(c.identity, c.items[i].Identity())
	c.items = slices.Delete(c.items, i, i+1)
	c.reindex()
	return nil
}

// update applies f to the item with this id and refreshes its update time.
func (c *Catalog) update(id string, f func(*StockItem) error) (StockItem, error) {
	i, ok := c.index[id]
	if !ok {
		return StockItem{}, fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	it := c.items[i].clone()
	if err := f(&it); err != nil {
		return StockItem{}, err
	}
	it.LastUpdated = c.now()
	c.items[i] = it
	return it.clone(), nil
}

// restore puts back a previous state of an item, as returned by Item. The
// identity of the item must not have changed since.
func (c *Catalog) restore(it StockItem) {
	if i, ok := c.index[it.ID]; ok {
		c.items[i] = it.clone()
	}
}

// load appends previously persisted items, keeping their ids and times.
func (c *Catalog) load(items ...StockItem) error {
	for _, it := range items {
		if err := it.validate(); err != nil {
			return fmt.Errorf("item %q: %w", it.ID, err)
		}
		if it.ID == "" {
			return fmt.Errorf("%w: item %q has no id", ErrInvalidItem, it.Title())
		}
		if _, exists := c.index[it.ID]; exists {
			return fmt.Errorf("%w: duplicated id %q", ErrIdentityConflict, it.ID)
		}
		if other, exists := c.identity[it.Identity()]; exists {
			return fmt.Errorf("%w: items %q and %q share the identity of %q", ErrIdentityConflict, other, it.ID, it.Title())
		}
		c.insert(it.clone())
	}
	return nil
}

func (c *Catalog) insert(it StockItem) {
	c.items = append(c.items, it)
	c.index[it.ID] = len(c.items) - 1
	c.identity[it.Identity()] = it.ID
}

func (c *Catalog) reindex() {
	clear(c.index)
	for i, it := range c.items {
		c.index[it.ID] = i
	}
}
