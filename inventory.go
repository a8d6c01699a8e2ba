package stock

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/shopspring/decimal"
)

// Labels written in the ledger for arrivals.
const (
	ArrivalCounterparty = "Inventory Addition"
	NoteInitialStock    = "Initial Stock"
	NoteMerged          = "Added via New Product Wizard (Merged)"
)

// Persister is the persistence port of the Inventory. Store implements it.
type Persister interface {
	LoadCatalog() ([]StockItem, error)
	SaveCatalog([]StockItem) error
	LoadLedger() ([]LedgerEntry, error)
	SaveLedger([]LedgerEntry) error
}

// Inventory owns the catalog and the ledger and applies every intent on both
// atomically. It is safe for concurrent use: intents are serialized.
type Inventory struct {
	mu      sync.Mutex
	catalog *Catalog
	ledger  *Ledger
	store   Persister // nil for an in-memory inventory
	advisor Advisor
	newID   IDGenerator
	now     Clock
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithIDGenerator sets the generator used for item and entry ids.
func WithIDGenerator(g IDGenerator) Option { return func(inv *Inventory) { inv.newID = g } }

// WithClock sets the clock used for timestamps.
func WithClock(c Clock) Option { return func(inv *Inventory) { inv.now = c } }

// WithAdvisor sets the advisory service.
func WithAdvisor(a Advisor) Option { return func(inv *Inventory) { inv.advisor = a } }

// New creates an empty Inventory that persists nothing.
func New(opts ...Option) *Inventory {
	inv := &Inventory{newID: NewUUID, now: systemClock}
	for _, opt := range opts {
		opt(inv)
	}
	inv.catalog = NewCatalog(inv.newID, inv.now)
	inv.ledger = NewLedger(inv.newID, inv.now)
	return inv
}

// Open loads an Inventory from p. When no catalog was ever saved it starts
// from the seed dataset, when no ledger was ever saved it starts empty.
// Every successful mutation is then saved to p.
func Open(p Persister, opts ...Option) (*Inventory, error) {
	inv := New(opts...)
	inv.store = p

	items, err := p.LoadCatalog()
	switch {
	case isNotExist(err):
		log.Println("warning, catalog does not exist, starting from the seed dataset instead")
		items = seedCatalog(inv.now())
	case err != nil:
		return nil, err
	}
	if err := inv.catalog.load(items...); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	entries, err := p.LoadLedger()
	switch {
	case isNotExist(err):
		entries = nil
	case err != nil:
		return nil, err
	}
	if err := inv.ledger.load(entries...); err != nil {
		return nil, fmt.Errorf("invalid ledger: %w", err)
	}
	return inv, nil
}

// Arrival describes incoming stock of a product that may or may not be
// stocked already.
type Arrival struct {
	Company     Company
	Category    Category
	Name        string
	Specs       Specs
	Price       decimal.Decimal
	Quantity    int
	Description string
}

// Movement is an explicit receive (In) or dispatch (Out) of an existing item.
type Movement struct {
	ItemID       string
	Direction    Direction
	Quantity     int
	UnitPrice    decimal.Decimal
	Counterparty string
	Note         string
}

// Result is the outcome of an intent that may move stock.
type Result struct {
	Item      StockItem
	Entry     LedgerEntry // Entry is the appended movement, valid when Recorded.
	Recorded  bool
	Merged    bool // Merged is true when an arrival was folded into an existing item.
	Shortfall int  // Shortfall is the part of an Out quantity that was not in stock.
}

// DescribeNewArrival folds an arrival into the catalog: if an item with the
// same identity exists its stock is increased and its price replaced by the
// arrival's, otherwise a new item is created. In both cases one In movement
// is appended, unless the quantity is zero.
//
// A persistence failure is returned as an error wrapping ErrPersistence
// together with a valid Result.
func (inv *Inventory) DescribeNewArrival(a Arrival) (Result, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if a.Quantity < 0 {
		return Result{}, fmt.Errorf("%w: %d is negative", ErrInvalidQuantity, a.Quantity)
	}
	if a.Price.IsNegative() {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidPrice, a.Price)
	}

	var res Result
	if existing, found := inv.catalog.FindByIdentity(a.Company, a.Category, a.Name, a.Specs); found {
		item, err := inv.catalog.AdjustStock(existing.ID, a.Quantity)
		if err == nil {
			item, err = inv.catalog.SetPrice(existing.ID, a.Price)
		}
		if err != nil {
			inv.catalog.restore(existing)
			return Result{}, err
		}
		res = Result{Item: item, Merged: true}
		if a.Quantity > 0 {
			entry, err := inv.ledger.Append(arrivalDraft(item, a, NoteMerged))
			if err != nil {
				inv.catalog.restore(existing)
				return Result{}, err
			}
			res.Entry, res.Recorded = entry, true
		}
		log.Printf("merge %d of %q into %s", a.Quantity, item.Title(), item.ID)
	} else {
		item, err := inv.catalog.Create(StockItem{
			Company:     a.Company,
			Category:    a.Category,
			Name:        a.Name,
			Specs:       a.Specs,
			Price:       a.Price,
			Stock:       a.Quantity,
			Description: a.Description,
		})
		if err != nil {
			return Result{}, err
		}
		res = Result{Item: item}
		if a.Quantity > 0 {
			entry, err := inv.ledger.Append(arrivalDraft(item, a, NoteInitialStock))
			if err != nil {
				inv.catalog.Remove(item.ID)
				return Result{}, err
			}
			res.Entry, res.Recorded = entry, true
		}
		log.Printf("create %q as %s with %d in stock", item.Title(), item.ID, item.Stock)
	}
	return res, inv.persist(true, res.Recorded)
}

func arrivalDraft(item StockItem, a Arrival, note string) EntryDraft {
	return EntryDraft{
		ItemID:       item.ID,
		ItemName:     item.Name,
		Direction:    In,
		Quantity:     a.Quantity,
		UnitPrice:    a.Price,
		Counterparty: ArrivalCounterparty,
		Note:         note,
	}
}

// RecordTransaction receives or dispatches stock of an existing item and
// appends the matching movement. An Out larger than the stock on hand is not
// an error: the stock drops to zero, the movement keeps the requested
// quantity and Result.Shortfall reports the difference.
func (inv *Inventory) RecordTransaction(m Movement) (Result, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	before, err := inv.catalog.Item(m.ItemID)
	if err != nil {
		return Result{}, err
	}
	draft := EntryDraft{
		ItemID:       before.ID,
		ItemName:     before.Name,
		Direction:    m.Direction,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		Counterparty: m.Counterparty,
		Note:         m.Note,
	}
	if err := draft.validate(); err != nil {
		return Result{}, err
	}

	item, err := inv.catalog.AdjustStock(before.ID, m.Direction.Sign()*m.Quantity)
	if err != nil {
		return Result{}, err
	}
	entry, err := inv.ledger.Append(draft)
	if err != nil {
		inv.catalog.restore(before)
		return Result{}, err
	}
	res := Result{Item: item, Entry: entry, Recorded: true}
	if m.Direction == Out && m.Quantity > before.Stock {
		res.Shortfall = m.Quantity - before.Stock
	}
	log.Printf("%s %d of %q, stock %d -> %d", m.Direction, m.Quantity, item.Title(), before.Stock, item.Stock)
	return res, inv.persist(true, true)
}

// EditItem corrects descriptive attributes of an item. It never touches the
// stock nor the ledger, and never merges items.
func (inv *Inventory) EditItem(id string, patch ItemPatch) (StockItem, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, err := inv.catalog.Edit(id, patch)
	if err != nil {
		return StockItem{}, err
	}
	return item, inv.persist(true, false)
}

// RemoveItem deletes an item from the catalog. Its ledger entries are kept.
// The removal is irreversible, confirming it is the caller's job.
func (inv *Inventory) RemoveItem(id string) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if err := inv.catalog.Remove(id); err != nil {
		return err
	}
	log.Printf("remove %s", id)
	return inv.persist(true, false)
}

// Item returns a copy of the item with this id.
func (inv *Inventory) Item(id string) (StockItem, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.catalog.Item(id)
}

// Items returns a snapshot of the catalog, in catalog order.
func (inv *Inventory) Items() []StockItem {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.catalog.Items()
}

// Entries returns a snapshot of the ledger, most recent first.
func (inv *Inventory) Entries() []LedgerEntry {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.ledger.All()
}

// EntriesFor returns the ledger entries of one item, most recent first. It
// works for removed items too.
func (inv *Inventory) EntriesFor(itemID string) []LedgerEntry {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.ledger.ForItem(itemID)
}

// Save writes both collections, e.g. to persist the seed dataset.
func (inv *Inventory) Save() error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.persist(true, true)
}

// persist saves the collections that changed. It must be called with the lock
// held, after the in-memory mutation succeeded.
func (inv *Inventory) persist(catalog, ledger bool) error {
	if inv.store == nil {
		return nil
	}
	var errs error
	if catalog {
		if err := inv.store.SaveCatalog(inv.catalog.Items()); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if ledger {
		if err := inv.store.SaveLedger(inv.ledger.Chronological()); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, errs)
	}
	return nil
}
