package stock

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a movement adds or removes stock.
type Direction string

const (
	// In is stock received, from a supplier or an inventory addition.
	In Direction = "IN"
	// Out is stock dispatched, usually sold to a customer.
	Out Direction = "OUT"
)

// Valid reports whether d is In or Out.
func (d Direction) Valid() bool { return d == In || d == Out }

// Sign returns +1 for In and -1 for Out.
func (d Direction) Sign() int {
	if d == Out {
		return -1
	}
	return 1
}

func (d Direction) String() string { return string(d) }

// ParseDirection parses "in" or "out", ignoring case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToUpper(strings.TrimSpace(s))); d {
	case In, Out:
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// LedgerEntry is an immutable record of one stock movement.
type LedgerEntry struct {
	ID           string
	ItemID       string
	ItemName     string // ItemName is a snapshot of the item name at the time of the movement.
	Direction    Direction
	Quantity     int
	UnitPrice    decimal.Decimal
	Counterparty string // Counterparty is the supplier on IN, the customer on OUT.
	Note         string
	Timestamp    time.Time
	total        decimal.Decimal
}

// Total returns Quantity × UnitPrice, computed when the entry was appended.
func (e LedgerEntry) Total() decimal.Decimal { return e.total }

// EntryDraft holds the fields of a movement before it is appended. Id,
// timestamp and total are assigned by the ledger.
type EntryDraft struct {
	ItemID       string
	ItemName     string
	Direction    Direction
	Quantity     int
	UnitPrice    decimal.Decimal
	Counterparty string
	Note         string
}

// validate checks the movement fields.
func (d EntryDraft) validate() error {
	switch {
	case !d.Direction.Valid():
		return fmt.Errorf("%w: %q", ErrInvalidDirection, d.Direction)
	case d.Quantity <= 0:
		return fmt.Errorf("%w: %d must be positive", ErrInvalidQuantity, d.Quantity)
	case d.UnitPrice.IsNegative():
		return fmt.Errorf("%w: %s", ErrInvalidPrice, d.UnitPrice)
	case d.ItemID == "":
		return fmt.Errorf("%w: movement without item", ErrInvalidItem)
	}
	return nil
}

// Ledger is the append-only sequence of stock movements.
//
// In a Ledger entries are always in chronological order. There is no way to
// update or delete an entry.
type Ledger struct {
	entries []LedgerEntry
	ids     map[string]struct{}
	newID   IDGenerator
	now     Clock
}

// NewLedger creates an empty ledger. Nil arguments select the defaults:
// NewUUID and the system clock.
func NewLedger(newID IDGenerator, now Clock) *Ledger {
	if newID == nil {
		newID = NewUUID
	}
	if now == nil {
		now = systemClock
	}
	return &Ledger{
		entries: make([]LedgerEntry, 0),
		ids:     make(map[string]struct{}),
		newID:   newID,
		now:     now,
	}
}

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Append records a movement. The timestamp is never earlier than the last
// entry's, so that creation order and timestamp order always agree.
func (l *Ledger) Append(d EntryDraft) (LedgerEntry, error) {
	if err := d.validate(); err != nil {
		return LedgerEntry{}, err
	}
	e := LedgerEntry{
		ID:           l.newID(),
		ItemID:       d.ItemID,
		ItemName:     d.ItemName,
		Direction:    d.Direction,
		Quantity:     d.Quantity,
		UnitPrice:    d.UnitPrice,
		Counterparty: d.Counterparty,
		Note:         d.Note,
		Timestamp:    l.now(),
	}
	if n := len(l.entries); n > 0 && e.Timestamp.Before(l.entries[n-1].Timestamp) {
		e.Timestamp = l.entries[n-1].Timestamp
	}
	if _, exists := l.ids[e.ID]; exists {
		return LedgerEntry{}, fmt.Errorf("generated entry id %q is already used", e.ID)
	}
	e.total = e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
	l.entries = append(l.entries, e)
	l.ids[e.ID] = struct{}{}
	return e, nil
}

// All returns a snapshot of every entry, most recent first. Entries sharing a
// timestamp come in reverse insertion order.
func (l *Ledger) All() []LedgerEntry {
	out := slices.Clone(l.entries)
	slices.Reverse(out)
	return out
}

// ForItem returns the entries of one item, most recent first.
func (l *Ledger) ForItem(itemID string) []LedgerEntry {
	var out []LedgerEntry
	for e := range l.Backward() {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out
}

// Backward returns an iterator over the entries, most recent first.
func (l *Ledger) Backward() iter.Seq[LedgerEntry] {
	return func(yield func(LedgerEntry) bool) {
		for i := len(l.entries) - 1; i >= 0; i-- {
			if !yield(l.entries[i]) {
				return
			}
		}
	}
}

// Chronological returns a snapshot of every entry, oldest first.
func (l *Ledger) Chronological() []LedgerEntry { return slices.Clone(l.entries) }

// load appends previously persisted entries. They are stable sorted by
// timestamp, entries sharing a timestamp keep their relative order.
func (l *Ledger) load(entries ...LedgerEntry) error {
	for _, e := range entries {
		if e.ID == "" {
			return fmt.Errorf("ledger entry without id")
		}
		if _, exists := l.ids[e.ID]; exists {
			return fmt.Errorf("duplicated ledger entry id %q", e.ID)
		}
		d := EntryDraft{e.ItemID, e.ItemName, e.Direction, e.Quantity, e.UnitPrice, e.Counterparty, e.Note}
		if err := d.validate(); err != nil {
			return fmt.Errorf("ledger entry %q: %w", e.ID, err)
		}
		want := e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
		if !e.total.Equal(want) {
			return fmt.Errorf("ledger entry %q: total %s is not %d × %s", e.ID, e.total, e.Quantity, e.UnitPrice)
		}
		l.entries = append(l.entries, e)
		l.ids[e.ID] = struct{}{}
	}
	slices.SortStableFunc(l.entries, func(a, b LedgerEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return nil
}
