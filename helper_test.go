package stock

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// P is a helper for test to create a price from a const.
func P(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// sequence returns an IDGenerator for tests: prefix-1, prefix-2...
func sequence(prefix string) IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// t0 is the time of the first tick of a ticker.
var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// ticker returns a Clock that advances by one minute at each call.
func ticker() Clock {
	next := t0
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

// newTestInventory creates an inventory saved into kv, with deterministic ids
// and times.
func newTestInventory(kv KV, opts ...Option) (*Inventory, error) {
	opts = append([]Option{WithIDGenerator(sequence("id")), WithClock(ticker())}, opts...)
	return Open(NewStore(kv), opts...)
}

// tv is an arrival of Samsung TVs.
func tv(name, size string, price int64, qty int) Arrival {
	return Arrival{
		Company:  Samsung,
		Category: TV,
		Name:     name,
		Specs:    Specs{SpecScreenSize: size},
		Price:    P(price),
		Quantity: qty,
	}
}
