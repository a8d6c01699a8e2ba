package stock

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator returns a fresh unique identifier at each call.
type IDGenerator func() string

// NewUUID generates time-ordered identifiers (UUID version 7), so ids sort in
// creation order without depending on the clock resolution.
func NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does.
		return uuid.NewString()
	}
	return id.String()
}

// Clock returns the current time. It is injectable for tests.
type Clock func() time.Time

// systemClock returns the current time truncated to the millisecond, the
// resolution kept in the persisted files.
func systemClock() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }
