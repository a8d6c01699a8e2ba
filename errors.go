package stock

import "errors"

// Errors returned by the catalog, the ledger and the inventory. They are
// always wrapped with some context, test them with errors.Is.
var (
	// ErrNotFound is returned when an id does not match any live record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuantity is returned for a negative stock or a non positive
	// movement quantity.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidPrice is returned for a negative price.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidDirection is returned for a movement that is neither IN nor OUT.
	ErrInvalidDirection = errors.New("invalid direction")
	// ErrInvalidItem is returned when required item attributes are missing.
	ErrInvalidItem = errors.New("invalid item")
	// ErrIdentityConflict is returned when an item would share its identity
	// with another live item.
	ErrIdentityConflict = errors.New("identity conflict")
	// ErrUnknownCategory is returned when parsing an unknown category.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownCompany is returned when parsing an unknown company.
	ErrUnknownCompany = errors.New("unknown company")
	// ErrAdvisoryUnavailable is returned by advisors that are not configured or
	// cannot be reached. The Inventory never propagates it.
	ErrAdvisoryUnavailable = errors.New("advisory service unavailable")
	// ErrPersistence is returned when a mutation was applied in memory but
	// could not be saved. The returned values are still valid.
	ErrPersistence = errors.New("persistence failure")
)
