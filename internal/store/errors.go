package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every entity-specific not-found error below.
var ErrNotFound = errors.New("not found")

// Sentinel errors returned by repository lookups. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrProductNotFound is returned when no seeded product has the
	// requested ID.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)

	// ErrCustomerNotFound is returned when no seeded customer has the
	// requested ID.
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)

	// ErrSupplierNotFound is returned when no seeded supplier has the
	// requested ID.
	ErrSupplierNotFound = fmt.Errorf("supplier %w", ErrNotFound)

	// ErrNoUserWasFound is returned when no seeded credential pair matches.
	ErrNoUserWasFound = errors.New("no user was found")
)
