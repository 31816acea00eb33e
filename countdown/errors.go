package countdown

import "errors"

var (
	// ErrEmptyName is returned when a countdown name is empty after
	// trimming whitespace.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrNameTooLong is returned when a countdown name exceeds MaxNameLength.
	ErrNameTooLong = errors.New("name exceeds maximum length")

	// ErrNotFound is returned when a countdown with the given ID doesn't exist.
	ErrNotFound = errors.New("countdown not found")

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches multiple countdowns.
	ErrAmbiguousIDPrefix = errors.New("ambiguous countdown ID prefix")

	// ErrKeyNotFound is returned by a Store when no data exists for a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNilStore is returned when an engine is constructed without a store.
	ErrNilStore = errors.New("store must not be nil")
)
