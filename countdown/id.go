package countdown

import (
	"fmt"
	"time"

	"github.com/aBirrueta/Tick/internal/ids"
)

// GenerateID creates a unique 8-character alphanumeric ID from a name
// and timestamp. The ID is derived from a SHA-256 hash of the name
// concatenated with the timestamp.
func GenerateID(name string, timestamp time.Time) string {
	return ids.GenerateWithTimestamp(name, timestamp, ids.DefaultLength)
}

// IDIndex indexes countdown IDs for prefix matching and display.
type IDIndex struct {
	ids []string
}

// NewIDIndex builds an IDIndex from a slice of entities.
func NewIDIndex(entities []Entity) IDIndex {
	entityIDs := make([]string, 0, len(entities))
	for _, entity := range entities {
		entityIDs = append(entityIDs, entity.ID)
	}
	return IDIndex{ids: ids.NormalizeUnique(entityIDs)}
}

// Resolve returns the full countdown ID for a prefix.
func (index IDIndex) Resolve(prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNotFound
	}

	match, found, ambiguous := ids.MatchPrefix(index.ids, prefix)
	if ambiguous {
		return "", fmt.Errorf("%w: %s", ErrAmbiguousIDPrefix, prefix)
	}
	if !found {
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	}

	return match, nil
}

// PrefixLengths returns the shortest unique prefix length for each ID.
func (index IDIndex) PrefixLengths() map[string]int {
	return ids.UniquePrefixLengths(index.ids)
}
