package countdown

import (
	"encoding/json"
	"fmt"
	"time"
)

// StorageKey is the fixed key the countdown collection is stored under.
const StorageKey = "countdowns"

// QuarantineKey is where an undecodable blob is copied before the
// store is reseeded, so corrupt data is set aside rather than lost.
const QuarantineKey = StorageKey + ".corrupt"

// Store is the durable key/value byte storage the engine persists
// through. Implementations must return ErrKeyNotFound (possibly
// wrapped) from Get when no data exists for the key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}

// encodeEntities serializes the collection as a JSON array, order
// preserved.
func encodeEntities(entities []Entity) ([]byte, error) {
	if entities == nil {
		entities = []Entity{}
	}
	data, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal countdowns: %w", err)
	}
	return data, nil
}

// decodeEntities parses a JSON array of entities. Unknown fields are
// ignored so the format stays forward-tolerant.
func decodeEntities(data []byte) ([]Entity, error) {
	var entities []Entity
	if err := json.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("unmarshal countdowns: %w", err)
	}
	return entities, nil
}

// seedEntities returns the example countdowns used when no prior data
// exists. Both targets are in the future, so they start active.
func seedEntities(now time.Time) []Entity {
	newYear := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())

	seeds := []struct {
		name   string
		note   string
		target time.Time
	}{
		{
			name:   "New Year",
			note:   "Countdown to midnight, January 1st.",
			target: newYear,
		},
		{
			name:   "Thirty days out",
			note:   "An example countdown. Edit or delete it with `tick update` or `tick rm`.",
			target: now.AddDate(0, 0, 30),
		},
	}

	entities := make([]Entity, 0, len(seeds))
	for _, seed := range seeds {
		entities = append(entities, Entity{
			ID:         GenerateID(seed.name, now),
			Name:       seed.name,
			Note:       seed.note,
			TargetDate: seed.target,
			IsActive:   true,
			CreatedAt:  now,
		})
	}
	return entities
}
