package countdown

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTickInterval is the cadence of the shared refresh signal
// while any countdown is active, roughly 60 notifications per second.
const DefaultTickInterval = time.Second / 60

// Options configures a new engine.
type Options struct {
	// TickInterval is the refresh cadence. Defaults to DefaultTickInterval.
	TickInterval time.Duration

	// Logger receives persistence failure reports. Defaults to a no-op
	// logger.
	Logger *zerolog.Logger

	// Now overrides the clock. Defaults to time.Now.
	Now func() time.Time

	// SkipSeed disables creating example countdowns when no prior
	// data exists.
	SkipSeed bool
}

// Engine owns the countdown collection, the active set, the shared
// tick loop and persistence orchestration.
//
// The engine is the sole writer of both the per-entity IsActive flag
// and the active set; after every operation the two agree. All state
// access is serialized behind one mutex, and persistence writes happen
// outside it so a slow store cannot stall the tick loop.
type Engine struct {
	mu       sync.Mutex
	entities []Entity
	active   map[string]struct{}
	subs     map[int]chan struct{}
	nextSub  int
	closed   bool

	store     Store
	log       zerolog.Logger
	now       func() time.Time
	interval  time.Duration
	done      chan struct{}
	loopDone  chan struct{}
	closeOnce sync.Once
}

// New loads persisted countdowns from the store and starts the tick
// loop. Missing or undecodable data is replaced with the example seed
// set; load problems are logged, never returned. The caller must Close
// the engine when done with it.
func New(store Store, opts Options) (*Engine, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	engine := &Engine{
		active:   make(map[string]struct{}),
		subs:     make(map[int]chan struct{}),
		store:    store,
		log:      logger,
		now:      now,
		interval: interval,
		done:     make(chan struct{}),
		loopDone: make(chan struct{}),
	}

	engine.persist(engine.load(opts.SkipSeed))

	go engine.run()

	return engine, nil
}

// load adopts the persisted collection, reseeding when the blob is
// missing or corrupt, and rebuilds the active set from the persisted
// IsActive flags so the flag/set invariant holds immediately. It runs
// before the tick loop starts and returns the encoded seed data to
// persist, or nil when existing data was adopted.
func (e *Engine) load(skipSeed bool) []byte {
	data, err := e.store.Get(StorageKey)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		return e.reseed(skipSeed)
	case err != nil:
		e.log.Error().Err(err).Msg("read countdowns failed, reseeding")
		return e.reseed(skipSeed)
	}

	entities, err := decodeEntities(data)
	if err != nil {
		e.log.Error().Err(err).Msg("decode countdowns failed, quarantining and reseeding")
		if qerr := e.store.Set(QuarantineKey, data); qerr != nil {
			e.log.Warn().Err(qerr).Msg("quarantine corrupt countdowns failed")
		}
		return e.reseed(skipSeed)
	}

	e.entities = entities
	for _, entity := range entities {
		if entity.IsActive {
			e.active[entity.ID] = struct{}{}
		}
	}
	return nil
}

func (e *Engine) reseed(skipSeed bool) []byte {
	if skipSeed {
		e.entities = nil
		return e.encodeState()
	}

	e.entities = seedEntities(e.now())
	for _, entity := range e.entities {
		if entity.IsActive {
			e.active[entity.ID] = struct{}{}
		}
	}
	return e.encodeState()
}

// run is the shared tick loop. Each wake emits one notification when
// any countdown is active; the loop itself never stops while the
// engine is open, it just produces no visible effect while idle.
func (e *Engine) run() {
	defer close(e.loopDone)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.done:
			return
		case <-ticker.C:
			if e.HasActive() {
				e.notify()
			}
		}
	}
}

// Close cancels the tick loop and waits for it to exit. No
// notifications fire after Close returns. Close is idempotent.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.mu.Lock()
		e.closed = true
		e.mu.Unlock()
		close(e.done)
		<-e.loopDone
	})
}

// Subscribe registers a change-notification channel. The channel
// carries no payload; observers re-read whatever state they need. The
// returned cancel function releases the subscription.
func (e *Engine) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	e.mu.Unlock()

	cancel := func() {
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}
	return ch, cancel
}

// notify emits one zero-payload signal to every subscriber. Sends are
// non-blocking; a subscriber that hasn't drained its previous signal
// misses nothing, since signals are coalescing.
func (e *Engine) notify() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	for _, ch := range e.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// AddOptions configures a new countdown.
type AddOptions struct {
	// Note provides optional context, rendered as markdown in detail
	// views.
	Note string
}

// Add creates a new countdown. If the target date is in the future
// the countdown starts active; an already-expired target is stored
// but activation is skipped.
func (e *Engine) Add(name string, target time.Time, opts AddOptions) (Entity, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return Entity{}, err
	}

	e.mu.Lock()
	now := e.now()

	id := GenerateID(name, now)
	for attempt := 2; e.indexOfLocked(id) >= 0; attempt++ {
		id = GenerateID(fmt.Sprintf("%s#%d", name, attempt), now)
	}

	entity := Entity{
		ID:         id,
		Name:       name,
		Note:       opts.Note,
		TargetDate: target,
		CreatedAt:  now,
	}
	if target.After(now) {
		entity.IsActive = true
		e.active[id] = struct{}{}
	}
	e.entities = append(e.entities, entity)
	data := e.encodeState()
	e.mu.Unlock()

	e.persist(data)
	e.notify()
	return entity, nil
}

// Update replaces the stored countdown with the same ID. The ID and
// creation date are immutable, and the activation state stays owned by
// the engine: the incoming IsActive flag is ignored. Unknown IDs are a
// no-op.
func (e *Engine) Update(updated Entity) error {
	name := strings.TrimSpace(updated.Name)
	if err := ValidateName(name); err != nil {
		return err
	}

	e.mu.Lock()
	idx := e.indexOfLocked(updated.ID)
	if idx < 0 {
		e.mu.Unlock()
		return nil
	}

	stored := &e.entities[idx]
	stored.Name = name
	stored.Note = updated.Note
	stored.TargetDate = updated.TargetDate
	_, active := e.active[stored.ID]
	stored.IsActive = active
	data := e.encodeState()
	e.mu.Unlock()

	e.persist(data)
	e.notify()
	return nil
}

// Delete removes a countdown and its active-set membership. It reports
// whether anything was removed; unknown IDs are a no-op.
func (e *Engine) Delete(id string) bool {
	return e.DeleteMany([]string{id}) > 0
}

// DeleteMany removes multiple countdowns with a single persistence
// write, clearing active-set membership first. Unknown IDs are
// skipped. Returns the number of countdowns removed.
func (e *Engine) DeleteMany(ids []string) int {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}

	e.mu.Lock()
	for id := range idSet {
		delete(e.active, id)
	}

	kept := e.entities[:0]
	removed := 0
	for _, entity := range e.entities {
		if _, drop := idSet[entity.ID]; drop {
			removed++
			continue
		}
		kept = append(kept, entity)
	}
	e.entities = kept

	if removed == 0 {
		e.mu.Unlock()
		return 0
	}

	data := e.encodeState()
	e.mu.Unlock()

	e.persist(data)
	e.notify()
	return removed
}

// Start adds a countdown to the active set and reports whether the ID
// was found. Starting an expired or already-active countdown is
// allowed.
func (e *Engine) Start(id string) bool {
	return e.setActive(id, true)
}

// Stop removes a countdown from the active set and reports whether
// the ID was found.
func (e *Engine) Stop(id string) bool {
	return e.setActive(id, false)
}

func (e *Engine) setActive(id string, active bool) bool {
	e.mu.Lock()
	idx := e.indexOfLocked(id)
	if idx < 0 {
		e.mu.Unlock()
		return false
	}

	if active {
		e.active[id] = struct{}{}
	} else {
		delete(e.active, id)
	}
	e.entities[idx].IsActive = active
	data := e.encodeState()
	e.mu.Unlock()

	e.persist(data)
	e.notify()
	return true
}

// StopAll clears the active set and every IsActive flag with a single
// persistence write.
func (e *Engine) StopAll() {
	e.mu.Lock()
	e.active = make(map[string]struct{})
	for i := range e.entities {
		e.entities[i].IsActive = false
	}
	data := e.encodeState()
	e.mu.Unlock()

	e.persist(data)
	e.notify()
}

// Entities returns a copy of the collection in insertion order.
func (e *Engine) Entities() []Entity {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Entity, len(e.entities))
	copy(out, e.entities)
	return out
}

// Get returns the countdown with the given ID.
func (e *Engine) Get(id string) (Entity, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.indexOfLocked(id)
	if idx < 0 {
		return Entity{}, false
	}
	return e.entities[idx], true
}

// ActiveIDs returns the IDs in the active set, sorted for determinism.
func (e *Engine) ActiveIDs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.active))
	for id := range e.active {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// HasActive reports whether any countdown is active.
func (e *Engine) HasActive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.active) > 0
}

// Len returns the number of countdowns.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entities)
}

// Resolve returns the full countdown ID for a unique prefix.
func (e *Engine) Resolve(prefix string) (string, error) {
	return NewIDIndex(e.Entities()).Resolve(prefix)
}

func (e *Engine) indexOfLocked(id string) int {
	for i := range e.entities {
		if e.entities[i].ID == id {
			return i
		}
	}
	return -1
}

// encodeState serializes the collection. The caller must have
// exclusive access to the entities. An encode failure is logged and
// yields nil, which persist treats as nothing to write.
func (e *Engine) encodeState() []byte {
	data, err := encodeEntities(e.entities)
	if err != nil {
		e.log.Error().Err(err).Msg("encode countdowns failed")
		return nil
	}
	return data
}

// persist writes the encoded collection to the store. Failures are
// logged and swallowed: in-memory state stays authoritative until the
// next successful save.
func (e *Engine) persist(data []byte) {
	if data == nil {
		return
	}
	if err := e.store.Set(StorageKey, data); err != nil {
		e.log.Warn().Err(err).Msg("save countdowns failed")
	}
}
