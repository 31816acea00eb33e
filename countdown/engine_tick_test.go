package countdown

import (
	"testing"
	"time"
)

// drainCount receives from ch until the deadline and returns how many
// signals arrived.
func drainCount(ch <-chan struct{}, window time.Duration) int {
	deadline := time.After(window)
	count := 0
	for {
		select {
		case <-ch:
			count++
		case <-deadline:
			return count
		}
	}
}

func TestTickLoopIdleEmitsNothing(t *testing.T) {
	engine, _ := newTestEngine(t)

	ch, cancel := engine.Subscribe()
	defer cancel()

	if count := drainCount(ch, 100*time.Millisecond); count != 0 {
		t.Errorf("idle engine emitted %d notifications, want 0", count)
	}
}

func TestTickLoopActiveEmits(t *testing.T) {
	store := newMemStore()
	engine, err := New(store, Options{Now: fixedNow, SkipSeed: true, TickInterval: 2 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer engine.Close()

	ch, cancel := engine.Subscribe()
	defer cancel()

	if _, err := engine.Add("Trip", fixedNow().Add(time.Hour), AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Allow generous scheduling slack: at 2ms cadence a 300ms window
	// carries ~150 ticks.
	if count := drainCount(ch, 300*time.Millisecond); count < 20 {
		t.Errorf("active engine emitted %d notifications over 300ms, want >= 20", count)
	}
}

func TestTickLoopStopsEmittingWhenIdleAgain(t *testing.T) {
	store := newMemStore()
	engine, err := New(store, Options{Now: fixedNow, SkipSeed: true, TickInterval: 2 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer engine.Close()

	entity, _ := engine.Add("Trip", fixedNow().Add(time.Hour), AddOptions{})

	ch, cancel := engine.Subscribe()
	defer cancel()
	engine.Stop(entity.ID)

	// Drain the synchronous mutation notification plus any tick that
	// was already in flight, then expect silence.
	drainCount(ch, 20*time.Millisecond)
	if count := drainCount(ch, 100*time.Millisecond); count != 0 {
		t.Errorf("idle engine emitted %d notifications, want 0", count)
	}
}

func TestMutationNotifiesSynchronously(t *testing.T) {
	engine, _ := newTestEngine(t)

	ch, cancel := engine.Subscribe()
	defer cancel()

	// Past target: no tick activity, so any signal is the mutation's.
	if _, err := engine.Add("Already passed", fixedNow().Add(-time.Minute), AddOptions{}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("mutation did not notify")
	}
}

func TestNoNotificationsAfterClose(t *testing.T) {
	store := newMemStore()
	engine, err := New(store, Options{Now: fixedNow, SkipSeed: true, TickInterval: 2 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ch, cancel := engine.Subscribe()
	defer cancel()

	engine.Add("Trip", fixedNow().Add(time.Hour), AddOptions{})
	engine.Close()

	// Drain anything emitted before teardown completed.
	drainCount(ch, 20*time.Millisecond)
	if count := drainCount(ch, 100*time.Millisecond); count != 0 {
		t.Errorf("closed engine emitted %d notifications, want 0", count)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	engine, _ := newTestEngine(t)
	engine.Close()
	engine.Close()
}

func TestSubscribeCancel(t *testing.T) {
	store := newMemStore()
	engine, err := New(store, Options{Now: fixedNow, SkipSeed: true, TickInterval: 2 * time.Millisecond})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer engine.Close()

	ch, cancel := engine.Subscribe()
	engine.Add("Trip", fixedNow().Add(time.Hour), AddOptions{})
	cancel()

	drainCount(ch, 20*time.Millisecond)
	if count := drainCount(ch, 50*time.Millisecond); count != 0 {
		t.Errorf("cancelled subscription received %d notifications", count)
	}
}

func TestMultipleSubscribers(t *testing.T) {
	engine, _ := newTestEngine(t)

	first, cancelFirst := engine.Subscribe()
	defer cancelFirst()
	second, cancelSecond := engine.Subscribe()
	defer cancelSecond()

	engine.Add("Already passed", fixedNow().Add(-time.Minute), AddOptions{})

	for name, ch := range map[string]<-chan struct{}{"first": first, "second": second} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Errorf("%s subscriber missed the notification", name)
		}
	}
}
