// Package countdown implements a collection of countdown timers, each
// counting toward a target instant.
//
// Entities are owned by an Engine, which keeps an active set of the
// timers that are "live" and drives a single shared refresh signal at a
// fixed cadence while any timer is active. The engine persists the
// collection through a Store after every mutation.
//
// The public API mirrors the CLI commands:
//   - Add, Update, Delete, DeleteMany for entity lifecycle
//   - Start, Stop, StopAll for activation
//   - Entities, Get, ActiveIDs, Resolve for querying
//   - Subscribe for change notifications
package countdown

import "time"

// Entity represents a single countdown timer.
type Entity struct {
	// ID is a unique identifier (8-char alphanumeric, derived from the
	// initial name + creation timestamp). Immutable.
	ID string `json:"id"`

	// Name is the display name of the countdown (trimmed, non-empty).
	Name string `json:"name"`

	// Note provides optional context, rendered as markdown in detail
	// views.
	Note string `json:"note,omitempty"`

	// TargetDate is the instant the countdown counts toward.
	TargetDate time.Time `json:"targetDate"`

	// IsActive mirrors membership in the engine's active set. The
	// engine is the only writer of this field.
	IsActive bool `json:"isActive"`

	// CreatedAt is when the countdown was created. Immutable.
	CreatedAt time.Time `json:"createdDate"`
}

// RemainingAt returns the signed time span until the target date.
func (e Entity) RemainingAt(now time.Time) time.Duration {
	return e.TargetDate.Sub(now)
}

// BreakdownAt returns the remaining time decomposed into display
// units. An expired countdown yields the zero Breakdown.
func (e Entity) BreakdownAt(now time.Time) Breakdown {
	return Decompose(e.RemainingAt(now))
}

// HasExpiredAt reports whether the target date is at or before now.
func (e Entity) HasExpiredAt(now time.Time) bool {
	return !e.TargetDate.After(now)
}

// IsInFutureAt reports whether the target date is after now.
func (e Entity) IsInFutureAt(now time.Time) bool {
	return e.TargetDate.After(now)
}
