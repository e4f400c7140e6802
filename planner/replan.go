package planner

import "sync"

// ReplanState is the staleness of an existing plan relative to the
// trip's current editable fields.
type ReplanState string

const (
	ReplanStateFresh ReplanState = "FRESH" // plan matches current trip fields
	ReplanStateStale ReplanState = "STALE" // a field change was acknowledged as requiring replan
)

// ReplanTracker flags a trip's plan as stale when the planning backend
// acknowledges an edit as replan-requiring, and clears the flag once a
// new plan arrives. The tracker never diffs trip fields itself: which
// edits force a replan is server-side policy, and this layer only
// trusts the explicit acknowledgment.
//
// One tracker is scoped to one displayed trip. The zero value is a
// Fresh tracker ready for use.
type ReplanTracker struct {
	mu    sync.Mutex
	stale bool
}

// NewReplanTracker returns a tracker in the Fresh state.
func NewReplanTracker() *ReplanTracker {
	return &ReplanTracker{}
}

// ObserveEditAck records the backend's acknowledgment of a trip-field
// edit. Only an ack that requires replanning moves the tracker to
// Stale; any other edit leaves the state unchanged.
func (t *ReplanTracker) ObserveEditAck(requiresReplan bool) {
	if !requiresReplan {
		return
	}
	t.mu.Lock()
	t.stale = true
	t.mu.Unlock()
}

// ObservePlanArrival records the successful fetch or generation of a
// new plan for the trip, returning the tracker to Fresh.
func (t *ReplanTracker) ObservePlanArrival() {
	t.mu.Lock()
	t.stale = false
	t.mu.Unlock()
}

// IsStale reports whether the current plan needs regeneration.
func (t *ReplanTracker) IsStale() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stale
}

// State returns the tracker's named state, for logging and responses.
func (t *ReplanTracker) State() ReplanState {
	if t.IsStale() {
		return ReplanStateStale
	}
	return ReplanStateFresh
}
