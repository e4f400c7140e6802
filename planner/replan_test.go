package planner

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplanTracker_StartsFresh(t *testing.T) {
	tracker := NewReplanTracker()
	assert.False(t, tracker.IsStale())
	assert.Equal(t, ReplanStateFresh, tracker.State())
}

func TestReplanTracker_FullWalk(t *testing.T) {
	tracker := NewReplanTracker()

	// An edit the server did not flag leaves the state unchanged.
	tracker.ObserveEditAck(false)
	assert.False(t, tracker.IsStale())

	tracker.ObserveEditAck(true)
	assert.True(t, tracker.IsStale())
	assert.Equal(t, ReplanStateStale, tracker.State())

	// A non-replan edit while stale does not clear staleness.
	tracker.ObserveEditAck(false)
	assert.True(t, tracker.IsStale())

	// Only a new plan arrival returns the tracker to fresh.
	tracker.ObservePlanArrival()
	assert.False(t, tracker.IsStale())
	assert.Equal(t, ReplanStateFresh, tracker.State())
}

func TestReplanTracker_PlanArrivalWhileFreshIsNoOp(t *testing.T) {
	tracker := NewReplanTracker()
	tracker.ObservePlanArrival()
	assert.False(t, tracker.IsStale())
}

func TestReplanTracker_ConcurrentObservers(t *testing.T) {
	tracker := NewReplanTracker()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			tracker.ObserveEditAck(true)
		}()
		go func() {
			defer wg.Done()
			_ = tracker.IsStale()
		}()
	}
	wg.Wait()

	assert.True(t, tracker.IsStale())
}
