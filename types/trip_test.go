package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripStatus_IsValidTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    TripStatus
		to      TripStatus
		allowed bool
	}{
		{name: "forming to planning", from: TripStatusForming, to: TripStatusPlanning, allowed: true},
		{name: "forming cannot skip to planned", from: TripStatusForming, to: TripStatusPlanned, allowed: false},
		{name: "planning to planned", from: TripStatusPlanning, to: TripStatusPlanned, allowed: true},
		{name: "planned back to planning on replan", from: TripStatusPlanned, to: TripStatusPlanning, allowed: true},
		{name: "planned to completed", from: TripStatusPlanned, to: TripStatusCompleted, allowed: true},
		{name: "completed is terminal", from: TripStatusCompleted, to: TripStatusPlanning, allowed: false},
		{name: "unknown status transitions nowhere", from: TripStatus("UNKNOWN"), to: TripStatusPlanning, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.IsValidTransition(tt.to))
		})
	}
}

func TestTripStatus_IsValid(t *testing.T) {
	assert.True(t, TripStatusForming.IsValid())
	assert.True(t, TripStatusCompleted.IsValid())
	assert.False(t, TripStatus("DRAFT").IsValid())
}

func TestTripEditableFields_IsEmpty(t *testing.T) {
	assert.True(t, TripEditableFields{}.IsEmpty())

	dest := "Barcelona"
	assert.False(t, TripEditableFields{Destination: &dest}.IsEmpty())
}
