package types

import "time"

type TripStatus string

const (
	TripStatusForming   TripStatus = "FORMING"   // Group is still collecting members
	TripStatusPlanning  TripStatus = "PLANNING"  // Inputs collected, plan not yet generated
	TripStatusPlanned   TripStatus = "PLANNED"   // A plan exists for the current trip fields
	TripStatusCompleted TripStatus = "COMPLETED" // Trip has finished
)

// Trip is the group trip as reported by the planning backend.
type Trip struct {
	GroupCode   string     `json:"groupCode"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	StartDate   string     `json:"startDate"` // YYYY-MM-DD, parsed by planner.ParseCalendarDate
	EndDate     string     `json:"endDate"`
	Budget      *float64   `json:"budget,omitempty"`
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Member is a registered participant of a trip group.
type Member struct {
	Email         string `json:"email"`
	Name          string `json:"name"`
	DepartureCity string `json:"departureCity,omitempty"`
	HasSubmitted  bool   `json:"hasSubmitted"`
}

// TripEditableFields is the subset of trip attributes whose change can
// invalidate an existing plan. All fields are optional; only the ones
// present are sent to the planning backend.
type TripEditableFields struct {
	Destination       *string  `json:"destination,omitempty"`
	DepartureDate     *string  `json:"departureDate,omitempty"`
	ReturnDate        *string  `json:"returnDate,omitempty"`
	Budget            *float64 `json:"budget,omitempty"`
	AccommodationTier *string  `json:"accommodationTier,omitempty"`
}

// IsEmpty reports whether no editable field is set.
func (f TripEditableFields) IsEmpty() bool {
	return f.Destination == nil &&
		f.DepartureDate == nil &&
		f.ReturnDate == nil &&
		f.Budget == nil &&
		f.AccommodationTier == nil
}

// String provides a string representation of the status
func (ts TripStatus) String() string {
	return string(ts)
}

// IsValid checks if the status is a known trip status
func (ts TripStatus) IsValid() bool {
	switch ts {
	case TripStatusForming, TripStatusPlanning, TripStatusPlanned, TripStatusCompleted:
		return true
	default:
		return false
	}
}

// IsValidTransition checks if the current status can transition to the
// target status. A replan-requiring edit moves a PLANNED trip back to
// PLANNING; COMPLETED is terminal.
func (ts TripStatus) IsValidTransition(target TripStatus) bool {
	switch ts {
	case TripStatusForming:
		return target == TripStatusPlanning
	case TripStatusPlanning:
		return target == TripStatusPlanned
	case TripStatusPlanned:
		return target == TripStatusPlanning || target == TripStatusCompleted
	case TripStatusCompleted:
		return false
	default:
		return false
	}
}
