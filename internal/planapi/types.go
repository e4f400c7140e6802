package planapi

import (
	"github.com/Aashiq1/TripGenie-sub000/types"
)

// TripDetails is the planning backend's combined trip snapshot: the
// member roster plus whatever plan currently exists. TripPlan is nil
// until the backend has generated one.
type TripDetails struct {
	GroupData []types.Member    `json:"group_data"`
	Trip      *types.Trip       `json:"trip,omitempty"`
	TripPlan  types.RawTripPlan `json:"trip_plan,omitempty"`
	Status    string            `json:"status"`
}

// UpdateTripResponse acknowledges an editable-field update. The backend
// owns the rule for which edits invalidate an existing plan and echoes
// its decision in RequiresReplan; this service never re-derives it.
type UpdateTripResponse struct {
	Group          types.TripEditableFields `json:"group"`
	RequiresReplan bool                     `json:"requires_replan"`
}

// planResponse is the wire shape of plan fetch/generate responses. The
// backend reports failures in-band as an error field alongside a 200 in
// some versions, so both paths are checked.
type planResponse struct {
	Plan  types.RawTripPlan `json:"plan,omitempty"`
	Error string            `json:"error,omitempty"`
}
