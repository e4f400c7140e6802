package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Aashiq1/TripGenie-sub000/errors"
	"github.com/Aashiq1/TripGenie-sub000/logger"
	"github.com/Aashiq1/TripGenie-sub000/middleware"
	"github.com/Aashiq1/TripGenie-sub000/planner"
	"github.com/Aashiq1/TripGenie-sub000/services"
	"github.com/Aashiq1/TripGenie-sub000/types"
)

// PlanHandler exposes the reconciled trip-plan view model over HTTP.
type PlanHandler struct {
	planService *services.PlanService
}

// NewPlanHandler creates a new PlanHandler with the given dependencies.
func NewPlanHandler(planService *services.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// UpdateTripRequest is the request body for editing trip fields. Absent
// fields are left untouched on the backend.
type UpdateTripRequest struct {
	Destination       *string  `json:"destination,omitempty"`
	DepartureDate     *string  `json:"departureDate,omitempty"`
	ReturnDate        *string  `json:"returnDate,omitempty"`
	Budget            *float64 `json:"budget,omitempty"`
	AccommodationTier *string  `json:"accommodationTier,omitempty"`
}

// UpdateTripResponseBody echoes the backend's acknowledgment, including
// whether the edit invalidated the existing plan.
type UpdateTripResponseBody struct {
	Group          types.TripEditableFields `json:"group"`
	RequiresReplan bool                     `json:"requiresReplan"`
}

// GetTripDetailsHandler returns the trip snapshot: member roster,
// status, and whether a plan exists.
func (h *PlanHandler) GetTripDetailsHandler(c *gin.Context) {
	groupCode, ok := groupCodeParam(c)
	if !ok {
		return
	}

	details, err := h.planService.GetTripDetails(c.Request.Context(), groupCode)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp := gin.H{
		"groupCode": groupCode,
		"members":   details.GroupData,
		"trip":      details.Trip,
		"hasPlan":   details.TripPlan != nil,
		"status":    details.Status,
	}
	if groups := planner.FlightGroups(details.TripPlan); groups != nil {
		resp["flightGroups"] = groups
	}

	c.JSON(http.StatusOK, resp)
}

// GetPlanViewHandler returns the reconciled plan view for a trip. The
// flight perspective defaults to the authenticated member and can be
// overridden with the member query parameter.
func (h *PlanHandler) GetPlanViewHandler(c *gin.Context) {
	groupCode, ok := groupCodeParam(c)
	if !ok {
		return
	}
	memberEmail := h.memberPerspective(c)

	view, err := h.planService.GetPlanView(c.Request.Context(), groupCode, memberEmail)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// UpdateTripHandler submits an editable-field change and echoes the
// backend's replan acknowledgment.
func (h *PlanHandler) UpdateTripHandler(c *gin.Context) {
	log := logger.GetLogger()

	groupCode, ok := groupCodeParam(c)
	if !ok {
		return
	}

	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	fields := types.TripEditableFields{
		Destination:       req.Destination,
		DepartureDate:     req.DepartureDate,
		ReturnDate:        req.ReturnDate,
		Budget:            req.Budget,
		AccommodationTier: req.AccommodationTier,
	}

	ack, err := h.planService.UpdateTrip(c.Request.Context(), groupCode, fields)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if ack.RequiresReplan {
		log.Infow("Trip update invalidated existing plan", "groupCode", groupCode)
	}

	c.JSON(http.StatusOK, UpdateTripResponseBody{
		Group:          ack.Group,
		RequiresReplan: ack.RequiresReplan,
	})
}

// GeneratePlanHandler triggers plan generation for the group and
// returns the reconciled view of the new plan.
func (h *PlanHandler) GeneratePlanHandler(c *gin.Context) {
	groupCode, ok := groupCodeParam(c)
	if !ok {
		return
	}
	memberEmail := h.memberPerspective(c)

	view, err := h.planService.GeneratePlan(c.Request.Context(), groupCode, memberEmail)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// memberPerspective picks the member whose flight assignment the view
// should carry: explicit query parameter first, authenticated session
// second, otherwise none.
func (h *PlanHandler) memberPerspective(c *gin.Context) string {
	if member := strings.TrimSpace(c.Query("member")); member != "" {
		return member
	}
	return c.GetString(middleware.UserEmailKey)
}

// groupCodeParam validates the :code path parameter. An empty or
// whitespace code is a client error.
func groupCodeParam(c *gin.Context) (string, bool) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		_ = c.Error(apperrors.ValidationFailed("Missing group code", "path parameter :code is required"))
		return "", false
	}
	return code, true
}
