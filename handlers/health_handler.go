package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashiq1/TripGenie-sub000/services"
	"github.com/Aashiq1/TripGenie-sub000/types"
)

// HealthHandler serves the liveness, readiness, and detailed health
// endpoints.
type HealthHandler struct {
	healthService *services.HealthService
}

func NewHealthHandler(healthService *services.HealthService) *HealthHandler {
	return &HealthHandler{healthService: healthService}
}

// LivenessCheck answers orchestrator liveness probes. It only proves
// the process is serving requests, so no dependencies are checked.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck reports whether the service can serve trip views. A
// degraded cache still counts as ready: views fall through to the
// planning backend.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	report := h.healthService.CheckHealth(c.Request.Context())

	status := http.StatusOK
	if report.Status == types.HealthStatusDown {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}

// DetailedHealth returns the per-component report regardless of
// overall status.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthService.CheckHealth(c.Request.Context()))
}
