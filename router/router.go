package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aashiq1/TripGenie-sub000/config"
	"github.com/Aashiq1/TripGenie-sub000/handlers"
	"github.com/Aashiq1/TripGenie-sub000/middleware"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config        *config.Config
	PlanHandler   *handlers.PlanHandler
	HealthHandler *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes (no auth)
	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Versioned API Group (v1)
	v1 := r.Group("/v1")
	{
		authRoutes := v1.Group("")
		authRoutes.Use(middleware.AuthMiddleware(&deps.Config.Server))
		{
			tripRoutes := authRoutes.Group("/trips")
			{
				tripRoutes.GET("/:code", deps.PlanHandler.GetTripDetailsHandler)
				tripRoutes.PATCH("/:code", deps.PlanHandler.UpdateTripHandler)
				tripRoutes.GET("/:code/plan", deps.PlanHandler.GetPlanViewHandler)
				tripRoutes.POST("/:code/plan", deps.PlanHandler.GeneratePlanHandler)
			}
		}
	}

	return r
}
