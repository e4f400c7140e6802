package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Aashiq1/TripGenie-sub000/logger"
	"github.com/Aashiq1/TripGenie-sub000/types"
)

type HealthService struct {
	redisClient *redis.Client
	version     string
	startTime   time.Time
	log         *zap.SugaredLogger
}

func NewHealthService(redisClient *redis.Client, version string) *HealthService {
	return &HealthService{
		redisClient: redisClient,
		version:     version,
		startTime:   time.Now(),
		log:         logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthReport {
	components := make(map[string]types.ComponentHealth)
	overallStatus := types.HealthStatusUp

	redisStatus := h.checkRedis(ctx)
	components["planCache"] = redisStatus
	if redisStatus.Status == types.HealthStatusDown {
		// The cache is an optimization, not a dependency; the service
		// still answers from upstream without it.
		overallStatus = types.HealthStatusDegraded
	}

	return types.HealthReport{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.ComponentHealth {
	if h.redisClient == nil {
		return types.ComponentHealth{
			Status:  types.HealthStatusDegraded,
			Message: "cache not configured",
		}
	}
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.ComponentHealth{
			Status:  types.HealthStatusDown,
			Message: "cache connection failed",
		}
	}
	return types.ComponentHealth{
		Status: types.HealthStatusUp,
	}
}
