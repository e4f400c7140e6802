package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Aashiq1/TripGenie-sub000/config"
	"github.com/Aashiq1/TripGenie-sub000/handlers"
	"github.com/Aashiq1/TripGenie-sub000/internal/planapi"
	"github.com/Aashiq1/TripGenie-sub000/logger"
	"github.com/Aashiq1/TripGenie-sub000/router"
	"github.com/Aashiq1/TripGenie-sub000/services"
	redisstore "github.com/Aashiq1/TripGenie-sub000/store/redis"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client with TLS in production
	redisOptions := &redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	}
	if cfg.Redis.UseTLS {
		redisOptions.TLSConfig = &tls.Config{
			ServerName: cfg.Redis.Address,
			MinVersion: tls.VersionTLS12,
		}
	}
	redisClient := redis.NewClient(redisOptions)
	defer func() {
		_ = redisClient.Close()
	}()

	// Planning backend client
	plannerClient := planapi.NewClient(
		cfg.Planner.BaseURL,
		cfg.Planner.APIKey,
		planapi.WithTimeout(time.Duration(cfg.Planner.TimeoutSeconds)*time.Second),
	)

	// Services
	planCache := redisstore.NewPlanCache(redisClient)
	planService := services.NewPlanService(
		plannerClient,
		planCache,
		time.Duration(cfg.Planner.CacheTTLSeconds)*time.Second,
	)
	healthService := services.NewHealthService(redisClient, cfg.Server.Version)

	// Router setup
	r := router.SetupRouter(router.Dependencies{
		Config:        cfg,
		PlanHandler:   handlers.NewPlanHandler(planService),
		HealthHandler: handlers.NewHealthHandler(healthService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}
}
