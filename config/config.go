// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/Aashiq1/TripGenie-sub000/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minJWTLength = 32
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
	JwtSecretKey   string      `mapstructure:"JWT_SECRET_KEY"`
}

// RedisConfig holds Redis connection details for the raw-plan cache.
type RedisConfig struct {
	Address      string `mapstructure:"ADDRESS"`
	Password     string `mapstructure:"PASSWORD"`
	DB           int    `mapstructure:"DB"`
	UseTLS       bool   `mapstructure:"USE_TLS"`
	PoolSize     int    `mapstructure:"POOL_SIZE"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS"`
}

// PlannerConfig holds connection details for the trip-planning backend.
type PlannerConfig struct {
	// BaseURL is the root URL of the planning API.
	BaseURL string `mapstructure:"BASE_URL"`
	// APIKey authenticates this service against the planning API.
	APIKey string `mapstructure:"API_KEY"`
	// TimeoutSeconds is the HTTP client timeout for planner requests.
	TimeoutSeconds int `mapstructure:"TIMEOUT_SECONDS"`
	// CacheTTLSeconds controls how long fetched raw plans stay cached.
	CacheTTLSeconds int `mapstructure:"CACHE_TTL_SECONDS"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server  ServerConfig  `mapstructure:"SERVER"`
	Redis   RedisConfig   `mapstructure:"REDIS"`
	Planner PlannerConfig `mapstructure:"PLANNER"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, unmarshals into the Config struct, and validates it.
func LoadConfig() (*Config, error) {
	log := logger.GetLogger()
	v := viper.New()

	v.SetDefault("SERVER.ENVIRONMENT", string(EnvDevelopment))
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.POOL_SIZE", 10)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 2)
	v.SetDefault("PLANNER.TIMEOUT_SECONDS", 30)
	v.SetDefault("PLANNER.CACHE_TTL_SECONDS", 300)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := bindEnvVars(v, [][2]string{
		{"SERVER.ENVIRONMENT", "ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.JWT_SECRET_KEY", "JWT_SECRET_KEY"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		{"PLANNER.BASE_URL", "PLANNER_BASE_URL"},
		{"PLANNER.API_KEY", "PLANNER_API_KEY"},
		{"PLANNER.TIMEOUT_SECONDS", "PLANNER_TIMEOUT_SECONDS"},
		{"PLANNER.CACHE_TTL_SECONDS", "PLANNER_CACHE_TTL_SECONDS"},
	})
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"plannerURL", cfg.Planner.BaseURL,
		"redisAddress", cfg.Redis.Address,
	)
	return &cfg, nil
}

// validateConfig enforces the settings a running instance cannot do without.
// Development fills in permissive defaults; production refuses to start
// misconfigured.
func validateConfig(cfg *Config) error {
	if cfg.Server.Environment != EnvDevelopment && cfg.Server.Environment != EnvProduction {
		return fmt.Errorf("invalid environment: %s", cfg.Server.Environment)
	}

	if cfg.Planner.BaseURL == "" {
		if cfg.IsProduction() {
			return fmt.Errorf("PLANNER_BASE_URL is required in production")
		}
		cfg.Planner.BaseURL = "http://localhost:8000"
	}

	if cfg.IsProduction() {
		if cfg.Server.JwtSecretKey == "" {
			return fmt.Errorf("JWT_SECRET_KEY is required in production")
		}
		if len(cfg.Server.JwtSecretKey) < minJWTLength {
			return fmt.Errorf("JWT_SECRET_KEY must be at least %d characters", minJWTLength)
		}
		if len(cfg.Server.AllowedOrigins) == 1 && cfg.Server.AllowedOrigins[0] == "*" {
			return fmt.Errorf("wildcard ALLOWED_ORIGINS is not permitted in production")
		}
	}

	return nil
}
