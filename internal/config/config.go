package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Refresh  RefreshConfig
	Scope    ScopeConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// UpstreamConfig holds the attendance backend connection settings
type UpstreamConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// RefreshConfig holds snapshot refresh timings
type RefreshConfig struct {
	Interval     time.Duration
	LiveInterval time.Duration
}

// ScopeConfig holds the default upstream filter scope. Centre, department,
// designation and role selections narrow the snapshot server-side.
type ScopeConfig struct {
	CentreIDs      []string
	DepartmentIDs  []string
	DesignationIDs []string
	RoleIDs        []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	upstreamTimeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT: %w", err)
	}

	config.Upstream = UpstreamConfig{
		BaseURL: getEnv("UPSTREAM_BASE_URL", ""),
		Token:   getEnv("UPSTREAM_TOKEN", ""),
		Timeout: upstreamTimeout,
	}

	refreshInterval, err := time.ParseDuration(getEnv("REFRESH_INTERVAL", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}

	liveInterval, err := time.ParseDuration(getEnv("LIVE_TICK_INTERVAL", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LIVE_TICK_INTERVAL: %w", err)
	}

	config.Refresh = RefreshConfig{
		Interval:     refreshInterval,
		LiveInterval: liveInterval,
	}

	config.Scope = ScopeConfig{
		CentreIDs:      getEnvSlice("SCOPE_CENTRE_IDS"),
		DepartmentIDs:  getEnvSlice("SCOPE_DEPARTMENT_IDS"),
		DesignationIDs: getEnvSlice("SCOPE_DESIGNATION_IDS"),
		RoleIDs:        getEnvSlice("SCOPE_ROLE_IDS"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL is required")
	}
	if c.Refresh.Interval < time.Second {
		return fmt.Errorf("REFRESH_INTERVAL must be at least 1s")
	}
	if c.Refresh.LiveInterval < time.Second {
		return fmt.Errorf("LIVE_TICK_INTERVAL must be at least 1s")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
