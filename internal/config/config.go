package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"restaurant_dashboard/internal/database"
	"restaurant_dashboard/internal/repositories"
	"restaurant_dashboard/pkg/utils"
)

var (
	ErrInvalidPort     = errors.New("invalid port")
	ErrMissingSecret   = errors.New("JWT_SECRET is required")
	ErrInvalidTimezone = errors.New("invalid timezone")
)

// RedisConfig configures the optional record cache and token store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// Config is the full runtime configuration of the server.
type Config struct {
	Port               string
	LogLevel           string
	LogPretty          bool
	CORSAllowedOrigins []string
	Timezone           string

	Airtable repositories.AirtableConfig
	Redis    RedisConfig
	Database database.Config
	JWT      JWTConfig

	RefreshInterval           time.Duration
	LowStockCriticalThreshold float64
}

// Load reads the configuration from the environment, after loading .env if one exists.
func Load() (*Config, error) {
	if err := utils.LoadEnvFile(); err != nil {
		utils.LogDebug("No .env file loaded", map[string]interface{}{"reason": err.Error()})
	}

	cfg := &Config{
		Port:               utils.Getenv("PORT", "8080"),
		LogLevel:           utils.Getenv("LOG_LEVEL", "info"),
		LogPretty:          utils.GetenvBool("LOG_PRETTY", false),
		CORSAllowedOrigins: splitList(utils.Getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001")),
		Timezone:           utils.Getenv("DASHBOARD_TIMEZONE", "UTC"),
		Airtable: repositories.AirtableConfig{
			Token:   utils.Getenv("AIRTABLE_API_KEY", ""),
			BaseID:  utils.Getenv("AIRTABLE_BASE_ID", ""),
			BaseURL: utils.Getenv("AIRTABLE_BASE_URL", repositories.DefaultAirtableBaseURL),
			Timeout: utils.GetenvDuration("AIRTABLE_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Addr:     utils.Getenv("REDIS_ADDR", ""),
			Password: utils.Getenv("REDIS_PASSWORD", ""),
			DB:       utils.GetenvInt("REDIS_DB", 0),
			CacheTTL: utils.GetenvDuration("CACHE_TTL", 5*time.Minute),
		},
		Database: database.Config{
			Host:     utils.Getenv("DB_HOST", "localhost"),
			Port:     utils.Getenv("DB_PORT", "5432"),
			User:     utils.Getenv("DB_USER", "dashboard_user"),
			Password: utils.Getenv("DB_PASSWORD", ""),
			Name:     utils.Getenv("DB_NAME", ""),
			SSLMode:  utils.Getenv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: utils.Getenv("JWT_SECRET", ""),
			TTL:    utils.GetenvDuration("JWT_TTL", 24*time.Hour),
		},
		RefreshInterval:           utils.GetenvDuration("REFRESH_INTERVAL", 5*time.Minute),
		LowStockCriticalThreshold: utils.GetenvFloat("LOW_STOCK_CRITICAL_THRESHOLD", 5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot default sensibly.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrInvalidPort, c.Port)
	}
	if utils.IsEmpty(c.JWT.Secret) {
		return ErrMissingSecret
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimezone, c.Timezone)
	}
	return nil
}

// Location returns the dashboard timezone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
