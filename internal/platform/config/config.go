package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"hrcalc/internal/domain/attendance"
)

type Config struct {
	Addr               string
	Environment        string
	JWTSecret          string
	DefaultShiftStart  string
	Timezone           string
	Currency           string
	LogLevel           string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
	ShutdownTimeout    time.Duration
}

func Load() Config {
	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		Environment:        getEnv("APP_ENV", "development"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		DefaultShiftStart:  getEnv("DEFAULT_SHIFT_START", attendance.DefaultShiftStart),
		Timezone:           getEnv("TIMEZONE", "Local"),
		Currency:           getEnv("CURRENCY", "USD"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// Location resolves Timezone; "Local" and "" mean the process zone.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || tz == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", tz, err)
	}
	return loc, nil
}

func (c Config) AuthEnabled() bool {
	return strings.TrimSpace(c.JWTSecret) != ""
}

func (c Config) Validate() error {
	if _, ok := attendance.ParseClock(c.DefaultShiftStart); !ok {
		return fmt.Errorf("DEFAULT_SHIFT_START must be HH:MM, got %q", c.DefaultShiftStart)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Environment == "production" && !c.AuthEnabled() {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}
