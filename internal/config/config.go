package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port                  string
	Origin                string
	Environment           string
	LogLevel              string
	TicketSecret          string
	TicketExpirationHours int
	SessionCacheSize      int
	CountdownTick         time.Duration
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	ticketExpHours, err := strconv.Atoi(getEnv("TICKET_EXPIRATION_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid TICKET_EXPIRATION_HOURS: %w", err)
	}

	sessionCacheSize, err := strconv.Atoi(getEnv("SESSION_CACHE_SIZE", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_CACHE_SIZE: %w", err)
	}
	if sessionCacheSize <= 0 {
		return nil, fmt.Errorf("invalid SESSION_CACHE_SIZE: must be positive, got %d", sessionCacheSize)
	}

	// The original demo ticks every 3 seconds, one tick per minute of waiting.
	countdownTickMs, err := strconv.Atoi(getEnv("COUNTDOWN_TICK_MS", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid COUNTDOWN_TICK_MS: %w", err)
	}
	if countdownTickMs <= 0 {
		return nil, fmt.Errorf("invalid COUNTDOWN_TICK_MS: must be positive, got %d", countdownTickMs)
	}

	return &Config{
		Port:                  getEnv("PORT", "3001"),
		Origin:                getEnv("ORIGIN", "http://localhost:5173"),
		Environment:           getEnv("APP_ENV", "development"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		TicketSecret:          getEnv("TICKET_SECRET", "default_ticket_secret"),
		TicketExpirationHours: ticketExpHours,
		SessionCacheSize:      sessionCacheSize,
		CountdownTick:         time.Duration(countdownTickMs) * time.Millisecond,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
