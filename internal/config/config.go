package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Aggregation
	DefaultCity    string        `env:"DEFAULT_CITY" envDefault:"chi"`
	AdapterTimeout time.Duration `env:"ADAPTER_TIMEOUT" envDefault:"8s"`
	NewsFeedURL    string        `env:"NEWS_FEED_URL"`

	// Redis (optional; cache and alerting degrade without it)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"30s"`

	// AI analysis (optional; local clusterer is the fallback)
	AIBaseURL   string `env:"AI_BASE_URL"`
	AIAPIKey    string `env:"AI_API_KEY"`
	AIModel     string `env:"AI_MODEL"`
	AIMaxTokens int    `env:"AI_MAX_TOKENS" envDefault:"2048"`

	// Background refresh
	RefreshInterval  time.Duration `env:"REFRESH_INTERVAL" envDefault:"60s"`
	AlertThreatLevel string        `env:"ALERT_THREAT_LEVEL" envDefault:"high"`

	// Webhook delivery
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"2s"`

	// API keys for authentication; auth is disabled when empty
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig reads configuration from the environment and an optional .env file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		DefaultCity:       getEnv("DEFAULT_CITY", "chi"),
		AdapterTimeout:    getEnvAsDuration("ADAPTER_TIMEOUT", 8*time.Second),
		NewsFeedURL:       os.Getenv("NEWS_FEED_URL"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 30*time.Second),
		AIBaseURL:         os.Getenv("AI_BASE_URL"),
		AIAPIKey:          os.Getenv("AI_API_KEY"),
		AIModel:           os.Getenv("AI_MODEL"),
		AIMaxTokens:       getEnvAsInt("AI_MAX_TOKENS", 2048),
		RefreshInterval:   getEnvAsDuration("REFRESH_INTERVAL", 60*time.Second),
		AlertThreatLevel:  getEnv("ALERT_THREAT_LEVEL", "high"),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", 2*time.Second),
	}

	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	return cfg, nil
}

// getEnv returns the environment value or the given default.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment value as int or the given default.
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration returns the environment value as time.Duration or the given default.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
