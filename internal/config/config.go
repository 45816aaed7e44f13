// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config holds all application configuration.
// All fields are populated from environment variables and are read-only
// after Load returns.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"PORT" envDefault:"8080"`

	// Upstream fact API
	FactAPIURL    string `env:"CAT_FACT_API_URL" envDefault:"https://catfact.ninja/fact"`
	FactTimeoutMS int    `env:"CAT_FACT_TIMEOUT_MS" envDefault:"5000"`

	// FallbackFact is returned whenever the upstream fact cannot be fetched.
	FallbackFact string `env:"FALLBACK_FACT" envDefault:"Cats sleep for around 13 to 16 hours a day."`

	// Profile served by GET /me
	UserEmail string `env:"USER_EMAIL" envDefault:"jane.doe@example.com"`
	UserName  string `env:"USER_NAME" envDefault:"Jane Doe"`
	UserStack string `env:"USER_STACK" envDefault:"Go"`

	// Cache (Redis). Optional: when empty the last-good-fact cache is disabled.
	RedisURL     string        `env:"REDIS_URL" envDefault:""`
	FactCacheTTL time.Duration `env:"FACT_CACHE_TTL" envDefault:"10m"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// CORS configuration
	// Comma-separated list of allowed origins. Empty means allow any origin:
	// the profile endpoint is public and read-only.
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:""`
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// FactTimeout returns the upstream fetch timeout as a duration.
func (c *Config) FactTimeout() time.Duration {
	return time.Duration(c.FactTimeoutMS) * time.Millisecond
}

// CacheEnabled reports whether the last-good-fact cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

// GetCORSAllowedOrigins parses the comma-separated origins string into a slice.
func (c *Config) GetCORSAllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return nil
	}

	origins := strings.Split(c.CORSAllowedOrigins, ",")
	result := make([]string, 0, len(origins))

	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Validate checks that the configuration is usable before the server starts.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.AppPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.FactAPIURL, validation.Required, is.URL),
		validation.Field(&c.FactTimeoutMS, validation.Required, validation.Min(1)),
		validation.Field(&c.FallbackFact, validation.Required),
		validation.Field(&c.UserEmail, validation.Required, is.EmailFormat),
		validation.Field(&c.UserName, validation.Required),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("json", "text")),
	)
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
