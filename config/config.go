package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Upstream API
	Token          string
	BaseURL        string
	TimeoutSeconds int

	// Logging: "none", "verbose" or "debug"
	Verbosity string

	// Client-side politeness towards the provider
	RatePerSecond float64
	RateBurst     int

	// HTTP transport for serve-http
	HTTPPort string
	APIKey   string
}

// DefaultConfig returns configuration with sensible defaults. The token has
// no default; it must come from the environment.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:        "https://api.esios.ree.es",
		TimeoutSeconds: 30,
		Verbosity:      "none",
		RatePerSecond:  5.0,
		RateBurst:      5,
		HTTPPort:       "8080",
	}
}

// LoadFromEnv loads .env file (if present) then overrides config from
// environment variables.
func (c *Config) LoadFromEnv() {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	if v := os.Getenv("ESIOS_API_TOKEN"); v != "" {
		c.Token = v
	}
	if v := os.Getenv("ESIOS_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("ESIOS_HTTP_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("ESIOS_VERBOSITY"); v != "" {
		c.Verbosity = v
	}
	if v := os.Getenv("ESIOS_RATE_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RatePerSecond = f
		}
	}
	if v := os.Getenv("ESIOS_RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RateBurst = n
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		c.HTTPPort = v
	}
	if v := os.Getenv("ESIOS_MCP_API_KEY"); v != "" {
		c.APIKey = v
	}
}
