package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Empty(t, cfg.Token, "the token has no default")
	assert.Equal(t, "https://api.esios.ree.es", cfg.BaseURL)
	assert.Equal(t, "none", cfg.Verbosity)
	assert.Equal(t, "8080", cfg.HTTPPort)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ESIOS_API_TOKEN", "tok-123")
	t.Setenv("ESIOS_BASE_URL", "https://esios.example.test")
	t.Setenv("ESIOS_VERBOSITY", "debug")
	t.Setenv("ESIOS_RATE_PER_SECOND", "2.5")
	t.Setenv("ESIOS_RATE_BURST", "7")
	t.Setenv("PORT", "9090")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	assert.Equal(t, "tok-123", cfg.Token)
	assert.Equal(t, "https://esios.example.test", cfg.BaseURL)
	assert.Equal(t, "debug", cfg.Verbosity)
	assert.Equal(t, 2.5, cfg.RatePerSecond)
	assert.Equal(t, 7, cfg.RateBurst)
	assert.Equal(t, "9090", cfg.HTTPPort)
}

func TestLoadFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("ESIOS_RATE_PER_SECOND", "fast")
	t.Setenv("ESIOS_RATE_BURST", "many")

	cfg := DefaultConfig()
	cfg.LoadFromEnv()

	assert.Equal(t, 5.0, cfg.RatePerSecond)
	assert.Equal(t, 5, cfg.RateBurst)
}
