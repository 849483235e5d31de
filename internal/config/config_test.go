package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.RefreshTimeout)
	assert.Empty(t, cfg.CredentialsPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MEMORYCARD_BASE_URL", "https://shop.example.com")
	t.Setenv("MEMORYCARD_TIMEOUT", "5s")
	t.Setenv("MEMORYCARD_REFRESH_TIMEOUT", "2s")
	t.Setenv("MEMORYCARD_CREDENTIALS_PATH", "/tmp/creds.json")

	cfg := Load()

	assert.Equal(t, "https://shop.example.com", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.RefreshTimeout)
	assert.Equal(t, "/tmp/creds.json", cfg.CredentialsPath)
}

func TestLoadIgnoresMalformedDurations(t *testing.T) {
	t.Setenv("MEMORYCARD_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
