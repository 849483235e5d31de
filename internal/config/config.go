package config

import (
	"time"

	"github.com/linkobe24/memorycard-go/internal/env"
)

// DefaultBaseURL is where a local MemoryCard backend listens.
const DefaultBaseURL = "http://localhost:8000"

const (
	defaultRequestTimeout = 30 * time.Second
	defaultRefreshTimeout = 10 * time.Second
)

// Config holds runtime settings for the MemoryCard client.
//
// Fields:
//   - BaseURL: root of the backend API, without a trailing slash.
//   - RequestTimeout: transport-level bound on a single request.
//   - RefreshTimeout: bound on the token refresh call, independent of the
//     requests waiting on it.
//   - CredentialsPath: file the credential store persists to; empty means
//     the store's default location.
type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	RefreshTimeout  time.Duration
	CredentialsPath string
}

// Load constructs a Config from defaults overlaid with environment
// variables: MEMORYCARD_BASE_URL, MEMORYCARD_TIMEOUT,
// MEMORYCARD_REFRESH_TIMEOUT and MEMORYCARD_CREDENTIALS_PATH.
func Load() *Config {
	return &Config{
		BaseURL:         env.GetOrDefault("MEMORYCARD_BASE_URL", DefaultBaseURL),
		RequestTimeout:  env.GetDuration("MEMORYCARD_TIMEOUT", defaultRequestTimeout),
		RefreshTimeout:  env.GetDuration("MEMORYCARD_REFRESH_TIMEOUT", defaultRefreshTimeout),
		CredentialsPath: env.GetOrDefault("MEMORYCARD_CREDENTIALS_PATH", ""),
	}
}
