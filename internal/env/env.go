package env

import (
	"os"
	"time"
)

// Get retrieves an environment variable
func Get(key string) (string, bool) {
	value := os.Getenv(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// GetOrDefault retrieves an environment variable with a default value
func GetOrDefault(key, defaultValue string) string {
	if value, ok := Get(key); ok {
		return value
	}
	return defaultValue
}

// GetDuration retrieves a duration-valued environment variable, falling back
// to defaultValue when the variable is unset or does not parse.
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	value, ok := Get(key)
	if !ok {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
