// Package config provides environment-based configuration helpers
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if one is present.
// A missing file is not an error; the process environment still applies.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnv retrieves the value of an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
