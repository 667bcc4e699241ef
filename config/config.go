package config

import (
	"os"
	"strings"
)

// Store drivers. Memory keeps everything in process; MySQL is the durable
// option.
const (
	DriverMemory = "memory"
	DriverMySQL  = "mysql"
)

// EnvOrDefault returns the trimmed env value or the fallback default.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// StoreDriver reads STORE_DRIVER, defaulting to the in-memory store.
func StoreDriver() string {
	return EnvOrDefault("STORE_DRIVER", DriverMemory)
}

// SeedEnabled reads SEED_DATA; seeding is on unless explicitly disabled.
func SeedEnabled() bool {
	return !strings.EqualFold(EnvOrDefault("SEED_DATA", "true"), "false")
}
