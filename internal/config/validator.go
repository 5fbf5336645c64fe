package config

import (
	"fmt"
	"os"
)

// ValidateEnv checks that the configured environment is usable before the
// service starts. The save directory must exist or be creatable.
func ValidateEnv(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", cfg.Port)
	}

	if cfg.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("DATA_DIR not writable: %w", err)
	}

	if cfg.CacheSize <= 0 {
		return fmt.Errorf("CACHE_SIZE must be positive: %d", cfg.CacheSize)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
