package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	DataDir     string // directory for the local save store
	CORSOrigin  string // origin allowed to call the API ("*" for local play)
	CacheSize   int    // storage decode cache entries
	CacheTTL    time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DataDir:     getEnv("DATA_DIR", DefaultDataDir),
		CORSOrigin:  getEnv("CORS_ORIGIN", "*"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cacheSizeStr := getEnv("CACHE_SIZE", strconv.Itoa(DefaultCacheSize))
	cacheSize, err := strconv.Atoi(cacheSizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE value: %w", err)
	}
	cfg.CacheSize = cacheSize

	ttlStr := getEnv("CACHE_TTL_SECONDS", strconv.Itoa(DefaultCacheTTLSeconds))
	ttlSeconds, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS value: %w", err)
	}
	cfg.CacheTTL = time.Duration(ttlSeconds) * time.Second

	return cfg, nil
}
