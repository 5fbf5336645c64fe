package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the process logger is built. Values come from
// app configuration (LOG_LEVEL, LOG_FORMAT, ...), not from defaults
// scattered around the codebase.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "staging", "prod"
	AddSource   bool   // Include source file/line in logs
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

var levelNames = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// LogLevel converts the configured level name to slog.Level.
// Unknown names fall back to info.
func (c Config) LogLevel() slog.Level {
	if lvl, ok := levelNames[strings.ToLower(c.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == "json"
}

// BaseAttributes returns the attributes stamped on every log record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String("service", c.ServiceName),
		slog.String("version", c.Version),
		slog.String("environment", c.Environment),
	}
}
