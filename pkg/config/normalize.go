package config

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

// Normalize fills defaults.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}

	cfg.Snapshot.Format = strings.ToLower(cfg.Snapshot.Format)
	if cfg.Snapshot.Format == "" && cfg.Snapshot.Path != "" {
		switch strings.ToLower(filepath.Ext(cfg.Snapshot.Path)) {
		case ".yaml", ".yml":
			cfg.Snapshot.Format = "yaml"
		default:
			cfg.Snapshot.Format = "cbor"
		}
	}
}

// Logger builds the slog logger described by c, writing to w.
func (c LogConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
