package config

import (
	"fmt"
	"strings"

	"github.com/kevmo314/go-pvcam"
)

// Validate checks configuration correctness.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if strings.IndexByte(cfg.Camera.Name, 0) >= 0 {
		return fmt.Errorf("camera.name must not contain NUL")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", cfg.Log.Format)
	}

	seen := make(map[pvcam.Parameter]int)
	for i, p := range cfg.Presets {
		param, err := pvcam.ParseParameter(p.Parameter)
		if err != nil {
			return fmt.Errorf("presets[%d]: %w", i, err)
		}
		if prev, dup := seen[param]; dup {
			return fmt.Errorf("presets[%d]: %s already set by presets[%d]", i, param.Name(), prev)
		}
		seen[param] = i
		if p.Value.Raw == "" {
			return fmt.Errorf("presets[%d]: %s has no value", i, param.Name())
		}
	}

	switch strings.ToLower(cfg.Snapshot.Format) {
	case "", "cbor", "yaml":
	default:
		return fmt.Errorf("snapshot.format %q is not one of cbor, yaml", cfg.Snapshot.Format)
	}
	if cfg.Snapshot.Path == "" && len(cfg.Snapshot.Parameters) > 0 {
		return fmt.Errorf("snapshot.parameters set without snapshot.path")
	}
	for i, name := range cfg.Snapshot.Parameters {
		if _, err := pvcam.ParseParameter(name); err != nil {
			return fmt.Errorf("snapshot.parameters[%d]: %w", i, err)
		}
	}

	return nil
}
