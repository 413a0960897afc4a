package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Camera   CameraConfig   `yaml:"camera"`
	Log      LogConfig      `yaml:"log"`
	Presets  []Preset       `yaml:"presets"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// ---- CAMERA ----

type CameraConfig struct {
	// Name selects the camera to open. Empty means the first one listed.
	Name string `yaml:"name"`
	// Fake runs against the in-memory device instead of libpvcam.
	Fake bool `yaml:"fake"`
	// AccessCheck refuses writes to read-only parameters before they reach
	// the device.
	AccessCheck bool `yaml:"access_check"`
}

// ---- LOG ----

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// ---- PRESETS ----

type Preset struct {
	Parameter string      `yaml:"parameter"`
	Value     PresetValue `yaml:"value"`
}

// PresetValue keeps the scalar as written. Whether it is an integer or an
// enumeration label is only known once the device reports the parameter's
// type.
type PresetValue struct {
	Raw    string
	Quoted bool
}

func (v *PresetValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: preset value must be a scalar", node.Line)
	}
	v.Raw = node.Value
	v.Quoted = node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0
	return nil
}

func (v PresetValue) MarshalYAML() (interface{}, error) {
	return v.Raw, nil
}

// ---- SNAPSHOT ----

type SnapshotConfig struct {
	Path       string   `yaml:"path"`
	Format     string   `yaml:"format"` // cbor, yaml; empty infers from Path
	Parameters []string `yaml:"parameters"`
}

// Load reads and decodes a config file. It does not validate.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &cfg, nil
}
