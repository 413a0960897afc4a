package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
camera:
  name: pvcamUSB_0
  fake: true
  access_check: true
log:
  level: DEBUG
presets:
  - parameter: ExposureMode
    value: "Edge Trigger"
  - parameter: gainindex
    value: 2
snapshot:
  path: out/snap.yml
  parameters: [CameraSerial, GainIndex]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pvcam.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadValidateNormalize(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	Normalize(cfg)

	assert.Equal(t, "pvcamUSB_0", cfg.Camera.Name)
	assert.True(t, cfg.Camera.Fake)
	assert.True(t, cfg.Camera.AccessCheck)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "yaml", cfg.Snapshot.Format)

	require.Len(t, cfg.Presets, 2)
	assert.Equal(t, PresetValue{Raw: "Edge Trigger", Quoted: true}, cfg.Presets[0].Value)
	assert.Equal(t, PresetValue{Raw: "2"}, cfg.Presets[1].Value)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, "camera:\n  nmae: x\n"))
	require.Error(t, err)
}

func TestLoadRejectsNonScalarPreset(t *testing.T) {
	_, err := Load(writeConfig(t, "presets:\n  - parameter: GainIndex\n    value: [1, 2]\n"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"nul in camera", Config{Camera: CameraConfig{Name: "a\x00b"}}},
		{"bad level", Config{Log: LogConfig{Level: "loud"}}},
		{"bad format", Config{Log: LogConfig{Format: "xml"}}},
		{"unknown parameter", Config{Presets: []Preset{{Parameter: "Shutter", Value: PresetValue{Raw: "1"}}}}},
		{"duplicate parameter", Config{Presets: []Preset{
			{Parameter: "GainIndex", Value: PresetValue{Raw: "1"}},
			{Parameter: "GAININDEX", Value: PresetValue{Raw: "2"}},
		}}},
		{"empty value", Config{Presets: []Preset{{Parameter: "GainIndex"}}}},
		{"bad snapshot format", Config{Snapshot: SnapshotConfig{Path: "x", Format: "json"}}},
		{"snapshot params without path", Config{Snapshot: SnapshotConfig{Parameters: []string{"GainIndex"}}}},
		{"unknown snapshot parameter", Config{Snapshot: SnapshotConfig{Path: "x", Parameters: []string{"Nope"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate(&tt.cfg))
		})
	}
	assert.NoError(t, Validate(&Config{}))
}

func TestNormalizeSnapshotFormat(t *testing.T) {
	cfg := &Config{Snapshot: SnapshotConfig{Path: "snap.cbor"}}
	Normalize(cfg)
	assert.Equal(t, "cbor", cfg.Snapshot.Format)

	cfg = &Config{}
	Normalize(cfg)
	assert.Empty(t, cfg.Snapshot.Format)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	LogConfig{Level: "warn", Format: "json"}.Logger(&buf).Info("hidden")
	assert.Zero(t, buf.Len())

	LogConfig{Level: "debug", Format: "json"}.Logger(&buf).Debug("shown", "k", 1)
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}
