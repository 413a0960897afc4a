package main

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/config"
	"github.com/kevmo314/go-pvcam/pkg/snapshot"
)

func TestRunAppliesAndSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.cbor")
	cfg := &config.Config{
		Camera: config.CameraConfig{Fake: true, AccessCheck: true},
		Presets: []config.Preset{
			{Parameter: "ClearMode", Value: config.PresetValue{Raw: "Auto"}},
			{Parameter: "ClearCycles", Value: config.PresetValue{Raw: "4"}},
		},
		Snapshot: config.SnapshotConfig{Path: path, Parameters: []string{"ClearMode", "ClearCycles"}},
	}
	require.NoError(t, config.Validate(cfg))
	config.Normalize(cfg)

	require.NoError(t, run(cfg, slog.New(slog.DiscardHandler)))

	snap, err := snapshot.ReadFile(path, snapshot.FormatCBOR)
	require.NoError(t, err)
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "Auto", snap.Entries[0].Value().String())
	assert.Equal(t, pvcam.Int(4), snap.Entries[1].Value())
}

func TestRunStopsOnReadOnlyPreset(t *testing.T) {
	cfg := &config.Config{
		Camera:  config.CameraConfig{Fake: true, AccessCheck: true},
		Presets: []config.Preset{{Parameter: "BitDepth", Value: config.PresetValue{Raw: "12"}}},
	}
	config.Normalize(cfg)

	err := run(cfg, slog.New(slog.DiscardHandler))
	var denied *pvcam.AccessDeniedError
	require.ErrorAs(t, err, &denied)
}
