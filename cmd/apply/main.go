package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/internal/cli"
	"github.com/kevmo314/go-pvcam/pkg/config"
	"github.com/kevmo314/go-pvcam/pkg/preset"
	"github.com/kevmo314/go-pvcam/pkg/snapshot"
)

func main() {
	cfgPath := flag.String("config", "pvcam.yaml", "path to the configuration file")
	fake := flag.Bool("fake", false, "use the in-memory camera regardless of the configuration")

	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	config.Normalize(cfg)
	if *fake {
		cfg.Camera.Fake = true
	}

	logger := cfg.Log.Logger(os.Stderr)
	if err := run(cfg, logger); err != nil {
		logger.Error("apply failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	lib, err := cli.Library(cfg.Camera, logger)
	if err != nil {
		return err
	}
	defer lib.Uninit()

	cam, err := cli.Open(lib, cfg.Camera.Name)
	if err != nil {
		return err
	}
	defer cam.Close()

	if err := preset.Apply(cam, cfg.Presets); err != nil {
		return err
	}
	logger.Info("presets applied", "camera", cam.Name(), "count", len(cfg.Presets))

	if cfg.Snapshot.Path == "" {
		return nil
	}
	ps := pvcam.Parameters()
	if len(cfg.Snapshot.Parameters) > 0 {
		ps = ps[:0:0]
		for _, name := range cfg.Snapshot.Parameters {
			p, err := pvcam.ParseParameter(name)
			if err != nil {
				return err
			}
			ps = append(ps, p)
		}
	}
	snap, err := snapshot.Take(cam, ps)
	if err != nil {
		return err
	}
	if err := snapshot.WriteFile(cfg.Snapshot.Path, cfg.Snapshot.Format, snap); err != nil {
		return err
	}
	logger.Info("snapshot written", "path", cfg.Snapshot.Path, "format", cfg.Snapshot.Format, "entries", len(snap.Entries))
	return nil
}
