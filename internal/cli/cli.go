// Package cli opens a camera for the command line tools.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/internal/libpvcam"
	"github.com/kevmo314/go-pvcam/pkg/config"
	"github.com/kevmo314/go-pvcam/pkg/pvcamtest"
)

// Library initializes either the real SDK or, when cfg.Fake is set, the
// in-memory device with one default camera. The caller must Uninit it.
func Library(cfg config.CameraConfig, logger *slog.Logger) (*pvcam.Library, error) {
	var api pvcam.DeviceAPI
	if cfg.Fake {
		api = pvcamtest.NewDefaultDevice()
	} else {
		var err error
		if api, err = libpvcam.New(); err != nil {
			return nil, err
		}
	}

	opts := []pvcam.Option{pvcam.WithLogger(logger)}
	if cfg.AccessCheck {
		opts = append(opts, pvcam.WithAccessCheck())
	}
	lib := pvcam.New(api, opts...)
	if err := lib.Init(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Open opens cfg.Name, or the first camera when the name is empty.
func Open(lib *pvcam.Library, name string) (*pvcam.Camera, error) {
	if name == "" {
		names, err := lib.ListCameras()
		if err != nil {
			return nil, err
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("no cameras found")
		}
		name = names[0]
	}
	return lib.Open(name)
}
