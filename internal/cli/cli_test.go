package cli

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/config"
	"github.com/kevmo314/go-pvcam/pkg/pvcamtest"
)

func TestOpenFirstFakeCamera(t *testing.T) {
	lib, err := Library(config.CameraConfig{Fake: true, AccessCheck: true}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer lib.Uninit()

	cam, err := Open(lib, "")
	require.NoError(t, err)
	defer cam.Close()
	assert.Equal(t, pvcamtest.DefaultCameraName, cam.Name())

	var denied *pvcam.AccessDeniedError
	require.ErrorAs(t, cam.Set(pvcam.BitDepth, pvcam.Int(8)), &denied)
}

func TestOpenUnknownCamera(t *testing.T) {
	lib, err := Library(config.CameraConfig{Fake: true}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	defer lib.Uninit()

	_, err = Open(lib, "nope")
	var devErr *pvcam.DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, pvcamtest.ErrCameraNotFound, devErr.Code)
}
