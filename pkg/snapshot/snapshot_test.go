package snapshot

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/params"
	"github.com/kevmo314/go-pvcam/pkg/pvcamtest"
)

func openDefault(t *testing.T, dev *pvcamtest.Device) *pvcam.Camera {
	t.Helper()
	lib := pvcam.New(dev)
	require.NoError(t, lib.Init())
	cam, err := lib.Open(pvcamtest.DefaultCameraName)
	require.NoError(t, err)
	t.Cleanup(func() { cam.Close() })
	return cam
}

func TestTake(t *testing.T) {
	cam := openDefault(t, pvcamtest.NewDefaultDevice())

	s, err := Take(cam, []pvcam.Parameter{pvcam.CameraSerial, pvcam.GainIndex, pvcam.ReadoutPort})
	require.NoError(t, err)

	assert.Equal(t, pvcamtest.DefaultCameraName, s.Camera)
	assert.Equal(t, cam.Session().String(), s.Session)
	require.Len(t, s.Entries, 3)

	assert.Equal(t, pvcam.Text("A19F203001"), s.Entries[0].Value())
	assert.Equal(t, pvcam.Int(1), s.Entries[1].Value())

	e := s.Entries[2]
	assert.True(t, e.Available)
	require.NotNil(t, e.Enum)
	assert.Equal(t, uint32(0), e.Enum.Index)
	assert.Len(t, e.Enum.Options, 3)
	assert.Equal(t, "Sensitivity", e.Value().String())
}

func TestTakeRecordsUnavailable(t *testing.T) {
	dev := pvcamtest.NewDevice(pvcamtest.NewCamera(pvcamtest.DefaultCameraName).
		With(params.GainIndex, &pvcamtest.Param{Type: params.TypeInt16, Value: 1}))
	cam := openDefault(t, dev)

	s, err := Take(cam, []pvcam.Parameter{pvcam.Temperature, pvcam.GainIndex})
	require.NoError(t, err)
	require.Len(t, s.Entries, 2)
	assert.False(t, s.Entries[0].Available)
	assert.Nil(t, s.Entries[0].Value())
	assert.True(t, s.Entries[1].Available)
}

func TestTakeAbortsOnDeviceError(t *testing.T) {
	dev := pvcamtest.NewDefaultDevice()
	cam := openDefault(t, dev)
	dev.FailWhen(func(c pvcamtest.Call) (int16, bool) {
		return pvcamtest.ErrInjected, c.Name == "GetParam" && c.Attr == params.AttrType
	})

	_, err := Take(cam, []pvcam.Parameter{pvcam.GainIndex})
	var devErr *pvcam.DeviceError
	require.ErrorAs(t, err, &devErr)
	assert.Equal(t, pvcamtest.ErrInjected, devErr.Code)
}

func TestEncodeDecode(t *testing.T) {
	cam := openDefault(t, pvcamtest.NewDefaultDevice())
	s, err := Take(cam, pvcam.Parameters())
	require.NoError(t, err)

	for _, format := range []string{FormatCBOR, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, s))

			got, err := Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, s.Camera, got.Camera)
			assert.True(t, s.Taken.Equal(got.Taken))
			require.Len(t, got.Entries, len(s.Entries))
			for i := range s.Entries {
				assert.Equal(t, s.Entries[i].Value(), got.Entries[i].Value(), s.Entries[i].Parameter)
			}
		})
	}
}

func TestWriteReadFile(t *testing.T) {
	cam := openDefault(t, pvcamtest.NewDefaultDevice())
	s, err := Take(cam, []pvcam.Parameter{pvcam.ClearMode})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snap.cbor")
	require.NoError(t, WriteFile(path, FormatCBOR, s))
	got, err := ReadFile(path, FormatCBOR)
	require.NoError(t, err)
	assert.Equal(t, "Pre-Exposure", got.Entries[0].Value().String())

	assert.Error(t, Encode(&bytes.Buffer{}, "json", s))
}
