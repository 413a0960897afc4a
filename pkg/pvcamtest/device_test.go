package pvcamtest_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/params"
	"github.com/kevmo314/go-pvcam/pkg/pvcamtest"
)

var _ pvcam.DeviceAPI = (*pvcamtest.Device)(nil)

func openRaw(t *testing.T, dev *pvcamtest.Device) int16 {
	t.Helper()
	require.Equal(t, params.StatusOK, dev.Init())
	hcam := int16(-1)
	require.Equal(t, params.StatusOK, dev.CamOpen(pvcamtest.DefaultCameraName, &hcam, params.OpenExclusive))
	return hcam
}

func TestDeviceRejectsCallsBeforeInit(t *testing.T) {
	dev := pvcamtest.NewDefaultDevice()
	hcam := int16(-1)
	assert.Equal(t, params.StatusFail, dev.CamOpen(pvcamtest.DefaultCameraName, &hcam, params.OpenExclusive))
	assert.Equal(t, pvcamtest.ErrNotInitialized, dev.ErrorCode())
}

func TestDeviceWritesStorageWidth(t *testing.T) {
	dev := pvcamtest.NewDefaultDevice()
	hcam := openRaw(t, dev)

	var u16 uint16
	require.Equal(t, params.StatusOK, dev.GetParam(hcam, params.SensorParallelSize, params.AttrCurrent, unsafe.Pointer(&u16)))
	assert.Equal(t, uint16(2048), u16)

	var i16 int16
	require.Equal(t, params.StatusOK, dev.GetParam(hcam, params.Temperature, params.AttrCurrent, unsafe.Pointer(&i16)))
	assert.Equal(t, int16(-2500), i16)
}

func TestDeviceReadOnlyWrite(t *testing.T) {
	dev := pvcamtest.NewDefaultDevice()
	hcam := openRaw(t, dev)

	v := int16(8)
	assert.Equal(t, params.StatusFail, dev.SetParam(hcam, params.BitDepth, unsafe.Pointer(&v)))
	assert.Equal(t, pvcamtest.ErrReadOnly, dev.ErrorCode())
}

func TestDeviceEnumLabels(t *testing.T) {
	dev := pvcamtest.NewDefaultDevice()
	hcam := openRaw(t, dev)

	var length uint32
	require.Equal(t, params.StatusOK, dev.EnumStrLength(hcam, params.ReadoutPort, 2, &length))
	assert.Equal(t, uint32(len("Dynamic Range")+1), length)

	buf := make([]byte, length)
	var value int32
	require.Equal(t, params.StatusOK, dev.GetEnumParam(hcam, params.ReadoutPort, 2, &value, unsafe.Pointer(&buf[0]), length))
	assert.Equal(t, int32(2), value)
	assert.Equal(t, "Dynamic Range\x00", string(buf))
}

func TestDeviceFailWhenRecordsCode(t *testing.T) {
	dev := pvcamtest.NewDefaultDevice()
	hcam := openRaw(t, dev)
	dev.ResetCalls()
	dev.FailWhen(func(c pvcamtest.Call) (int16, bool) {
		return pvcamtest.ErrInjected, c.Name == "SetParam"
	})

	v := int16(2)
	assert.Equal(t, params.StatusFail, dev.SetParam(hcam, params.GainIndex, unsafe.Pointer(&v)))
	assert.Equal(t, pvcamtest.ErrInjected, dev.ErrorCode())
	calls := dev.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, pvcamtest.ErrInjected, calls[0].Code)
	assert.Equal(t, int64(1), dev.Param(hcam, params.GainIndex).Value)
}
