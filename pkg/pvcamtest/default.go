package pvcamtest

import "github.com/kevmo314/go-pvcam/pkg/params"

// DefaultCameraName is the name of the camera in NewDefaultDevice.
const DefaultCameraName = "pvcamUSB_0"

// NewDefaultCamera builds a camera resembling a back-illuminated sCMOS head
// with every named parameter populated.
func NewDefaultCamera(name string) *Camera {
	return NewCamera(name).
		With(params.HeadSerNumAlpha, &Param{Type: params.TypeCharPtr, Access: params.AccReadOnly, Text: "A19F203001"}).
		With(params.ChipName, &Param{Type: params.TypeCharPtr, Access: params.AccReadOnly, Text: "GS2020BSI"}).
		With(params.ExposureMode, &Param{
			Type:  params.TypeEnum,
			Value: 1792,
			Options: []Option{
				{1792, "Internal Trigger"},
				{2048, "Trigger First"},
				{2560, "Edge Trigger"},
			},
		}).
		With(params.ExposeOutMode, &Param{
			Type:  params.TypeEnum,
			Value: 0,
			Options: []Option{
				{0, "First Row"},
				{1, "All Rows"},
				{2, "Any Row"},
				{3, "Rolling Shutter"},
			},
		}).
		With(params.ReadoutPort, &Param{
			Type:  params.TypeEnum,
			Value: 0,
			Options: []Option{
				{0, "Sensitivity"},
				{1, "Speed"},
				{2, "Dynamic Range"},
			},
		}).
		With(params.ClearMode, &Param{
			Type:  params.TypeEnum,
			Value: 1,
			Options: []Option{
				{0, "Never"},
				{1, "Pre-Exposure"},
				{2, "Pre-Sequence"},
				{5, "Auto"},
			},
		}).
		With(params.GainIndex, &Param{Type: params.TypeInt16, Value: 1, Attrs: map[params.Attribute]int64{params.AttrMin: 1, params.AttrMax: 2, params.AttrIncrement: 1}}).
		With(params.SpeedTableIndex, &Param{Type: params.TypeInt16, Value: 0, Attrs: map[params.Attribute]int64{params.AttrMin: 0, params.AttrMax: 1}}).
		With(params.SensorParallelSize, &Param{Type: params.TypeUns16, Access: params.AccReadOnly, Value: 2048}).
		With(params.SensorSerialSize, &Param{Type: params.TypeUns16, Access: params.AccReadOnly, Value: 2048}).
		With(params.ClearCycles, &Param{Type: params.TypeUns16, Value: 2, Attrs: map[params.Attribute]int64{params.AttrMin: 0, params.AttrMax: 16}}).
		With(params.BitDepth, &Param{Type: params.TypeInt16, Access: params.AccReadOnly, Value: 16}).
		With(params.Temperature, &Param{Type: params.TypeInt16, Access: params.AccReadOnly, Value: -2500}).
		With(params.TemperatureSetpoint, &Param{Type: params.TypeInt16, Value: -2500, Attrs: map[params.Attribute]int64{params.AttrMin: -3000, params.AttrMax: 2000}})
}

// NewDefaultDevice returns a fake with one default camera.
func NewDefaultDevice() *Device {
	return NewDevice(NewDefaultCamera(DefaultCameraName))
}
