package pvcam

import (
	"fmt"
	"strings"

	"github.com/kevmo314/go-pvcam/pkg/params"
)

// Parameter names a device control point.
type Parameter params.ID

const (
	CameraSerial        = Parameter(params.HeadSerNumAlpha)
	ChipName            = Parameter(params.ChipName)
	ExposureMode        = Parameter(params.ExposureMode)
	ExposeOutMode       = Parameter(params.ExposeOutMode)
	GainIndex           = Parameter(params.GainIndex)
	ReadoutPort         = Parameter(params.ReadoutPort)
	SensorParallelSize  = Parameter(params.SensorParallelSize)
	SensorSerialSize    = Parameter(params.SensorSerialSize)
	SpeedTableIndex     = Parameter(params.SpeedTableIndex)
	BitDepth            = Parameter(params.BitDepth)
	Temperature         = Parameter(params.Temperature)
	TemperatureSetpoint = Parameter(params.TemperatureSetpoint)
	ClearMode           = Parameter(params.ClearMode)
	ClearCycles         = Parameter(params.ClearCycles)
)

var knownParameters = []struct {
	p    Parameter
	name string
}{
	{CameraSerial, "CameraSerial"},
	{ChipName, "ChipName"},
	{ExposureMode, "ExposureMode"},
	{ExposeOutMode, "ExposeOutMode"},
	{GainIndex, "GainIndex"},
	{ReadoutPort, "ReadoutPort"},
	{SensorParallelSize, "SensorParallelSize"},
	{SensorSerialSize, "SensorSerialSize"},
	{SpeedTableIndex, "SpeedTableIndex"},
	{BitDepth, "BitDepth"},
	{Temperature, "Temperature"},
	{TemperatureSetpoint, "TemperatureSetpoint"},
	{ClearMode, "ClearMode"},
	{ClearCycles, "ClearCycles"},
}

// Parameters lists the named parameters in a stable order.
func Parameters() []Parameter {
	ps := make([]Parameter, len(knownParameters))
	for i, kp := range knownParameters {
		ps[i] = kp.p
	}
	return ps
}

// ParseParameter resolves a parameter by name, ignoring case.
func ParseParameter(name string) (Parameter, error) {
	for _, kp := range knownParameters {
		if strings.EqualFold(kp.name, name) {
			return kp.p, nil
		}
	}
	return 0, fmt.Errorf("no parameter named %q", name)
}

func (p Parameter) ID() params.ID {
	return params.ID(p)
}

// Name is the short name, or the hex id for parameters outside the named set.
func (p Parameter) Name() string {
	for _, kp := range knownParameters {
		if kp.p == p {
			return kp.name
		}
	}
	return fmt.Sprintf("%#x", uint32(p))
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s=>%d", p.Name(), uint32(p))
}
