package pvcam

import (
	"unsafe"

	"github.com/kevmo314/go-pvcam/pkg/params"
)

// Handle identifies an open camera session. Values come from CamOpen and are
// not validated beyond what the SDK itself rejects.
type Handle int16

// DeviceAPI is the raw PVCAM call surface. Every method mirrors one pl_*
// function: it returns a status and writes results through the pointers it
// is given. Implementations must not retain those pointers after returning.
//
// The SDK keeps the last error per process, so ErrorCode and ErrorMessage
// describe whichever call failed most recently.
type DeviceAPI interface {
	Init() params.Status
	Uninit() params.Status

	CamGetTotal(total *int16) params.Status
	// CamGetName writes a NUL-terminated name of at most params.CamNameLen
	// bytes into name.
	CamGetName(index int16, name unsafe.Pointer) params.Status
	CamOpen(name string, hcam *int16, mode params.OpenMode) params.Status
	CamClose(hcam int16) params.Status

	// GetParam writes the attribute into value, whose size the caller picks
	// from the parameter type: 2 or 4 byte scalars, or a params.MaxPPNameLen
	// buffer for strings.
	GetParam(hcam int16, id params.ID, attr params.Attribute, value unsafe.Pointer) params.Status
	SetParam(hcam int16, id params.ID, value unsafe.Pointer) params.Status

	EnumStrLength(hcam int16, id params.ID, index uint32, length *uint32) params.Status
	GetEnumParam(hcam int16, id params.ID, index uint32, value *int32, desc unsafe.Pointer, length uint32) params.Status

	ErrorCode() int16
	// ErrorMessage renders code into msg, a params.ErrorMsgLen buffer.
	ErrorMessage(code int16, msg unsafe.Pointer) params.Status
}
