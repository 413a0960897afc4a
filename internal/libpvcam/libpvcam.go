//go:build pvcam

// Package libpvcam binds pvcam.DeviceAPI to the vendor library. Build with
// -tags pvcam and point CGO_CFLAGS / CGO_LDFLAGS at the SDK, e.g.
//
//	CGO_CFLAGS="-I$PVCAM_SDK_PATH/include" CGO_LDFLAGS="-L$PVCAM_SDK_PATH/library/x86_64"
package libpvcam

/*
#cgo LDFLAGS: -lpvcam
#include <stdlib.h>
#include <master.h>
#include <pvcam.h>
*/
import "C"
import (
	"unsafe"

	"github.com/kevmo314/go-pvcam"
	"github.com/kevmo314/go-pvcam/pkg/params"
)

// Device calls straight into libpvcam. It holds no state of its own.
type Device struct{}

var _ pvcam.DeviceAPI = Device{}

// New returns the native binding.
func New() (pvcam.DeviceAPI, error) {
	return Device{}, nil
}

func status(b C.rs_bool) params.Status {
	return params.Status(b)
}

func (Device) Init() params.Status {
	return status(C.pl_pvcam_init())
}

func (Device) Uninit() params.Status {
	return status(C.pl_pvcam_uninit())
}

func (Device) CamGetTotal(total *int16) params.Status {
	return status(C.pl_cam_get_total((*C.int16)(unsafe.Pointer(total))))
}

func (Device) CamGetName(index int16, name unsafe.Pointer) params.Status {
	return status(C.pl_cam_get_name(C.int16(index), (*C.char)(name)))
}

func (Device) CamOpen(name string, hcam *int16, mode params.OpenMode) params.Status {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return status(C.pl_cam_open(cname, (*C.int16)(unsafe.Pointer(hcam)), C.int16(mode)))
}

func (Device) CamClose(hcam int16) params.Status {
	return status(C.pl_cam_close(C.int16(hcam)))
}

func (Device) GetParam(hcam int16, id params.ID, attr params.Attribute, value unsafe.Pointer) params.Status {
	return status(C.pl_get_param(C.int16(hcam), C.uns32(id), C.int16(attr), value))
}

func (Device) SetParam(hcam int16, id params.ID, value unsafe.Pointer) params.Status {
	return status(C.pl_set_param(C.int16(hcam), C.uns32(id), value))
}

func (Device) EnumStrLength(hcam int16, id params.ID, index uint32, length *uint32) params.Status {
	return status(C.pl_enum_str_length(C.int16(hcam), C.uns32(id), C.uns32(index), (*C.uns32)(unsafe.Pointer(length))))
}

func (Device) GetEnumParam(hcam int16, id params.ID, index uint32, value *int32, desc unsafe.Pointer, length uint32) params.Status {
	return status(C.pl_get_enum_param(C.int16(hcam), C.uns32(id), C.uns32(index),
		(*C.int32)(unsafe.Pointer(value)), (*C.char)(desc), C.uns32(length)))
}

func (Device) ErrorCode() int16 {
	return int16(C.pl_error_code())
}

func (Device) ErrorMessage(code int16, msg unsafe.Pointer) params.Status {
	return status(C.pl_error_message(C.int16(code), (*C.char)(msg)))
}
