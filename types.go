package pvcam

import (
	"unsafe"

	"github.com/kevmo314/go-pvcam/pkg/params"
)

// ParameterType is how this package reads and writes a parameter. It is
// always derived from the live device, never from the parameter id.
type ParameterType int

const (
	TypeEnum ParameterType = iota
	TypeInt16
	TypeInt32
	TypeString
)

func (t ParameterType) String() string {
	switch t {
	case TypeEnum:
		return "enum"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// typeCodes is the only place device type codes become ParameterTypes.
// Unsigned 16 bit parameters are widened into the Int32 bucket; reads and
// writes still go through a 16 bit unsigned scratch.
var typeCodes = map[params.TypeCode]ParameterType{
	params.TypeInt16:   TypeInt16,
	params.TypeInt32:   TypeInt32,
	params.TypeUns16:   TypeInt32,
	params.TypeCharPtr: TypeString,
	params.TypeEnum:    TypeEnum,
}

// IsAvailable asks the device whether p exists on this camera. The answer is
// encoded as the status sentinel, so a successful query can still say no.
func (l *Library) IsAvailable(h Handle, p Parameter) (bool, error) {
	avail, err := readScalar[uint16](l, func(ptr unsafe.Pointer) params.Status {
		return l.api.GetParam(int16(h), p.ID(), params.AttrAvailable, ptr)
	})
	if err != nil {
		return false, err
	}
	return params.Status(avail) == params.StatusOK, nil
}

// ResolveType asks the device for p's storage type.
func (l *Library) ResolveType(h Handle, p Parameter) (ParameterType, error) {
	t, _, err := l.resolveStorage(h, p)
	return t, err
}

func (l *Library) resolveStorage(h Handle, p Parameter) (ParameterType, params.TypeCode, error) {
	code, err := readScalar[uint32](l, func(ptr unsafe.Pointer) params.Status {
		return l.api.GetParam(int16(h), p.ID(), params.AttrType, ptr)
	})
	if err != nil {
		return 0, 0, err
	}
	t, ok := typeCodes[params.TypeCode(code)]
	if !ok {
		return 0, 0, &UnmappedTypeCodeError{Parameter: p, Code: code}
	}
	return t, params.TypeCode(code), nil
}

// requireAvailable fails with ParameterUnknownError when the device says p is
// not present.
func (l *Library) requireAvailable(h Handle, p Parameter) error {
	ok, err := l.IsAvailable(h, p)
	if err != nil {
		return err
	}
	if !ok {
		return &ParameterUnknownError{Parameter: p}
	}
	return nil
}
