package pvcam

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/kevmo314/go-pvcam/pkg/params"
)

// EnumOption is one legal value of an enumeration parameter.
type EnumOption struct {
	Index uint32 `yaml:"index" cbor:"1,keyasint"`
	Value int32  `yaml:"value" cbor:"2,keyasint"`
	Name  string `yaml:"name" cbor:"3,keyasint"`
}

func (o EnumOption) String() string {
	return fmt.Sprintf("%d:%s=%d", o.Index, o.Name, o.Value)
}

func equalFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// maxLabelLen bounds the label length a device may report for one option.
const maxLabelLen = 1 << 16

// ReadOptions lists every legal value of an enumeration parameter in index
// order. Labels have no fixed bound, so each index is read in two steps:
// its label length, then the value and label into a buffer of that size. Any
// failing index fails the whole read.
func (l *Library) ReadOptions(h Handle, p Parameter) ([]EnumOption, error) {
	n, err := readScalar[int32](l, func(ptr unsafe.Pointer) params.Status {
		return l.api.GetParam(int16(h), p.ID(), params.AttrCount, ptr)
	})
	if err != nil {
		return nil, fmt.Errorf("pl_get_param count: %w", err)
	}
	if n < 0 {
		return nil, &DeviceError{Code: InternalErrorCode, Message: fmt.Sprintf("%s reported %d options", p, n)}
	}

	options := make([]EnumOption, 0, n)
	for i := uint32(0); i < uint32(n); i++ {
		o, err := l.readOption(h, p, i)
		if err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, nil
}

func (l *Library) readOption(h Handle, p Parameter, index uint32) (EnumOption, error) {
	var length uint32
	if err := l.check(l.api.EnumStrLength(int16(h), p.ID(), index, &length)); err != nil {
		return EnumOption{}, fmt.Errorf("pl_enum_str_length %s[%d]: %w", p.Name(), index, err)
	}

	if length > maxLabelLen {
		return EnumOption{}, &DeviceError{Code: InternalErrorCode, Message: fmt.Sprintf("%s[%d] reported a label of %d bytes", p.Name(), index, length)}
	}

	var value int32
	name, err := l.readString(int(length), func(ptr unsafe.Pointer) params.Status {
		return l.api.GetEnumParam(int16(h), p.ID(), index, &value, ptr, length)
	})
	if err != nil {
		return EnumOption{}, fmt.Errorf("pl_get_enum_param %s[%d]: %w", p.Name(), index, err)
	}
	return EnumOption{Index: index, Value: value, Name: name}, nil
}

// ResolveCurrentIndex reads the raw value of attr and finds the option that
// carries it.
func (l *Library) ResolveCurrentIndex(h Handle, p Parameter, attr params.Attribute, options []EnumOption) (uint32, error) {
	value, err := readScalar[int32](l, func(ptr unsafe.Pointer) params.Status {
		return l.api.GetParam(int16(h), p.ID(), attr, ptr)
	})
	if err != nil {
		return 0, err
	}
	for i, o := range options {
		if o.Value == value {
			return uint32(i), nil
		}
	}
	return 0, &UnresolvedEnumValueError{Parameter: p, Value: value, Options: options}
}
