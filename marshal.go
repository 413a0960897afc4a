package pvcam

import (
	"unicode/utf8"
	"unsafe"

	"github.com/kevmo314/go-pvcam/pkg/cbuf"
	"github.com/kevmo314/go-pvcam/pkg/params"
)

type scalar interface {
	~int16 | ~uint16 | ~int32 | ~uint32
}

// readString runs call against a zeroed buffer of n bytes and decodes it up to
// the first NUL. The buffer is released on every path.
func (l *Library) readString(n int, call func(p unsafe.Pointer) params.Status) (string, error) {
	buf := cbuf.New(n)
	defer buf.Free()

	if err := l.check(call(buf.Ptr())); err != nil {
		return "", err
	}
	raw := buf.Terminated()
	if !utf8.Valid(raw) {
		return "", &EncodingError{Data: raw}
	}
	return string(raw), nil
}

// readScalar reads a value of exactly T's width. The scratch is only read back
// after the call succeeds.
func readScalar[T scalar](l *Library, call func(p unsafe.Pointer) params.Status) (T, error) {
	var v T
	if err := l.check(call(unsafe.Pointer(&v))); err != nil {
		return 0, err
	}
	return v, nil
}

func readInt[T scalar](l *Library, call func(p unsafe.Pointer) params.Status) (ParameterValue, error) {
	v, err := readScalar[T](l, call)
	if err != nil {
		return nil, err
	}
	return Int(v), nil
}

// writeScalar copies v into a scratch of T's width and passes its address.
func writeScalar[T scalar](l *Library, v T, call func(p unsafe.Pointer) params.Status) error {
	scratch := v
	return l.check(call(unsafe.Pointer(&scratch)))
}

type intRange struct {
	min, max int64
}

var (
	int16Range  = intRange{-1 << 15, 1<<15 - 1}
	uint16Range = intRange{0, 1<<16 - 1}
	int32Range  = intRange{-1 << 31, 1<<31 - 1}
)

func (r intRange) contains(v int64) bool {
	return v >= r.min && v <= r.max
}

// narrow converts v to T, refusing anything outside r.
func narrow[T scalar](p Parameter, v int64, r intRange) (T, error) {
	if !r.contains(v) {
		return 0, &ValueOutOfRangeError{Parameter: p, Value: v, Min: r.min, Max: r.max}
	}
	return T(v), nil
}
