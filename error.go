package pvcam

import (
	"fmt"
	"strings"
)

// InternalErrorCode marks a DeviceError raised by this package rather than
// reported by the SDK.
const InternalErrorCode int16 = -1

const unknownErrorMessage = "Unknown Error"

// DeviceError is a failure reported by the SDK through pl_error_code and
// pl_error_message.
type DeviceError struct {
	Code    int16
	Message string
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
}

// ParameterUnknownError is returned when the device reports a parameter as
// unavailable.
type ParameterUnknownError struct {
	Parameter Parameter
}

func (e *ParameterUnknownError) Error() string {
	return fmt.Sprintf("parameter %s is unknown", e.Parameter)
}

// TypeMismatchError is returned when a value's kind does not fit the type the
// device reports for the parameter.
type TypeMismatchError struct {
	Parameter Parameter
	Type      ParameterType
	Value     ParameterValue
}

func (e *TypeMismatchError) Error() string {
	kind := "nil"
	if e.Value != nil {
		kind = e.Value.Kind()
	}
	return fmt.Sprintf("cannot write %s value to %s parameter %s", kind, e.Type, e.Parameter)
}

// ValueOutOfRangeError is returned when an integer does not fit the storage
// width of the parameter. Values are never truncated.
type ValueOutOfRangeError struct {
	Parameter Parameter
	Value     int64
	Min, Max  int64
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("%d cannot fit in [%d, %d], which is what %s holds", e.Value, e.Min, e.Max, e.Parameter)
}

// UnmappedTypeCodeError is returned when the device reports a storage type
// this package has no mapping for.
type UnmappedTypeCodeError struct {
	Parameter Parameter
	Code      uint32
}

func (e *UnmappedTypeCodeError) Error() string {
	return fmt.Sprintf("%#X unknown parameter type for %s", e.Code, e.Parameter)
}

// EncodingError is returned when a buffer filled by the device is not valid
// UTF-8 text.
type EncodingError struct {
	Data []byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("device returned invalid text %q", e.Data)
}

// UnresolvedEnumValueError is returned when the current value of an
// enumeration matches none of its options.
type UnresolvedEnumValueError struct {
	Parameter Parameter
	Value     int32
	Options   []EnumOption
}

func (e *UnresolvedEnumValueError) Error() string {
	opts := make([]string, len(e.Options))
	for i, o := range e.Options {
		opts[i] = o.String()
	}
	return fmt.Sprintf("could not find %d in %s with values [%s]", e.Value, e.Parameter, strings.Join(opts, ", "))
}

// AccessDeniedError is returned by Set when access checking is enabled and
// the device reports the parameter as not writable.
type AccessDeniedError struct {
	Parameter Parameter
	Access    Access
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("parameter %s is %s", e.Parameter, e.Access)
}
