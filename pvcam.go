// Package pvcam is a typed layer over the PVCAM camera SDK's untyped parameter
// store. Every Get and Set first asks the device whether the parameter exists
// and how it is stored, then marshals through a scratch of exactly that
// width. Nothing is cached between calls.
//
// The SDK is not safe for concurrent use on one handle, and its last-error
// state is process wide. Callers must serialize all calls that share a
// handle; distinct handles may be used in parallel only if the DeviceAPI
// implementation allows it. Calls block for as long as the device does.
package pvcam

import (
	"fmt"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/google/uuid"
	"github.com/kevmo314/go-pvcam/pkg/params"
)

// Library binds the typed layer to one DeviceAPI.
type Library struct {
	api         DeviceAPI
	logger      *slog.Logger
	accessCheck bool
}

type Option func(*Library)

// WithLogger sends debug records for every get and set, and warnings for
// device failures, to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

// WithAccessCheck makes Set refuse read-only and check-only parameters before
// writing. Without it the device is left to reject such writes itself.
func WithAccessCheck() Option {
	return func(l *Library) {
		l.accessCheck = true
	}
}

func New(api DeviceAPI, opts ...Option) *Library {
	l := &Library{api: api, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Library) Init() error {
	if err := l.check(l.api.Init()); err != nil {
		return fmt.Errorf("pl_pvcam_init: %w", err)
	}
	return nil
}

func (l *Library) Uninit() error {
	if err := l.check(l.api.Uninit()); err != nil {
		return fmt.Errorf("pl_pvcam_uninit: %w", err)
	}
	return nil
}

// ListCameras returns the names of all cameras the SDK can see, in SDK order.
func (l *Library) ListCameras() ([]string, error) {
	var total int16
	if err := l.check(l.api.CamGetTotal(&total)); err != nil {
		return nil, fmt.Errorf("pl_cam_get_total: %w", err)
	}

	names := make([]string, 0, max(total, 0))
	for i := int16(0); i < total; i++ {
		name, err := l.readString(params.CamNameLen, func(p unsafe.Pointer) params.Status {
			return l.api.CamGetName(i, p)
		})
		if err != nil {
			return nil, fmt.Errorf("pl_cam_get_name %d: %w", i, err)
		}
		names = append(names, name)
	}
	return names, nil
}

// Open opens a camera by name in exclusive mode.
func (l *Library) Open(name string) (*Camera, error) {
	if strings.IndexByte(name, 0) >= 0 {
		return nil, &DeviceError{Code: InternalErrorCode, Message: fmt.Sprintf("camera name %q cannot be passed to the SDK", name)}
	}
	hcam := int16(-1)
	if err := l.check(l.api.CamOpen(name, &hcam, params.OpenExclusive)); err != nil {
		return nil, fmt.Errorf("pl_cam_open %s: %w", name, err)
	}
	cam := &Camera{lib: l, handle: Handle(hcam), name: name, session: uuid.New()}
	l.logger.Debug("camera opened", "camera", name, "handle", hcam, "session", cam.session)
	return cam, nil
}

// Close releases a handle returned by Open.
func (l *Library) Close(h Handle) error {
	if err := l.check(l.api.CamClose(int16(h))); err != nil {
		return fmt.Errorf("pl_cam_close: %w", err)
	}
	return nil
}

// Get reads attr of p. Enumerations come back as Enum with the full option
// list, every integer width as Int, and strings as Text.
func (l *Library) Get(h Handle, p Parameter, attr params.Attribute) (ParameterValue, error) {
	if err := l.requireAvailable(h, p); err != nil {
		return nil, err
	}

	get := func(ptr unsafe.Pointer) params.Status {
		return l.api.GetParam(int16(h), p.ID(), attr, ptr)
	}

	// These attributes have their own width whatever the parameter stores.
	var fixed ParameterValue
	var err error
	switch attr {
	case params.AttrCount:
		fixed, err = readInt[int32](l, get)
	case params.AttrType:
		fixed, err = readInt[uint32](l, get)
	case params.AttrAccess, params.AttrAvailable:
		fixed, err = readInt[uint16](l, get)
	}
	if err != nil {
		return nil, err
	}
	if fixed != nil {
		l.logger.Debug("get", "param", p.Name(), "attr", attr, "handle", h, "value", fixed)
		return fixed, nil
	}

	typ, code, err := l.resolveStorage(h, p)
	if err != nil {
		return nil, err
	}

	var v ParameterValue
	switch typ {
	case TypeEnum:
		options, err := l.ReadOptions(h, p)
		if err != nil {
			return nil, err
		}
		idx, err := l.ResolveCurrentIndex(h, p, attr, options)
		if err != nil {
			return nil, err
		}
		v = Enum{Index: idx, Options: options}
	case TypeInt16:
		n, err := readScalar[int16](l, get)
		if err != nil {
			return nil, err
		}
		v = Int(n)
	case TypeInt32:
		if code == params.TypeUns16 {
			n, err := readScalar[uint16](l, get)
			if err != nil {
				return nil, err
			}
			v = Int(n)
			break
		}
		n, err := readScalar[int32](l, get)
		if err != nil {
			return nil, err
		}
		v = Int(n)
	case TypeString:
		s, err := l.readString(params.MaxPPNameLen, get)
		if err != nil {
			return nil, err
		}
		v = Text(s)
	}
	l.logger.Debug("get", "param", p.Name(), "attr", attr, "handle", h, "value", v)
	return v, nil
}

// Set writes v to p. Int values must fit the parameter's storage width; Enum
// values write their Index. Any other pairing is a TypeMismatchError.
func (l *Library) Set(h Handle, p Parameter, v ParameterValue) error {
	if err := l.requireAvailable(h, p); err != nil {
		return err
	}
	if l.accessCheck {
		acc, err := l.Access(h, p)
		if err != nil {
			return err
		}
		if !acc.Writable() {
			return &AccessDeniedError{Parameter: p, Access: acc}
		}
	}
	typ, code, err := l.resolveStorage(h, p)
	if err != nil {
		return err
	}

	set := func(ptr unsafe.Pointer) params.Status {
		return l.api.SetParam(int16(h), p.ID(), ptr)
	}

	switch v := v.(type) {
	case Int:
		switch {
		case typ == TypeInt16:
			var n int16
			if n, err = narrow[int16](p, int64(v), int16Range); err != nil {
				return err
			}
			err = writeScalar(l, n, set)
		case typ == TypeInt32 && code == params.TypeUns16:
			var n uint16
			if n, err = narrow[uint16](p, int64(v), uint16Range); err != nil {
				return err
			}
			err = writeScalar(l, n, set)
		case typ == TypeInt32:
			var n int32
			if n, err = narrow[int32](p, int64(v), int32Range); err != nil {
				return err
			}
			err = writeScalar(l, n, set)
		default:
			return &TypeMismatchError{Parameter: p, Type: typ, Value: v}
		}
	case Enum:
		if typ != TypeEnum {
			return &TypeMismatchError{Parameter: p, Type: typ, Value: v}
		}
		err = writeScalar(l, v.Index, set)
	default:
		return &TypeMismatchError{Parameter: p, Type: typ, Value: v}
	}
	if err != nil {
		return fmt.Errorf("pl_set_param %s: %w", p.Name(), err)
	}
	l.logger.Debug("set", "param", p.Name(), "handle", h, "value", v)
	return nil
}

// Access reports whether p can be read, written, or only probed.
func (l *Library) Access(h Handle, p Parameter) (Access, error) {
	code, err := readScalar[uint16](l, func(ptr unsafe.Pointer) params.Status {
		return l.api.GetParam(int16(h), p.ID(), params.AttrAccess, ptr)
	})
	if err != nil {
		return 0, err
	}
	acc, ok := accessCodes[params.AccessCode(code)]
	if !ok {
		return 0, &DeviceError{Code: InternalErrorCode, Message: fmt.Sprintf("got %d from access check, not expected", code)}
	}
	return acc, nil
}
