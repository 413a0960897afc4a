// Package pvcamtest provides an in-memory PVCAM device for tests and for
// running the command-line tools without hardware.
package pvcamtest

import (
	"slices"
	"sync"
	"unsafe"

	"github.com/kevmo314/go-pvcam/pkg/params"
)

// Error codes reported by the fake. They are not real SDK codes.
const (
	ErrNotInitialized int16 = 101 + iota
	ErrAlreadyInitialized
	ErrCameraNotFound
	ErrBadHandle
	ErrParamNotAvailable
	ErrAttrNotSupported
	ErrReadOnly
	ErrOutOfRange
	ErrInjected
)

var messages = map[int16]string{
	ErrNotInitialized:     "PVCAM library not initialized",
	ErrAlreadyInitialized: "PVCAM library already initialized",
	ErrCameraNotFound:     "camera not found",
	ErrBadHandle:          "invalid camera handle",
	ErrParamNotAvailable:  "parameter not available",
	ErrAttrNotSupported:   "attribute not supported for parameter",
	ErrReadOnly:           "parameter is not writable",
	ErrOutOfRange:         "value out of range",
	ErrInjected:           "injected failure",
}

// Option is one entry of an enumeration parameter.
type Option struct {
	Value int32
	Name  string
}

// Param is the fake's state for one parameter. Value holds the current
// integer or raw enumeration value, Text the current string.
type Param struct {
	Type        params.TypeCode
	Unavailable bool
	Access      params.AccessCode
	Value       int64
	Text        string
	Options     []Option
	// Attrs overrides Min, Max, Default and Increment reads.
	Attrs map[params.Attribute]int64
}

// Camera is a named fake camera with its parameter table.
type Camera struct {
	Name   string
	Params map[params.ID]*Param
}

func NewCamera(name string) *Camera {
	return &Camera{Name: name, Params: map[params.ID]*Param{}}
}

// With adds or replaces a parameter and returns c for chaining.
func (c *Camera) With(id params.ID, p *Param) *Camera {
	c.Params[id] = p
	return c
}

// Call records one DeviceAPI invocation.
type Call struct {
	Name   string
	Handle int16
	ID     params.ID
	Attr   params.Attribute
	Index  uint32
	Code   int16
}

// Device implements pvcam.DeviceAPI in memory. It is safe for concurrent use
// so tests can drive distinct handles in parallel.
type Device struct {
	mu          sync.Mutex
	cameras     []*Camera
	open        map[int16]*Camera
	nextHandle  int16
	initialized bool
	lastErr     int16
	calls       []Call

	failWhen    func(Call) (int16, bool)
	renderFails bool
}

func NewDevice(cameras ...*Camera) *Device {
	return &Device{cameras: cameras, open: map[int16]*Camera{}}
}

// FailWhen installs a hook consulted before every call. Returning true makes
// the call fail with the returned error code.
func (d *Device) FailWhen(f func(Call) (int16, bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failWhen = f
}

// RenderFails makes ErrorMessage fail, as if the SDK could not describe its
// own error.
func (d *Device) RenderFails(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.renderFails = v
}

// SetLastError sets the code ErrorCode will report.
func (d *Device) SetLastError(code int16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastErr = code
}

// Calls returns a copy of the call log.
func (d *Device) Calls() []Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.calls)
}

// Count returns how many calls named name have been made.
func (d *Device) Count(name string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, c := range d.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

func (d *Device) ResetCalls() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = nil
}

// Param returns the live state of a parameter on an open handle.
func (d *Device) Param(hcam int16, id params.ID) *Param {
	d.mu.Lock()
	defer d.mu.Unlock()
	cam, ok := d.open[hcam]
	if !ok {
		return nil
	}
	return cam.Params[id]
}

// enter records c and decides whether it fails. It must be called with d.mu
// held.
func (d *Device) enter(c Call) (int16, bool) {
	if d.failWhen != nil {
		if code, ok := d.failWhen(c); ok {
			c.Code = code
			d.calls = append(d.calls, c)
			d.lastErr = code
			return code, true
		}
	}
	d.calls = append(d.calls, c)
	return 0, false
}

func (d *Device) fail(code int16) params.Status {
	d.lastErr = code
	if n := len(d.calls); n > 0 {
		d.calls[n-1].Code = code
	}
	return params.StatusFail
}

func (d *Device) Init() params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "Init"}); failed {
		return params.StatusFail
	}
	if d.initialized {
		return d.fail(ErrAlreadyInitialized)
	}
	d.initialized = true
	return params.StatusOK
}

func (d *Device) Uninit() params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "Uninit"}); failed {
		return params.StatusFail
	}
	if !d.initialized {
		return d.fail(ErrNotInitialized)
	}
	d.initialized = false
	clear(d.open)
	return params.StatusOK
}

func (d *Device) CamGetTotal(total *int16) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "CamGetTotal"}); failed {
		return params.StatusFail
	}
	if !d.initialized {
		return d.fail(ErrNotInitialized)
	}
	*total = int16(len(d.cameras))
	return params.StatusOK
}

func (d *Device) CamGetName(index int16, name unsafe.Pointer) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "CamGetName", Index: uint32(index)}); failed {
		return params.StatusFail
	}
	if !d.initialized {
		return d.fail(ErrNotInitialized)
	}
	if index < 0 || int(index) >= len(d.cameras) {
		return d.fail(ErrCameraNotFound)
	}
	putString(name, params.CamNameLen, d.cameras[index].Name)
	return params.StatusOK
}

func (d *Device) CamOpen(name string, hcam *int16, mode params.OpenMode) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "CamOpen"}); failed {
		return params.StatusFail
	}
	if !d.initialized {
		return d.fail(ErrNotInitialized)
	}
	i := slices.IndexFunc(d.cameras, func(c *Camera) bool { return c.Name == name })
	if i < 0 {
		return d.fail(ErrCameraNotFound)
	}
	h := d.nextHandle
	d.nextHandle++
	d.open[h] = d.cameras[i]
	*hcam = h
	return params.StatusOK
}

func (d *Device) CamClose(hcam int16) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "CamClose", Handle: hcam}); failed {
		return params.StatusFail
	}
	if _, ok := d.open[hcam]; !ok {
		return d.fail(ErrBadHandle)
	}
	delete(d.open, hcam)
	return params.StatusOK
}

// lookup must be called with d.mu held.
func (d *Device) lookup(hcam int16, id params.ID) (*Param, int16) {
	cam, ok := d.open[hcam]
	if !ok {
		return nil, ErrBadHandle
	}
	p, ok := cam.Params[id]
	if !ok || p.Unavailable {
		return nil, ErrParamNotAvailable
	}
	return p, 0
}

func (d *Device) GetParam(hcam int16, id params.ID, attr params.Attribute, value unsafe.Pointer) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "GetParam", Handle: hcam, ID: id, Attr: attr}); failed {
		return params.StatusFail
	}

	if attr == params.AttrAvailable {
		if _, ok := d.open[hcam]; !ok {
			return d.fail(ErrBadHandle)
		}
		_, code := d.lookup(hcam, id)
		avail := params.StatusOK
		if code != 0 {
			avail = params.StatusFail
		}
		*(*uint16)(value) = uint16(avail)
		return params.StatusOK
	}

	p, code := d.lookup(hcam, id)
	if code != 0 {
		return d.fail(code)
	}

	switch attr {
	case params.AttrType:
		*(*uint32)(value) = uint32(p.Type)
	case params.AttrAccess:
		*(*uint16)(value) = uint16(p.access())
	case params.AttrCount:
		n := uint32(1)
		if p.Type == params.TypeEnum {
			n = uint32(len(p.Options))
		}
		*(*uint32)(value) = n
	case params.AttrCurrent, params.AttrMin, params.AttrMax, params.AttrDefault, params.AttrIncrement:
		v := p.Value
		if o, ok := p.Attrs[attr]; ok {
			v = o
		} else if attr != params.AttrCurrent && attr != params.AttrDefault {
			return d.fail(ErrAttrNotSupported)
		}
		if !p.put(value, v) {
			return d.fail(ErrAttrNotSupported)
		}
	default:
		return d.fail(ErrAttrNotSupported)
	}
	return params.StatusOK
}

func (d *Device) SetParam(hcam int16, id params.ID, value unsafe.Pointer) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "SetParam", Handle: hcam, ID: id}); failed {
		return params.StatusFail
	}
	p, code := d.lookup(hcam, id)
	if code != 0 {
		return d.fail(code)
	}
	if acc := p.access(); acc == params.AccReadOnly || acc == params.AccExistCheckOnly {
		return d.fail(ErrReadOnly)
	}

	switch p.Type {
	case params.TypeInt16:
		p.Value = int64(*(*int16)(value))
	case params.TypeUns16:
		p.Value = int64(*(*uint16)(value))
	case params.TypeInt32:
		p.Value = int64(*(*int32)(value))
	case params.TypeEnum:
		// enumerations are written by option index
		idx := *(*uint32)(value)
		if int(idx) >= len(p.Options) {
			return d.fail(ErrOutOfRange)
		}
		p.Value = int64(p.Options[idx].Value)
	default:
		return d.fail(ErrReadOnly)
	}
	return params.StatusOK
}

func (d *Device) EnumStrLength(hcam int16, id params.ID, index uint32, length *uint32) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "EnumStrLength", Handle: hcam, ID: id, Index: index}); failed {
		return params.StatusFail
	}
	p, code := d.lookup(hcam, id)
	if code != 0 {
		return d.fail(code)
	}
	if p.Type != params.TypeEnum || int(index) >= len(p.Options) {
		return d.fail(ErrOutOfRange)
	}
	*length = uint32(len(p.Options[index].Name) + 1)
	return params.StatusOK
}

func (d *Device) GetEnumParam(hcam int16, id params.ID, index uint32, value *int32, desc unsafe.Pointer, length uint32) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, failed := d.enter(Call{Name: "GetEnumParam", Handle: hcam, ID: id, Index: index}); failed {
		return params.StatusFail
	}
	p, code := d.lookup(hcam, id)
	if code != 0 {
		return d.fail(code)
	}
	if p.Type != params.TypeEnum || int(index) >= len(p.Options) {
		return d.fail(ErrOutOfRange)
	}
	*value = p.Options[index].Value
	putString(desc, int(length), p.Options[index].Name)
	return params.StatusOK
}

func (d *Device) ErrorCode() int16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Name: "ErrorCode", Code: d.lastErr})
	return d.lastErr
}

func (d *Device) ErrorMessage(code int16, msg unsafe.Pointer) params.Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, Call{Name: "ErrorMessage", Code: code})
	if d.renderFails {
		return params.StatusFail
	}
	text, ok := messages[code]
	if !ok {
		return params.StatusFail
	}
	putString(msg, params.ErrorMsgLen, text)
	return params.StatusOK
}

func (p *Param) access() params.AccessCode {
	if p.Access == 0 {
		return params.AccReadWrite
	}
	return p.Access
}

// put writes v, or Text for string parameters, in the parameter's storage
// width.
func (p *Param) put(dst unsafe.Pointer, v int64) bool {
	switch p.Type {
	case params.TypeInt16:
		*(*int16)(dst) = int16(v)
	case params.TypeUns16:
		*(*uint16)(dst) = uint16(v)
	case params.TypeInt32, params.TypeEnum:
		*(*int32)(dst) = int32(v)
	case params.TypeUns32:
		*(*uint32)(dst) = uint32(v)
	case params.TypeCharPtr:
		putString(dst, params.MaxPPNameLen, p.Text)
	default:
		return false
	}
	return true
}

// putString copies s into an n byte C buffer, truncating so the terminator
// always fits.
func putString(dst unsafe.Pointer, n int, s string) {
	if n <= 0 {
		return
	}
	buf := unsafe.Slice((*byte)(dst), n)
	m := copy(buf[:n-1], s)
	buf[m] = 0
}
