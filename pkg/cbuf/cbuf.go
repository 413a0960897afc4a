// Package cbuf hands out zero-filled C heap buffers that a device call can
// write through, and copies their contents back into Go memory.
package cbuf

/*
#include <stdlib.h>
*/
import "C"
import (
	"bytes"
	"sync/atomic"
	"unsafe"
)

var outstanding atomic.Int64

// Outstanding reports how many buffers have been acquired and not yet freed.
func Outstanding() int64 {
	return outstanding.Load()
}

// Buffer is a fixed-capacity block of C memory. It must be released with
// Free exactly once, usually via defer right after New.
type Buffer struct {
	ptr unsafe.Pointer
	n   int
}

// New allocates a zero-filled buffer of n bytes. A zero-length request still
// yields a valid one-byte allocation so the device always receives a
// non-nil pointer.
func New(n int) *Buffer {
	size := n
	if size < 1 {
		size = 1
	}
	ptr := C.calloc(C.size_t(size), 1)
	if ptr == nil {
		panic("cbuf: calloc failed")
	}
	outstanding.Add(1)
	return &Buffer{ptr: ptr, n: n}
}

// Ptr is the writable address handed to the device.
func (b *Buffer) Ptr() unsafe.Pointer {
	return b.ptr
}

// Len is the capacity the buffer was acquired with.
func (b *Buffer) Len() int {
	return b.n
}

// Bytes returns a view of the C memory. It is invalid after Free.
func (b *Buffer) Bytes() []byte {
	if b.ptr == nil || b.n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.n)
}

// Terminated copies the contents up to, not including, the first NUL byte.
// A buffer the device filled without a terminator is copied whole.
func (b *Buffer) Terminated() []byte {
	raw := b.Bytes()
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return bytes.Clone(raw)
}

// Free releases the C memory. Calling it more than once is a no-op.
func (b *Buffer) Free() {
	if b.ptr == nil {
		return
	}
	C.free(b.ptr)
	b.ptr = nil
	outstanding.Add(-1)
}
