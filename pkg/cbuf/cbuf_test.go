package cbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsZeroFilled(t *testing.T) {
	b := New(16)
	defer b.Free()

	require.Len(t, b.Bytes(), 16)
	for i, c := range b.Bytes() {
		assert.Zero(t, c, "byte %d", i)
	}
	assert.NotNil(t, b.Ptr())
}

func TestTerminated(t *testing.T) {
	b := New(8)
	defer b.Free()

	copy(b.Bytes(), "abc\x00zz")
	got := b.Terminated()
	assert.Equal(t, []byte("abc"), got)

	// the copy must survive the release of the C memory
	b.Free()
	assert.Equal(t, []byte("abc"), got)
}

func TestTerminatedWithoutNUL(t *testing.T) {
	b := New(4)
	defer b.Free()

	copy(b.Bytes(), "abcd")
	assert.Equal(t, []byte("abcd"), b.Terminated())
}

func TestZeroLength(t *testing.T) {
	b := New(0)
	defer b.Free()

	assert.NotNil(t, b.Ptr())
	assert.Empty(t, b.Terminated())
}

func TestFreeBalancesOutstanding(t *testing.T) {
	before := Outstanding()
	for i := 0; i < 1000; i++ {
		b := New(255)
		b.Free()
		b.Free()
	}
	assert.Equal(t, before, Outstanding())
}
