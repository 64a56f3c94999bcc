package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemory(t *testing.T) {
	m, err := NewMemory[float32](Shape{2, 3})
	require.NoError(t, err)

	h, err := m.Host()
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, h.HostShape())
	assert.Equal(t, []int{3, 1}, h.HostStrides())
	assert.Equal(t, 6, h.HostLen())
	assert.Equal(t, make([]float32, 6), h.HostData(), "buffer must be zero-filled")
	assert.Equal(t, CPU, m.Residency())
}

func TestNewMemoryInvalidShape(t *testing.T) {
	_, err := NewMemory[int32](Shape{2, 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeInvalid))
}

func TestNewMemoryFromCopiesData(t *testing.T) {
	data := []int64{1, 2, 3, 4}
	m, err := NewMemoryFrom(data, Shape{2, 2})
	require.NoError(t, err)

	data[0] = 100
	assert.Equal(t, int64(1), m.mustHost().HostData()[0], "memory must own its buffer")
}

func TestNewMemoryFromMismatch(t *testing.T) {
	_, err := NewMemoryFrom([]float64{1, 2, 3, 4, 5}, Shape{2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))

	var mismatch *ShapeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 5, mismatch.Got)
	assert.Equal(t, 6, mismatch.Want)
	assert.Equal(t, Shape{2, 3}, mismatch.Shape)
	assert.Contains(t, err.Error(), "2x3 = 6")
}

func TestMemoryAcceleratorUnsupported(t *testing.T) {
	m, err := NewMemory[float32](Shape{4})
	require.NoError(t, err)

	handle, err := m.Accelerator()
	assert.Nil(t, handle)
	assert.True(t, errors.Is(err, ErrBackendUnsupported))
}

func TestMemoryAcceleratorResident(t *testing.T) {
	m := &Memory[float32]{accel: &AcceleratorHandle{Device: WebGPU, Length: 4}}

	assert.Equal(t, WebGPU, m.Residency())

	handle, err := m.Accelerator()
	require.NoError(t, err)
	assert.Equal(t, 4, handle.Length)

	_, err = m.Host()
	assert.True(t, errors.Is(err, ErrBackendUnsupported), "host view of device memory must fail, got %v", err)

	assert.Panics(t, func() { m.Clone() })
}

func TestMemoryCloneIsIndependent(t *testing.T) {
	m, err := NewMemoryFrom([]float64{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	require.NoError(t, err)

	c := m.Clone()
	src, dst := m.mustHost(), c.mustHost()
	assert.Equal(t, src.HostData(), dst.HostData())
	assert.Equal(t, src.HostShape(), dst.HostShape())
	assert.Equal(t, src.HostStrides(), dst.HostStrides())

	dst.HostData()[0] = 42
	dst.HostShape()[0] = 99
	dst.HostStrides()[0] = 7
	assert.Equal(t, 1.0, src.HostData()[0])
	assert.Equal(t, 3, src.HostShape()[0])
	assert.Equal(t, 2, src.HostStrides()[0])

	src.HostData()[1] = -1
	assert.Equal(t, 2.0, dst.HostData()[1])
}

func TestDeviceString(t *testing.T) {
	assert.Equal(t, "CPU", CPU.String())
	assert.Equal(t, "WebGPU", WebGPU.String())
	assert.Equal(t, "Unknown", Device(42).String())
}
