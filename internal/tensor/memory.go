package tensor

import (
	"fmt"
	"slices"
)

// Device represents the compute device where tensor memory resides.
type Device int

// Supported compute devices. Only CPU has a backend; the rest are reserved.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// HostBuffer is host-resident storage: a flat row-major buffer with its shape
// and strides. len(data) == shape.NumElements() always holds.
type HostBuffer[T Numeric] struct {
	data    []T
	shape   Shape
	strides []int
}

// HostShape returns the buffer's shape.
func (h *HostBuffer[T]) HostShape() Shape {
	return h.shape
}

// HostData returns the flat element buffer (zero-copy).
func (h *HostBuffer[T]) HostData() []T {
	return h.data
}

// HostLen returns the number of elements in the buffer.
func (h *HostBuffer[T]) HostLen() int {
	return len(h.data)
}

// HostStrides returns the row-major strides.
func (h *HostBuffer[T]) HostStrides() []int {
	return h.strides
}

func (h *HostBuffer[T]) clone() *HostBuffer[T] {
	return &HostBuffer[T]{
		data:    slices.Clone(h.data),
		shape:   h.shape.Clone(),
		strides: slices.Clone(h.strides),
	}
}

// AcceleratorHandle is accelerator-resident storage. The fields are opaque
// device handles owned by an accelerator backend.
type AcceleratorHandle struct {
	Device  Device
	Data    uintptr
	Shape   uintptr
	Strides uintptr
	Length  int
}

// Memory owns the storage of one tensor. Exactly one of host and accel is set.
type Memory[T Numeric] struct {
	host  *HostBuffer[T]
	accel *AcceleratorHandle
}

// NewMemory allocates zero-filled host memory for the given shape.
func NewMemory[T Numeric](shape Shape) (*Memory[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Memory[T]{
		host: &HostBuffer[T]{
			data:    make([]T, shape.NumElements()),
			shape:   shape.Clone(),
			strides: shape.ComputeStrides(),
		},
	}, nil
}

// NewMemoryFrom allocates host memory for the given shape and copies data
// into it. The caller keeps ownership of data.
func NewMemoryFrom[T Numeric](data []T, shape Shape) (*Memory[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if want := shape.NumElements(); len(data) != want {
		return nil, &ShapeMismatchError{
			Op:    "create",
			Got:   len(data),
			Want:  want,
			Shape: shape.Clone(),
		}
	}

	m, err := NewMemory[T](shape)
	if err != nil {
		return nil, err
	}
	copy(m.host.data, data)
	return m, nil
}

// Residency returns the device that holds the memory.
func (m *Memory[T]) Residency() Device {
	if m.accel != nil {
		return m.accel.Device
	}
	return CPU
}

// Host returns the host buffer, or ErrBackendUnsupported if the memory is
// accelerator-resident.
func (m *Memory[T]) Host() (*HostBuffer[T], error) {
	if m.host == nil {
		return nil, fmt.Errorf("host view of %s memory: %w", m.Residency(), ErrBackendUnsupported)
	}
	return m.host, nil
}

// Accelerator returns the accelerator handle. Until an accelerator backend
// populates it, this fails with ErrBackendUnsupported; callers use that to
// feature-detect.
func (m *Memory[T]) Accelerator() (*AcceleratorHandle, error) {
	if m.accel == nil {
		return nil, fmt.Errorf("accelerator view of %s memory: %w", m.Residency(), ErrBackendUnsupported)
	}
	return m.accel, nil
}

// mustHost is used by Tensor accessors; every constructor in this package
// produces host memory.
func (m *Memory[T]) mustHost() *HostBuffer[T] {
	h, err := m.Host()
	if err != nil {
		panic(err)
	}
	return h
}

// Clone returns an independent deep copy of the memory. Mutating the clone
// never affects the original and vice versa.
// Panics for accelerator-resident memory, which has no backend to copy it.
func (m *Memory[T]) Clone() *Memory[T] {
	return &Memory[T]{host: m.mustHost().clone()}
}
