package tensor

import (
	"fmt"
	"slices"
)

// Tensor is a handle that exclusively owns one Memory. Its shape and strides
// never change after construction; only buffer contents are mutated, and only
// by in-place backend operations or Set.
//
// Example:
//
//	backend := cpu.New[float32]()
//	t, _ := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	doubled, _ := backend.Add(t, t)
type Tensor[T Numeric] struct {
	memory *Memory[T]
}

// New creates a zero-filled tensor with the given shape.
func New[T Numeric](shape Shape) (*Tensor[T], error) {
	m, err := NewMemory[T](shape)
	if err != nil {
		return nil, err
	}
	return FromMemory(m), nil
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied into the tensor's memory.
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	m, err := NewMemoryFrom(data, shape)
	if err != nil {
		return nil, err
	}
	return FromMemory(m), nil
}

// FromMemory wraps m in a tensor handle. The tensor takes ownership of m.
func FromMemory[T Numeric](m *Memory[T]) *Tensor[T] {
	return &Tensor[T]{memory: m}
}

// Memory returns the underlying memory.
// Used by backend implementations for low-level operations.
func (t *Tensor[T]) Memory() *Memory[T] {
	return t.memory
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.memory.mustHost().shape.Clone()
}

// Strides returns a copy of the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return slices.Clone(t.memory.mustHost().strides)
}

// Len returns the total number of elements.
func (t *Tensor[T]) Len() int {
	return t.memory.mustHost().HostLen()
}

// NumDims returns the number of dimensions.
func (t *Tensor[T]) NumDims() int {
	return len(t.memory.mustHost().shape)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Device returns the device holding the tensor's memory.
func (t *Tensor[T]) Device() Device {
	return t.memory.Residency()
}

// Data returns the tensor's flat buffer (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.memory.mustHost().data
}

// offset converts indices to a flat buffer position using strides.
func (t *Tensor[T]) offset(indices []int) (int, error) {
	h := t.memory.mustHost()
	if len(indices) != len(h.shape) {
		return 0, fmt.Errorf("expected %d indices, got %d", len(h.shape), len(indices))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= h.shape[i] {
			return 0, fmt.Errorf("index %d out of bounds for dimension %d (size %d)", idx, i, h.shape[i])
		}
		offset += idx * h.strides[i]
	}
	return offset, nil
}

// At returns the element at the given indices.
//
// Example:
//
//	t, _ := tensor.New[float32](Shape{3, 4})
//	value, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) (T, error) {
	off, err := t.offset(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.Data()[off], nil
}

// Set sets the element at the given indices.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	off, err := t.offset(indices)
	if err != nil {
		return err
	}
	t.Data()[off] = value
	return nil
}

// Clone creates a deep copy of the tensor. The clone shares no mutable state
// with t.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{memory: t.memory.Clone()}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return fmt.Sprintf("Tensor[%s][%s] on %s", t.DType(), t.memory.mustHost().shape, t.Device())
}
