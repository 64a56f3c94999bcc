// Copyright 2025 The Salp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/salp-ml/salp/internal/tensor"
)

// Type aliases for public API

// Numeric is a constraint for tensor element types.
// Supported types: int8, int16, int32, int64, int, float32, float64.
type Numeric = tensor.Numeric

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Int     DataType = tensor.Int
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a generic handle owning one tensor's memory.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	v, err := x.At(1, 0) // 3
type Tensor[T Numeric] = tensor.Tensor[T]

// ShapeMismatchError carries the observed and expected sizes of a mismatch.
type ShapeMismatchError = tensor.ShapeMismatchError

// Errors returned by tensor construction and backend operations.
var (
	ErrShapeInvalid       = tensor.ErrShapeInvalid
	ErrShapeMismatch      = tensor.ErrShapeMismatch
	ErrBackendUnsupported = tensor.ErrBackendUnsupported
	ErrLengthOverflow     = tensor.ErrLengthOverflow
)

// Creation functions

// New creates a zero-filled tensor with the given shape.
func New[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied; len(data) must equal shape.NumElements().
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T Numeric](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric](shape Shape) (*Tensor[T], error) {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	x, err := tensor.Full[float32](tensor.Shape{2, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Arange creates a 1D tensor with values from start to end (exclusive).
//
// Example:
//
//	x, err := tensor.Arange[float32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Numeric](start, end T) (*Tensor[T], error) {
	return tensor.Arange(start, end)
}
