// Copyright 2025 The Salp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/salp-ml/salp/internal/tensor"
)

// Memory owns the storage of one tensor: either a host buffer or an
// accelerator handle.
//
// Clone deep-copies host memory and panics for accelerator-resident memory,
// since no accelerator backend exists to copy device buffers.
//
// Example:
//
//	x, _ := tensor.New[float32](tensor.Shape{4})
//	if _, err := x.Memory().Accelerator(); errors.Is(err, tensor.ErrBackendUnsupported) {
//	    // host-only build, fall back to x.Data()
//	}
type Memory[T Numeric] = tensor.Memory[T]

// HostBuffer is host-resident tensor storage.
type HostBuffer[T Numeric] = tensor.HostBuffer[T]

// AcceleratorHandle holds opaque handles to accelerator-resident storage.
type AcceleratorHandle = tensor.AcceleratorHandle

// NewMemory allocates zero-filled host memory for the given shape.
func NewMemory[T Numeric](shape Shape) (*Memory[T], error) {
	return tensor.NewMemory[T](shape)
}

// FromMemory wraps m in a tensor handle.
//
// This is a low-level function. Most users should use New or FromSlice instead.
func FromMemory[T Numeric](m *Memory[T]) *Tensor[T] {
	return tensor.FromMemory(m)
}
