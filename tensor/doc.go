// Copyright 2025 The Salp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides generic N-dimensional numeric arrays for salp.
//
// # Overview
//
// A Tensor owns a flat row-major buffer together with its shape and derived
// strides. Computation is performed by a Backend (see backend/cpu), which reads
// and writes the buffer directly:
//   - Out-of-place operations return a new tensor; inputs are unchanged
//   - In-place operations mutate and return their first operand
//   - Binary operations require identical shapes (no broadcasting)
//
// # Basic Usage
//
//	import (
//	    "github.com/salp-ml/salp/backend/cpu"
//	    "github.com/salp-ml/salp/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New[float64]()
//
//	    x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	    y, _ := tensor.Ones[float64](tensor.Shape{2, 3})
//
//	    z, err := backend.Add(x, y)    // new tensor
//	    _, err = backend.AddInPlace(x, y) // x += y
//	    mean, err := backend.Mean(z)
//	}
//
// # Supported Data Types
//
// Any type satisfying the Numeric constraint:
//   - int8, int16, int32, int64, int (signed integers)
//   - float32, float64 (floating-point)
//   - named types with one of the above as underlying type
//
// # Errors
//
// Construction and binary operations report ErrShapeInvalid and
// ErrShapeMismatch; accessing accelerator storage before an accelerator
// backend exists reports ErrBackendUnsupported. Match with errors.Is.
//
// # Concurrency
//
// Tensors carry no locks. Independent tensors may be used from any number of
// goroutines; a tensor being mutated in place must not be used concurrently.
package tensor
