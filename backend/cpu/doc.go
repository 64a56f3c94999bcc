// Copyright 2025 The Salp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Generic element types (signed integers, float32, float64)
//   - Element-wise map/zip with in-place and out-of-place variants
//   - Full-buffer reductions (sum, mean, max, min) and equality
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
//	    a, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
//	    b, _ := tensor.FromSlice([]float64{10, 20}, tensor.Shape{2})
//	    c, err := backend.Add(a, b) // [11, 22]
//	}
//
// # Performance
//
// Tensors with at least MinLengthForParallelism elements are split into
// disjoint index ranges processed concurrently; smaller tensors run on the
// caller's goroutine. Both paths produce identical results.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. It keeps no state between
// calls. Callers must not mutate the same tensor from two calls at once.
package cpu
