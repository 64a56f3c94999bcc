// Copyright 2025 The Salp Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/salp-ml/salp/internal/backend/cpu"
	"github.com/salp-ml/salp/internal/parallel"
	"github.com/salp-ml/salp/tensor"
)

// Backend represents the CPU backend implementation for element type T.
//
// CPU backend provides pure Go implementations of all tensor operations,
// splitting element-wise work across goroutines for large tensors.
type Backend[T tensor.Numeric] = internalcpu.CPUBackend[T]

// Config controls how element-wise operations are parallelized.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend[float32] = (*Backend[float32])(nil)

// MinLengthForParallelism is the default element count at which work is split.
const MinLengthForParallelism = internalcpu.MinLengthForParallelism

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/salp-ml/salp/backend/cpu"
//	    "github.com/salp-ml/salp/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New[float32]()
//	    x, _ := backend.CreateTensor(tensor.Shape{2, 3})
//	}
func New[T tensor.Numeric]() *Backend[T] {
	return internalcpu.New[T]()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
//
// Example:
//
//	cfg := cpu.DefaultConfig()
//	cfg.NumWorkers = 2
//	backend := cpu.NewWithConfig[float64](cfg)
func NewWithConfig[T tensor.Numeric](cfg Config) *Backend[T] {
	return internalcpu.NewWithConfig[T](cfg)
}

// DefaultConfig returns the settings used by New.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}

// SequentialConfig returns settings that never split work.
func SequentialConfig() Config {
	return parallel.Sequential()
}
