// Package cpu implements the CPU backend for salp tensors.
package cpu

import (
	"github.com/salp-ml/salp/internal/parallel"
	"github.com/salp-ml/salp/internal/tensor"
)

// MinLengthForParallelism is the buffer length at which element-wise
// operations are split across goroutines. Results are identical either way.
const MinLengthForParallelism = parallel.DefaultThreshold

// CPUBackend implements tensor operations on host memory for element type T.
// It holds no per-call state and is safe for concurrent use, provided no two
// calls mutate the same tensor at once.
type CPUBackend[T tensor.Numeric] struct {
	device tensor.Device
	cfg    parallel.Config
}

// Compile-time check that CPUBackend implements tensor.Backend.
var _ tensor.Backend[float64] = (*CPUBackend[float64])(nil)

// New creates a new CPU backend using all CPUs above MinLengthForParallelism.
func New[T tensor.Numeric]() *CPUBackend[T] {
	return NewWithConfig[T](parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
// A zero Threshold is replaced by MinLengthForParallelism.
func NewWithConfig[T tensor.Numeric](cfg parallel.Config) *CPUBackend[T] {
	if cfg.Threshold <= 0 {
		cfg.Threshold = MinLengthForParallelism
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = 1
	}
	return &CPUBackend[T]{
		device: tensor.CPU,
		cfg:    cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend[T]) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend[T]) Device() tensor.Device {
	return cpu.device
}

// Config returns the parallelism settings.
func (cpu *CPUBackend[T]) Config() parallel.Config {
	return cpu.cfg
}

// CreateTensor creates a zero-filled host tensor with the given shape.
func (cpu *CPUBackend[T]) CreateTensor(shape tensor.Shape) (*tensor.Tensor[T], error) {
	m, err := tensor.NewMemory[T](shape)
	if err != nil {
		return nil, err
	}
	return tensor.FromMemory(m), nil
}

// CreateTensorFrom creates a host tensor holding a copy of data.
func (cpu *CPUBackend[T]) CreateTensorFrom(data []T, shape tensor.Shape) (*tensor.Tensor[T], error) {
	m, err := tensor.NewMemoryFrom(data, shape)
	if err != nil {
		return nil, err
	}
	return tensor.FromMemory(m), nil
}
