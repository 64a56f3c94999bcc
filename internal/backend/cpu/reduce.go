package cpu

import (
	"fmt"
	"slices"

	"github.com/salp-ml/salp/internal/tensor"
)

// Reductions fold over the full buffer sequentially. Shapes have positive
// dimensions, so every tensor has at least one element.

// Sum returns the sum of all elements. Integer sums wrap on overflow.
func (cpu *CPUBackend[T]) Sum(a *tensor.Tensor[T]) T {
	return sum(a.Data())
}

// Mean returns Sum(a) / Len(a) using the element type's division, so integer
// tensors yield a truncated mean.
//
// Fails with tensor.ErrLengthOverflow when the element count cannot be
// represented in T (e.g. more than 127 elements for int8).
func (cpu *CPUBackend[T]) Mean(a *tensor.Tensor[T]) (T, error) {
	data := a.Data()
	n, err := exactCount[T](len(data))
	if err != nil {
		var zero T
		return zero, fmt.Errorf("mean: %w", err)
	}
	return sum(data) / n, nil
}

// Max returns the largest element. NaN propagates for float types.
func (cpu *CPUBackend[T]) Max(a *tensor.Tensor[T]) T {
	return slices.Max(a.Data())
}

// Min returns the smallest element. NaN propagates for float types.
func (cpu *CPUBackend[T]) Min(a *tensor.Tensor[T]) T {
	return slices.Min(a.Data())
}

func sum[T tensor.Numeric](data []T) T {
	var total T
	for _, v := range data {
		total += v
	}
	return total
}

// exactCount converts an element count to T. Float types accept any count;
// integer types must round-trip without overflow.
func exactCount[T tensor.Numeric](n int) (T, error) {
	c := T(n)
	if !tensor.IsFloat[T]() && int(c) != n {
		return c, fmt.Errorf("%w: %d elements as %s", tensor.ErrLengthOverflow, n, tensor.DataTypeOf[T]())
	}
	return c, nil
}
