package cpu

import (
	"github.com/salp-ml/salp/internal/parallel"
	"github.com/salp-ml/salp/internal/tensor"
)

// Map applies f to every element and returns a new tensor. a is unchanged.
func (cpu *CPUBackend[T]) Map(a *tensor.Tensor[T], f func(T) T) *tensor.Tensor[T] {
	return cpu.mapCore(false, a, f)
}

// MapInPlace applies f to every element of a and returns a.
func (cpu *CPUBackend[T]) MapInPlace(a *tensor.Tensor[T], f func(T) T) *tensor.Tensor[T] {
	return cpu.mapCore(true, a, f)
}

// mapCore writes f(data[i]) to index i of the result for every i. Each index
// is read and written by exactly one goroutine, so the parallel path needs no
// locking.
func (cpu *CPUBackend[T]) mapCore(inPlace bool, a *tensor.Tensor[T], f func(T) T) *tensor.Tensor[T] {
	result := a
	if !inPlace {
		result = a.Clone()
	}

	data := result.Data()
	parallel.For(len(data), func(i int) {
		data[i] = f(data[i])
	}, cpu.cfg)

	return result
}

// Zip applies f to each pair (a[i], b[i]) and returns a new tensor.
// a and b are unchanged.
func (cpu *CPUBackend[T]) Zip(a, b *tensor.Tensor[T], f func(x, y T) T) (*tensor.Tensor[T], error) {
	return cpu.zipCore(false, "zip", a, b, f)
}

// ZipInPlace stores f(a[i], b[i]) into a and returns a. b is unchanged.
func (cpu *CPUBackend[T]) ZipInPlace(a, b *tensor.Tensor[T], f func(x, y T) T) (*tensor.Tensor[T], error) {
	return cpu.zipCore(true, "zip", a, b, f)
}

// zipCore validates shapes before touching any element, so a failed in-place
// call leaves a intact.
func (cpu *CPUBackend[T]) zipCore(inPlace bool, op string, a, b *tensor.Tensor[T], f func(x, y T) T) (*tensor.Tensor[T], error) {
	if err := tensor.CheckSameShape(op, a.Shape(), b.Shape()); err != nil {
		return nil, err
	}

	result := a
	if !inPlace {
		result = a.Clone()
	}

	dst := result.Data()
	src := b.Data()
	parallel.For(len(dst), func(i int) {
		dst[i] = f(dst[i], src[i])
	}, cpu.cfg)

	return result, nil
}

func add[T tensor.Numeric](x, y T) T { return x + y }
func sub[T tensor.Numeric](x, y T) T { return x - y }
func mul[T tensor.Numeric](x, y T) T { return x * y }
func div[T tensor.Numeric](x, y T) T { return x / y }
func neg[T tensor.Numeric](x T) T    { return -x }

// Add performs element-wise addition: a + b.
func (cpu *CPUBackend[T]) Add(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(false, "add", a, b, add[T])
}

// AddInPlace performs a += b.
func (cpu *CPUBackend[T]) AddInPlace(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(true, "add", a, b, add[T])
}

// Subtract performs element-wise subtraction: a - b.
func (cpu *CPUBackend[T]) Subtract(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(false, "subtract", a, b, sub[T])
}

// SubtractInPlace performs a -= b.
func (cpu *CPUBackend[T]) SubtractInPlace(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(true, "subtract", a, b, sub[T])
}

// Multiply performs element-wise multiplication: a * b.
func (cpu *CPUBackend[T]) Multiply(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(false, "multiply", a, b, mul[T])
}

// MultiplyInPlace performs a *= b.
func (cpu *CPUBackend[T]) MultiplyInPlace(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(true, "multiply", a, b, mul[T])
}

// Divide performs element-wise division: a / b.
// Integer division by zero panics, as it does for Go integers.
func (cpu *CPUBackend[T]) Divide(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(false, "divide", a, b, div[T])
}

// DivideInPlace performs a /= b.
func (cpu *CPUBackend[T]) DivideInPlace(a, b *tensor.Tensor[T]) (*tensor.Tensor[T], error) {
	return cpu.zipCore(true, "divide", a, b, div[T])
}

// Negate returns -a.
func (cpu *CPUBackend[T]) Negate(a *tensor.Tensor[T]) *tensor.Tensor[T] {
	return cpu.mapCore(false, a, neg[T])
}

// NegateInPlace replaces every element of a with its negation.
func (cpu *CPUBackend[T]) NegateInPlace(a *tensor.Tensor[T]) *tensor.Tensor[T] {
	return cpu.mapCore(true, a, neg[T])
}

// Abs returns |a|.
func (cpu *CPUBackend[T]) Abs(a *tensor.Tensor[T]) *tensor.Tensor[T] {
	return cpu.mapCore(false, a, tensor.Abs[T])
}

// AbsInPlace replaces every element of a with its absolute value.
func (cpu *CPUBackend[T]) AbsInPlace(a *tensor.Tensor[T]) *tensor.Tensor[T] {
	return cpu.mapCore(true, a, tensor.Abs[T])
}
