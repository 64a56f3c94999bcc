package tensor

// Backend defines the operation set every compute device implements for
// element type T. Backends are stateless across calls.
//
// Out-of-place operations return a new tensor and leave their inputs
// unchanged. In-place operations mutate and return the first operand; the
// second operand of a binary operation is never modified. Binary operations
// require operands of identical shape and fail with ErrShapeMismatch before
// writing any element otherwise.
//
// Implementations:
//   - CPU: Pure Go, fork-join parallelism above a length threshold
//   - CUDA, Vulkan, Metal, WebGPU: reserved (no backend yet)
type Backend[T Numeric] interface {
	// Element-wise primitives
	Map(a *Tensor[T], f func(T) T) *Tensor[T]
	MapInPlace(a *Tensor[T], f func(T) T) *Tensor[T]
	Zip(a, b *Tensor[T], f func(x, y T) T) (*Tensor[T], error)
	ZipInPlace(a, b *Tensor[T], f func(x, y T) T) (*Tensor[T], error)

	// Element-wise binary operations
	Add(a, b *Tensor[T]) (*Tensor[T], error)
	AddInPlace(a, b *Tensor[T]) (*Tensor[T], error)
	Subtract(a, b *Tensor[T]) (*Tensor[T], error)
	SubtractInPlace(a, b *Tensor[T]) (*Tensor[T], error)
	Multiply(a, b *Tensor[T]) (*Tensor[T], error)
	MultiplyInPlace(a, b *Tensor[T]) (*Tensor[T], error)
	Divide(a, b *Tensor[T]) (*Tensor[T], error)
	DivideInPlace(a, b *Tensor[T]) (*Tensor[T], error)

	// Unary operations
	Negate(a *Tensor[T]) *Tensor[T]
	NegateInPlace(a *Tensor[T]) *Tensor[T]
	Abs(a *Tensor[T]) *Tensor[T]
	AbsInPlace(a *Tensor[T]) *Tensor[T]

	// Reduction operations (full buffer, scalar result)
	Sum(a *Tensor[T]) T
	Mean(a *Tensor[T]) (T, error)
	Max(a *Tensor[T]) T
	Min(a *Tensor[T]) T

	// Equal reports whether a and b have identical shapes and elements.
	Equal(a, b *Tensor[T]) bool

	// Creation
	CreateTensor(shape Shape) (*Tensor[T], error)
	CreateTensorFrom(data []T, shape Shape) (*Tensor[T], error)

	// Metadata
	Name() string
	Device() Device
}
