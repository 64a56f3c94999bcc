package tensor

import "math"

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t, err := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T Numeric](shape Shape) (*Tensor[T], error) {
	// Memory is zero-initialized by make().
	return New[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T Numeric](shape Shape) (*Tensor[T], error) {
	return Full(shape, One[T]())
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t, err := tensor.Full[float32](Shape{3, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t, nil
}

// Arange creates a 1D tensor with values from start to end (exclusive), step 1.
// An empty range fails with ErrShapeInvalid.
//
// Example:
//
//	t, err := tensor.Arange[float32](0, 10) // [0, 1, 2, ..., 9]
func Arange[T Numeric](start, end T) (*Tensor[T], error) {
	n := int(math.Ceil(float64(end) - float64(start)))

	t, err := New[T](Shape{n})
	if err != nil {
		return nil, err
	}
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t, nil
}
