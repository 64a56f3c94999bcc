// Package tensor provides the core tensor types for the salp library: shapes,
// strides, host/accelerator memory and the backend contract.
package tensor

import "unsafe"

// Numeric is a constraint for supported tensor element types.
//
// Every member is a fixed-size value type that supports zero and one, the four
// arithmetic operators, unary negation, absolute value and a total order (for
// non-NaN values). Elements are copied by value, so buffers can be duplicated
// with copy() and partitioned across goroutines without aliasing.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Int8 DataType = iota
	Int16
	Int32
	Int64
	Int
	Float32
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Int, Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf infers the DataType of T, following named types to their
// underlying kind.
func DataTypeOf[T Numeric]() DataType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return Int
	case float32:
		return Float32
	case float64:
		return Float64
	}

	// Named types (~T) do not match the type switch above.
	switch size := unsafe.Sizeof(zero); {
	case IsFloat[T]() && size == 4:
		return Float32
	case IsFloat[T]():
		return Float64
	case size == 1:
		return Int8
	case size == 2:
		return Int16
	case size == 4:
		return Int32
	default:
		return Int64
	}
}

// Zero returns the additive identity of T.
func Zero[T Numeric]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Numeric]() T {
	return 1
}

// Abs returns the absolute value of x.
func Abs[T Numeric](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Numeric]() bool {
	return T(1)/T(2) != 0
}

// isNaN reports whether x is a floating-point NaN.
func isNaN[T Numeric](x T) bool {
	return x != x //nolint:gocritic // NaN is the only value not equal to itself
}

// Same reports whether two elements are identical. NaN is identical to NaN.
func Same[T Numeric](a, b T) bool {
	return a == b || (isNaN(a) && isNaN(b))
}
