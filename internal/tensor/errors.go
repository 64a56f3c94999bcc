package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by tensor construction and backend operations.
// Match them with errors.Is.
var (
	// ErrShapeInvalid is returned when a shape has no dimensions or a dimension <= 0.
	ErrShapeInvalid = errors.New("invalid shape")

	// ErrShapeMismatch is returned when data length and shape disagree, or when
	// the operands of a binary operation have different shapes.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrBackendUnsupported is returned when accelerator-resident storage is
	// accessed and no accelerator backend is available.
	ErrBackendUnsupported = errors.New("backend not supported")

	// ErrLengthOverflow is returned when an element count cannot be represented
	// exactly in the tensor's element type.
	ErrLengthOverflow = errors.New("length overflows element type")
)

// ShapeMismatchError describes a disagreement between observed and expected
// sizes. It unwraps to ErrShapeMismatch.
type ShapeMismatchError struct {
	Op    string // Operation that detected the mismatch.
	Got   int    // Observed element count.
	Want  int    // Expected element count.
	Shape Shape  // Expected shape.
	Other Shape  // Shape of the second operand, for binary operations.
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Other != nil {
		return fmt.Sprintf("%s: tensor shapes do not match: %s (%d elements) and %s (%d elements)",
			e.Op, e.Shape, e.Want, e.Other, e.Got)
	}
	return fmt.Sprintf("%s: data length (%d) does not match shape product (%d): expected data length %s = %d",
		e.Op, e.Got, e.Want, e.Shape, e.Want)
}

// Unwrap returns ErrShapeMismatch.
func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

// CheckSameShape returns a *ShapeMismatchError if a and b differ in shape.
func CheckSameShape(op string, a, b Shape) error {
	if a.Equal(b) {
		return nil
	}
	return &ShapeMismatchError{
		Op:    op,
		Got:   b.NumElements(),
		Want:  a.NumElements(),
		Shape: a.Clone(),
		Other: b.Clone(),
	}
}
