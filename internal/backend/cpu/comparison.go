package cpu

import (
	"github.com/salp-ml/salp/internal/tensor"
)

// Equal reports whether a and b have identical shapes and identical elements.
// Strides are not compared; they follow from the shape. NaN elements are
// identical to each other.
func (cpu *CPUBackend[T]) Equal(a, b *tensor.Tensor[T]) bool {
	if a == b {
		return true
	}

	if a.Len() != b.Len() {
		return false
	}
	if !a.Shape().Equal(b.Shape()) {
		return false
	}

	aData, bData := a.Data(), b.Data()
	for i := range aData {
		if !tensor.Same(aData[i], bData[i]) {
			return false
		}
	}
	return true
}
