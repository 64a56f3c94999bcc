package tensor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"empty", Shape{}, 0},
		{"vector", Shape{4}, 4},
		{"matrix", Shape{2, 3}, 6},
		{"3d", Shape{2, 3, 4}, 24},
		{"ones", Shape{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShapeComputeStrides(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int
	}{
		{Shape{2, 3}, []int{3, 1}},
		{Shape{5}, []int{1}},
		{Shape{2, 3, 4}, []int{12, 4, 1}},
		{Shape{4, 1, 2}, []int{2, 2, 1}},
		{Shape{}, []int{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.shape.ComputeStrides(), "shape %v", tt.shape)
	}
}

func TestShapeStrideInvariant(t *testing.T) {
	shapes := []Shape{{7}, {3, 5}, {2, 3, 4, 5}, {9, 1, 8}, {1, 1, 6}}
	for _, s := range shapes {
		strides := s.ComputeStrides()
		require.Len(t, strides, len(s))
		assert.Equal(t, 1, strides[len(s)-1], "last stride of %v", s)
		for i := 0; i < len(s)-1; i++ {
			assert.Equal(t, strides[i+1]*s[i+1], strides[i], "stride %d of %v", i, s)
		}
		assert.Equal(t, s.NumElements(), strides[0]*s[0], "length of %v", s)
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{2, 3}.Validate())
	require.NoError(t, Shape{1}.Validate())

	for _, bad := range []Shape{{}, {0}, {2, 0}, {3, -1}, {-4}} {
		err := bad.Validate()
		require.Error(t, err, "shape %v", bad)
		assert.True(t, errors.Is(err, ErrShapeInvalid), "shape %v: %v", bad, err)
	}
}

func TestShapeEqualAndClone(t *testing.T) {
	s := Shape{2, 3}
	assert.True(t, s.Equal(Shape{2, 3}))
	assert.False(t, s.Equal(Shape{3, 2}))
	assert.False(t, s.Equal(Shape{2, 3, 1}))

	c := s.Clone()
	c[0] = 9
	assert.Equal(t, 2, s[0], "clone must not alias")
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "2x3x4", Shape{2, 3, 4}.String())
	assert.Equal(t, "5", Shape{5}.String())
}
