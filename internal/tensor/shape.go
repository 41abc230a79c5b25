package tensor

import (
	"fmt"
	"math"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// ShapeOf returns the extents of indices, in order.
func ShapeOf(indices []*Index) Shape {
	s := make(Shape, len(indices))
	for k, ix := range indices {
		s[k] = ix.Extent()
	}
	return s
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1 // Scalar has 1 element
	for _, dim := range s {
		n *= dim
	}
	return n
}

// CheckedNumElements returns NumElements, or ErrInvalidExtent when the
// product of the dimensions does not fit in an int.
func (s Shape) CheckedNumElements() (int, error) {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return 0, fmt.Errorf("%w: dimension %d is %d", ErrInvalidExtent, i, dim)
		}
		if n > math.MaxInt/dim {
			return 0, fmt.Errorf("%w: shape %v has more than %d elements", ErrInvalidExtent, s, math.MaxInt)
		}
		n *= dim
	}
	return n, nil
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidExtent, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
