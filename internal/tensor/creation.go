package tensor

import (
	"fmt"
	"math"
)

// maxTensorBytes is the largest allocation the Go runtime accepts on 64-bit
// platforms; larger make() calls panic instead of failing.
const maxTensorBytes uint64 = 1 << 48

// Config controls tensor construction policy.
type Config struct {
	AllowScalar bool // Whether rank-0 (scalar) tensors may be created.
}

// DefaultConfig permits scalars, which full contractions need as destinations.
func DefaultConfig() Config {
	return Config{AllowScalar: true}
}

// Dense allocates a zero-filled tensor labeled by indices, using DefaultConfig.
//
// Example:
//
//	t, err := tensor.Dense[float64](i, c)
func Dense[T Float](indices ...*Index) (*Tensor[T], error) {
	return NewDense[T](DefaultConfig(), indices...)
}

// NewDense allocates a zero-filled tensor labeled by indices.
//
// It fails with ErrInvalidExtent when an index is nil or when the element
// count overflows int, and with ErrDuplicateIndex when an index repeats.
func NewDense[T Float](cfg Config, indices ...*Index) (*Tensor[T], error) {
	if len(indices) == 0 && !cfg.AllowScalar {
		return nil, ErrEmptyShape
	}
	if err := validateIndices(indices); err != nil {
		return nil, err
	}

	shape := ShapeOf(indices)
	n, err := shape.CheckedNumElements()
	if err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if size := inferDataType[T]().Size(); n > math.MaxInt/size || uint64(n*size) > maxTensorBytes {
		return nil, fmt.Errorf("invalid shape: %w: %d elements of %d bytes exceed the allocation limit", ErrInvalidExtent, n, size)
	}

	// Data is already zero-initialized by make()
	return &Tensor[T]{
		indices: append([]*Index(nil), indices...),
		shape:   shape,
		strides: shape.ComputeStrides(),
		data:    make([]T, n),
	}, nil
}

// FromSlice creates a tensor from a Go slice in row-major order.
// The slice is copied into the tensor's memory.
func FromSlice[T Float](data []T, indices ...*Index) (*Tensor[T], error) {
	t, err := Dense[T](indices...)
	if err != nil {
		return nil, err
	}
	if len(data) != t.NumElements() {
		return nil, &ShapeError{
			Op:      "from slice",
			Details: fmt.Sprintf("shape %v requires %d elements, but got %d", t.shape, t.NumElements(), len(data)),
		}
	}
	copy(t.data, data)
	return t, nil
}

// Full allocates a tensor labeled by indices with every element set to value.
//
// Example:
//
//	t, err := tensor.Full[float64](3.4, i, c)
func Full[T Float](value T, indices ...*Index) (*Tensor[T], error) {
	t, err := Dense[T](indices...)
	if err != nil {
		return nil, err
	}
	return t.Fill(value), nil
}
