package tensor

import "fmt"

// Tensor is a dense tensor whose axes are labeled by indices.
//
// Storage is a single row-major slice of length Shape().NumElements().
// A Tensor does not own its indices; several tensors may share the same
// *Index, which is how the contraction engine recognises a common axis.
//
// Tensors are not safe for concurrent mutation.
//
// Example:
//
//	c, _ := tensor.WithValue(2)
//	a, _ := tensor.WithValue(4)
//	v, _ := tensor.Dense[float64](c, a)
//	v.Fill(2.3)
type Tensor[T Float] struct {
	indices []*Index
	shape   Shape
	strides []int
	data    []T
}

// Indices returns the axis labels in order.
// The returned slice must not be modified.
func (t *Tensor[T]) Indices() []*Index {
	return t.indices
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the row-major memory strides.
func (t *Tensor[T]) Strides() []int {
	return t.strides
}

// Rank returns the number of axes.
func (t *Tensor[T]) Rank() int {
	return len(t.indices)
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return len(t.data)
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return inferDataType[T]()
}

// Data returns the backing storage in linear order.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Position returns the axis that ix labels, or -1.
func (t *Tensor[T]) Position(ix *Index) int {
	for k, other := range t.indices {
		if other == ix {
			return k
		}
	}
	return -1
}

// Fill sets every element to value and returns the tensor for chaining.
func (t *Tensor[T]) Fill(value T) *Tensor[T] {
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Offset maps a coordinate tuple to a linear storage offset.
func (t *Tensor[T]) Offset(coords ...int) (int, error) {
	if len(coords) != len(t.shape) {
		return 0, fmt.Errorf("%w: expected %d coordinates, got %d", ErrRankMismatch, len(t.shape), len(coords))
	}

	offset := 0
	for i, c := range coords {
		if c < 0 || c >= t.shape[i] {
			return 0, fmt.Errorf("%w: coordinate %d for index %s", ErrIndexOutOfRange, c, t.indices[i])
		}
		offset += c * t.strides[i]
	}
	return offset, nil
}

// At returns the element at the given coordinates.
//
// Example:
//
//	value, err := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(coords ...int) (T, error) {
	offset, err := t.Offset(coords...)
	if err != nil {
		var zero T
		return zero, err
	}
	return t.data[offset], nil
}

// Set sets the element at the given coordinates.
func (t *Tensor[T]) Set(value T, coords ...int) error {
	offset, err := t.Offset(coords...)
	if err != nil {
		return err
	}
	t.data[offset] = value
	return nil
}

// Item returns the value of a rank-0 tensor.
func (t *Tensor[T]) Item() (T, error) {
	if len(t.shape) != 0 {
		var zero T
		return zero, fmt.Errorf("%w: Item requires a scalar, got rank %d", ErrRankMismatch, len(t.shape))
	}
	return t.data[0], nil
}

// Clone creates a deep copy of the storage. Indices are shared.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		indices: append([]*Index(nil), t.indices...),
		shape:   t.shape.Clone(),
		strides: append([]int(nil), t.strides...),
		data:    data,
	}
}
