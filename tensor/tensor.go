// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensoralg/internal/tensor"
)

// Type aliases for public API

// Float is a constraint for tensor element types (float32, float64).
type Float = tensor.Float

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Index is a named axis with a fixed extent, compared by identity.
type Index = tensor.Index

// Tensor is a dense tensor labeled by indices.
//
// Example:
//
//	i, _ := tensor.NewIndex("i", 2)
//	x, _ := tensor.Dense[float64](i)
//	x.Fill(1.5)
type Tensor[T Float] = tensor.Tensor[T]

// Config controls tensor construction policy.
type Config = tensor.Config

// ShapeError describes a shape validation failure. It unwraps to ErrShapeMismatch.
type ShapeError = tensor.ShapeError

// Errors reported by this package.
var (
	ErrInvalidExtent   = tensor.ErrInvalidExtent
	ErrEmptyShape      = tensor.ErrEmptyShape
	ErrDuplicateIndex  = tensor.ErrDuplicateIndex
	ErrRankMismatch    = tensor.ErrRankMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
	ErrShapeMismatch   = tensor.ErrShapeMismatch
)

// Index creation

// WithValue creates a fresh, unnamed index ranging over [0, extent).
func WithValue(extent int) (*Index, error) {
	return tensor.WithValue(extent)
}

// NewIndex creates a fresh index with a display name.
func NewIndex(name string, extent int) (*Index, error) {
	return tensor.NewIndex(name, extent)
}

// Indices creates one fresh index per name, all with the same extent.
func Indices(extent int, names ...string) ([]*Index, error) {
	return tensor.Indices(extent, names...)
}

// Tensor creation

// DefaultConfig permits rank-0 tensors.
func DefaultConfig() Config {
	return tensor.DefaultConfig()
}

// Dense allocates a zero-filled tensor labeled by indices.
// A nil index fails with ErrInvalidExtent, as it does in NewPlan.
//
// Example:
//
//	v, err := tensor.Dense[float64](c, a)
func Dense[T Float](indices ...*Index) (*Tensor[T], error) {
	return tensor.Dense[T](indices...)
}

// NewDense allocates a zero-filled tensor under an explicit Config.
func NewDense[T Float](cfg Config, indices ...*Index) (*Tensor[T], error) {
	return tensor.NewDense[T](cfg, indices...)
}

// FromSlice creates a tensor from row-major data. The slice is copied.
func FromSlice[T Float](data []T, indices ...*Index) (*Tensor[T], error) {
	return tensor.FromSlice(data, indices...)
}

// Full allocates a tensor with every element set to value.
func Full[T Float](value T, indices ...*Index) (*Tensor[T], error) {
	return tensor.Full(value, indices...)
}
