// Package tensor provides the index and dense tensor types for the tensor algebra runtime.
package tensor

import "unsafe"

// Float is a constraint for tensor element types.
// It uses Go generics to ensure compile-time type safety.
type Float interface {
	~float32 | ~float64
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	default:
		panic("unknown data type")
	}
}

// Bits returns the width used when formatting values of this type.
func (dt DataType) Bits() int {
	return dt.Size() * 8
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
// Named types such as `type Amplitude float64` resolve by width.
func inferDataType[T Float]() DataType {
	var dummy T
	if unsafe.Sizeof(dummy) == 4 {
		return Float32
	}
	return Float64
}
