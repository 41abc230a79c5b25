package contract

import (
	"fmt"

	"github.com/born-ml/tensoralg/internal/tensor"
)

// permute copies src, laid out row-major with srcShape, into dst so that
// axis d of dst is axis perm[d] of src. Element types may differ.
func permute[S, D tensor.Float](dst []D, src []S, srcShape tensor.Shape, perm []int) {
	if len(perm) != len(srcShape) || len(dst) != len(src) {
		panic(fmt.Sprintf("permute: perm %v does not fit shape %v", perm, srcShape))
	}

	rank := len(perm)
	srcStrides := srcShape.ComputeStrides()
	extent := make([]int, rank)
	stride := make([]int, rank)
	for d, axis := range perm {
		extent[d] = srcShape[axis]
		stride[d] = srcStrides[axis]
	}

	coords := make([]int, rank)
	in := 0
	for o := range dst {
		dst[o] = D(src[in])
		for d := rank - 1; d >= 0; d-- {
			coords[d]++
			in += stride[d]
			if coords[d] < extent[d] {
				break
			}
			in -= stride[d] * extent[d]
			coords[d] = 0
		}
	}
}

// positions returns, for each index in order, its axis within from.
func positions(order, from []*tensor.Index) []int {
	perm := make([]int, len(order))
	for d, ix := range order {
		perm[d] = -1
		for k, other := range from {
			if other == ix {
				perm[d] = k
				break
			}
		}
		if perm[d] < 0 {
			panic(fmt.Sprintf("positions: index %s not found", ix))
		}
	}
	return perm
}

// Transpose copies src into dst, reordering axes by index identity.
// dst must carry exactly the indices of src, in any order.
func Transpose[T tensor.Float](src, dst *tensor.Tensor[T]) error {
	if src == nil || dst == nil {
		return &tensor.ShapeError{Op: "transpose", Details: "nil tensor"}
	}
	if src.Rank() != dst.Rank() {
		return &tensor.ShapeError{
			Op:      "transpose",
			Details: fmt.Sprintf("rank %d cannot be transposed into rank %d", src.Rank(), dst.Rank()),
		}
	}
	for _, ix := range dst.Indices() {
		if src.Position(ix) < 0 {
			return &tensor.ShapeError{Op: "transpose", Index: ix, Details: "destination index is not carried by the source"}
		}
	}

	out := make([]T, dst.NumElements())
	permute(out, src.Data(), src.Shape(), positions(dst.Indices(), src.Indices()))
	copy(dst.Data(), out)
	return nil
}
