package contract

import "github.com/born-ml/tensoralg/internal/tensor"

// axes describes a loop nest over a list of indices together with the
// storage stride each index has in A and B (0 when absent).
type axes struct {
	extent  []int
	aStride []int
	bStride []int
}

func newAxes[T tensor.Float](indices []*tensor.Index, a, b *tensor.Tensor[T]) axes {
	ax := axes{
		extent:  make([]int, len(indices)),
		aStride: make([]int, len(indices)),
		bStride: make([]int, len(indices)),
	}
	for d, ix := range indices {
		ax.extent[d] = ix.Extent()
		if k := a.Position(ix); k >= 0 {
			ax.aStride[d] = a.Strides()[k]
		}
		if k := b.Position(ix); k >= 0 {
			ax.bStride[d] = b.Strides()[k]
		}
	}
	return ax
}

// size returns the number of coordinate tuples in the nest.
func (ax axes) size() int {
	return tensor.Shape(ax.extent).NumElements()
}

// next advances coords in row-major order and updates the A and B offsets.
func (ax axes) next(coords []int, ia, ib *int) {
	for d := len(coords) - 1; d >= 0; d-- {
		coords[d]++
		*ia += ax.aStride[d]
		*ib += ax.bStride[d]
		if coords[d] < ax.extent[d] {
			return
		}
		*ia -= ax.aStride[d] * ax.extent[d]
		*ib -= ax.bStride[d] * ax.extent[d]
		coords[d] = 0
	}
}

// loopContract walks destination coordinates in storage order and, for each,
// sums the products over every contracted coordinate tuple.
func loopContract[T tensor.Float](p *Plan, a, b *tensor.Tensor[T], out []T) {
	outer := newAxes(p.dst, a, b)
	inner := newAxes(p.contracted, a, b)

	ad, bd := a.Data(), b.Data()
	innerN := inner.size()

	oc := make([]int, len(outer.extent))
	kc := make([]int, len(inner.extent))
	aBase, bBase := 0, 0

	for o := range out {
		var sum T
		ia, ib := aBase, bBase
		for step := 0; step < innerN; step++ {
			sum += ad[ia] * bd[ib]
			inner.next(kc, &ia, &ib)
		}
		out[o] = sum
		outer.next(oc, &aBase, &bBase)
	}
}
