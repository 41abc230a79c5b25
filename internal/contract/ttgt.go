package contract

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/tensoralg/internal/tensor"
)

// ttgtContract evaluates the plan as Transpose-Transpose-GEMM-Transpose:
//
//	A -> [batch, freeA, contracted]   (batch x m x k)
//	B -> [batch, contracted, freeB]   (batch x k x n)
//	R  = A' x B' per batch slice      (batch x m x n)
//	R -> destination index order
//
// The GEMM runs in float64 through gonum.
func ttgtContract[T tensor.Float](p *Plan, a, b *tensor.Tensor[T], out []T) {
	aOrder := concat(p.batch, p.freeA, p.contracted)
	bOrder := concat(p.batch, p.contracted, p.freeB)
	rOrder := concat(p.batch, p.freeA, p.freeB)

	nb := extentProduct(p.batch)
	m := extentProduct(p.freeA)
	k := extentProduct(p.contracted)
	n := extentProduct(p.freeB)

	ap := make([]float64, a.NumElements())
	permute(ap, a.Data(), a.Shape(), positions(aOrder, a.Indices()))
	bp := make([]float64, b.NumElements())
	permute(bp, b.Data(), b.Shape(), positions(bOrder, b.Indices()))

	rp := make([]float64, nb*m*n)
	for s := 0; s < nb; s++ {
		am := mat.NewDense(m, k, ap[s*m*k:(s+1)*m*k])
		bm := mat.NewDense(k, n, bp[s*k*n:(s+1)*k*n])
		rm := mat.NewDense(m, n, rp[s*m*n:(s+1)*m*n])
		rm.Mul(am, bm)
	}

	permute(out, rp, tensor.ShapeOf(rOrder), positions(p.dst, rOrder))
}

func concat(groups ...[]*tensor.Index) []*tensor.Index {
	var out []*tensor.Index
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func extentProduct(indices []*tensor.Index) int {
	return tensor.ShapeOf(indices).NumElements()
}
