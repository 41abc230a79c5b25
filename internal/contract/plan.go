// Package contract implements index-driven tensor contraction.
//
// Given operands A and B and a destination D, every index is classified by
// identity: indices carried by both operands are summed unless D also carries
// them (batch axes); indices carried by one operand pass through to D.
package contract

import (
	"fmt"
	"math"
	"strings"

	"github.com/born-ml/tensoralg/internal/tensor"
)

// Plan is the index partition of one contraction.
// It depends only on the index lists, so it can be reused across tensors
// labeled by the same indices.
type Plan struct {
	a, b, dst []*tensor.Index

	batch      []*tensor.Index // In A, B and D.
	freeA      []*tensor.Index // Only in A (and D).
	freeB      []*tensor.Index // Only in B (and D).
	contracted []*tensor.Index // In A and B, not in D.

	flops int64
}

// NewPlan partitions the indices of a contraction a * b -> dst.
//
// It fails with tensor.ErrShapeMismatch when an index carried by a single
// operand is missing from dst, when dst carries an index neither operand
// has, or when an index list repeats an index.
func NewPlan(a, b, dst []*tensor.Index) (*Plan, error) {
	inA, err := indexSet("first operand", a)
	if err != nil {
		return nil, err
	}
	inB, err := indexSet("second operand", b)
	if err != nil {
		return nil, err
	}
	inD, err := indexSet("destination", dst)
	if err != nil {
		return nil, err
	}

	p := &Plan{
		a:   append([]*tensor.Index(nil), a...),
		b:   append([]*tensor.Index(nil), b...),
		dst: append([]*tensor.Index(nil), dst...),
	}

	for _, ix := range a {
		_, shared := inB[ix]
		_, kept := inD[ix]
		switch {
		case shared && kept:
			p.batch = append(p.batch, ix)
		case shared:
			p.contracted = append(p.contracted, ix)
		case kept:
			p.freeA = append(p.freeA, ix)
		default:
			return nil, &tensor.ShapeError{Op: "contract", Index: ix, Details: "carried only by the first operand but missing from the destination"}
		}
	}

	for _, ix := range b {
		if _, shared := inA[ix]; shared {
			continue
		}
		if _, kept := inD[ix]; !kept {
			return nil, &tensor.ShapeError{Op: "contract", Index: ix, Details: "carried only by the second operand but missing from the destination"}
		}
		p.freeB = append(p.freeB, ix)
	}

	for _, ix := range dst {
		_, okA := inA[ix]
		_, okB := inB[ix]
		if !okA && !okB {
			return nil, &tensor.ShapeError{Op: "contract", Index: ix, Details: "destination index is not carried by either operand"}
		}
	}

	flops, err := countFlops(p.batch, p.freeA, p.freeB, p.contracted)
	if err != nil {
		return nil, err
	}
	p.flops = flops

	return p, nil
}

// countFlops returns 2 * the product of all extents, or an error on int64 overflow.
func countFlops(groups ...[]*tensor.Index) (int64, error) {
	n := int64(2)
	for _, group := range groups {
		for _, ix := range group {
			e := int64(ix.Extent())
			if n > math.MaxInt64/e {
				return 0, fmt.Errorf("contract: %w: iteration space overflows int64 at index %s", tensor.ErrInvalidExtent, ix)
			}
			n *= e
		}
	}
	return n, nil
}

func indexSet(role string, indices []*tensor.Index) (map[*tensor.Index]struct{}, error) {
	set := make(map[*tensor.Index]struct{}, len(indices))
	for _, ix := range indices {
		if ix == nil {
			return nil, fmt.Errorf("contract: %w: %s has a nil index", tensor.ErrInvalidExtent, role)
		}
		if _, dup := set[ix]; dup {
			return nil, &tensor.ShapeError{Op: "contract", Index: ix, Details: role + " repeats the index"}
		}
		set[ix] = struct{}{}
	}
	return set, nil
}

// Batch returns indices carried by both operands and kept in the destination.
func (p *Plan) Batch() []*tensor.Index { return p.batch }

// FreeA returns indices carried only by the first operand.
func (p *Plan) FreeA() []*tensor.Index { return p.freeA }

// FreeB returns indices carried only by the second operand.
func (p *Plan) FreeB() []*tensor.Index { return p.freeB }

// Contracted returns the summed indices.
func (p *Plan) Contracted() []*tensor.Index { return p.contracted }

// Flops returns the multiply-add count of the contraction, counting each
// multiply and each add as one operation.
func (p *Plan) Flops() int64 {
	return p.flops
}

// String renders the plan as "[c a] * [i c] -> [i a] sum [c]".
func (p *Plan) String() string {
	return fmt.Sprintf("%s * %s -> %s sum %s", names(p.a), names(p.b), names(p.dst), names(p.contracted))
}

func names(indices []*tensor.Index) string {
	parts := make([]string, len(indices))
	for k, ix := range indices {
		parts[k] = ix.Name()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// matches reports whether the tensors are labeled exactly as the plan expects.
func (p *Plan) matches(a, b, dst []*tensor.Index) bool {
	return sameOrder(p.a, a) && sameOrder(p.b, b) && sameOrder(p.dst, dst)
}

func sameOrder(x, y []*tensor.Index) bool {
	if len(x) != len(y) {
		return false
	}
	for k := range x {
		if x[k] != y[k] {
			return false
		}
	}
	return true
}
