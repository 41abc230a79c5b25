// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides index-labeled dense tensors and Einstein-summation
// contraction.
//
// # Overview
//
// Two leaf types compose into one operation:
//   - Index: a named axis with a fixed extent, compared by identity
//   - Tensor[T]: dense row-major storage labeled by an ordered list of indices
//   - Contract: dst = a * b, summing every index shared by a and b that dst
//     does not carry
//
// # Basic Usage
//
//	import "github.com/born-ml/tensoralg/tensor"
//
//	func main() {
//	    ic, _ := tensor.Indices(2, "i", "c")
//	    i, c := ic[0], ic[1]
//	    a, _ := tensor.NewIndex("a", 4)
//
//	    v, _ := tensor.Dense[float64](c, a)
//	    t2, _ := tensor.Dense[float64](i, c)
//	    i0, _ := tensor.Dense[float64](i, a)
//	    v.Fill(2.3)
//	    t2.Fill(3.4)
//
//	    _ = tensor.Contract(v, t2, i0) // I0[i,a] = sum_c V[c,a] * T2[i,c]
//	    _ = i0.Print()
//	}
//
// # Index Identity
//
// Two indices built by separate calls are different axes even when their
// names and extents agree. Reuse the same *Index in several tensors to mark a
// shared axis.
//
// # Contraction Cases
//
// The same call covers:
//   - matrix product: one shared index summed, one free index per side
//   - dot product: every index shared, scalar destination
//   - outer product: no shared index
//   - Hadamard product: every index shared and kept in the destination
//   - batched products: shared indices kept in the destination
//
// # Strategies
//
// Loop (default) iterates coordinates directly. TTGT transposes the operands
// into matrices and multiplies them with gonum. Summation order differs, so
// results may differ in the last bits.
//
// # Errors
//
// Failures are reported synchronously and wrap the sentinel errors below, so
// errors.Is works. A failed contraction never writes to its destination.
package tensor
