// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensoralg/internal/contract"
)

// Strategy selects the contraction kernel.
type Strategy = contract.Strategy

// Contraction strategies.
const (
	Loop Strategy = contract.Loop
	TTGT Strategy = contract.TTGT
)

// ContractConfig controls contraction behavior.
type ContractConfig = contract.Config

// ContractOption customizes a single contraction.
type ContractOption = contract.Option

// Plan is the index partition of a contraction, reusable across tensors with
// the same index lists.
type Plan = contract.Plan

// ParseStrategy maps "loop" or "ttgt" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	return contract.ParseStrategy(name)
}

// WithStrategy selects the contraction kernel.
func WithStrategy(s Strategy) ContractOption {
	return contract.WithStrategy(s)
}

// WithConfig replaces the contraction configuration.
func WithConfig(cfg ContractConfig) ContractOption {
	return contract.WithConfig(cfg)
}

// Contract computes dst = a * b, summing the indices shared by a and b that
// dst does not carry. dst's indices are validated, never changed.
//
// Example:
//
//	// I0[i,a] = sum_c V[c,a] * T2[i,c]
//	err := tensor.Contract(v, t2, i0)
func Contract[T Float](a, b, dst *Tensor[T], opts ...ContractOption) error {
	return contract.Contract(a, b, dst, opts...)
}

// NewPlan partitions the indices of a * b -> dst without touching any data.
func NewPlan(a, b, dst []*Index) (*Plan, error) {
	return contract.NewPlan(a, b, dst)
}

// Execute runs a prepared plan.
func Execute[T Float](p *Plan, a, b, dst *Tensor[T], opts ...ContractOption) error {
	return contract.Execute(p, a, b, dst, opts...)
}

// Transpose copies src into dst, which must carry the same indices in any order.
func Transpose[T Float](src, dst *Tensor[T]) error {
	return contract.Transpose(src, dst)
}
