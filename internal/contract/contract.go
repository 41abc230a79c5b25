package contract

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/born-ml/tensoralg/internal/tensor"
)

// Strategy selects the kernel that evaluates a contraction.
type Strategy int

// Supported strategies.
const (
	// Loop iterates every destination coordinate and sums over the
	// contracted coordinates directly.
	Loop Strategy = iota
	// TTGT transposes both operands into matrix form, multiplies them with
	// a GEMM and transposes the product into the destination layout.
	TTGT
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Loop:
		return "loop"
	case TTGT:
		return "ttgt"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "loop":
		return Loop, nil
	case "ttgt":
		return TTGT, nil
	default:
		return 0, fmt.Errorf("unknown contraction strategy %q (want loop or ttgt)", name)
	}
}

// Config controls contraction behavior.
type Config struct {
	Strategy Strategy // Kernel used to evaluate the contraction.
}

// DefaultConfig returns the loop strategy.
func DefaultConfig() Config {
	return Config{Strategy: Loop}
}

// Option customizes a single contraction.
type Option func(*Config)

// WithStrategy selects the contraction kernel.
func WithStrategy(s Strategy) Option {
	return func(c *Config) { c.Strategy = s }
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// Contract computes dst = a * b under Einstein summation over shared indices.
//
// Indices carried by both a and b but not by dst are summed. dst keeps its
// declared indices; only its storage is overwritten. On error dst is left
// untouched. dst may be the same tensor as a or b.
//
// Floating-point summation order depends on the strategy, so Loop and TTGT
// may differ in the last bits.
//
// Example:
//
//	// I0[i,a] = sum_c V[c,a] * T2[i,c]
//	err := contract.Contract(v, t2, i0)
func Contract[T tensor.Float](a, b, dst *tensor.Tensor[T], opts ...Option) error {
	if err := checkNil(a, b, dst); err != nil {
		return err
	}
	p, err := NewPlan(a.Indices(), b.Indices(), dst.Indices())
	if err != nil {
		return err
	}
	return Execute(p, a, b, dst, opts...)
}

// Execute runs a prepared plan. The tensors must be labeled exactly as the
// index lists the plan was built from.
func Execute[T tensor.Float](p *Plan, a, b, dst *tensor.Tensor[T], opts ...Option) error {
	if p == nil {
		return &tensor.ShapeError{Op: "contract", Details: "nil plan"}
	}
	if err := checkNil(a, b, dst); err != nil {
		return err
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !p.matches(a.Indices(), b.Indices(), dst.Indices()) {
		return &tensor.ShapeError{Op: "contract", Details: fmt.Sprintf("tensors do not match plan %s", p)}
	}
	for _, t := range []*tensor.Tensor[T]{a, b, dst} {
		if err := checkExtents(t); err != nil {
			return err
		}
	}

	klog.V(4).InfoS("Contraction plan", "plan", p, "batch", len(p.batch), "contracted", len(p.contracted))
	klog.V(2).InfoS("Contracting", "strategy", cfg.Strategy, "flops", p.Flops())

	out := make([]T, dst.NumElements())
	switch cfg.Strategy {
	case Loop:
		loopContract(p, a, b, out)
	case TTGT:
		ttgtContract(p, a, b, out)
	default:
		return fmt.Errorf("contract: unsupported strategy %v", cfg.Strategy)
	}

	copy(dst.Data(), out)
	return nil
}

func checkNil[T tensor.Float](a, b, dst *tensor.Tensor[T]) error {
	if a == nil || b == nil || dst == nil {
		return &tensor.ShapeError{Op: "contract", Details: "nil tensor"}
	}
	return nil
}

// checkExtents verifies that each axis of t still agrees with its index.
func checkExtents[T tensor.Float](t *tensor.Tensor[T]) error {
	shape := t.Shape()
	for k, ix := range t.Indices() {
		if shape[k] != ix.Extent() {
			return &tensor.ShapeError{
				Op:      "contract",
				Index:   ix,
				Details: fmt.Sprintf("tensor axis %d has extent %d", k, shape[k]),
			}
		}
	}
	return nil
}
