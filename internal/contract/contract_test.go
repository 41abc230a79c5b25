package contract

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/tensoralg/internal/tensor"
)

var strategies = []Strategy{Loop, TTGT}

func index(t *testing.T, name string, extent int) *tensor.Index {
	t.Helper()
	ix, err := tensor.NewIndex(name, extent)
	require.NoError(t, err)
	return ix
}

func dense(t *testing.T, indices ...*tensor.Index) *tensor.Tensor[float64] {
	t.Helper()
	x, err := tensor.Dense[float64](indices...)
	require.NoError(t, err)
	return x
}

func random(t *testing.T, rng *rand.Rand, indices ...*tensor.Index) *tensor.Tensor[float64] {
	t.Helper()
	x := dense(t, indices...)
	for i := range x.Data() {
		x.Data()[i] = rng.Float64()*2 - 1
	}
	return x
}

func at(t *testing.T, x *tensor.Tensor[float64], coords ...int) float64 {
	t.Helper()
	v, err := x.At(coords...)
	require.NoError(t, err)
	return v
}

func TestContract_CCSDT13(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			ic, err := tensor.Indices(2, "i", "c")
			require.NoError(t, err)
			i, c := ic[0], ic[1]
			a := index(t, "a", 4)

			v := dense(t, c, a).Fill(2.3)
			t2 := dense(t, i, c).Fill(3.4)
			i0 := dense(t, i, a).Fill(0.0)

			require.NoError(t, Contract(v, t2, i0, WithStrategy(s)))

			assert.Equal(t, tensor.Shape{2, 4}, i0.Shape())
			for _, got := range i0.Data() {
				assert.InDelta(t, 15.64, got, 1e-12)
			}
		})
	}
}

func TestContract_MatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	i := index(t, "i", 3)
	c := index(t, "c", 5)
	a := index(t, "a", 4)

	v := random(t, rng, c, a)
	t2 := random(t, rng, i, c)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			i0 := dense(t, i, a)
			require.NoError(t, Contract(v, t2, i0, WithStrategy(s)))

			for x := 0; x < 3; x++ {
				for y := 0; y < 4; y++ {
					want := 0.0
					for k := 0; k < 5; k++ {
						want += at(t, t2, x, k) * at(t, v, k, y)
					}
					assert.InDelta(t, want, at(t, i0, x, y), 1e-12, "I0[%d,%d]", x, y)
				}
			}
		})
	}
}

func TestContract_OuterProduct(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	i := index(t, "i", 2)
	j := index(t, "j", 3)
	k := index(t, "k", 4)

	x := random(t, rng, i, j)
	y := random(t, rng, k)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			out := dense(t, i, j, k)
			require.NoError(t, Contract(x, y, out, WithStrategy(s)))

			assert.Equal(t, tensor.Shape{2, 3, 4}, out.Shape())
			for p := 0; p < 2; p++ {
				for q := 0; q < 3; q++ {
					for r := 0; r < 4; r++ {
						assert.InDelta(t, at(t, x, p, q)*at(t, y, r), at(t, out, p, q, r), 1e-12)
					}
				}
			}
		})
	}
}

func TestContract_FullToScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	i := index(t, "i", 3)
	j := index(t, "j", 2)

	x := random(t, rng, i, j)
	y := random(t, rng, j, i)

	want := 0.0
	for p := 0; p < 3; p++ {
		for q := 0; q < 2; q++ {
			want += at(t, x, p, q) * at(t, y, q, p)
		}
	}

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			out := dense(t)
			require.NoError(t, Contract(x, y, out, WithStrategy(s)))

			got, err := out.Item()
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12)
		})
	}
}

func TestContract_Hadamard(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	i := index(t, "i", 3)
	j := index(t, "j", 2)

	x := random(t, rng, i, j)
	y := random(t, rng, j, i)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			out := dense(t, j, i)
			require.NoError(t, Contract(x, y, out, WithStrategy(s)))

			for p := 0; p < 3; p++ {
				for q := 0; q < 2; q++ {
					assert.InDelta(t, at(t, x, p, q)*at(t, y, q, p), at(t, out, q, p), 1e-12)
				}
			}
		})
	}
}

func TestContract_BatchMatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	bt := index(t, "b", 2)
	m := index(t, "m", 3)
	k := index(t, "k", 4)
	n := index(t, "n", 2)

	x := random(t, rng, m, bt, k)
	y := random(t, rng, k, n, bt)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			out := dense(t, n, bt, m)
			require.NoError(t, Contract(x, y, out, WithStrategy(s)))

			for b := 0; b < 2; b++ {
				for p := 0; p < 3; p++ {
					for q := 0; q < 2; q++ {
						want := 0.0
						for r := 0; r < 4; r++ {
							want += at(t, x, p, b, r) * at(t, y, r, q, b)
						}
						assert.InDelta(t, want, at(t, out, q, b, p), 1e-12)
					}
				}
			}
		})
	}
}

func TestContract_StrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	p := index(t, "p", 3)
	q := index(t, "q", 4)
	r := index(t, "r", 2)
	s := index(t, "s", 5)
	u := index(t, "u", 3)

	// X[p,q,r,s] * Y[s,u,q] -> Z[u,r,p], summing q and s.
	x := random(t, rng, p, q, r, s)
	y := random(t, rng, s, u, q)

	zLoop := dense(t, u, r, p)
	zTTGT := dense(t, u, r, p)
	require.NoError(t, Contract(x, y, zLoop, WithStrategy(Loop)))
	require.NoError(t, Contract(x, y, zTTGT, WithStrategy(TTGT)))

	assert.InDeltaSlice(t, zLoop.Data(), zTTGT.Data(), 1e-12)
}

func TestContract_Float32(t *testing.T) {
	i := index(t, "i", 2)
	c := index(t, "c", 2)
	a := index(t, "a", 4)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			v, err := tensor.Full[float32](2.3, c, a)
			require.NoError(t, err)
			t2, err := tensor.Full[float32](3.4, i, c)
			require.NoError(t, err)
			i0, err := tensor.Dense[float32](i, a)
			require.NoError(t, err)

			require.NoError(t, Contract(v, t2, i0, WithStrategy(s)))
			for _, got := range i0.Data() {
				assert.InDelta(t, 15.64, float64(got), 1e-5)
			}
		})
	}
}

func TestContract_DestinationAliasesOperand(t *testing.T) {
	i := index(t, "i", 3)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			x, err := tensor.FromSlice([]float64{1, 2, 3}, i)
			require.NoError(t, err)
			y, err := tensor.FromSlice([]float64{4, 5, 6}, i)
			require.NoError(t, err)

			require.NoError(t, Contract(x, y, x, WithStrategy(s)))
			assert.InDeltaSlice(t, []float64{4, 10, 18}, x.Data(), 1e-12)
		})
	}
}

func TestContract_ShapeMismatch(t *testing.T) {
	i := index(t, "i", 2)
	c := index(t, "c", 2)
	a := index(t, "a", 4)
	z := index(t, "z", 2)
	other := index(t, "a", 4) // same name and extent as a, different axis

	v := dense(t, c, a).Fill(2.3)
	t2 := dense(t, i, c).Fill(3.4)

	tests := []struct {
		name string
		dst  []*tensor.Index
	}{
		{"missing free index", []*tensor.Index{i}},
		{"extra index", []*tensor.Index{i, a, z}},
		{"contracted index kept alone", []*tensor.Index{c}},
		{"lookalike index", []*tensor.Index{i, other}},
		{"scalar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := dense(t, tt.dst...).Fill(-1)
			before := append([]float64(nil), dst.Data()...)

			for _, s := range strategies {
				err := Contract(v, t2, dst, WithStrategy(s))
				require.ErrorIs(t, err, tensor.ErrShapeMismatch)
				var shapeErr *tensor.ShapeError
				require.ErrorAs(t, err, &shapeErr)
				assert.Equal(t, "contract", shapeErr.Op)
			}
			assert.Equal(t, before, dst.Data(), "destination must not be mutated")
		})
	}
}

func TestContract_NilTensor(t *testing.T) {
	i := index(t, "i", 2)
	x := dense(t, i)

	assert.ErrorIs(t, Contract(nil, x, x), tensor.ErrShapeMismatch)
	assert.ErrorIs(t, Contract(x, nil, x), tensor.ErrShapeMismatch)
	assert.ErrorIs(t, Contract(x, x, nil), tensor.ErrShapeMismatch)

	p, err := NewPlan(x.Indices(), x.Indices(), x.Indices())
	require.NoError(t, err)

	tests := []struct {
		name    string
		p       *Plan
		a, b, d *tensor.Tensor[float64]
	}{
		{"nil plan", nil, x, x, x},
		{"nil first operand", p, nil, x, x},
		{"nil second operand", p, x, nil, x},
		{"nil destination", p, x, x, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			assert.NotPanics(t, func() { err = Execute(tt.p, tt.a, tt.b, tt.d) })
			assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
		})
	}
}

func TestContract_UnknownStrategy(t *testing.T) {
	i := index(t, "i", 2)
	x := dense(t, i).Fill(1)
	out := dense(t, i).Fill(7)

	err := Contract(x, x, out, WithStrategy(Strategy(42)))
	require.Error(t, err)
	assert.Equal(t, []float64{7, 7}, out.Data())
}

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStrategy("gpu")
	assert.Error(t, err)
	assert.Equal(t, "Strategy(7)", Strategy(7).String())
}

func TestWithConfig(t *testing.T) {
	cfg := DefaultConfig()
	WithConfig(Config{Strategy: TTGT})(&cfg)
	assert.Equal(t, TTGT, cfg.Strategy)
}

func BenchmarkContract(b *testing.B) {
	rng := rand.New(rand.NewSource(7))
	idx := func(name string, extent int) *tensor.Index {
		ix, _ := tensor.NewIndex(name, extent)
		return ix
	}
	fill := func(x *tensor.Tensor[float64]) *tensor.Tensor[float64] {
		for i := range x.Data() {
			x.Data()[i] = rng.Float64()
		}
		return x
	}

	i, c, a := idx("i", 64), idx("c", 64), idx("a", 64)
	v, _ := tensor.Dense[float64](c, a)
	t2, _ := tensor.Dense[float64](i, c)
	i0, _ := tensor.Dense[float64](i, a)
	fill(v)
	fill(t2)

	for _, s := range strategies {
		b.Run(s.String(), func(b *testing.B) {
			for n := 0; n < b.N; n++ {
				_ = Contract(v, t2, i0, WithStrategy(s))
			}
		})
	}
}
