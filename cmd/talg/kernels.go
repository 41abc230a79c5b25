package main

import (
	"github.com/born-ml/tensoralg/tensor"
)

// kernel builds its operands, contracts them and returns the destination.
type kernel func(opts ...tensor.ContractOption) (*tensor.Tensor[float64], error)

var kernels = map[string]kernel{
	"ccsd_t1_3": ccsdT13,
	"dot":       dot,
	"outer":     outer,
	"hadamard":  hadamard,
}

// ccsdT13 is the CCSD T1 term I0[i,a] = V[c,a] * T2[i,c].
func ccsdT13(opts ...tensor.ContractOption) (*tensor.Tensor[float64], error) {
	ic, err := tensor.Indices(2, "i", "c")
	if err != nil {
		return nil, err
	}
	i, c := ic[0], ic[1]
	a, err := tensor.NewIndex("a", 4)
	if err != nil {
		return nil, err
	}

	v, err := tensor.Full[float64](2.3, c, a)
	if err != nil {
		return nil, err
	}
	t2, err := tensor.Full[float64](3.4, i, c)
	if err != nil {
		return nil, err
	}
	i0, err := tensor.Full[float64](0.0, i, a)
	if err != nil {
		return nil, err
	}

	if err := tensor.Contract(v, t2, i0, opts...); err != nil {
		return nil, err
	}
	return i0, nil
}

func dot(opts ...tensor.ContractOption) (*tensor.Tensor[float64], error) {
	i, err := tensor.NewIndex("i", 4)
	if err != nil {
		return nil, err
	}
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, i)
	if err != nil {
		return nil, err
	}
	s, err := tensor.Dense[float64]()
	if err != nil {
		return nil, err
	}
	if err := tensor.Contract(x, x, s, opts...); err != nil {
		return nil, err
	}
	return s, nil
}

func outer(opts ...tensor.ContractOption) (*tensor.Tensor[float64], error) {
	i, err := tensor.NewIndex("i", 2)
	if err != nil {
		return nil, err
	}
	j, err := tensor.NewIndex("j", 3)
	if err != nil {
		return nil, err
	}
	x, err := tensor.FromSlice([]float64{1, 2}, i)
	if err != nil {
		return nil, err
	}
	y, err := tensor.FromSlice([]float64{1, 10, 100}, j)
	if err != nil {
		return nil, err
	}
	out, err := tensor.Dense[float64](i, j)
	if err != nil {
		return nil, err
	}
	if err := tensor.Contract(x, y, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func hadamard(opts ...tensor.ContractOption) (*tensor.Tensor[float64], error) {
	i, err := tensor.NewIndex("i", 2)
	if err != nil {
		return nil, err
	}
	j, err := tensor.NewIndex("j", 2)
	if err != nil {
		return nil, err
	}
	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, i, j)
	if err != nil {
		return nil, err
	}
	y, err := tensor.FromSlice([]float64{5, 6, 7, 8}, i, j)
	if err != nil {
		return nil, err
	}
	out, err := tensor.Dense[float64](i, j)
	if err != nil {
		return nil, err
	}
	if err := tensor.Contract(x, y, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
