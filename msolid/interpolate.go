// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Interpolate maps a temperature to a scalar material parameter. Pure
// function: no state changes across calls.
type Interpolate interface {
	Value(T float64) float64
}

// ConstantInterpolate returns the same value regardless of temperature.
type ConstantInterpolate struct{ V float64 }

// Value implements Interpolate.
func (o ConstantInterpolate) Value(T float64) float64 { return o.V }

// NewConstantInterpolate builds a ConstantInterpolate from a parameter set
// with a single "V" entry, following the fun.Prms construction idiom used
// throughout this package.
func NewConstantInterpolate(prms fun.Prms) (o *ConstantInterpolate, err error) {
	o = new(ConstantInterpolate)
	for _, p := range prms {
		switch p.N {
		case "V":
			o.V = p.V
		default:
			return nil, chk.Err("constant interpolate: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// PiecewiseLinearInterpolate linearly interpolates between sorted (T,value)
// knots, clamping to the end values outside the table's range.
type PiecewiseLinearInterpolate struct {
	T []float64 // knot temperatures, ascending
	V []float64 // knot values
}

// NewPiecewiseLinearInterpolate builds the table from parallel T/V slices,
// sorting by T if necessary.
func NewPiecewiseLinearInterpolate(T, V []float64) (o *PiecewiseLinearInterpolate, err error) {
	if len(T) != len(V) || len(T) < 1 {
		return nil, chk.Err("piecewise-linear interpolate: T and V must have the same, nonzero length")
	}
	idx := make([]int, len(T))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return T[idx[i]] < T[idx[j]] })
	o = &PiecewiseLinearInterpolate{T: make([]float64, len(T)), V: make([]float64, len(V))}
	for k, i := range idx {
		o.T[k], o.V[k] = T[i], V[i]
	}
	return
}

// Value implements Interpolate.
func (o *PiecewiseLinearInterpolate) Value(T float64) float64 {
	n := len(o.T)
	if n == 1 || T <= o.T[0] {
		return o.V[0]
	}
	if T >= o.T[n-1] {
		return o.V[n-1]
	}
	i := sort.SearchFloat64s(o.T, T)
	if o.T[i] == T {
		return o.V[i]
	}
	// o.T[i-1] < T < o.T[i]
	t0, t1 := o.T[i-1], o.T[i]
	v0, v1 := o.V[i-1], o.V[i]
	return v0 + (v1-v0)*(T-t0)/(t1-t0)
}

// PolynomialInterpolate evaluates a polynomial in T with coefficients
// ordered low-degree-first via Horner's method.
type PolynomialInterpolate struct {
	Coef []float64 // Coef[k] multiplies T^k
}

// Value implements Interpolate.
func (o *PolynomialInterpolate) Value(T float64) float64 {
	var v float64
	for k := len(o.Coef) - 1; k >= 0; k-- {
		v = v*T + o.Coef[k]
	}
	return v
}
