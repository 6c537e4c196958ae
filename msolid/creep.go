// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/tsr"
)

// CreepModel gives the creep strain rate ε̇^c(σ,ε^c,t,T) and its partials
// in stress, accumulated creep strain, time, and temperature (§3.7). The
// nested staggered integrator (SSCP, §4.6) holds σ fixed at the
// plastically-corrected trial value each outer iteration and runs its own
// inner Newton solve for the implicit creep update
// ε^c_{n+1} = ε^c_n + Δt*ε̇^c(σ_{n+1}, ε^c_{n+1}, t, T), so a law whose rate
// depends on its own accumulated strain (strain hardening) or on elapsed
// time (time hardening) integrates correctly; a pure Norton law like
// PowerLawCreep simply reports zero for the εc/t partials it does not use.
type CreepModel interface {
	Rate(εdot, σ, εc []float64, t, T float64)
	DRateDStress(d [][]float64, σ, εc []float64, t, T float64)
	DRateDStrain(d [][]float64, σ, εc []float64, t, T float64)
	DRateDTime(d []float64, σ, εc []float64, t, T float64)
	DRateDTemp(d []float64, σ, εc []float64, t, T float64)
}

// PowerLawCreep is uniaxial-equivalent Norton creep generalized to a J2
// flow direction: ε̇_eq = A*σ_eq^n, grounded on the CreepModel usage
// original_source/src/models.h makes of its own (unretrieved) creep.h —
// see DESIGN.md for why the ledger cites models.h rather than creep.h.
// Norton's law has no strain- or time-hardening term, so its Rate depends
// on σ and T only; εc and t are accepted to satisfy CreepModel but unused.
type PowerLawCreep struct {
	A Interpolate // creep coefficient as a function of temperature
	N Interpolate // creep exponent as a function of temperature
}

func (o *PowerLawCreep) equivalent(σ []float64) (s [6]float64, qeff float64) {
	_, _, qeff = tsr.M_devσ(s[:], σ)
	return
}

func (o *PowerLawCreep) strainRate(εdot, σ []float64, T float64) {
	s, qeff := o.equivalent(σ)
	A, n := o.A.Value(T), o.N.Value(T)
	if qeff < 1e-12 {
		for i := 0; i < 6; i++ {
			εdot[i] = 0
		}
		return
	}
	c := 1.5 * A * math.Pow(qeff, n-1.0)
	for i := 0; i < 6; i++ {
		εdot[i] = c * s[i]
	}
}

func (o *PowerLawCreep) dStrainRateDs(d [][]float64, σ []float64, T float64) {
	s, qeff := o.equivalent(σ)
	A, n := o.A.Value(T), o.N.Value(T)
	if qeff < 1e-12 {
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				d[i][j] = 0
			}
		}
		return
	}
	c := 1.5 * A * math.Pow(qeff, n-1.0)
	dcdq := 1.5 * A * (n - 1.0) * math.Pow(qeff, n-2.0)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			dqdsj := 1.5 * s[j] / qeff
			d[i][j] = c*tsr.Psd[i][j] + dcdq*dqdsj*s[i]
		}
	}
}

// Rate implements CreepModel.
func (o *PowerLawCreep) Rate(εdot, σ, εc []float64, t, T float64) {
	o.strainRate(εdot, σ, T)
}

// DRateDStress implements CreepModel, the tangent of the Norton law.
func (o *PowerLawCreep) DRateDStress(d [][]float64, σ, εc []float64, t, T float64) {
	o.dStrainRateDs(d, σ, T)
}

// DRateDStrain implements CreepModel: Norton creep does not harden with
// its own accumulated strain.
func (o *PowerLawCreep) DRateDStrain(d [][]float64, σ, εc []float64, t, T float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			d[i][j] = 0
		}
	}
}

// DRateDTime implements CreepModel: Norton creep does not time-harden.
func (o *PowerLawCreep) DRateDTime(d []float64, σ, εc []float64, t, T float64) {
	for i := 0; i < 6; i++ {
		d[i] = 0
	}
}

// DRateDTemp implements CreepModel by central-differencing strainRate over
// T: Interpolate exposes Value(T) only, no analytic d/dT, so this follows
// the same finite-difference idiom this package's own tangent tests use
// (e.g. riflow_test.go's DhDa check) rather than requiring every
// Interpolate implementation to also carry a derivative method.
func (o *PowerLawCreep) DRateDTemp(d []float64, σ, εc []float64, t, T float64) {
	h := 1e-3 * math.Max(1.0, math.Abs(T))
	var ep, em [6]float64
	o.strainRate(ep[:], σ, T+h)
	o.strainRate(em[:], σ, T-h)
	for i := 0; i < 6; i++ {
		d[i] = (ep[i] - em[i]) / (2 * h)
	}
}

// J2CreepModel is an alias kept for the name this family is known by in
// the original taxonomy; it is exactly PowerLawCreep's J2-associative
// construction.
type J2CreepModel = PowerLawCreep
