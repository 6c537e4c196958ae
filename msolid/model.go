// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/tsr"

// Model is the uniform small-strain update contract every integrator in
// this package implements: given the state at the start of the step and
// a total strain increment (with an optional thermal component), advance
// the state to the end of the step and report the algorithmic tangent.
// A host finite-element code drives this exactly as it would drive any
// other material point: no integrator-specific branching outside Update.
type Model interface {
	// Nhist returns the length of the internal variable vector this
	// model carries in MState.Alp.
	Nhist() int

	// Init resets a state to its virgin condition at temperature T0.
	Init(s *MState, T0 float64)

	// Update advances s in place from ε_n to ε_n+Δε over the time
	// increment Δt at temperature T (T is the temperature at the end
	// of the step; callers that need a temperature history interpolate
	// outside this call). Returns the algorithmic tangent A=∂σ/∂ε.
	Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error

	// ElasticTangent writes the purely elastic stiffness at T into A,
	// used by SmallStrainCreepPlasticity's combined tangent and by hosts
	// that want a cheap stiffness estimate without a full return mapping.
	ElasticTangent(A [][]float64, T float64)
}

// MState is the material-point history this package's models read and
// write. Unlike the teacher's State (principal-strain formulation geared
// to one particular closest-point-projection algorithm), MState is a
// plain full-tensor record any of this package's integrators can share.
type MState struct {
	Sig  []float64 // σ: Cauchy stress, Mandel 6-vector
	Eps  []float64 // ε: total strain, Mandel 6-vector
	EpsP []float64 // plastic/inelastic strain accumulated so far
	EpsC []float64 // creep strain accumulated so far (nil unless the model needs it)
	Alp  []float64 // internal variables (hardening history, backstress, ...)

	T float64 // temperature at the end of the last completed step (T_n for the next call)

	U float64 // strain-energy density accumulated so far
	P float64 // plastic-dissipation density accumulated so far

	// bookkeeping, not consumed by any residual
	Dgam    float64 // last step's plastic multiplier increment
	Loading bool    // true if the last step was plastic (or crossed into creep)
	NSubstep int    // number of substeps the last call to AdaptiveSubstepper.Update took
}

// NewMState allocates an MState with nsig stress/strain components
// (always 6 in this package's Mandel convention) and nhist history
// components.
func NewMState(nhist int) *MState {
	return &MState{
		Sig:  make([]float64, 6),
		Eps:  make([]float64, 6),
		EpsP: make([]float64, 6),
		Alp:  make([]float64, nhist),
	}
}

// Copy deep-copies other into o; both must have been allocated with the
// same nhist.
func (o *MState) Copy(other *MState) {
	copy(o.Sig, other.Sig)
	copy(o.Eps, other.Eps)
	copy(o.EpsP, other.EpsP)
	if o.EpsC != nil {
		copy(o.EpsC, other.EpsC)
	}
	copy(o.Alp, other.Alp)
	o.T = other.T
	o.U = other.U
	o.P = other.P
	o.Dgam = other.Dgam
	o.Loading = other.Loading
	o.NSubstep = other.NSubstep
}

// AccumulateEnergy advances the strain-energy and plastic-dissipation
// densities by trapezoidal quadrature over a step (§4.1):
//
//	u_{n+1} = u_n + ½(σ_n+σ_n+1)·Δε
//	p_{n+1} = p_n + ½(σ_n+σ_n+1)·Δε^p
//
// σn is the stress at the start of the step; o.Sig must already hold the
// converged end-of-step stress when this is called. ΔεP is the plastic
// (or otherwise inelastic) share of Δε; pass a zero vector for a purely
// elastic step.
func (o *MState) AccumulateEnergy(σn, Δε, ΔεP []float64) {
	for i := 0; i < 6; i++ {
		avg := 0.5 * (σn[i] + o.Sig[i])
		o.U += avg * Δε[i]
		o.P += avg * ΔεP[i]
	}
}

// ThermalStrain returns the isotropic thermal strain increment
// α(T)*(T-Tn)*Im an elastic model accrues over a step from Tn to T,
// evaluating α at the step's end temperature.
func ThermalStrain(elastic LinearElasticModel, Tn, T float64) []float64 {
	θ := make([]float64, 6)
	α := elastic.ThermalExpansion(T)
	ΔT := T - Tn
	for i := 0; i < 6; i++ {
		θ[i] = α * ΔT * tsr.Im[i]
	}
	return θ
}

// WithCreepStrain allocates the EpsC field, for models that track creep
// strain separately from plastic strain (SmallStrainCreepPlasticity).
func (o *MState) WithCreepStrain() *MState {
	o.EpsC = make([]float64, 6)
	return o
}
