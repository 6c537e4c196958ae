// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// GFlow is the overstress scaling function g(f) of a Perzyna-type
// viscoplastic flow rule: the plastic multiplier rate is γ̇ = g(f)/η for
// f>0 and zero otherwise. Swapping GFlow implementations changes the
// rate sensitivity without touching the integrator (§4.5, GI).
type GFlow interface {
	G(f float64) float64
	DgDf(f float64) float64
}

// GPowerLaw is g(f) = (f/n0)^Nexp for f>0, the textbook Perzyna power law,
// grounded on original_source/src/visco_flow.h's GPowerLaw.
type GPowerLaw struct {
	N0   float64 // reference overstress
	Nexp float64 // rate sensitivity exponent
}

// G implements GFlow.
func (o *GPowerLaw) G(f float64) float64 {
	if f <= 0 {
		return 0
	}
	return math.Pow(f/o.N0, o.Nexp)
}

// DgDf implements GFlow.
func (o *GPowerLaw) DgDf(f float64) float64 {
	if f <= 0 {
		return 0
	}
	return o.Nexp / o.N0 * math.Pow(f/o.N0, o.Nexp-1.0)
}

// ViscoPlasticFlowRule is the rate-dependent analogue of
// RateIndependentFlowRule: there is no Kuhn-Tucker complementarity to
// enforce, the overstress function itself determines how far outside
// f=0 the state is allowed to travel in a finite time step.
type ViscoPlasticFlowRule interface {
	Nhist() int
	Y(σ, α []float64, T float64) float64             // overstress f(σ,q(α))
	G(g, σ, α []float64, T float64)                  // flow direction ∂f/∂σ
	DgDs(dgds [][]float64, σ, α []float64, T float64)
	DgDa(dgda [][]float64, σ, α []float64, T float64)
	H(h, σ, α []float64, T float64)                  // hardening direction ∂f/∂q
	DhDs(dhds [][]float64, σ, α []float64, T float64)
	DhDa(dhda [][]float64, σ, α []float64, T float64)
	Gamma(f float64) float64                         // g(f)
	DGammaDf(f float64) float64                      // g'(f)
}

// PerzynaFlowRule wraps an AssociativeFlowRule's yield surface with a
// pluggable GFlow, the NEML "overstress" model family (§4.5/§6).
type PerzynaFlowRule struct {
	Flow *AssociativeFlowRule
	G_   GFlow
	Eta  Interpolate // viscosity, as a function of temperature
	T    float64     // temperature at which Eta is evaluated for the current call
}

// Nhist returns the underlying associative rule's history length.
func (o *PerzynaFlowRule) Nhist() int { return o.Flow.Nhist() }

// Y implements ViscoPlasticFlowRule: the raw yield value, not scaled by η.
// It also records T, the temperature at which Gamma/DGammaDf evaluate Eta.
func (o *PerzynaFlowRule) Y(σ, α []float64, T float64) float64 {
	o.T = T
	return o.Flow.F(σ, α, T)
}

// G implements ViscoPlasticFlowRule.
func (o *PerzynaFlowRule) G(g, σ, α []float64, T float64) { o.Flow.G(g, σ, α, T) }

// DgDs implements ViscoPlasticFlowRule.
func (o *PerzynaFlowRule) DgDs(dgds [][]float64, σ, α []float64, T float64) {
	o.Flow.DgDs(dgds, σ, α, T)
}

// DgDa implements ViscoPlasticFlowRule.
func (o *PerzynaFlowRule) DgDa(dgda [][]float64, σ, α []float64, T float64) {
	o.Flow.DgDa(dgda, σ, α, T)
}

// H implements ViscoPlasticFlowRule.
func (o *PerzynaFlowRule) H(h, σ, α []float64, T float64) { o.Flow.H(h, σ, α, T) }

// DhDs implements ViscoPlasticFlowRule.
func (o *PerzynaFlowRule) DhDs(dhds [][]float64, σ, α []float64, T float64) {
	o.Flow.DhDs(dhds, σ, α, T)
}

// DhDa implements ViscoPlasticFlowRule.
func (o *PerzynaFlowRule) DhDa(dhda [][]float64, σ, α []float64, T float64) {
	o.Flow.DhDa(dhda, σ, α, T)
}

// Gamma implements ViscoPlasticFlowRule: γ̇ = g(f)/η(T).
func (o *PerzynaFlowRule) Gamma(f float64) float64 {
	return o.G_.G(f) / o.Eta.Value(o.T)
}

// DGammaDf implements ViscoPlasticFlowRule.
func (o *PerzynaFlowRule) DGammaDf(f float64) float64 {
	return o.G_.DgDf(f) / o.Eta.Value(o.T)
}
