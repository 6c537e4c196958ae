// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// GeneralFlowRule is the uniform flow-rule contract consumed by the
// general backward-Euler integrator (GI, §4.5). Unlike
// RateIndependentFlowRule, the plastic multiplier rate γ̇ is not an
// independent unknown subject to a Kuhn-Tucker condition: it is given
// directly as a function of the current state, so GI's residual has no
// complementarity branch to select.
type GeneralFlowRule interface {
	Nhist() int
	FlowRate(σ, α []float64, T float64) float64 // γ̇(σ,α,T)
	DFlowRateDs(d []float64, σ, α []float64, T float64)
	DFlowRateDa(d []float64, σ, α []float64, T float64)
	G(g, σ, α []float64, T float64)
	DgDs(dgds [][]float64, σ, α []float64, T float64)
	DgDa(dgda [][]float64, σ, α []float64, T float64)
	H(h, σ, α []float64, T float64)
	DhDs(dhds [][]float64, σ, α []float64, T float64)
	DhDa(dhda [][]float64, σ, α []float64, T float64)
}

// ViscoPlasticFlowRuleAdapter lifts a ViscoPlasticFlowRule into a
// GeneralFlowRule by composing γ̇ = Gamma(Y(σ,α,T)) and differentiating
// through the chain rule. This is how the KM regime model (§4.7) and a
// directly-constructed viscoplastic model share GI's integrator.
type ViscoPlasticFlowRuleAdapter struct {
	Flow ViscoPlasticFlowRule
}

// Nhist implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) Nhist() int { return o.Flow.Nhist() }

// FlowRate implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) FlowRate(σ, α []float64, T float64) float64 {
	return o.Flow.Gamma(o.Flow.Y(σ, α, T))
}

// DFlowRateDs implements GeneralFlowRule: γ̇'(f)*∂f/∂σ.
func (o *ViscoPlasticFlowRuleAdapter) DFlowRateDs(d []float64, σ, α []float64, T float64) {
	f := o.Flow.Y(σ, α, T)
	dgdf := o.Flow.DGammaDf(f)
	o.Flow.G(d, σ, α, T) // d := ∂f/∂σ = flow direction
	for i := range d {
		d[i] *= dgdf
	}
}

// DFlowRateDa implements GeneralFlowRule: γ̇'(f)*∂f/∂α via the hardening direction.
func (o *ViscoPlasticFlowRuleAdapter) DFlowRateDa(d []float64, σ, α []float64, T float64) {
	f := o.Flow.Y(σ, α, T)
	dgdf := o.Flow.DGammaDf(f)
	o.Flow.H(d, σ, α, T)
	for i := range d {
		d[i] *= dgdf
	}
}

// G implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) G(g, σ, α []float64, T float64) { o.Flow.G(g, σ, α, T) }

// DgDs implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) DgDs(dgds [][]float64, σ, α []float64, T float64) {
	o.Flow.DgDs(dgds, σ, α, T)
}

// DgDa implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) DgDa(dgda [][]float64, σ, α []float64, T float64) {
	o.Flow.DgDa(dgda, σ, α, T)
}

// H implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) H(h, σ, α []float64, T float64) { o.Flow.H(h, σ, α, T) }

// DhDs implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) DhDs(dhds [][]float64, σ, α []float64, T float64) {
	o.Flow.DhDs(dhds, σ, α, T)
}

// DhDa implements GeneralFlowRule.
func (o *ViscoPlasticFlowRuleAdapter) DhDa(dhda [][]float64, σ, α []float64, T float64) {
	o.Flow.DhDa(dhda, σ, α, T)
}
