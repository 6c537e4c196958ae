// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/la"

// RateIndependentFlowRule is the flow rule consumed by the rate-independent
// hardening plasticity integrator (SSRIP, §4.4). F is the consistency
// condition itself, with its own exact gradients DFDs/DFDa; G is the
// plastic flow direction (possibly drawn from a different potential than
// F, for non-associative flow) and H is the hardening rate conjugate to
// the strain-like history α. Keeping F's gradients separate from G's
// lets a single residual assembly in ssrip.go serve both associative and
// non-associative rules.
type RateIndependentFlowRule interface {
	Nhist() int
	F(σ, α []float64, T float64) float64
	DFDs(d, σ, α []float64, T float64)
	DFDa(d, σ, α []float64, T float64)
	G(g, σ, α []float64, T float64)
	DgDs(dgds [][]float64, σ, α []float64, T float64)
	DgDa(dgda [][]float64, σ, α []float64, T float64)
	H(h, σ, α []float64, T float64)
	DhDs(dhds [][]float64, σ, α []float64, T float64)
	DhDa(dhda [][]float64, σ, α []float64, T float64)
}

// AssociativeFlowRule sets g=∂f/∂σ and h=∂f/∂q, the classical normality
// rule. Hardening.Nalp() must equal Surface.Nhist().
type AssociativeFlowRule struct {
	Surface   YieldSurface
	Hardening HardeningRule
}

// Nhist returns the hardening rule's history length.
func (o *AssociativeFlowRule) Nhist() int { return o.Hardening.Nalp() }

func (o *AssociativeFlowRule) q(α []float64) []float64 {
	q := make([]float64, o.Surface.Nhist())
	o.Hardening.Q(q, α)
	return q
}

func (o *AssociativeFlowRule) dqda(α []float64) [][]float64 {
	nq := o.Surface.Nhist()
	dqda := la.MatAlloc(nq, nq)
	o.Hardening.DqDa(dqda, α)
	return dqda
}

// F implements RateIndependentFlowRule.
func (o *AssociativeFlowRule) F(σ, α []float64, T float64) float64 {
	return o.Surface.F(σ, o.q(α), T)
}

// DFDs implements RateIndependentFlowRule: the surface's own gradient, no
// chain rule through α is needed since σ enters F directly.
func (o *AssociativeFlowRule) DFDs(d, σ, α []float64, T float64) {
	o.Surface.DfDs(d, σ, o.q(α), T)
}

// DFDa implements RateIndependentFlowRule: chain rule through q(α).
func (o *AssociativeFlowRule) DFDa(d, σ, α []float64, T float64) {
	nq := o.Surface.Nhist()
	q := o.q(α)
	dfdq := make([]float64, nq)
	o.Surface.DfDq(dfdq, σ, q, T)
	dqda := o.dqda(α)
	for j := range d {
		var sum float64
		for k := 0; k < nq; k++ {
			sum += dfdq[k] * dqda[k][j]
		}
		d[j] = sum
	}
}

// G implements RateIndependentFlowRule.
func (o *AssociativeFlowRule) G(g, σ, α []float64, T float64) {
	o.Surface.DfDs(g, σ, o.q(α), T)
}

// DgDs implements RateIndependentFlowRule.
func (o *AssociativeFlowRule) DgDs(dgds [][]float64, σ, α []float64, T float64) {
	o.Surface.DfDsDs(dgds, σ, o.q(α), T)
}

// DgDa implements RateIndependentFlowRule: chain rule through q(α).
func (o *AssociativeFlowRule) DgDa(dgda [][]float64, σ, α []float64, T float64) {
	nq := o.Surface.Nhist()
	q := o.q(α)
	dfdsdq := la.MatAlloc(6, nq)
	o.Surface.DfDsDq(dfdsdq, σ, q, T)
	dqda := o.dqda(α)
	for i := 0; i < 6; i++ {
		for j := 0; j < nq; j++ {
			var sum float64
			for k := 0; k < nq; k++ {
				sum += dfdsdq[i][k] * dqda[k][j]
			}
			dgda[i][j] = sum
		}
	}
}

// H implements RateIndependentFlowRule: h=∂f/∂q minus the hardening
// rule's own dynamic-recovery loss γ(T)*q(α) (zero unless Hardening
// carries an Armstrong-Frederick/Chaboche recovery rate), the NEML
// convention in which the strain-like history α absorbs the hardening
// modulus so the evolution rate itself needs no further chain rule. The
// drag stress q[0] enters every Surface in this package with the
// opposite sign of the backstress (f = qeff - σy0 - q[0], versus the
// backstress's additive shift), so its conjugate rate is negated -
// h[0]=-∂f/∂q[0] - to keep α[0] growing with Δγ the way dp.go's own
// *α0 += Δγ does; the backstress slots keep the plain +∂f/∂X sign.
func (o *AssociativeFlowRule) H(h, σ, α []float64, T float64) {
	nq := o.Surface.Nhist()
	q := o.q(α)
	o.Surface.DfDq(h, σ, q, T)
	γ := make([]float64, nq)
	o.Hardening.Recovery(γ, α, T)
	for i := 0; i < nq; i++ {
		h[i] -= γ[i] * q[i]
	}
	h[0] = -h[0]
}

// DhDs implements RateIndependentFlowRule. The recovery loss term has no
// σ dependence, so it contributes nothing here.
func (o *AssociativeFlowRule) DhDs(dhds [][]float64, σ, α []float64, T float64) {
	o.Surface.DfDqDs(dhds, σ, o.q(α), T)
	for j := 0; j < 6; j++ {
		dhds[0][j] = -dhds[0][j]
	}
}

// DhDa implements RateIndependentFlowRule: chain rule through q(α), plus
// the recovery loss term's own derivative -γ(T)*dq/dα, with the drag
// row negated to match H's own sign flip.
func (o *AssociativeFlowRule) DhDa(dhda [][]float64, σ, α []float64, T float64) {
	nq := o.Surface.Nhist()
	q := o.q(α)
	dfdqdq := la.MatAlloc(nq, nq)
	o.Surface.DfDqDq(dfdqdq, σ, q, T)
	dqda := o.dqda(α)
	γ := make([]float64, nq)
	o.Hardening.Recovery(γ, α, T)
	for i := 0; i < nq; i++ {
		for j := 0; j < nq; j++ {
			var sum float64
			for k := 0; k < nq; k++ {
				sum += dfdqdq[i][k] * dqda[k][j]
			}
			dhda[i][j] = sum - γ[i]*dqda[i][j]
		}
	}
	for j := 0; j < nq; j++ {
		dhda[0][j] = -dhda[0][j]
	}
}

// NonAssociativeFlowRule breaks normality in the σ-direction by drawing g
// from an independent plastic potential while the yield condition (F,
// DFDs, DFDa) and the hardening conjugacy (H) still follow Surface.
// Because the discrete update's consistency root is no longer the
// steepest-feasible-direction solution, SSRIP's Kuhn-Tucker check (§4.4)
// is mandatory for models built from this type.
type NonAssociativeFlowRule struct {
	Surface   YieldSurface
	Potential YieldSurface // plastic potential: only DfDs/DfDsDs are used
	Hardening HardeningRule
}

// Nhist returns the hardening rule's history length.
func (o *NonAssociativeFlowRule) Nhist() int { return o.Hardening.Nalp() }

func (o *NonAssociativeFlowRule) q(α []float64) []float64 {
	q := make([]float64, o.Surface.Nhist())
	o.Hardening.Q(q, α)
	return q
}

func (o *NonAssociativeFlowRule) dqda(α []float64) [][]float64 {
	nq := o.Surface.Nhist()
	dqda := la.MatAlloc(nq, nq)
	o.Hardening.DqDa(dqda, α)
	return dqda
}

// F implements RateIndependentFlowRule.
func (o *NonAssociativeFlowRule) F(σ, α []float64, T float64) float64 {
	return o.Surface.F(σ, o.q(α), T)
}

// DFDs implements RateIndependentFlowRule: the true surface's gradient.
func (o *NonAssociativeFlowRule) DFDs(d, σ, α []float64, T float64) {
	o.Surface.DfDs(d, σ, o.q(α), T)
}

// DFDa implements RateIndependentFlowRule.
func (o *NonAssociativeFlowRule) DFDa(d, σ, α []float64, T float64) {
	nq := o.Surface.Nhist()
	q := o.q(α)
	dfdq := make([]float64, nq)
	o.Surface.DfDq(dfdq, σ, q, T)
	dqda := o.dqda(α)
	for j := range d {
		var sum float64
		for k := 0; k < nq; k++ {
			sum += dfdq[k] * dqda[k][j]
		}
		d[j] = sum
	}
}

// G implements RateIndependentFlowRule: direction from the potential.
func (o *NonAssociativeFlowRule) G(g, σ, α []float64, T float64) {
	qp := make([]float64, o.Potential.Nhist())
	o.Potential.DfDs(g, σ, qp, T)
}

// DgDs implements RateIndependentFlowRule.
func (o *NonAssociativeFlowRule) DgDs(dgds [][]float64, σ, α []float64, T float64) {
	qp := make([]float64, o.Potential.Nhist())
	o.Potential.DfDsDs(dgds, σ, qp, T)
}

// DgDa implements RateIndependentFlowRule: the potential in this
// formulation does not depend on α, so the cross term is zero.
func (o *NonAssociativeFlowRule) DgDa(dgda [][]float64, σ, α []float64, T float64) {
	nq := o.Hardening.Nalp()
	for i := 0; i < 6; i++ {
		for j := 0; j < nq; j++ {
			dgda[i][j] = 0
		}
	}
}

// H implements RateIndependentFlowRule: hardening conjugacy follows the
// true yield surface, not the potential, minus the hardening rule's own
// dynamic-recovery loss γ(T)*q(α). The drag row q[0] is negated for the
// same reason as AssociativeFlowRule.H: f enters q[0] with the opposite
// sign of the backstress, so its conjugate rate must flip to keep α[0]
// growing with Δγ.
func (o *NonAssociativeFlowRule) H(h, σ, α []float64, T float64) {
	nq := o.Surface.Nhist()
	q := o.q(α)
	o.Surface.DfDq(h, σ, q, T)
	γ := make([]float64, nq)
	o.Hardening.Recovery(γ, α, T)
	for i := 0; i < nq; i++ {
		h[i] -= γ[i] * q[i]
	}
	h[0] = -h[0]
}

// DhDs implements RateIndependentFlowRule. The recovery loss term has no
// σ dependence, so it contributes nothing here.
func (o *NonAssociativeFlowRule) DhDs(dhds [][]float64, σ, α []float64, T float64) {
	o.Surface.DfDqDs(dhds, σ, o.q(α), T)
	for j := 0; j < 6; j++ {
		dhds[0][j] = -dhds[0][j]
	}
}

// DhDa implements RateIndependentFlowRule: chain rule through q(α), plus
// the recovery loss term's own derivative -γ(T)*dq/dα, with the drag row
// negated to match H's own sign flip.
func (o *NonAssociativeFlowRule) DhDa(dhda [][]float64, σ, α []float64, T float64) {
	nq := o.Surface.Nhist()
	q := o.q(α)
	dfdqdq := la.MatAlloc(nq, nq)
	o.Surface.DfDqDq(dfdqdq, σ, q, T)
	dqda := o.dqda(α)
	γ := make([]float64, nq)
	o.Hardening.Recovery(γ, α, T)
	for i := 0; i < nq; i++ {
		for j := 0; j < nq; j++ {
			var sum float64
			for k := 0; k < nq; k++ {
				sum += dfdqdq[i][k] * dqda[k][j]
			}
			dhda[i][j] = sum - γ[i]*dqda[i][j]
		}
	}
	for j := 0; j < nq; j++ {
		dhda[0][j] = -dhda[0][j]
	}
}
