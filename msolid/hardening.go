// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "math"

// HardeningRule maps a strain-like history α to the stress-like internal
// variables q a YieldSurface consumes, together with the Jacobian dq/dα.
// The nonlinearity of rate-dependent recovery (Armstrong-Frederick,
// Chaboche) lives in the flow rule's evolution rate for α, not here: this
// mapping itself is the algebraic q(α) relation.
type HardeningRule interface {
	Nalp() int
	Q(q, α []float64)
	DqDa(dqda [][]float64, α []float64)
	InitAlpha(α []float64)

	// Recovery fills γ (length Nalp()) with the Armstrong-Frederick/
	// Chaboche dynamic-recovery rate of each history component at the
	// current α and temperature T. A flow rule folds Δγ*γ[i]*q[i] into
	// the α-evolution's loss term (see riflow.go's H/DhDa), so a rule
	// with no recovery mechanism (isotropic hardening, plain linear
	// kinematic hardening) simply fills γ with zeros.
	Recovery(γ, α []float64, T float64)
}

// IsotropicHardening is a one-component rule combining linear hardening
// with Voce saturation:
//
//	Q(α) = H*α + Qinf*(1 - exp(-δ*α))
//
// Qinf=0 degenerates to pure linear hardening.
type IsotropicHardening struct {
	H     float64 // linear hardening modulus
	Qinf  float64 // saturation stress (0 disables the Voce term)
	Delta float64 // saturation rate
}

// Nalp returns 1.
func (o *IsotropicHardening) Nalp() int { return 1 }

// Q implements HardeningRule.
func (o *IsotropicHardening) Q(q, α []float64) {
	q[0] = o.H*α[0] + o.Qinf*(1.0-math.Exp(-o.Delta*α[0]))
}

// DqDa implements HardeningRule.
func (o *IsotropicHardening) DqDa(dqda [][]float64, α []float64) {
	dqda[0][0] = o.H + o.Qinf*o.Delta*math.Exp(-o.Delta*α[0])
}

// InitAlpha implements HardeningRule.
func (o *IsotropicHardening) InitAlpha(α []float64) { α[0] = 0 }

// Recovery implements HardeningRule: isotropic hardening's own
// nonlinearity is already in Q's Voce term, so it has no dynamic
// recovery rate to contribute.
func (o *IsotropicHardening) Recovery(γ, α []float64, T float64) { γ[0] = 0 }

// KinematicHardening is a backstress rule: Q(α) = C*α, with an optional
// Armstrong-Frederick dynamic-recovery rate Gamma(T). History α is a
// 6-component kinematic strain-like variable, the backstress X=Q(α) is
// also 6-component. When Gamma is nil the rule is plain linear (Prager)
// kinematic hardening; when set, the flow rule folds -Δγ*Gamma(T)*X into
// the α-evolution (riflow.go's H/DhDa), giving the classical
// Ẋ = C*α̇ - γ*X*Δγ recovery term.
type KinematicHardening struct {
	C     float64     // kinematic hardening modulus
	Gamma Interpolate // dynamic-recovery rate; nil disables recovery
}

// Nalp returns 6.
func (o *KinematicHardening) Nalp() int { return 6 }

// Q implements HardeningRule.
func (o *KinematicHardening) Q(q, α []float64) {
	for i := 0; i < 6; i++ {
		q[i] = o.C * α[i]
	}
}

// DqDa implements HardeningRule.
func (o *KinematicHardening) DqDa(dqda [][]float64, α []float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			dqda[i][j] = 0
		}
		dqda[i][i] = o.C
	}
}

// InitAlpha implements HardeningRule.
func (o *KinematicHardening) InitAlpha(α []float64) {
	for i := range α {
		α[i] = 0
	}
}

// Recovery implements HardeningRule.
func (o *KinematicHardening) Recovery(γ, α []float64, T float64) {
	rate := 0.0
	if o.Gamma != nil {
		rate = o.Gamma.Value(T)
	}
	for i := 0; i < 6; i++ {
		γ[i] = rate
	}
}

// CombinedHardening stacks an isotropic and a kinematic rule into the
// [Q, X] = [1, 6] layout J2IsoKin expects.
type CombinedHardening struct {
	Iso *IsotropicHardening
	Kin *KinematicHardening
}

// Nalp returns 7.
func (o *CombinedHardening) Nalp() int { return 1 + o.Kin.Nalp() }

// Q implements HardeningRule.
func (o *CombinedHardening) Q(q, α []float64) {
	o.Iso.Q(q[0:1], α[0:1])
	o.Kin.Q(q[1:], α[1:])
}

// DqDa implements HardeningRule, block-diagonal in the iso/kin split.
func (o *CombinedHardening) DqDa(dqda [][]float64, α []float64) {
	n := o.Nalp()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dqda[i][j] = 0
		}
	}
	o.Iso.DqDa([][]float64{dqda[0][0:1]}, α[0:1])
	sub := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		sub[i] = dqda[1+i][1:]
	}
	o.Kin.DqDa(sub, α[1:])
}

// InitAlpha implements HardeningRule.
func (o *CombinedHardening) InitAlpha(α []float64) {
	o.Iso.InitAlpha(α[0:1])
	o.Kin.InitAlpha(α[1:])
}

// Recovery implements HardeningRule.
func (o *CombinedHardening) Recovery(γ, α []float64, T float64) {
	o.Iso.Recovery(γ[0:1], α[0:1], T)
	o.Kin.Recovery(γ[1:], α[1:], T)
}

// ChabocheHardening implements N independent backstresses, each with its
// own modulus and its own Armstrong-Frederick dynamic-recovery rate
// Gamma[k] (nil disables recovery for that backstress); the total
// backstress felt by the yield surface is their sum.
type ChabocheHardening struct {
	C     []float64     // modulus of each backstress component, length N
	Gamma []Interpolate // per-backstress recovery rate, length N (entries may be nil)
}

// N returns the number of backstress components.
func (o *ChabocheHardening) N() int { return len(o.C) }

// Nalp returns 6*N.
func (o *ChabocheHardening) Nalp() int { return 6 * len(o.C) }

// Q implements HardeningRule: each backstress maps linearly, then the
// caller (typically the surface's shift) is responsible for summing them.
func (o *ChabocheHardening) Q(q, α []float64) {
	for k, Ck := range o.C {
		for i := 0; i < 6; i++ {
			q[6*k+i] = Ck * α[6*k+i]
		}
	}
}

// DqDa implements HardeningRule.
func (o *ChabocheHardening) DqDa(dqda [][]float64, α []float64) {
	n := o.Nalp()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dqda[i][j] = 0
		}
	}
	for k, Ck := range o.C {
		for i := 0; i < 6; i++ {
			dqda[6*k+i][6*k+i] = Ck
		}
	}
}

// InitAlpha implements HardeningRule.
func (o *ChabocheHardening) InitAlpha(α []float64) {
	for i := range α {
		α[i] = 0
	}
}

// Recovery implements HardeningRule.
func (o *ChabocheHardening) Recovery(γ, α []float64, T float64) {
	for k := range o.C {
		rate := 0.0
		if o.Gamma != nil && o.Gamma[k] != nil {
			rate = o.Gamma[k].Value(T)
		}
		for i := 0; i < 6; i++ {
			γ[6*k+i] = rate
		}
	}
}

// SumBackstress adds up the N 6-component backstresses of a Chaboche
// hardening rule's q vector into a single 6-vector, the shift a surface
// like J2IsoKin needs.
func (o *ChabocheHardening) SumBackstress(X, q []float64) {
	for i := 0; i < 6; i++ {
		X[i] = 0
	}
	for k := range o.C {
		for i := 0; i < 6; i++ {
			X[i] += q[6*k+i]
		}
	}
}
