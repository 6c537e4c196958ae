// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/la"

// GeneralIntegrator is the general rate-dependent backward-Euler
// integrator (§4.5, GI): it drives any GeneralFlowRule to a stress and
// history consistent with
//
//	Δε_p = Δt*γ̇(σ,α,T)*g(σ,α,T)
//	Δα   = Δt*γ̇(σ,α,T)*h(σ,α,T)
//
// with σ and α evaluated at the END of the step (fully implicit), unlike
// SSRIP there is no complementarity condition: γ̇ is given directly by
// the flow rule, so the unknown vector drops the Lagrange multiplier.
type GeneralIntegrator struct {
	Elastic LinearElasticModel
	Flow    GeneralFlowRule

	solver ResidualJacobianSolver

	σtr [6]float64
	αn  []float64
	C   [6][6]float64
	T   float64
	Δt  float64
}

// Nhist implements Model.
func (o *GeneralIntegrator) Nhist() int { return o.Flow.Nhist() }

// Init implements Model.
func (o *GeneralIntegrator) Init(s *MState, T0 float64) {
	for i := 0; i < 6; i++ {
		s.Sig[i], s.Eps[i], s.EpsP[i] = 0, 0, 0
	}
	for i := range s.Alp {
		s.Alp[i] = 0
	}
	s.T = T0
	s.U, s.P = 0, 0
	s.Dgam = 0
	s.Loading = false
	o.αn = make([]float64, o.Flow.Nhist())
}

func (o *GeneralIntegrator) cmat() [][]float64 {
	cptr := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		cptr[i] = o.C[i][:]
	}
	return cptr
}

func (o *GeneralIntegrator) unpack(x []float64) (σ, α []float64) {
	na := o.Flow.Nhist()
	return x[0:6], x[6 : 6+na]
}

func (o *GeneralIntegrator) ffcn(R, x []float64) error {
	na := o.Flow.Nhist()
	σ, α := o.unpack(x)
	γ := o.Flow.FlowRate(σ, α, o.T)
	g := make([]float64, 6)
	o.Flow.G(g, σ, α, o.T)
	for i := 0; i < 6; i++ {
		var cg float64
		for j := 0; j < 6; j++ {
			cg += o.C[i][j] * g[j]
		}
		R[i] = σ[i] - o.σtr[i] + o.Δt*γ*cg
	}
	h := make([]float64, na)
	o.Flow.H(h, σ, α, o.T)
	for i := 0; i < na; i++ {
		R[6+i] = α[i] - o.αn[i] - o.Δt*γ*h[i]
	}
	return nil
}

func (o *GeneralIntegrator) Jfcn(J [][]float64, x []float64) error {
	na := o.Flow.Nhist()
	σ, α := o.unpack(x)

	γ := o.Flow.FlowRate(σ, α, o.T)
	dγds := make([]float64, 6)
	o.Flow.DFlowRateDs(dγds, σ, α, o.T)
	dγda := make([]float64, na)
	o.Flow.DFlowRateDa(dγda, σ, α, o.T)

	g := make([]float64, 6)
	o.Flow.G(g, σ, α, o.T)
	dgds := la.MatAlloc(6, 6)
	o.Flow.DgDs(dgds, σ, α, o.T)
	dgda := la.MatAlloc(6, na)
	o.Flow.DgDa(dgda, σ, α, o.T)

	h := make([]float64, na)
	o.Flow.H(h, σ, α, o.T)
	dhds := la.MatAlloc(na, 6)
	o.Flow.DhDs(dhds, σ, α, o.T)
	dhda := la.MatAlloc(na, na)
	o.Flow.DhDa(dhda, σ, α, o.T)

	// Cg[i] = C:g, reused below
	Cg := make([]float64, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			Cg[i] += o.C[i][j] * g[j]
		}
	}

	// R_σ rows: d/dσ_j[σ_i - σtr_i + Δt γ (C:g)_i]
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var cdg float64
			for k := 0; k < 6; k++ {
				cdg += o.C[i][k] * dgds[k][j]
			}
			d := 0.0
			if i == j {
				d = 1.0
			}
			J[i][j] = d + o.Δt*(dγds[j]*Cg[i]+γ*cdg)
		}
		for j := 0; j < na; j++ {
			var cdg float64
			for k := 0; k < 6; k++ {
				cdg += o.C[i][k] * dgda[k][j]
			}
			J[i][6+j] = o.Δt * (dγda[j]*Cg[i] + γ*cdg)
		}
	}

	// R_α rows: d/dσ_j,α_j[α_i - αn_i - Δt γ h_i]
	for i := 0; i < na; i++ {
		for j := 0; j < 6; j++ {
			J[6+i][j] = -o.Δt * (dγds[j]*h[i] + γ*dhds[i][j])
		}
		for j := 0; j < na; j++ {
			d := 0.0
			if i == j {
				d = 1.0
			}
			J[6+i][6+j] = d - o.Δt*(dγda[j]*h[i]+γ*dhda[i][j])
		}
	}
	return nil
}

// Update implements Model.
func (o *GeneralIntegrator) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	o.T, o.Δt = T, Δt
	σn := append([]float64{}, s.Sig...)
	θ := ThermalStrain(o.Elastic, s.T, T)
	Cmat := o.cmat()
	o.Elastic.StiffnessT(Cmat, T)
	var Δεmech [6]float64
	for i := 0; i < 6; i++ {
		Δεmech[i] = Δε[i] - θ[i]
		var cΔε float64
		for j := 0; j < 6; j++ {
			cΔε += o.C[i][j] * Δεmech[j]
		}
		o.σtr[i] = s.Sig[i] + cΔε
	}
	copy(o.αn, s.Alp)

	na := o.Flow.Nhist()
	n := 6 + na
	x := make([]float64, n)
	copy(x[0:6], o.σtr[:])
	copy(x[6:6+na], o.αn)

	if o.solver.MaxIt == 0 {
		o.solver.Init(n, o.ffcn, o.Jfcn, false)
	}
	err := o.solver.Solve(x)
	if err != nil {
		return err
	}

	σ, α := o.unpack(x)
	γ := o.Flow.FlowRate(σ, α, T)
	copy(s.Sig, σ)
	copy(s.Alp, α)
	s.T = T
	s.Dgam = Δt * γ
	s.Loading = γ > 0
	var g [6]float64
	o.Flow.G(g[:], σ, α, T)
	var ΔεP [6]float64
	for i := 0; i < 6; i++ {
		s.Eps[i] += Δε[i]
		ΔεP[i] = Δt * γ * g[i]
		s.EpsP[i] += ΔεP[i]
	}
	s.AccumulateEnergy(σn, Δε, ΔεP[:])

	J := la.MatAlloc(n, n)
	o.Jfcn(J, x)
	Ji := la.MatAlloc(n, n)
	if err := la.MatInvG(Ji, J, 1e-14); err != nil {
		return newStatusErrorf(LINALG_FAILURE, "tangent inversion failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var sum float64
			for k := 0; k < 6; k++ {
				sum += Ji[i][k] * o.C[k][j]
			}
			A[i][j] = sum
		}
	}
	return nil
}

// ElasticTangent implements Model.
func (o *GeneralIntegrator) ElasticTangent(A [][]float64, T float64) {
	o.Elastic.StiffnessT(A, T)
}
