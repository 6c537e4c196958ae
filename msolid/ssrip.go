// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import "github.com/cpmech/gosl/la"

// SmallStrainRateIndependentPlasticity is rate-independent plasticity with
// hardening: the same elastic-predictor/plastic-corrector split
// princstrainsup.go runs in principal-strain space, generalized to full
// 6-vector Mandel space and to an arbitrary RateIndependentFlowRule so
// associative and non-associative laws share one integrator.
type SmallStrainRateIndependentPlasticity struct {
	Elastic LinearElasticModel
	Flow    RateIndependentFlowRule

	solver ResidualJacobianSolver

	// scratch
	σtr [6]float64
	αn  []float64
	C   [6][6]float64
	T   float64
	n   int // 6 + Nalp + 1
}

// Nhist implements Model.
func (o *SmallStrainRateIndependentPlasticity) Nhist() int { return o.Flow.Nhist() }

// Init implements Model.
func (o *SmallStrainRateIndependentPlasticity) Init(s *MState, T0 float64) {
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
	o.n = 6 + o.Flow.Nhist() + 1
	o.αn = make([]float64, o.Flow.Nhist())
}

func (o *SmallStrainRateIndependentPlasticity) cmat() [][]float64 {
	cptr := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		cptr[i] = o.C[i][:]
	}
	return cptr
}

func (o *SmallStrainRateIndependentPlasticity) unpack(x []float64) (σ, α []float64, Δγ float64) {
	na := o.Flow.Nhist()
	return x[0:6], x[6 : 6+na], x[6+na]
}

// ffcn is the (6+Nalp+1)-equation residual:
//
//	R[0:6]      = σ - σtr + Δγ*C:g(σ,α)
//	R[6:6+Nalp] = α - αn - Δγ*h(σ,α)
//	R[6+Nalp]   = F(σ,α,T)
func (o *SmallStrainRateIndependentPlasticity) ffcn(R, x []float64) error {
	na := o.Flow.Nhist()
	σ, α, Δγ := o.unpack(x)
	g := make([]float64, 6)
	o.Flow.G(g, σ, α, o.T)
	for i := 0; i < 6; i++ {
		var cg float64
		for j := 0; j < 6; j++ {
			cg += o.C[i][j] * g[j]
		}
		R[i] = σ[i] - o.σtr[i] + Δγ*cg
	}
	h := make([]float64, na)
	o.Flow.H(h, σ, α, o.T)
	for i := 0; i < na; i++ {
		R[6+i] = α[i] - o.αn[i] - Δγ*h[i]
	}
	R[6+na] = o.Flow.F(σ, α, o.T)
	return nil
}

// Jfcn is the analytic Jacobian of ffcn.
func (o *SmallStrainRateIndependentPlasticity) Jfcn(J [][]float64, x []float64) error {
	na := o.Flow.Nhist()
	σ, α, Δγ := o.unpack(x)

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

	dFds := make([]float64, 6)
	o.Flow.DFDs(dFds, σ, α, o.T)
	dFda := make([]float64, na)
	o.Flow.DFDa(dFda, σ, α, o.T)

	// R_σ rows
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
			J[i][j] = d + Δγ*cdg
		}
		for j := 0; j < na; j++ {
			var cdg float64
			for k := 0; k < 6; k++ {
				cdg += o.C[i][k] * dgda[k][j]
			}
			J[i][6+j] = Δγ * cdg
		}
		var cg float64
		for k := 0; k < 6; k++ {
			cg += o.C[i][k] * g[k]
		}
		J[i][6+na] = cg
	}

	// R_α rows
	for i := 0; i < na; i++ {
		for j := 0; j < 6; j++ {
			J[6+i][j] = -Δγ * dhds[i][j]
		}
		for j := 0; j < na; j++ {
			d := 0.0
			if i == j {
				d = 1.0
			}
			J[6+i][6+j] = d - Δγ*dhda[i][j]
		}
		J[6+i][6+na] = -h[i]
	}

	// R_f row
	for j := 0; j < 6; j++ {
		J[6+na][j] = dFds[j]
	}
	for j := 0; j < na; j++ {
		J[6+na][6+j] = dFda[j]
	}
	J[6+na][6+na] = 0
	return nil
}

// Update implements Model.
func (o *SmallStrainRateIndependentPlasticity) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	o.T = T
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
	ftr := o.Flow.F(o.σtr[:], s.Alp, T)
	if ftr <= 0 {
		copy(s.Sig, o.σtr[:])
		for i := 0; i < 6; i++ {
			s.Eps[i] += Δε[i]
		}
		s.T = T
		s.Dgam = 0
		s.Loading = false
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				A[i][j] = o.C[i][j]
			}
		}
		var Δε0 [6]float64
		s.AccumulateEnergy(σn, Δε, Δε0[:])
		return nil
	}

	na := o.Flow.Nhist()
	n := 6 + na + 1
	x := make([]float64, n)
	copy(x[0:6], o.σtr[:])
	copy(x[6:6+na], o.αn)
	x[6+na] = 0

	if o.solver.MaxIt == 0 {
		o.solver.Init(n, o.ffcn, o.Jfcn, false)
	}
	err := o.solver.Solve(x)
	if err != nil {
		return err
	}

	σ, α, Δγ := o.unpack(x)
	if Δγ < -1e-10 {
		return newStatusErrorf(KT_VIOLATION, "plastic multiplier Δγ=%v is negative", Δγ)
	}

	copy(s.Sig, σ)
	copy(s.Alp, α)
	s.T = T
	s.Dgam = Δγ
	s.Loading = true
	var g [6]float64
	o.Flow.G(g[:], σ, α, T)
	var ΔεP [6]float64
	for i := 0; i < 6; i++ {
		s.Eps[i] += Δε[i]
		ΔεP[i] = Δγ * g[i]
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
func (o *SmallStrainRateIndependentPlasticity) ElasticTangent(A [][]float64, T float64) {
	o.Elastic.StiffnessT(A, T)
}
