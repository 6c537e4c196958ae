// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/la"
)

// SmallStrainPerfectPlasticity is rate-independent perfect (non-hardening)
// plasticity: elastic predictor, closest-point-projection corrector on an
// arbitrary YieldSurface evaluated at a fixed history Q0. dp.go solves
// exactly this problem in closed form for one particular cone; this type
// generalizes the same elastic-predictor/plastic-corrector split to any
// YieldSurface by running the projection through Newton's method instead
// of a hand-derived formula.
type SmallStrainPerfectPlasticity struct {
	Elastic LinearElasticModel
	Surface YieldSurface
	Q0      []float64 // fixed stress-like history passed to Surface (len == Surface.Nhist())

	solver ResidualJacobianSolver

	// scratch, reset once per Update call
	σtr [6]float64
	C   [6][6]float64
	T   float64
}

// Nhist implements Model: no evolving internal state.
func (o *SmallStrainPerfectPlasticity) Nhist() int { return 0 }

// Init implements Model.
func (o *SmallStrainPerfectPlasticity) Init(s *MState, T0 float64) {
	for i := 0; i < 6; i++ {
		s.Sig[i], s.Eps[i], s.EpsP[i] = 0, 0, 0
	}
	s.T = T0
	s.U, s.P = 0, 0
	s.Dgam = 0
	s.Loading = false
	if o.Q0 == nil {
		o.Q0 = make([]float64, o.Surface.Nhist())
	}
}

func (o *SmallStrainPerfectPlasticity) cmat() [][]float64 {
	cptr := make([][]float64, 6)
	for i := 0; i < 6; i++ {
		cptr[i] = o.C[i][:]
	}
	return cptr
}

// ffcn is the 7-equation closest-point-projection residual:
//
//	R[0:6] = σ - σtr + Δγ*C:g(σ)
//	R[6]   = f(σ,Q0,T)
func (o *SmallStrainPerfectPlasticity) ffcn(R, x []float64) error {
	σ, Δγ := x[0:6], x[6]
	var g [6]float64
	o.Surface.DfDs(g[:], σ, o.Q0, o.T)
	for i := 0; i < 6; i++ {
		var cg float64
		for j := 0; j < 6; j++ {
			cg += o.C[i][j] * g[j]
		}
		R[i] = σ[i] - o.σtr[i] + Δγ*cg
	}
	R[6] = o.Surface.F(σ, o.Q0, o.T)
	return nil
}

// Jfcn is the analytic Jacobian of ffcn.
func (o *SmallStrainPerfectPlasticity) Jfcn(J [][]float64, x []float64) error {
	σ, Δγ := x[0:6], x[6]
	var g [6]float64
	o.Surface.DfDs(g[:], σ, o.Q0, o.T)
	H := la.MatAlloc(6, 6)
	o.Surface.DfDsDs(H, σ, o.Q0, o.T)
	// dR[0:6]/dσ = I + Δγ*C*H
	var ch [6][6]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var s float64
			for k := 0; k < 6; k++ {
				s += o.C[i][k] * H[k][j]
			}
			ch[i][j] = s
		}
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			d := 0.0
			if i == j {
				d = 1.0
			}
			J[i][j] = d + Δγ*ch[i][j]
		}
		// dR[0:6]/dΔγ = C:g
		var cg float64
		for k := 0; k < 6; k++ {
			cg += o.C[i][k] * g[k]
		}
		J[i][6] = cg
	}
	// dR[6]/dσ = ∂f/∂σ ; dR[6]/dΔγ = 0
	for j := 0; j < 6; j++ {
		J[6][j] = g[j]
	}
	J[6][6] = 0
	return nil
}

// Update implements Model.
func (o *SmallStrainPerfectPlasticity) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
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
	ftr := o.Surface.F(o.σtr[:], o.Q0, T)
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
	x := make([]float64, 7)
	copy(x[0:6], o.σtr[:])
	x[6] = 0
	if o.solver.MaxIt == 0 {
		o.solver.Init(7, o.ffcn, o.Jfcn, false)
	}
	err := o.solver.Solve(x)
	if err != nil {
		return err
	}
	copy(s.Sig, x[0:6])
	s.T = T
	s.Dgam = x[6]
	s.Loading = true
	var g [6]float64
	o.Surface.DfDs(g[:], s.Sig, o.Q0, T)
	var ΔεP [6]float64
	for i := 0; i < 6; i++ {
		s.Eps[i] += Δε[i]
		ΔεP[i] = s.Dgam * g[i]
		s.EpsP[i] += ΔεP[i]
	}
	s.AccumulateEnergy(σn, Δε, ΔεP[:])
	// algorithmic tangent via the implicit function theorem: differentiate
	// the converged residual wrt Δε. Only σtr depends on Δε, contributing
	// -C to the top block's right-hand side.
	J := la.MatAlloc(7, 7)
	o.Jfcn(J, x)
	Ji := la.MatAlloc(7, 7)
	err = la.MatInvG(Ji, J, 1e-14)
	if err != nil {
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
func (o *SmallStrainPerfectPlasticity) ElasticTangent(A [][]float64, T float64) {
	o.Elastic.StiffnessT(A, T)
}
