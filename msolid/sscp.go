// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// SmallStrainCreepPlasticity couples a rate-independent (or general)
// plasticity Model with a CreepModel through additive strain
// decomposition ε = εe + εp + εcr, integrated with a staggered
// (Gauss-Seidel) scheme: each outer iteration freezes the creep strain
// increment, lets Plastic.Update solve its own Newton problem for the
// remaining strain, then refreshes the creep increment at the resulting
// stress with its own inner Newton solve for the implicit creep update
// (§4.6 step 2). This mirrors how gofem's fem package staggers coupled
// physics across separate per-physics solves rather than building one
// monolithic residual.
type SmallStrainCreepPlasticity struct {
	Plastic Model
	Creep   CreepModel

	// Sf scales the creep strain rate, exposed so a host that already
	// validated sf=1 in NEML's original formulation can still tune it
	// (Open Question: default 1.0, see DESIGN.md).
	Sf float64

	MaxOuterIt int     // outer staggering iterations, default 30
	OuterTol   float64 // convergence tolerance on ‖ΔEpsC increment‖, default 1e-10

	// scratch
	trial       *MState
	creepSolver ResidualJacobianSolver
	εcn         [6]float64 // creep strain at the start of the step, fixed across outer/inner iterations
	σcreep      [6]float64 // stress held fixed during the inner creep Newton
	t, Δt, T    float64
}

// Nhist implements Model.
func (o *SmallStrainCreepPlasticity) Nhist() int { return o.Plastic.Nhist() }

// Init implements Model.
func (o *SmallStrainCreepPlasticity) Init(s *MState, T0 float64) {
	if s.EpsC == nil {
		s.WithCreepStrain()
	}
	o.Plastic.Init(s, T0)
	for i := 0; i < 6; i++ {
		s.EpsC[i] = 0
	}
	if o.Sf == 0 {
		o.Sf = 1.0
	}
	if o.MaxOuterIt == 0 {
		o.MaxOuterIt = 30
	}
	if o.OuterTol == 0 {
		o.OuterTol = 1e-10
	}
	o.t = 0
}

// creepFfcn is the 6-equation implicit-creep residual at fixed σ:
//
//	R = Δεc - Δt*Sf*ε̇^c(σ, εcn+Δεc, t, T)
func (o *SmallStrainCreepPlasticity) creepFfcn(R, x []float64) error {
	var εc [6]float64
	for i := 0; i < 6; i++ {
		εc[i] = o.εcn[i] + x[i]
	}
	var rate [6]float64
	o.Creep.Rate(rate[:], o.σcreep[:], εc[:], o.t, o.T)
	for i := 0; i < 6; i++ {
		R[i] = x[i] - o.Δt*o.Sf*rate[i]
	}
	return nil
}

// creepJfcn is the analytic Jacobian of creepFfcn.
func (o *SmallStrainCreepPlasticity) creepJfcn(J [][]float64, x []float64) error {
	var εc [6]float64
	for i := 0; i < 6; i++ {
		εc[i] = o.εcn[i] + x[i]
	}
	d := la.MatAlloc(6, 6)
	o.Creep.DRateDStrain(d, o.σcreep[:], εc[:], o.t, o.T)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			id := 0.0
			if i == j {
				id = 1.0
			}
			J[i][j] = id - o.Δt*o.Sf*d[i][j]
		}
	}
	return nil
}

// solveCreepIncrement runs the inner Newton for Δεc given the plastically-
// corrected stress σ, starting from the previous outer iteration's Δεc as
// a warm-started guess.
func (o *SmallStrainCreepPlasticity) solveCreepIncrement(Δεc *[6]float64, σ []float64) error {
	copy(o.σcreep[:], σ)
	if o.creepSolver.MaxIt == 0 {
		o.creepSolver.Init(6, o.creepFfcn, o.creepJfcn, false)
	}
	return o.creepSolver.Solve(Δεc[:])
}

// Update implements Model.
func (o *SmallStrainCreepPlasticity) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	if s.EpsC == nil {
		return chk.Err("small strain creep-plasticity: state was not initialised with a creep strain slot\n")
	}

	if o.trial == nil {
		o.trial = NewMState(len(s.Alp))
		o.trial.WithCreepStrain()
	}
	o.trial.Copy(s)

	o.Δt, o.T = Δt, T
	o.t += Δt
	copy(o.εcn[:], s.EpsC)

	σn0 := append([]float64{}, s.Sig...)
	var Δεcr [6]float64
	var lastΔεcr [6]float64
	for it := 0; it < o.MaxOuterIt; it++ {
		o.trial.Copy(s)
		var Δεp [6]float64
		for i := 0; i < 6; i++ {
			Δεp[i] = Δε[i] - Δεcr[i]
		}
		err := o.Plastic.Update(A, o.trial, Δεp[:], Δt, T)
		if err != nil {
			return err
		}

		copy(lastΔεcr[:], Δεcr[:])
		if err := o.solveCreepIncrement(&Δεcr, o.trial.Sig); err != nil {
			return err
		}

		var diff float64
		for i := 0; i < 6; i++ {
			d := Δεcr[i] - lastΔεcr[i]
			diff += d * d
		}
		if diff < o.OuterTol*o.OuterTol {
			break
		}
	}

	Ap := la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		copy(Ap[i], A[i])
	}

	s.Copy(o.trial)
	for i := 0; i < 6; i++ {
		s.EpsC[i] += Δεcr[i]
		// o.trial.Eps only picked up the plastic share Δε-Δεcr of the
		// step; add back the creep share so Eps tracks total strain.
		s.Eps[i] += Δεcr[i]
	}

	// creep is also inelastic: the inner Plastic.Update only integrated
	// u/p over Δεp=Δε-Δεcr, so the creep share of the trapezoidal energy
	// balance is added separately here.
	for i := 0; i < 6; i++ {
		avg := 0.5 * (σn0[i] + s.Sig[i])
		s.U += avg * Δεcr[i]
		s.P += avg * Δεcr[i]
	}

	// combined algorithmic tangent (§4.6):
	// A_total = (I + Δt*Sf*C:∂ε̇cr/∂σ)^-1 * A_plastic
	Cmat := la.MatAlloc(6, 6)
	o.Plastic.ElasticTangent(Cmat, T)
	D := la.MatAlloc(6, 6)
	var εc1 [6]float64
	for i := 0; i < 6; i++ {
		εc1[i] = o.εcn[i] + Δεcr[i]
	}
	o.Creep.DRateDStress(D, s.Sig, εc1[:], o.t, T)
	M := la.MatAlloc(6, 6)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var cd float64
			for k := 0; k < 6; k++ {
				cd += Cmat[i][k] * D[k][j]
			}
			d := 0.0
			if i == j {
				d = 1.0
			}
			M[i][j] = d + Δt*o.Sf*cd
		}
	}
	Mi := la.MatAlloc(6, 6)
	if err := la.MatInvG(Mi, M, 1e-14); err != nil {
		return newStatusErrorf(LINALG_FAILURE, "combined tangent inversion failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var sum float64
			for k := 0; k < 6; k++ {
				sum += Mi[i][k] * Ap[k][j]
			}
			A[i][j] = sum
		}
	}
	return nil
}

// ElasticTangent implements Model.
func (o *SmallStrainCreepPlasticity) ElasticTangent(A [][]float64, T float64) {
	o.Plastic.ElasticTangent(A, T)
}
