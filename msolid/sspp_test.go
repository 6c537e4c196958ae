// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func newDPPerfectModel(M, sy0 float64) *SmallStrainPerfectPlasticity {
	E, ν := 200000.0, 0.3
	elastic := &IsotropicLinearElastic{
		K: ConstantInterpolate{V: Calc_K_from_Enu(E, ν)},
		G: ConstantInterpolate{V: Calc_G_from_Enu(E, ν)},
	}
	surf := &DruckerPragerSurface{
		M:   ConstantInterpolate{V: M},
		Sy0: ConstantInterpolate{V: sy0},
	}
	return &SmallStrainPerfectPlasticity{Elastic: elastic, Surface: surf}
}

func TestSmallStrainPerfectPlasticityElasticBranch(tst *testing.T) {
	mdl := newDPPerfectModel(1.0, 100.0)
	s := NewMState(mdl.Nhist())
	mdl.Init(s, 293.0)
	Δε := []float64{1e-5, 0, 0, 0, 0, 0}
	A := la.MatAlloc(6, 6)
	if err := mdl.Update(A, s, Δε, 1.0, 293.0); err != nil {
		chk.Panic("update failed: %v", err)
	}
	if s.Loading {
		chk.Panic("a tiny strain increment should stay elastic")
	}
}

func TestSmallStrainPerfectPlasticityYields(tst *testing.T) {
	mdl := newDPPerfectModel(1.2, 50.0)
	s := NewMState(mdl.Nhist())
	mdl.Init(s, 293.0)

	Δε := []float64{5e-3, -2.5e-3, -2.5e-3, 0, 0, 0}
	A := la.MatAlloc(6, 6)
	if err := mdl.Update(A, s, Δε, 1.0, 293.0); err != nil {
		chk.Panic("update failed: %v", err)
	}
	if !s.Loading {
		chk.Panic("a large strain increment should cross the yield surface")
	}
	f := mdl.Surface.F(s.Sig, mdl.Q0, 293.0)
	if f > 1e-4 || f < -1e-4 {
		chk.Panic("converged stress is not on the yield surface, f=%v", f)
	}
}

func TestSmallStrainPerfectPlasticityTangentFD(tst *testing.T) {
	mdl := newDPPerfectModel(1.2, 50.0)
	baseState := func() *MState {
		s := NewMState(mdl.Nhist())
		mdl.Init(s, 293.0)
		// preload into the plastic regime
		Δε0 := []float64{4e-3, -2e-3, -2e-3, 0, 0, 0}
		A := la.MatAlloc(6, 6)
		mdl.Update(A, s, Δε0, 1.0, 293.0)
		return s
	}

	s0 := baseState()
	A := la.MatAlloc(6, 6)
	Δε := []float64{1e-5, -5e-6, -5e-6, 2e-6, 0, 0}
	if err := mdl.Update(A, s0, Δε, 1.0, 293.0); err != nil {
		chk.Panic("update failed: %v", err)
	}

	h := 1e-7
	for j := 0; j < 6; j++ {
		sP := baseState()
		sM := baseState()
		ΔεP := append([]float64{}, Δε...)
		ΔεM := append([]float64{}, Δε...)
		ΔεP[j] += h
		ΔεM[j] -= h
		Atmp := la.MatAlloc(6, 6)
		mdl.Update(Atmp, sP, ΔεP, 1.0, 293.0)
		mdl.Update(Atmp, sM, ΔεM, 1.0, 293.0)
		for i := 0; i < 6; i++ {
			fd := (sP.Sig[i] - sM.Sig[i]) / (2 * h)
			if diff := fd - A[i][j]; math.Abs(diff) > 1e-1*math.Max(1.0, math.Abs(fd)) {
				chk.Panic("tangent column %d row %d mismatch: analytic=%v fd=%v", j, i, A[i][j], fd)
			}
		}
	}
}
