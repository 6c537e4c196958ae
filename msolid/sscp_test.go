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

func newCreepPlasticityModel(sy0, H float64) *SmallStrainCreepPlasticity {
	E, ν := 200000.0, 0.3
	elastic := &IsotropicLinearElastic{
		K: ConstantInterpolate{V: Calc_K_from_Enu(E, ν)},
		G: ConstantInterpolate{V: Calc_G_from_Enu(E, ν)},
	}
	surf := &J2IsoKin{Sy0: ConstantInterpolate{V: sy0}}
	flow := &AssociativeFlowRule{
		Surface: surf,
		Hardening: &CombinedHardening{
			Iso: &IsotropicHardening{H: H},
			Kin: &KinematicHardening{C: 0},
		},
	}
	plastic := &SmallStrainRateIndependentPlasticity{Elastic: elastic, Flow: flow}
	creep := &PowerLawCreep{A: ConstantInterpolate{V: 1e-14}, N: ConstantInterpolate{V: 3.0}}
	return &SmallStrainCreepPlasticity{Plastic: plastic, Creep: creep}
}

func TestSmallStrainCreepPlasticityAccumulatesCreepStrain(tst *testing.T) {
	mdl := newCreepPlasticityModel(250.0, 5000.0)
	s := NewMState(mdl.Nhist())
	mdl.Init(s, 900.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{1e-4, -5e-5, -5e-5, 0, 0, 0}
	if err := mdl.Update(A, s, Δε, 1000.0, 900.0); err != nil {
		chk.Panic("update failed: %v", err)
	}

	var sum float64
	for i := 0; i < 6; i++ {
		sum += s.EpsC[i] * s.EpsC[i]
	}
	if sum <= 0 {
		chk.Panic("creep strain did not accumulate over a long time step")
	}

	// the stored total strain must equal the prescribed increment exactly,
	// since Eps is advanced by the full Δε regardless of the plastic/creep
	// split performed internally
	if diff := s.Eps[0] - Δε[0]; diff > 1e-10 || diff < -1e-10 {
		chk.Panic("total strain bookkeeping mismatch: got %v, want %v", s.Eps[0], Δε[0])
	}
}

func TestSmallStrainCreepPlasticityDefaultsApplied(tst *testing.T) {
	mdl := newCreepPlasticityModel(250.0, 5000.0)
	s := NewMState(mdl.Nhist())
	mdl.Init(s, 900.0)
	if mdl.Sf != 1.0 {
		chk.Panic("default creep strain-rate scale factor must be 1.0, got %v", mdl.Sf)
	}
	if mdl.MaxOuterIt != 30 {
		chk.Panic("default outer iteration cap must be 30, got %v", mdl.MaxOuterIt)
	}
	if s.EpsC == nil {
		chk.Panic("Init must allocate the creep strain slot")
	}
}

func TestSmallStrainCreepPlasticityTangentFD(tst *testing.T) {
	newModel := func() *SmallStrainCreepPlasticity { return newCreepPlasticityModel(250.0, 5000.0) }
	baseState := func(mdl *SmallStrainCreepPlasticity) *MState {
		s := NewMState(mdl.Nhist())
		mdl.Init(s, 900.0)
		return s
	}

	mdl := newModel()
	s0 := baseState(mdl)
	A := la.MatAlloc(6, 6)
	Δε := []float64{1e-4, -5e-5, -5e-5, 2e-5, 0, 0}
	Δt := 500.0
	if err := mdl.Update(A, s0, Δε, Δt, 900.0); err != nil {
		chk.Panic("update failed: %v", err)
	}

	h := 1e-8
	for j := 0; j < 6; j++ {
		mdlP, mdlM := newModel(), newModel()
		sP, sM := baseState(mdlP), baseState(mdlM)
		ΔεP := append([]float64{}, Δε...)
		ΔεM := append([]float64{}, Δε...)
		ΔεP[j] += h
		ΔεM[j] -= h
		Atmp := la.MatAlloc(6, 6)
		if err := mdlP.Update(Atmp, sP, ΔεP, Δt, 900.0); err != nil {
			chk.Panic("perturbed update (+) failed: %v", err)
		}
		if err := mdlM.Update(Atmp, sM, ΔεM, Δt, 900.0); err != nil {
			chk.Panic("perturbed update (-) failed: %v", err)
		}
		for i := 0; i < 6; i++ {
			fd := (sP.Sig[i] - sM.Sig[i]) / (2 * h)
			if diff := fd - A[i][j]; diff > 1e-1*math.Max(1.0, math.Abs(fd)) || diff < -1e-1*math.Max(1.0, math.Abs(fd)) {
				chk.Panic("combined tangent column %d row %d mismatch: analytic=%v fd=%v", j, i, A[i][j], fd)
			}
		}
	}
}

func TestSmallStrainCreepPlasticityZeroTimeStepNoCreep(tst *testing.T) {
	mdl := newCreepPlasticityModel(250.0, 5000.0)
	s := NewMState(mdl.Nhist())
	mdl.Init(s, 900.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{1e-4, -5e-5, -5e-5, 0, 0, 0}
	if err := mdl.Update(A, s, Δε, 0.0, 900.0); err != nil {
		chk.Panic("update failed: %v", err)
	}
	for i := 0; i < 6; i++ {
		if s.EpsC[i] != 0 {
			chk.Panic("a zero time step must produce no creep strain, EpsC[%d]=%v", i, s.EpsC[i])
		}
	}
}
