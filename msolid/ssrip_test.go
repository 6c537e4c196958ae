// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

func newJ2IsoHardeningModel(sy0, H float64) *SmallStrainRateIndependentPlasticity {
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
	return &SmallStrainRateIndependentPlasticity{Elastic: elastic, Flow: flow}
}

func TestSSRIPLinearIsotropicHardening(tst *testing.T) {
	mdl := newJ2IsoHardeningModel(250.0, 5000.0)
	s := NewMState(mdl.Nhist())
	mdl.Init(s, 293.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{2e-3, -1e-3, -1e-3, 0, 0, 0}
	if err := mdl.Update(A, s, Δε, 1.0, 293.0); err != nil {
		chk.Panic("update failed: %v", err)
	}
	if !s.Loading {
		chk.Panic("expected plastic loading on a large axial increment")
	}
	f := mdl.Flow.F(s.Sig, s.Alp, 293.0)
	if f > 1e-4 || f < -1e-4 {
		chk.Panic("converged state must sit on the yield surface, f=%v", f)
	}
	if s.Dgam <= 0 {
		chk.Panic("plastic multiplier must be strictly positive, got %v", s.Dgam)
	}
	// hardening must have raised the isotropic history beyond zero
	if s.Alp[0] <= 0 {
		chk.Panic("isotropic history did not accumulate: alp0=%v", s.Alp[0])
	}
}

func TestSSRIPElasticUnloadingStaysKT(tst *testing.T) {
	mdl := newJ2IsoHardeningModel(250.0, 5000.0)
	s := NewMState(mdl.Nhist())
	mdl.Init(s, 293.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{2e-3, -1e-3, -1e-3, 0, 0, 0}
	if err := mdl.Update(A, s, Δε, 1.0, 293.0); err != nil {
		chk.Panic("loading step failed: %v", err)
	}
	α0 := s.Alp[0]

	// reverse the increment: elastic unload, no further hardening, no
	// Kuhn-Tucker violation should be reported
	Δε2 := []float64{-1e-4, 5e-5, 5e-5, 0, 0, 0}
	if err := mdl.Update(A, s, Δε2, 1.0, 293.0); err != nil {
		chk.Panic("unloading step failed: %v", err)
	}
	if s.Loading {
		chk.Panic("a small reversal should unload elastically")
	}
	if diff := s.Alp[0] - α0; diff > 1e-12 || diff < -1e-12 {
		chk.Panic("isotropic history must not change on elastic unloading")
	}
}
