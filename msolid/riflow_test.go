// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func newAFKinematicFlow() (*AssociativeFlowRule, *J2IsoKin) {
	surf := &J2IsoKin{Sy0: ConstantInterpolate{V: 100.0}}
	flow := &AssociativeFlowRule{
		Surface: surf,
		Hardening: &CombinedHardening{
			Iso: &IsotropicHardening{H: 0},
			Kin: &KinematicHardening{C: 10000.0, Gamma: ConstantInterpolate{V: 50.0}},
		},
	}
	return flow, surf
}

func TestAssociativeFlowRuleHSubtractsRecoveryLoss(tst *testing.T) {
	flow, _ := newAFKinematicFlow()
	σ := []float64{150.0, -75.0, -75.0, 0, 0, 0}
	α := make([]float64, 7)
	α[1] = 0.01 // kinematic history, first backstress component

	var hWithRecovery [7]float64
	flow.H(hWithRecovery[:], σ, α, 300.0)

	noRecovery := &AssociativeFlowRule{
		Surface: flow.Surface,
		Hardening: &CombinedHardening{
			Iso: &IsotropicHardening{H: 0},
			Kin: &KinematicHardening{C: 10000.0}, // Gamma nil: no recovery
		},
	}
	var hNoRecovery [7]float64
	noRecovery.H(hNoRecovery[:], σ, α, 300.0)

	// the isotropic slot carries no recovery mechanism either way
	if diff := hWithRecovery[0] - hNoRecovery[0]; diff > 1e-12 || diff < -1e-12 {
		chk.Panic("isotropic slot must be unaffected by kinematic recovery, got %v vs %v", hWithRecovery[0], hNoRecovery[0])
	}
	// the kinematic slots must differ by exactly γ*q=50*C*α
	q := 10000.0 * α[1]
	for i := 1; i < 7; i++ {
		want := hNoRecovery[i]
		if i == 1 {
			want -= 50.0 * q
		}
		if diff := hWithRecovery[i] - want; diff > 1e-9 || diff < -1e-9 {
			chk.Panic("recovery loss mismatch at history %d: got %v, want %v", i, hWithRecovery[i], want)
		}
	}
}

func TestAssociativeFlowRuleDhDaMatchesFD(tst *testing.T) {
	flow, _ := newAFKinematicFlow()
	σ := []float64{150.0, -75.0, -75.0, 0, 0, 0}
	α := make([]float64, 7)
	α[1], α[2] = 0.01, -0.005

	na := flow.Nhist()
	dhda := make([][]float64, na)
	for i := range dhda {
		dhda[i] = make([]float64, na)
	}
	flow.DhDa(dhda, σ, α, 300.0)

	eps := 1e-6
	for j := 0; j < na; j++ {
		αp := append([]float64{}, α...)
		αm := append([]float64{}, α...)
		αp[j] += eps
		αm[j] -= eps
		hp := make([]float64, na)
		hm := make([]float64, na)
		flow.H(hp, σ, αp, 300.0)
		flow.H(hm, σ, αm, 300.0)
		for i := 0; i < na; i++ {
			fd := (hp[i] - hm[i]) / (2 * eps)
			if diff := fd - dhda[i][j]; math.Abs(diff) > 1e-3*math.Max(1.0, math.Abs(fd)) {
				chk.Panic("DhDa mismatch at (%d,%d): analytic=%v fd=%v", i, j, dhda[i][j], fd)
			}
		}
	}
}
