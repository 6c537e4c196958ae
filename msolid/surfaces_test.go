// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// finite-difference check of DfDs against F, shared by both surfaces below.
func checkDfDsFD(tst *testing.T, surf YieldSurface, σ, q []float64, T float64) {
	var ana [6]float64
	surf.DfDs(ana[:], σ, q, T)
	h := 1e-6
	for i := 0; i < 6; i++ {
		σp := append([]float64{}, σ...)
		σm := append([]float64{}, σ...)
		σp[i] += h
		σm[i] -= h
		fd := (surf.F(σp, q, T) - surf.F(σm, q, T)) / (2 * h)
		if diff := fd - ana[i]; diff > 1e-3 || diff < -1e-3 {
			chk.Panic("DfDs[%d] mismatch: analytic=%v fd=%v", i, ana[i], fd)
		}
	}
}

func TestJ2IsoKinConsistency(tst *testing.T) {
	surf := &J2IsoKin{Sy0: ConstantInterpolate{V: 100.0}}
	σ := []float64{150, -50, -100, 30, 0, 0}
	q := make([]float64, surf.Nhist())
	checkDfDsFD(tst, surf, σ, q, 293.0)

	// pure hydrostatic stress must be inside the surface (f<0) whenever
	// the initial yield stress is positive
	σhydro := []float64{10, 10, 10, 0, 0, 0}
	if f := surf.F(σhydro, q, 293.0); f >= 0 {
		chk.Panic("hydrostatic stress should not yield a J2 surface, f=%v", f)
	}
}

func TestDruckerPragerSurfaceConsistency(tst *testing.T) {
	surf := &DruckerPragerSurface{
		M:   ConstantInterpolate{V: 1.2},
		Sy0: ConstantInterpolate{V: 50.0},
	}
	σ := []float64{80, -20, -40, 15, 5, 0}
	q := make([]float64, surf.Nhist())
	checkDfDsFD(tst, surf, σ, q, 293.0)
}

func TestNewDruckerPragerSurfaceFromCohesionFriction(tst *testing.T) {
	surf, err := NewDruckerPragerSurfaceFromCohesionFriction(30.0, 25.0, 0)
	if err != nil {
		chk.Panic("construction failed: %v", err)
	}
	if surf.M.Value(293.0) <= 0 {
		chk.Panic("expected a positive cone slope, got %v", surf.M.Value(293.0))
	}
	if surf.Sy0.Value(293.0) <= 0 {
		chk.Panic("expected a positive cohesive intercept, got %v", surf.Sy0.Value(293.0))
	}
	// a pure hydrostatic-compression stress state must stay inside a cone
	// fit to a nonzero cohesion and friction angle
	σhydro := []float64{-10, -10, -10, 0, 0, 0}
	q := make([]float64, surf.Nhist())
	if f := surf.F(σhydro, q, 293.0); f >= 0 {
		chk.Panic("hydrostatic compression should not yield this cone, f=%v", f)
	}
	if _, _, err := MatchCohesionFriction(30.0, 25.0, 7); err == nil {
		chk.Panic("expected an error for an invalid cone type")
	}
}

func TestAsIsotropicMatchesZeroBackstress(tst *testing.T) {
	full := &J2IsoKin{Sy0: ConstantInterpolate{V: 100.0}}
	iso := AsIsotropic(full)
	if iso.Nhist() != 1 {
		chk.Panic("AsIsotropic must present Nhist=1, got %d", iso.Nhist())
	}
	σ := []float64{150, -50, -100, 30, 0, 0}
	qFull := make([]float64, 7)
	qFull[0] = 20.0
	qIso := []float64{20.0}
	if diff := full.F(σ, qFull, 293.0) - iso.F(σ, qIso, 293.0); diff > 1e-12 || diff < -1e-12 {
		chk.Panic("AsIsotropic.F must match the wrapped surface at zero backstress")
	}
	checkDfDsFD(tst, iso, σ, qIso, 293.0)
}

func TestJ2IsoKinHessianSymmetric(tst *testing.T) {
	surf := &J2IsoKin{Sy0: ConstantInterpolate{V: 100.0}}
	σ := []float64{150, -50, -100, 30, 0, 0}
	q := make([]float64, surf.Nhist())
	H := make([][]float64, 6)
	for i := range H {
		H[i] = make([]float64, 6)
	}
	surf.DfDsDs(H, σ, q, 293.0)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if diff := H[i][j] - H[j][i]; diff > 1e-10 || diff < -1e-10 {
				chk.Panic("DfDsDs not symmetric at (%d,%d): %v vs %v", i, j, H[i][j], H[j][i])
			}
		}
	}
}
