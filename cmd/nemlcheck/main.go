// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nemlcheck drives a single material point through a prescribed
// uniaxial strain path and prints the resulting stress history, a
// quick sanity check on a model's construction without wiring it into
// a full finite-element input deck.
package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/jeffbaylor/neml/msolid"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	E := io.ArgToFloat(0, 200000.0)
	ν := io.ArgToFloat(1, 0.3)
	sy0 := io.ArgToFloat(2, 250.0)
	H := io.ArgToFloat(3, 1000.0)
	εmax := io.ArgToFloat(4, 0.01)
	nsteps := io.ArgToInt(5, 20)
	verbose := io.ArgToBool(6, true)

	if verbose {
		io.PfWhite("\nnemlcheck -- single material point driver\n\n")
		io.Pf("%v\n", io.ArgsTable(
			"Young's modulus", "E", E,
			"Poisson's ratio", "nu", ν,
			"initial yield stress", "sy0", sy0,
			"linear hardening modulus", "H", H,
			"target axial strain", "epsmax", εmax,
			"number of load steps", "nsteps", nsteps,
		))
	}

	elastic := &msolid.IsotropicLinearElastic{
		K: msolid.ConstantInterpolate{V: msolid.Calc_K_from_Enu(E, ν)},
		G: msolid.ConstantInterpolate{V: msolid.Calc_G_from_Enu(E, ν)},
	}

	surface := &msolid.J2IsoKin{Sy0: msolid.ConstantInterpolate{V: sy0}}
	hardening := &msolid.IsotropicHardening{H: H}
	flow := &msolid.AssociativeFlowRule{
		Surface: surface,
		Hardening: &msolid.CombinedHardening{
			Iso: hardening,
			Kin: &msolid.KinematicHardening{C: 0},
		},
	}
	model := &msolid.SmallStrainRateIndependentPlasticity{Elastic: elastic, Flow: flow}

	s := msolid.NewMState(model.Nhist())
	model.Init(s, 293.0)

	Δε := make([]float64, 6)
	Δε[0] = εmax / float64(nsteps)
	Δε[1] = -0.5 * Δε[0]
	Δε[2] = -0.5 * Δε[0]

	A := make([][]float64, 6)
	for i := range A {
		A[i] = make([]float64, 6)
	}

	if verbose {
		io.Pf("\n%8s%16s%16s\n", "step", "eps_11", "sig_11")
	}
	for i := 0; i < nsteps; i++ {
		err := model.Update(A, s, Δε, 1.0, 293.0)
		if err != nil {
			io.PfRed("step %d failed: %v\n", i, err)
			return
		}
		if verbose {
			io.Pf("%8d%16.6f%16.4f\n", i+1, s.Eps[0], s.Sig[0])
		}
	}
}
