// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/tsr"
)

// KMRegimeModel dispatches between a sequence of Models by a normalized
// Kocks-Mecking thermal activation energy, switching e.g. from
// rate-independent to rate-dependent behavior as temperature and strain
// rate cross a critical value. It mirrors
// original_source/src/models.h's KMRegimeModel: Models has length N, Gs
// the N-1 cutoffs between them (ascending), and all Models must share
// history layout since KMRegimeModel blindly passes α between calls to
// whichever Model the current step's activation energy selects.
type KMRegimeModel struct {
	Elastic LinearElasticModel
	Models  []Model
	Gs      []float64 // N-1 ascending cutoffs

	Mu      Interpolate // shear modulus as a function of T, used in g(T,ε̇)
	Kboltz  float64     // Boltzmann constant, in units consistent with Mu/B
	B       float64     // Burgers vector magnitude
	Eps0Dot float64     // reference strain rate
}

// Nhist implements Model: all sub-models must agree.
func (o *KMRegimeModel) Nhist() int { return o.Models[0].Nhist() }

// Init implements Model.
func (o *KMRegimeModel) Init(s *MState, T0 float64) {
	for _, m := range o.Models {
		m.Init(s, T0)
	}
}

// activationEnergy computes the normalized Kocks-Mecking activation
// energy g = kB*T/(μ(T)*b³) * ln(ε̇0/ε̇), where ε̇ is the norm of the
// deviatoric part of this step's strain increment divided by Δt.
func (o *KMRegimeModel) activationEnergy(Δε []float64, Δt, T float64) float64 {
	if Δt <= 0 {
		return 0
	}
	var dev [6]float64
	_, _, q := tsr.M_devσ(dev[:], Δε)
	εdot := tsr.SQ2by3 * q / Δt
	if εdot < 1e-30 {
		εdot = 1e-30
	}
	mu := o.Mu.Value(T)
	return o.Kboltz * T / (mu * o.B * o.B * o.B) * math.Log(o.Eps0Dot/εdot)
}

// selectModel returns the sub-model active at activation energy g.
func (o *KMRegimeModel) selectModel(g float64) Model {
	for i, cutoff := range o.Gs {
		if g <= cutoff {
			return o.Models[i]
		}
	}
	return o.Models[len(o.Models)-1]
}

// Update implements Model.
func (o *KMRegimeModel) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	if len(o.Models) == 0 || len(o.Gs) != len(o.Models)-1 {
		return chk.Err("KM regime model: need N models and N-1 cutoffs, got %d models and %d cutoffs\n", len(o.Models), len(o.Gs))
	}
	g := o.activationEnergy(Δε, Δt, T)
	m := o.selectModel(g)
	return m.Update(A, s, Δε, Δt, T)
}

// ElasticTangent implements Model.
func (o *KMRegimeModel) ElasticTangent(A [][]float64, T float64) {
	o.Elastic.StiffnessT(A, T)
}
