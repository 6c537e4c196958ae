// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

// SmallStrainElasticity is the trivial Model: σ_{n+1} = σ_n + C(T):Δε_mech,
// where Δε_mech is the strain increment minus its thermal share; no
// history, no iteration. The inelastic models in this package compute
// their own elastic predictor and do not call it.
type SmallStrainElasticity struct {
	Elastic LinearElasticModel
}

// Nhist implements Model: a purely elastic model carries no history.
func (o *SmallStrainElasticity) Nhist() int { return 0 }

// Init implements Model.
func (o *SmallStrainElasticity) Init(s *MState, T0 float64) {
	for i := 0; i < 6; i++ {
		s.Sig[i], s.Eps[i], s.EpsP[i] = 0, 0, 0
	}
	s.T = T0
	s.U, s.P = 0, 0
	s.Dgam = 0
	s.Loading = false
}

// Update implements Model.
func (o *SmallStrainElasticity) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	σn := append([]float64{}, s.Sig...)
	θ := ThermalStrain(o.Elastic, s.T, T)
	o.Elastic.StiffnessT(A, T)
	var Δεmech [6]float64
	for i := 0; i < 6; i++ {
		Δεmech[i] = Δε[i] - θ[i]
	}
	for i := 0; i < 6; i++ {
		var cΔε float64
		for j := 0; j < 6; j++ {
			cΔε += A[i][j] * Δεmech[j]
		}
		s.Sig[i] = σn[i] + cΔε
		s.Eps[i] += Δε[i]
	}
	s.T = T
	s.Loading = false
	var Δε0 [6]float64
	s.AccumulateEnergy(σn, Δε, Δε0[:])
	return nil
}

// ElasticTangent implements Model.
func (o *SmallStrainElasticity) ElasticTangent(A [][]float64, T float64) {
	o.Elastic.StiffnessT(A, T)
}
