// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/la"

	"github.com/jeffbaylor/neml/msolid/neio"
)

// AdaptiveSubstepper wraps any Model with recursive bisection: if a call
// to the inner Model's Update fails to converge (MAX_ITERATIONS or
// LINALG_FAILURE), the strain increment is halved and applied as two
// substeps, recursing until the inner model converges or MaxDepth is
// exceeded. The composed tangent is accumulated by forward composition,
// A_total = A_last · A_(last-1) · ... · A_1, the correct chain rule for
// dσ_total/dε_total when each substep's tangent is dσ_k/dε_k evaluated
// at that substep's own strain increment (Open Question, see DESIGN.md).
type AdaptiveSubstepper struct {
	Model Model
	Log   neio.Logger

	MaxDepth int // maximum bisection depth, default 8 (up to 2^8 substeps)
}

// Nhist implements Model.
func (o *AdaptiveSubstepper) Nhist() int { return o.Model.Nhist() }

// Init implements Model.
func (o *AdaptiveSubstepper) Init(s *MState, T0 float64) {
	o.Model.Init(s, T0)
	if o.MaxDepth == 0 {
		o.MaxDepth = 8
	}
}

// Update implements Model.
func (o *AdaptiveSubstepper) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	s.NSubstep = 0
	return o.substep(A, s, Δε, Δt, T, 0)
}

func (o *AdaptiveSubstepper) substep(A [][]float64, s *MState, Δε []float64, Δt, T float64, depth int) error {
	err := o.Model.Update(A, s, Δε, Δt, T)
	o.Log.Substep(depth, 1.0, err == nil)
	if err == nil {
		s.NSubstep++
		return nil
	}
	switch StatusOf(err) {
	case MAX_ITERATIONS, LINALG_FAILURE:
		// retryable: fall through to bisection
	default:
		return err
	}
	if depth >= o.MaxDepth {
		o.Log.Warn("substep: max depth %d reached, giving up\n", o.MaxDepth)
		return err
	}

	half := make([]float64, len(Δε))
	for i := range Δε {
		half[i] = Δε[i] / 2.0
	}
	halfΔt := Δt / 2.0

	A1 := la.MatAlloc(6, 6)
	if err := o.substep(A1, s, half, halfΔt, T, depth+1); err != nil {
		return err
	}
	A2 := la.MatAlloc(6, 6)
	if err := o.substep(A2, s, half, halfΔt, T, depth+1); err != nil {
		return err
	}

	// A_total = A2 * A1 (A1 applied first, A2 applied to its result)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			var sum float64
			for k := 0; k < 6; k++ {
				sum += A2[i][k] * A1[k][j]
			}
			A[i][j] = sum
		}
	}
	return nil
}

// ElasticTangent implements Model.
func (o *AdaptiveSubstepper) ElasticTangent(A [][]float64, T float64) {
	o.Model.ElasticTangent(A, T)
}
