// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/jeffbaylor/neml/msolid/neio"
)

// thresholdModel is a minimal Model whose Update fails with a retryable
// status whenever the strain increment it is given is too large,
// converging trivially (identity tangent, σ += Δε) otherwise. It exists
// only to drive AdaptiveSubstepper's bisection without depending on any
// real integrator's internal convergence behavior.
type thresholdModel struct {
	MaxNorm float64
	Calls   int
}

func (o *thresholdModel) Nhist() int        { return 0 }
func (o *thresholdModel) Init(s *MState, T0 float64) {}
func (o *thresholdModel) ElasticTangent(A [][]float64, T float64) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if i == j {
				A[i][j] = 1
			} else {
				A[i][j] = 0
			}
		}
	}
}
func (o *thresholdModel) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	o.Calls++
	var norm float64
	for _, v := range Δε {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > o.MaxNorm {
		return newStatusErrorf(MAX_ITERATIONS, "strain increment too large: %v > %v", norm, o.MaxNorm)
	}
	for i := 0; i < 6; i++ {
		s.Sig[i] += Δε[i]
		s.Eps[i] += Δε[i]
	}
	o.ElasticTangent(A, T)
	return nil
}

func TestAdaptiveSubstepperConvergesDirectlyWhenInnerModelSucceeds(tst *testing.T) {
	inner := &thresholdModel{MaxNorm: 1.0}
	sub := &AdaptiveSubstepper{Model: inner}
	s := NewMState(sub.Nhist())
	sub.Init(s, 293.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{1e-3, 0, 0, 0, 0, 0}
	if err := sub.Update(A, s, Δε, 1.0, 293.0); err != nil {
		chk.Panic("update failed: %v", err)
	}
	if s.NSubstep != 1 {
		chk.Panic("a directly-converging step must report exactly one substep, got %d", s.NSubstep)
	}
	if inner.Calls != 1 {
		chk.Panic("the inner model should only be called once, got %d calls", inner.Calls)
	}
}

func TestAdaptiveSubstepperBisectsOnFailure(tst *testing.T) {
	inner := &thresholdModel{MaxNorm: 0.6}
	sub := &AdaptiveSubstepper{Model: inner}
	s := NewMState(sub.Nhist())
	sub.Init(s, 293.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{1.0, 0, 0, 0, 0, 0}
	if err := sub.Update(A, s, Δε, 1.0, 293.0); err != nil {
		chk.Panic("update failed: %v", err)
	}
	// the full step (norm 1.0) exceeds MaxNorm but each half (norm 0.5) does not,
	// so exactly one level of bisection, two substeps, is expected
	if inner.Calls != 3 {
		chk.Panic("expected 1 failed full-step call plus 2 successful half-step calls, got %d", inner.Calls)
	}
	if diff := s.Sig[0] - 1.0; diff > 1e-12 || diff < -1e-12 {
		chk.Panic("bisected substeps must still sum to the full strain increment, got sig=%v", s.Sig[0])
	}
	// the identity tangent composes to the identity regardless of depth
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if diff := A[i][j] - want; diff > 1e-10 || diff < -1e-10 {
				chk.Panic("composed tangent mismatch at [%d][%d]: got %v, want %v", i, j, A[i][j], want)
			}
		}
	}
}

func TestAdaptiveSubstepperGivesUpBeyondMaxDepth(tst *testing.T) {
	inner := &thresholdModel{MaxNorm: 1e-6}
	sub := &AdaptiveSubstepper{Model: inner, MaxDepth: 2}
	s := NewMState(sub.Nhist())
	sub.Init(s, 293.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{1.0, 0, 0, 0, 0, 0}
	err := sub.Update(A, s, Δε, 1.0, 293.0)
	if err == nil {
		chk.Panic("expected failure once bisection exceeds MaxDepth")
	}
	if StatusOf(err) != MAX_ITERATIONS {
		chk.Panic("expected a MAX_ITERATIONS status, got %v", err)
	}
}

// ktViolatingModel always reports KT_VIOLATION, which §7 marks
// unrecoverable: AdaptiveSubstepper must propagate it immediately rather
// than burning bisection depth retrying a non-retryable failure.
type ktViolatingModel struct {
	Calls int
}

func (o *ktViolatingModel) Nhist() int                             { return 0 }
func (o *ktViolatingModel) Init(s *MState, T0 float64)              {}
func (o *ktViolatingModel) ElasticTangent(A [][]float64, T float64) {}
func (o *ktViolatingModel) Update(A [][]float64, s *MState, Δε []float64, Δt, T float64) error {
	o.Calls++
	return newStatusErrorf(KT_VIOLATION, "negative plastic multiplier")
}

func TestAdaptiveSubstepperDoesNotRetryKTViolation(tst *testing.T) {
	inner := &ktViolatingModel{}
	sub := &AdaptiveSubstepper{Model: inner}
	s := NewMState(sub.Nhist())
	sub.Init(s, 293.0)

	A := la.MatAlloc(6, 6)
	Δε := []float64{1e-3, 0, 0, 0, 0, 0}
	err := sub.Update(A, s, Δε, 1.0, 293.0)
	if err == nil {
		chk.Panic("expected KT_VIOLATION to propagate")
	}
	if StatusOf(err) != KT_VIOLATION {
		chk.Panic("expected a KT_VIOLATION status, got %v", err)
	}
	if inner.Calls != 1 {
		chk.Panic("KT_VIOLATION is not retryable, expected exactly one call, got %d", inner.Calls)
	}
}

func TestAdaptiveSubstepperDefaultMaxDepth(tst *testing.T) {
	inner := &thresholdModel{MaxNorm: 1.0}
	sub := &AdaptiveSubstepper{Model: inner}
	s := NewMState(sub.Nhist())
	sub.Init(s, 293.0)
	if sub.MaxDepth != 8 {
		chk.Panic("default bisection depth must be 8, got %d", sub.MaxDepth)
	}
	_ = neio.Logger{}
}
