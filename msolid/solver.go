// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"strings"

	"github.com/cpmech/gosl/num"
)

// ResidualJacobianSolver is the shared damped-Newton engine every
// implicit integrator in this package (SSPP, SSRIP, GI, and SSCP's inner
// creep solve) calls to drive a residual to zero, wrapping gosl/num.NlSolver the same
// way princstrainsup.go does for its own, narrower, principal-strains
// residual. Collecting the wiring in one place keeps the convergence
// options and the error-code translation consistent across models.
type ResidualJacobianSolver struct {
	nls     num.NlSolver
	n       int
	MaxIt   int     // maximum iterations, mirrors num.NlSolver's "maxit" option
	Atol    float64 // absolute tolerance, mirrors "atol"
	Rtol    float64 // relative tolerance, mirrors "rtol"
	useNumJ bool
}

// Init builds the solver for an n-dimensional residual ffcn with
// analytic Jacobian Jfcn. useNumJ switches to a numerical Jacobian when
// the analytic one is unavailable (GeneralFlowRule.DFlowRateDs/Da
// compositions can become unwieldy for some GFlow choices).
func (o *ResidualJacobianSolver) Init(n int, ffcn func(fx, x []float64) error, Jfcn func(J [][]float64, x []float64) error, useNumJ bool) {
	o.n = n
	o.useNumJ = useNumJ
	if o.MaxIt == 0 {
		o.MaxIt = 50
	}
	if o.Atol == 0 {
		o.Atol = 1e-10
	}
	if o.Rtol == 0 {
		o.Rtol = 1e-10
	}
	useDn := true
	opts := map[string]float64{
		"maxit": float64(o.MaxIt),
		"atol":  o.Atol,
		"rtol":  o.Rtol,
	}
	o.nls.Init(n, ffcn, nil, Jfcn, useDn, useNumJ, opts)
	o.nls.ChkConv = false
}

// Solve drives x to a root of the residual given at Init, returning a
// StatusError with MAX_ITERATIONS or LINALG_FAILURE on non-convergence
// instead of the bare error gosl/num.NlSolver reports, so callers higher
// up this package's stack can branch on Status without importing num.
// num.NlSolver has no typed error for a singular Newton-step factorization,
// so a singular/degenerate Jacobian is told apart from exhausting the
// iteration budget by its error text, the same "singular" wording the
// underlying linear solve itself reports.
func (o *ResidualJacobianSolver) Solve(x []float64) error {
	err := o.nls.Solve(x, true)
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "singular") || strings.Contains(msg, "factoriz") {
		return newStatusErrorf(LINALG_FAILURE, "%v", err)
	}
	return newStatusErrorf(MAX_ITERATIONS, "%v", err)
}

// CheckJ compares the analytic Jacobian against a numerical one at x,
// returning the worst-case relative difference; useful in tests that
// exercise the tangent without running the full toolchain's -race/-cpu
// flags this package otherwise avoids depending on.
func (o *ResidualJacobianSolver) CheckJ(x []float64, tol float64) (cnd float64, err error) {
	cnd, err = o.nls.CheckJ(x, tol, true, true)
	if err != nil {
		err = newStatusErrorf(LINALG_FAILURE, "%v", err)
	}
	return
}
