// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neio carries the Verbose-gated diagnostic printing this
// package's integrators use when debugging a non-converging material
// point, following the same convention fem.FEM uses for its own
// Verbose field: nothing is printed by default, and turning Verbose on
// never changes numerical results.
package neio

import "github.com/cpmech/gosl/io"

// Logger gates gosl/io printing behind a Verbose flag so the same call
// site can be silent in production and noisy while debugging a single
// model without an if-statement at every call site.
type Logger struct {
	Verbose bool
}

// Msg prints a plain message if Verbose is set.
func (o *Logger) Msg(format string, args ...interface{}) {
	if o.Verbose {
		io.Pf(format, args...)
	}
}

// Warn prints a yellow warning message if Verbose is set.
func (o *Logger) Warn(format string, args ...interface{}) {
	if o.Verbose {
		io.Pfyel(format, args...)
	}
}

// Substep reports a bisection event: depth, the fraction of the
// original step just attempted, and whether it converged.
func (o *Logger) Substep(depth int, frac float64, ok bool) {
	if !o.Verbose {
		return
	}
	if ok {
		io.Pfgreen("substep depth=%d frac=%v converged\n", depth, frac)
		return
	}
	io.Pfred("substep depth=%d frac=%v failed\n", depth, frac)
}
