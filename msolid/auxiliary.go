// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// MatchCohesionFriction computes the Drucker-Prager slope M and intercept
// qy0 matching a Mohr-Coulomb strength defined by cohesion c and friction
// angle φ (degrees), for one of three cones.
//
//	typ == 0 : compression cone (outer)
//	    == 1 : extension cone (inner)
//	    == 2 : plane-strain
func MatchCohesionFriction(c, φ float64, typ int) (M, qy0 float64, err error) {
	φr := φ * math.Pi / 180.0
	si := math.Sin(φr)
	co := math.Cos(φr)
	var ξ float64
	switch typ {
	case 0: // compression cone (outer)
		M = 6.0 * si / (3.0 - si)
		ξ = 6.0 * co / (3.0 - si)
	case 1: // extension cone (inner)
		M = 6.0 * si / (3.0 + si)
		ξ = 6.0 * co / (3.0 + si)
	case 2: // plane-strain
		t := si / co
		d := math.Sqrt(3.0 + 4.0*t*t)
		M = 3.0 * t / d
		ξ = 3.0 / d
	default:
		return 0, 0, chk.Err("typ=%d is invalid", typ)
	}
	qy0 = ξ * c
	return
}
