// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"math"

	"github.com/cpmech/gosl/tsr"
)

// YieldSurface is a scalar f(σ,q,T) together with its first and second
// derivatives in the stress σ (6) and the stress-like internal variables q
// (Nhist). The elastic region is f<0; flow occurs on f=0.
type YieldSurface interface {
	Nhist() int
	F(σ, q []float64, T float64) float64
	DfDs(df, σ, q []float64, T float64)
	DfDq(df, σ, q []float64, T float64)
	DfDsDs(ddf [][]float64, σ, q []float64, T float64)
	DfDqDq(ddf [][]float64, σ, q []float64, T float64)
	DfDsDq(ddf [][]float64, σ, q []float64, T float64)
	DfDqDs(ddf [][]float64, σ, q []float64, T float64)
}

// j2Hessian fills H (6x6) with d²/dσdσ of sqrt(3/2 s:s) given s=dev, its
// effective stress qeff=sqrt(3/2 s:s). Shared by J2IsoKin and
// DruckerPragerSurface, whose only difference is the pressure term (which
// is linear in σ and so contributes nothing to the Hessian).
func j2Hessian(H [][]float64, s []float64, qeff float64) {
	if qeff < 1e-12 {
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				H[i][j] = 0
			}
		}
		return
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			H[i][j] = 1.5*tsr.Psd[i][j]/qeff - 2.25*s[i]*s[j]/(qeff*qeff*qeff)
		}
	}
}

// J2IsoKin is a combined isotropic/kinematic von Mises surface.
//   f(σ,q,T) = sqrt(3/2 dev(σ+X):dev(σ+X)) - σy0(T) - Q
// History q = [Q (isotropic stress), X (backstress, 6)], Nhist=7, grounded
// on original_source/src/surfaces.h's IsoKinJ2.
type J2IsoKin struct {
	Sy0 Interpolate // initial yield stress as a function of temperature
}

// Nhist returns 7: one isotropic scalar plus a 6-component backstress.
func (o *J2IsoKin) Nhist() int { return 7 }

func (o *J2IsoKin) shiftedDev(s, σ, q []float64) (qeff float64) {
	for i := 0; i < 6; i++ {
		s[i] = σ[i] + q[1+i]
	}
	_, _, _ = tsr.M_devσ(s, s) // s := dev(s) in place
	var ss float64
	for i := 0; i < 6; i++ {
		ss += s[i] * s[i]
	}
	return math.Sqrt(1.5 * ss)
}

// F implements YieldSurface.
func (o *J2IsoKin) F(σ, q []float64, T float64) float64 {
	var s [6]float64
	qeff := o.shiftedDev(s[:], σ, q)
	return qeff - o.Sy0.Value(T) - q[0]
}

// DfDs implements YieldSurface.
func (o *J2IsoKin) DfDs(df, σ, q []float64, T float64) {
	var s [6]float64
	qeff := o.shiftedDev(s[:], σ, q)
	if qeff < 1e-12 {
		for i := 0; i < 6; i++ {
			df[i] = 0
		}
		return
	}
	for i := 0; i < 6; i++ {
		df[i] = 1.5 * s[i] / qeff
	}
}

// DfDq implements YieldSurface. df/dQ = -1; df/dX = df/dσ (same additive shift).
func (o *J2IsoKin) DfDq(df, σ, q []float64, T float64) {
	df[0] = -1.0
	o.DfDs(df[1:7], σ, q, T)
}

// DfDsDs implements YieldSurface.
func (o *J2IsoKin) DfDsDs(ddf [][]float64, σ, q []float64, T float64) {
	var s [6]float64
	qeff := o.shiftedDev(s[:], σ, q)
	j2Hessian(ddf, s[:], qeff)
}

// DfDqDq implements YieldSurface.
func (o *J2IsoKin) DfDqDq(ddf [][]float64, σ, q []float64, T float64) {
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			ddf[i][j] = 0
		}
	}
	var s [6]float64
	qeff := o.shiftedDev(s[:], σ, q)
	var hXX [6][6]float64
	hptr := make([][]float64, 6)
	for i := range hptr {
		hptr[i] = hXX[i][:]
	}
	j2Hessian(hptr, s[:], qeff)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			ddf[1+i][1+j] = hptr[i][j]
		}
	}
}

// DfDsDq implements YieldSurface. Column 0 (wrt Q) is zero; columns 1..6
// (wrt X) reproduce the σ-σ Hessian since X enters f through the same
// additive shift as σ.
func (o *J2IsoKin) DfDsDq(ddf [][]float64, σ, q []float64, T float64) {
	var s [6]float64
	qeff := o.shiftedDev(s[:], σ, q)
	var hXX [6][6]float64
	hptr := make([][]float64, 6)
	for i := range hptr {
		hptr[i] = hXX[i][:]
	}
	j2Hessian(hptr, s[:], qeff)
	for i := 0; i < 6; i++ {
		ddf[i][0] = 0
		for j := 0; j < 6; j++ {
			ddf[i][1+j] = hptr[i][j]
		}
	}
}

// DfDqDs implements YieldSurface, the transpose of DfDsDq.
func (o *J2IsoKin) DfDqDs(ddf [][]float64, σ, q []float64, T float64) {
	var tmp [6][7]float64
	tptr := make([][]float64, 6)
	for i := range tptr {
		tptr[i] = tmp[i][:]
	}
	o.DfDsDq(tptr, σ, q, T)
	for i := 0; i < 7; i++ {
		for j := 0; j < 6; j++ {
			ddf[i][j] = tptr[j][i]
		}
	}
}

// asIsotropicSurface wraps a J2IsoKin to present Nhist=1 instead of 7,
// fixing the backstress at zero so a caller driving pure isotropic
// hardening never has to allocate or update the unused X(6) history slots.
// Grounded on surfaces.h's templated IsoFunction<BT> wrapper.
type asIsotropicSurface struct {
	Inner *J2IsoKin
}

// AsIsotropic reduces a J2IsoKin's combined isotropic/kinematic surface to
// its pure isotropic-hardening form.
func AsIsotropic(inner *J2IsoKin) YieldSurface { return &asIsotropicSurface{Inner: inner} }

func (o *asIsotropicSurface) Nhist() int { return 1 }

func (o *asIsotropicSurface) pad(q []float64) []float64 {
	full := make([]float64, 7)
	full[0] = q[0]
	return full
}

func (o *asIsotropicSurface) F(σ, q []float64, T float64) float64 {
	return o.Inner.F(σ, o.pad(q), T)
}

func (o *asIsotropicSurface) DfDs(df, σ, q []float64, T float64) {
	o.Inner.DfDs(df, σ, o.pad(q), T)
}

func (o *asIsotropicSurface) DfDq(df, σ, q []float64, T float64) {
	var full [7]float64
	o.Inner.DfDq(full[:], σ, o.pad(q), T)
	df[0] = full[0]
}

func (o *asIsotropicSurface) DfDsDs(ddf [][]float64, σ, q []float64, T float64) {
	o.Inner.DfDsDs(ddf, σ, o.pad(q), T)
}

func (o *asIsotropicSurface) DfDqDq(ddf [][]float64, σ, q []float64, T float64) {
	var full [7][7]float64
	fptr := make([][]float64, 7)
	for i := range fptr {
		fptr[i] = full[i][:]
	}
	o.Inner.DfDqDq(fptr, σ, o.pad(q), T)
	ddf[0][0] = fptr[0][0]
}

func (o *asIsotropicSurface) DfDsDq(ddf [][]float64, σ, q []float64, T float64) {
	var full [6][7]float64
	fptr := make([][]float64, 6)
	for i := range fptr {
		fptr[i] = full[i][:]
	}
	o.Inner.DfDsDq(fptr, σ, o.pad(q), T)
	for i := 0; i < 6; i++ {
		ddf[i][0] = fptr[i][0]
	}
}

func (o *asIsotropicSurface) DfDqDs(ddf [][]float64, σ, q []float64, T float64) {
	var full [7][6]float64
	fptr := make([][]float64, 7)
	for i := range fptr {
		fptr[i] = full[i][:]
	}
	o.Inner.DfDqDs(fptr, σ, o.pad(q), T)
	for j := 0; j < 6; j++ {
		ddf[0][j] = fptr[0][j]
	}
}

// DruckerPragerSurface is a pressure-sensitive cone, generalizing the
// closest-point-projection math of dp.go's DruckerPrager model from a
// fixed linear-hardening law to an arbitrary stress-like q[0] supplied by
// a HardeningRule.
//   f(σ,q,T) = sqrt(3/2 dev(σ):dev(σ)) - M(T)*p(σ) - σy0(T) - q[0]
type DruckerPragerSurface struct {
	M   Interpolate // slope of the cone as a function of temperature
	Sy0 Interpolate // cohesive intercept as a function of temperature
}

// NewDruckerPragerSurfaceFromCohesionFriction builds a DruckerPragerSurface
// whose M and Sy0 match a Mohr-Coulomb material with cohesion c and
// friction angle φ (degrees) on the given cone (see MatchCohesionFriction),
// for a host that characterizes strength the geotechnical way rather than
// by specifying M and Sy0 directly.
func NewDruckerPragerSurfaceFromCohesionFriction(c, φ float64, typ int) (*DruckerPragerSurface, error) {
	M, qy0, err := MatchCohesionFriction(c, φ, typ)
	if err != nil {
		return nil, err
	}
	return &DruckerPragerSurface{M: ConstantInterpolate{V: M}, Sy0: ConstantInterpolate{V: qy0}}, nil
}

// Nhist returns 1: a single isotropic stress-like variable.
func (o *DruckerPragerSurface) Nhist() int { return 1 }

func (o *DruckerPragerSurface) devAndP(s []float64, σ []float64) (qeff, p float64) {
	_, p, qeff = tsr.M_devσ(s, σ)
	return
}

// F implements YieldSurface.
func (o *DruckerPragerSurface) F(σ, q []float64, T float64) float64 {
	var s [6]float64
	qeff, p := o.devAndP(s[:], σ)
	return qeff - o.M.Value(T)*p - o.Sy0.Value(T) - q[0]
}

// DfDs implements YieldSurface.
func (o *DruckerPragerSurface) DfDs(df, σ, q []float64, T float64) {
	var s [6]float64
	qeff, _ := o.devAndP(s[:], σ)
	M := o.M.Value(T)
	for i := 0; i < 6; i++ {
		var nq float64
		if qeff > 1e-12 {
			nq = 1.5 * s[i] / qeff
		}
		df[i] = nq + M*tsr.Im[i]/3.0
	}
}

// DfDq implements YieldSurface.
func (o *DruckerPragerSurface) DfDq(df, σ, q []float64, T float64) { df[0] = -1.0 }

// DfDsDs implements YieldSurface. The pressure term is linear in σ, so only
// the deviatoric part contributes curvature.
func (o *DruckerPragerSurface) DfDsDs(ddf [][]float64, σ, q []float64, T float64) {
	var s [6]float64
	qeff, _ := o.devAndP(s[:], σ)
	j2Hessian(ddf, s[:], qeff)
}

// DfDqDq implements YieldSurface.
func (o *DruckerPragerSurface) DfDqDq(ddf [][]float64, σ, q []float64, T float64) { ddf[0][0] = 0 }

// DfDsDq implements YieldSurface: q[0] enters f additively, so the cross term is zero.
func (o *DruckerPragerSurface) DfDsDq(ddf [][]float64, σ, q []float64, T float64) {
	for i := 0; i < 6; i++ {
		ddf[i][0] = 0
	}
}

// DfDqDs implements YieldSurface.
func (o *DruckerPragerSurface) DfDqDs(ddf [][]float64, σ, q []float64, T float64) {
	for i := 0; i < 6; i++ {
		ddf[0][i] = 0
	}
}
