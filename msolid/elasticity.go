// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msolid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/tsr"
)

// LinearElasticModel produces the 6x6 stiffness and compliance matrices in
// Mandel/Voigt small-strain convention, plus the effective bulk and shear
// moduli the rest of the package (yield surfaces, flow rules) needs.
type LinearElasticModel interface {
	StiffnessT(D [][]float64, T float64)  // D := C(T), 6x6
	ComplianceT(S [][]float64, T float64) // S := C(T)^-1, 6x6
	Bulk(T float64) float64
	Shear(T float64) float64

	// ThermalExpansion returns the isotropic linear thermal-expansion
	// coefficient α(T). An integrator strips α(T)*(T-T_n)*Im off the raw
	// strain increment before running its return mapping on the
	// mechanical part, then uses the same C(T) for the tangent (§4.1).
	// A model with no thermal strain simply returns 0.
	ThermalExpansion(T float64) float64
}

// Calc_K_from_Enu computes the bulk modulus from Young's modulus and Poisson's ratio.
func Calc_K_from_Enu(E, ν float64) float64 { return E / (3.0 * (1.0 - 2.0*ν)) }

// Calc_G_from_Enu computes the shear modulus from Young's modulus and Poisson's ratio.
func Calc_G_from_Enu(E, ν float64) float64 { return E / (2.0 * (1.0 + ν)) }

// IsotropicLinearElastic is isotropic linear elasticity parametrized by
// temperature-dependent bulk and shear moduli. NewIsotropicLinearElastic
// accepts any two of (E, ν, G, K, λ) except the pair (λ, E) and converts
// them to constant K and G.
type IsotropicLinearElastic struct {
	K     Interpolate // bulk modulus as a function of T
	G     Interpolate // shear modulus as a function of T
	Alpha Interpolate // linear thermal-expansion coefficient as a function of T; nil disables thermal strain
}

// NewIsotropicLinearElastic builds the model from a named parameter set.
// Accepts either constant moduli (any two of "E","nu","K","G","lambda",
// except "lambda" with "E") or temperature tables supplied as already-built
// Interpolate values via KT/GT.
func NewIsotropicLinearElastic(prms fun.Prms, KT, GT Interpolate) (o *IsotropicLinearElastic, err error) {
	o = new(IsotropicLinearElastic)
	if KT != nil && GT != nil {
		o.K, o.G = KT, GT
		return
	}
	var E, ν, K, G, λ float64
	var hasE, hasNu, hasK, hasG, hasλ bool
	for _, p := range prms {
		switch p.N {
		case "E":
			E, hasE = p.V, true
		case "nu":
			ν, hasNu = p.V, true
		case "K":
			K, hasK = p.V, true
		case "G":
			G, hasG = p.V, true
		case "lambda":
			λ, hasλ = p.V, true
		default:
			return nil, chk.Err("isotropic linear elastic: parameter named %q is incorrect\n", p.N)
		}
	}
	switch {
	case hasE && hasNu:
		K, G = Calc_K_from_Enu(E, ν), Calc_G_from_Enu(E, ν)
	case hasK && hasG:
		// already set
	case hasλ && hasG:
		K = λ + 2.0*G/3.0
	case hasE && hasG:
		K = E * G / (3.0 * (3.0*G - E))
	case hasE && hasK:
		G = 3.0 * K * E / (9.0*K - E)
	case hasNu && hasG:
		K = 2.0 * G * (1.0 + ν) / (3.0 * (1.0 - 2.0*ν))
	case hasNu && hasK:
		G = 3.0 * K * (1.0 - 2.0*ν) / (2.0 * (1.0 + ν))
	case hasλ && hasK:
		G = 1.5 * (K - λ)
	case hasλ && hasNu:
		K, G = λ*(1.0+ν)/(3.0*ν), λ*(1.0-2.0*ν)/(2.0*ν)
	default:
		return nil, chk.Err("isotropic linear elastic: need two of (E,nu,K,G,lambda), got E=%v nu=%v K=%v G=%v lambda=%v", hasE, hasNu, hasK, hasG, hasλ)
	}
	o.K = ConstantInterpolate{V: K}
	o.G = ConstantInterpolate{V: G}
	return
}

// StiffnessT writes C(T) = K(T)*Im⊗Im + 2*G(T)*Psd into D.
func (o *IsotropicLinearElastic) StiffnessT(D [][]float64, T float64) {
	K, G := o.K.Value(T), o.G.Value(T)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			D[i][j] = K*tsr.Im[i]*tsr.Im[j] + 2.0*G*tsr.Psd[i][j]
		}
	}
}

// ComplianceT writes S(T) = C(T)^-1 into S directly from K(T), G(T) since
// the inverse of an isotropic stiffness has the same eigenprojector
// structure with reciprocal eigenvalues (1/(3K) on the volumetric part,
// 1/(2G) on the deviatoric part).
func (o *IsotropicLinearElastic) ComplianceT(S [][]float64, T float64) {
	K, G := o.K.Value(T), o.G.Value(T)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			S[i][j] = tsr.Im[i]*tsr.Im[j]/(9.0*K) + tsr.Psd[i][j]/(2.0*G)
		}
	}
}

// Bulk returns the effective bulk modulus at T.
func (o *IsotropicLinearElastic) Bulk(T float64) float64 { return o.K.Value(T) }

// Shear returns the effective shear modulus at T.
func (o *IsotropicLinearElastic) Shear(T float64) float64 { return o.G.Value(T) }

// ThermalExpansion implements LinearElasticModel.
func (o *IsotropicLinearElastic) ThermalExpansion(T float64) float64 {
	if o.Alpha == nil {
		return 0
	}
	return o.Alpha.Value(T)
}
