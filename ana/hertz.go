// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// HertzSphere computes the classical Hertz point-contact solution for a
// sphere pressed on a half-space of the same material:
//
//	a    = (3·N·R / (4·E*))^(1/3)        contact radius
//	pmax = 3·N / (2·π·a²)                peak pressure
//	δ    = a²/R                          approach
//
// with E* = E/(2·(1-ν²)) for identical bodies.
type HertzSphere struct {
	// input
	E  float64 // Young's modulus [MPa]
	Nu float64 // Poisson's ratio
	R  float64 // sphere radius [mm]

	// derived
	Estar float64 // contact modulus [MPa]
}

// Init initialises this structure
func (o *HertzSphere) Init(prms fun.Params) {

	// default values
	o.E = 183000.0
	o.Nu = 0.3
	o.R = 460.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "R":
			o.R = p.V
		}
	}

	// derived
	o.Estar = o.E / (2.0 * (1.0 - o.Nu*o.Nu))
}

// Eval computes contact radius, peak pressure and approach for load N
func (o HertzSphere) Eval(N float64) (a, pmax, delta float64) {
	a = math.Pow(3.0*N*o.R/(4.0*o.Estar), 1.0/3.0)
	pmax = 3.0 * N / (2.0 * math.Pi * a * a)
	delta = a * a / o.R
	return
}

// Pressure evaluates the Hertz pressure at radius r from the patch centre
func (o HertzSphere) Pressure(N, r float64) float64 {
	a, pmax, _ := o.Eval(N)
	if r >= a {
		return 0
	}
	return pmax * math.Sqrt(1.0-r*r/(a*a))
}

// CheckEval compares (a, pmax, delta) against the closed form
func (o HertzSphere) CheckEval(tst *testing.T, N, tol, a, pmax, delta float64) {
	aa, pp, dd := o.Eval(N)
	chk.Scalar(tst, "a", tol*aa, a, aa)
	chk.Scalar(tst, "pmax", tol*pp, pmax, pp)
	chk.Scalar(tst, "delta", tol*dd, delta, dd)
}

// HertzCylinder computes the classical Hertz line-contact solution for a
// cylinder pressed on a half-space of the same material. Loads are per unit
// length of the cylinder:
//
//	b    = sqrt(4·N'·R / (π·E*))         contact half-width
//	pmax = 2·N' / (π·b)                  peak pressure
type HertzCylinder struct {
	// input
	E  float64 // Young's modulus [MPa]
	Nu float64 // Poisson's ratio
	R  float64 // cylinder radius [mm]

	// derived
	Estar float64 // contact modulus [MPa]
}

// Init initialises this structure
func (o *HertzCylinder) Init(prms fun.Params) {
	o.E = 183000.0
	o.Nu = 0.3
	o.R = 460.0
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "R":
			o.R = p.V
		}
	}
	o.Estar = o.E / (2.0 * (1.0 - o.Nu*o.Nu))
}

// Eval computes contact half-width and peak pressure for line load N' [N/mm]
func (o HertzCylinder) Eval(Nl float64) (b, pmax float64) {
	b = math.Sqrt(4.0 * Nl * o.R / (math.Pi * o.Estar))
	pmax = 2.0 * Nl / (math.Pi * b)
	return
}
