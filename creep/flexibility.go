// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package creep implements the simplified-theory (FASTSIM) tangential
// rolling-contact solver over a non-elliptic semi-Hertzian patch
package creep

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/wenquantongxin/piotrowski-kik-model/contact"
)

// KalkerCoeffs returns Kalker's creepage coefficients c11, c22, c23 for an
// elliptic contact with semi-axis ratio g = b/a (a along rolling, b lateral).
// Rational fits to Kalker's tables (ν = 0.25), adequate for the simplified
// theory on the tabulated range; the g→∞ limits are the thin-strip values
// π²/(4(1-ν)) and π²/4.
func KalkerCoeffs(g float64) (c11, c22, c23 float64) {
	c11 = 3.2893 + 0.975/g - 0.012/(g*g)
	c22 = 2.4014 + 1.3179/g - 0.02/(g*g)
	c23 = 0.4147 + 1.0184/g + 0.0565/(g*g) - 0.0013/(g*g*g)
	return
}

// EquivalentEllipse returns the semi-axes of the ellipse used to calibrate
// the flexibilities: a from the widest slice, b from the lateral extent
func EquivalentEllipse(pch *contact.Patch) (a, b float64, err error) {
	a, _ = pch.Amax()
	ylo, yhi := pch.Bounds()
	b = (yhi - ylo) / 2.0
	if a <= 0 || b <= 0 {
		return 0, 0, chk.Err("equivalent ellipse is degenerate: a=%g b=%g", a, b)
	}
	return
}

// Flexibilities computes the tangential flexibilities of the simplified
// theory from the equivalent ellipse and the shear modulus:
//
//	L1 = 8a/(3·G·c11)   L2 = 8a/(3·G·c22)   L3 = π·a·sqrt(a·b)/(4·G·c23)
func Flexibilities(a, b, G float64) (L1, L2, L3 float64) {
	c11, c22, c23 := KalkerCoeffs(b / a)
	L1 = 8.0 * a / (3.0 * G * c11)
	L2 = 8.0 * a / (3.0 * G * c22)
	L3 = math.Pi * a * math.Sqrt(a*b) / (4.0 * G * c23)
	return
}
