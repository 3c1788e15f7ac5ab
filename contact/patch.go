// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"
)

// Patch holds the solved contact geometry: one entry per lateral slice plus
// the global penetration data. The rolling direction is x; each slice spans
// x in [-A[j], A[j]]. Slices with A[j] = 0 are not in contact.
type Patch struct {

	// slices (ordered by Y)
	Y   []float64 // lateral positions of slice centres [mm]
	Dy  []float64 // slice widths [mm]
	Sep []float64 // undeformed separation [mm]
	G   []float64 // interpenetration g = max(0, δ0-sep) [mm]
	A   []float64 // local half-widths along rolling direction [mm]
	R   []float64 // in-situ rolling radii [mm]

	// global results
	Delta0   float64 // virtual penetration [mm]
	Delta    float64 // actual penetration = δ0/ε [mm]
	Load     float64 // balanced normal load [N]
	Pcoef    float64 // pressure scale: p(x,y) = Pcoef·sqrt(A(y)²-x²) [MPa/mm]
	Residual float64 // |N(δ0)-target|/target from the force balance
	It       int     // root-find iterations used

	// status
	NoContact bool // bodies do not touch at the requested load
	Diverged  bool // force balance did not meet tolerance; results are best estimates
}

// Ncon returns the number of slices in contact
func (o *Patch) Ncon() (n int) {
	for _, a := range o.A {
		if a > 0 {
			n++
		}
	}
	return
}

// Area returns the patch area computed from the slice half-widths
func (o *Patch) Area() (area float64) {
	for j, a := range o.A {
		area += 2 * a * o.Dy[j]
	}
	return
}

// Amax returns the largest half-width and its slice index
func (o *Patch) Amax() (amax float64, jmax int) {
	for j, a := range o.A {
		if a > amax {
			amax, jmax = a, j
		}
	}
	return
}

// Bounds returns the lateral extent [ylo, yhi] of the contact, including the
// half-widths of the boundary slices. Returns (0, 0) for an empty patch.
func (o *Patch) Bounds() (ylo, yhi float64) {
	first := -1
	last := -1
	for j, a := range o.A {
		if a > 0 {
			if first < 0 {
				first = j
			}
			last = j
		}
	}
	if first < 0 {
		return
	}
	return o.Y[first] - o.Dy[first]/2.0, o.Y[last] + o.Dy[last]/2.0
}

// Runs returns the contiguous in-contact slice runs (separate contact zones)
func (o *Patch) Runs() [][2]int {
	return ContactRuns(o.G)
}

// i1slice evaluates ∫_{-a}^{a} sqrt(a²-x²)/sqrt(x²+y²+1e-10) dx by the
// midpoint rule on the substituted variable. The small constant regularises
// the slice through the contact-point (y = 0), where the line integral alone
// is log-singular although the full patch integral converges.
func i1slice(a, y float64, nq int) (res float64) {
	h := math.Pi / float64(nq)
	for k := 0; k < nq; k++ {
		θ := -math.Pi/2.0 + (float64(k)+0.5)*h
		s := math.Sin(θ)
		c := math.Cos(θ)
		res += a * a * c * c / math.Sqrt(a*a*s*s+y*y+1e-10)
	}
	return res * h
}
