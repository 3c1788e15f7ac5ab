// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/la"
)

// Pressure is the semi-elliptical normal pressure field over a solved patch:
//
//	p(x,y) = C·sqrt(a(y)²-x²)   for |x| ≤ a(y),  0 otherwise
//
// with C the scale fixed by the force balance, so the patch integral of p
// reproduces the balanced load. The field is read-only.
type Pressure struct {
	pch *Patch
}

// NewPressure creates the pressure field of a solved patch
func NewPressure(pch *Patch) *Pressure {
	return &Pressure{pch: pch}
}

// Patch returns the underlying patch
func (o *Pressure) Patch() *Patch { return o.pch }

// Slice evaluates the pressure at position x within slice j
func (o *Pressure) Slice(j int, x float64) float64 {
	a := o.pch.A[j]
	if x <= -a || x >= a {
		return 0
	}
	return o.pch.Pcoef * math.Sqrt(a*a-x*x)
}

// P0 returns the peak pressure of slice j (at x = 0)
func (o *Pressure) P0(j int) float64 {
	return o.pch.Pcoef * o.pch.A[j]
}

// Pmax returns the maximum pressure over the whole patch
func (o *Pressure) Pmax() float64 {
	amax, _ := o.pch.Amax()
	return o.pch.Pcoef * amax
}

// At evaluates the pressure at an arbitrary point. The slice is selected by
// nearest centre; points outside the patch return 0.
func (o *Pressure) At(x, y float64) float64 {
	n := len(o.pch.Y)
	if n == 0 || y < o.pch.Y[0]-o.pch.Dy[0]/2.0 || y > o.pch.Y[n-1]+o.pch.Dy[n-1]/2.0 {
		return 0
	}
	j := sort.SearchFloat64s(o.pch.Y, y)
	if j == n {
		j = n - 1
	}
	if j > 0 && y-o.pch.Y[j-1] < o.pch.Y[j]-y {
		j--
	}
	return o.Slice(j, x)
}

// Grid samples the field on nx stations per slice, from the leading edge
// (x = +a) to the trailing edge (x = -a). X and P have one row per slice;
// rows of slices not in contact are left zero.
func (o *Pressure) Grid(nx int) (X, P [][]float64) {
	ny := len(o.pch.Y)
	X = la.MatAlloc(ny, nx)
	P = la.MatAlloc(ny, nx)
	for j := 0; j < ny; j++ {
		a := o.pch.A[j]
		if a == 0 {
			continue
		}
		dx := 2.0 * a / float64(nx)
		for i := 0; i < nx; i++ {
			x := a - (float64(i)+0.5)*dx
			X[j][i] = x
			P[j][i] = o.Slice(j, x)
		}
	}
	return
}

// Integrate computes the discrete patch integral ∫∫ p dx dy with nx
// stations per slice; converges to the balanced load as nx grows
func (o *Pressure) Integrate(nx int) (N float64) {
	for j := range o.pch.Y {
		a := o.pch.A[j]
		if a == 0 {
			continue
		}
		dx := 2.0 * a / float64(nx)
		for i := 0; i < nx; i++ {
			x := a - (float64(i)+0.5)*dx
			N += o.Slice(j, x) * dx * o.pch.Dy[j]
		}
	}
	return
}
