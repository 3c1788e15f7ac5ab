// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package contact implements the semi-Hertzian (virtual penetration)
// wheel-rail normal contact solver
package contact

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Profile holds one cross-section curve as ordered (y, z) samples with the
// z-axis pointing upwards. Lateral positions must be strictly increasing.
// Profiles are immutable once created; Shift and Resample return copies.
type Profile struct {
	Y []float64 // lateral positions [mm]
	Z []float64 // heights [mm]
}

// NewProfile creates a profile after validating the input samples
func NewProfile(y, z []float64) (o *Profile, err error) {
	if len(y) != len(z) {
		return nil, chk.Err("profile: y and z must have the same length. %d != %d", len(y), len(z))
	}
	if len(y) < 3 {
		return nil, chk.Err("profile: at least 3 points are required. len(y)=%d is invalid", len(y))
	}
	for i := 0; i < len(y); i++ {
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) || math.IsNaN(z[i]) || math.IsInf(z[i], 0) {
			return nil, chk.Err("profile: non-finite sample at index %d: y=%v z=%v", i, y[i], z[i])
		}
		if i > 0 && y[i] <= y[i-1] {
			return nil, chk.Err("profile: lateral positions must be strictly increasing. y[%d]=%g y[%d]=%g", i-1, y[i-1], i, y[i])
		}
	}
	o = new(Profile)
	o.Y = make([]float64, len(y))
	o.Z = make([]float64, len(z))
	copy(o.Y, y)
	copy(o.Z, z)
	return
}

// Ymin returns the smallest lateral position
func (o *Profile) Ymin() float64 { return o.Y[0] }

// Ymax returns the largest lateral position
func (o *Profile) Ymax() float64 { return o.Y[len(o.Y)-1] }

// Interp returns the height at lateral position y using linear interpolation.
// y must be within [Ymin, Ymax].
func (o *Profile) Interp(y float64) float64 {
	n := len(o.Y)
	if y <= o.Y[0] {
		return o.Z[0]
	}
	if y >= o.Y[n-1] {
		return o.Z[n-1]
	}
	i := sort.SearchFloat64s(o.Y, y) // first index with Y[i] >= y
	t := (y - o.Y[i-1]) / (o.Y[i] - o.Y[i-1])
	return o.Z[i-1] + t*(o.Z[i]-o.Z[i-1])
}

// Resample interpolates this profile onto the given lateral grid. All points
// of yref must lie within the profile's range.
func (o *Profile) Resample(yref []float64) (p *Profile, err error) {
	if len(yref) < 3 {
		return nil, chk.Err("resample: at least 3 points are required. len(yref)=%d is invalid", len(yref))
	}
	tol := 1e-8 * (o.Ymax() - o.Ymin()) // roundoff slack for grids built from the range endpoints
	if yref[0] < o.Ymin()-tol || yref[len(yref)-1] > o.Ymax()+tol {
		return nil, chk.Err("resample: grid [%g,%g] exceeds profile range [%g,%g]", yref[0], yref[len(yref)-1], o.Ymin(), o.Ymax())
	}
	z := make([]float64, len(yref))
	for i, y := range yref {
		z[i] = o.Interp(y)
	}
	return NewProfile(yref, z)
}

// Shift returns a copy of this profile translated by (dy, dz)
func (o *Profile) Shift(dy, dz float64) (p *Profile) {
	p = new(Profile)
	p.Y = make([]float64, len(o.Y))
	p.Z = make([]float64, len(o.Z))
	for i := range o.Y {
		p.Y[i] = o.Y[i] + dy
		p.Z[i] = o.Z[i] + dz
	}
	return
}
