// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"github.com/cpmech/gosl/chk"
)

// Separation computes the vertical distance between wheel (top body) and
// rail (bottom body) on the given common lateral grid. The result is
// normalised so that its minimum is zero (bodies touching) and then offset
// by gap; gap > 0 therefore models a true clearance between the bodies.
// Both profiles must cover the grid.
func Separation(wheel, rail *Profile, y []float64, gap float64) (sep []float64, err error) {
	if gap < 0 {
		return nil, chk.Err("separation: gap must be non-negative. gap=%g is invalid", gap)
	}
	w, err := wheel.Resample(y)
	if err != nil {
		return nil, err
	}
	r, err := rail.Resample(y)
	if err != nil {
		return nil, err
	}
	sep = make([]float64, len(y))
	smin := w.Z[0] - r.Z[0]
	for i := range y {
		sep[i] = w.Z[i] - r.Z[i]
		if sep[i] < smin {
			smin = sep[i]
		}
	}
	for i := range sep {
		sep[i] += gap - smin
	}
	return
}

// Interpenetration evaluates the interpenetration function for a trial
// virtual penetration: g(y) = max(0, delta0 - sep(y))
func Interpenetration(sep []float64, delta0 float64) (g []float64) {
	g = make([]float64, len(sep))
	for i, s := range sep {
		if delta0 > s {
			g[i] = delta0 - s
		}
	}
	return
}

// ContactRuns returns the contiguous runs of positive entries in g as
// [first, one-past-last) index pairs. Each run is one separate contact zone.
func ContactRuns(g []float64) (runs [][2]int) {
	in := false
	start := 0
	for i, v := range g {
		if v > 0 && !in {
			in, start = true, i
		}
		if v <= 0 && in {
			in = false
			runs = append(runs, [2]int{start, i})
		}
	}
	if in {
		runs = append(runs, [2]int{start, len(g)})
	}
	return
}
