// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// LoadFcn computes the total normal load for a trial virtual penetration.
// The force-balance search runs over this callback so the solver does not
// depend on any particular root-finder.
type LoadFcn func(delta0 float64) (float64, error)

// Solver finds the virtual penetration δ0 that balances a target normal
// load and produces the contact patch (one half-width per lateral slice).
//
// For a trial δ0 the interpenetration is g(y) = max(0, δ0 - sep(y)), the
// local half-width is a(y) = sqrt(2·R(y)·g(y)), and the total load follows
// from the half-space normalisation
//
//	N(δ0) = [π·E·δ / (2·(1-ν²))] · I2/I1,   δ = δ0/ε
//
// with I1, I2 the patch integrals of the semi-elliptical pressure shape.
// N(δ0) is monotonically increasing, so a single bounded root-find closes
// the problem.
type Solver struct {

	// material (identical for both bodies)
	E  float64 // Young's modulus [MPa]
	Nu float64 // Poisson's ratio

	// geometry
	R0     float64 // nominal rolling radius [mm]
	InSitu bool    // use in-situ rolling radius per slice
	Gap    float64 // extra clearance between the touching profiles [mm]

	// discretisation
	Ny    int // number of lateral slices
	Nquad int // quadrature stations per slice for I1

	// force balance
	Eps    float64 // virtual-to-actual penetration ratio: δ0 = ε·δ
	Tol    float64 // relative tolerance on the balanced load
	ItMax  int     // iteration cap for the root-find
	MaxPen float64 // upper bound for δ0 [mm]

	// set by SetProfiles
	y   []float64 // lateral grid
	dy  float64   // grid spacing
	sep []float64 // separation (min zero, plus Gap)
	rr  []float64 // in-situ rolling radii
}

// Init initialises the solver with parameters; missing entries keep defaults
func (o *Solver) Init(prms fun.Params) (err error) {

	// defaults
	o.E = 183000.0 // wheel/rail steel [MPa]
	o.Nu = 0.3
	o.R0 = 460.0
	o.InSitu = true
	o.Eps = 0.55
	o.Ny = 201
	o.Nquad = 64
	o.Tol = 1e-6
	o.ItMax = 100
	o.MaxPen = 2.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "R0":
			o.R0 = p.V
		case "insitu":
			o.InSitu = p.V > 0
		case "gap":
			o.Gap = p.V
		case "eps":
			o.Eps = p.V
		case "ny":
			o.Ny = int(p.V)
		case "nquad":
			o.Nquad = int(p.V)
		case "tol":
			o.Tol = p.V
		case "itmax":
			o.ItMax = int(p.V)
		case "maxpen":
			o.MaxPen = p.V
		default:
			return chk.Err("penetration solver: parameter %q is unknown", p.N)
		}
	}

	// check
	if o.E <= 0 || math.IsNaN(o.E) || math.IsInf(o.E, 0) {
		return chk.Err("penetration solver: E=%v is invalid", o.E)
	}
	if o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("penetration solver: nu=%v is invalid", o.Nu)
	}
	if o.R0 <= 0 {
		return chk.Err("penetration solver: R0=%v is invalid", o.R0)
	}
	if o.Eps <= 0 || o.Eps > 1 {
		return chk.Err("penetration solver: eps=%v is invalid", o.Eps)
	}
	if o.Ny < 3 || o.Nquad < 2 {
		return chk.Err("penetration solver: grid ny=%d nquad=%d is invalid", o.Ny, o.Nquad)
	}
	if o.Tol <= 0 || o.ItMax < 1 || o.MaxPen <= 0 {
		return chk.Err("penetration solver: tol=%v itmax=%d maxpen=%v is invalid", o.Tol, o.ItMax, o.MaxPen)
	}
	return
}

// SetProfiles prepares the lateral grid, the separation function and the
// in-situ rolling radii from the two profiles. offset shifts the wheel
// laterally relative to the rail before the profiles are compared.
func (o *Solver) SetProfiles(wheel, rail *Profile, offset float64) (err error) {
	w := wheel.Shift(offset, 0)

	// overlapping lateral range
	ylo := math.Max(w.Ymin(), rail.Ymin())
	yhi := math.Min(w.Ymax(), rail.Ymax())
	if yhi <= ylo {
		return chk.Err("profiles do not overlap laterally: wheel=[%g,%g] rail=[%g,%g] offset=%g",
			wheel.Ymin(), wheel.Ymax(), rail.Ymin(), rail.Ymax(), offset)
	}

	// separation on uniform grid
	o.y = utl.LinSpace(ylo, yhi, o.Ny)
	o.dy = o.y[1] - o.y[0]
	o.sep, err = Separation(w, rail, o.y, o.Gap)
	if err != nil {
		return
	}

	// in-situ rolling radii: points lower on the wheel run on a larger radius
	o.rr = make([]float64, o.Ny)
	if !o.InSitu {
		for j := range o.rr {
			o.rr[j] = o.R0
		}
		return
	}
	jcp := 0 // contact point = minimum separation
	for j := 1; j < o.Ny; j++ {
		if o.sep[j] < o.sep[jcp] {
			jcp = j
		}
	}
	zcp := w.Interp(o.y[jcp])
	for j := range o.rr {
		o.rr[j] = o.R0 + (zcp - w.Interp(o.y[j]))
		if o.rr[j] <= 0 {
			return chk.Err("in-situ rolling radius is not positive at y=%g: R=%g", o.y[j], o.rr[j])
		}
	}
	return
}

// LoadFor computes the total normal load N(δ0) and the pressure scale
// C = N/I2 for a trial virtual penetration. Returns (0, 0) when no slice
// is in contact.
func (o *Solver) LoadFor(delta0 float64) (N, C float64) {
	var I1, I2 float64
	for j, s := range o.sep {
		g := delta0 - s
		if g <= 0 {
			continue
		}
		a := math.Sqrt(2.0 * o.rr[j] * g)
		I1 += i1slice(a, o.y[j], o.Nquad) * o.dy
		I2 += 0.5 * math.Pi * a * a * o.dy
	}
	if I2 == 0 {
		return
	}
	delta := delta0 / o.Eps
	coef := 0.5 * math.Pi * o.E * delta / (1.0 - o.Nu*o.Nu)
	N = coef * I2 / I1
	C = N / I2
	return
}

// Solve finds δ0 such that N(δ0) equals the target load and returns the
// contact patch. A target load ≤ 0 or a clearance larger than MaxPen gives
// a valid NoContact result. If the load cannot be balanced within MaxPen
// and ItMax, the best-estimate patch is returned with Diverged set,
// together with an error.
func (o *Solver) Solve(load float64) (pch *Patch, err error) {
	if o.y == nil {
		return nil, chk.Err("profiles must be set before calling Solve")
	}
	if math.IsNaN(load) || math.IsInf(load, 0) {
		return nil, chk.Err("load=%v is invalid", load)
	}
	if load <= 0 {
		return o.newPatch(0, 0, 0, 0, true, false), nil
	}

	// no slice reachable within the δ0 bound => no contact
	Nhi, Chi := o.LoadFor(o.MaxPen)
	if Nhi == 0 {
		return o.newPatch(0, 0, 0, 0, true, false), nil
	}

	// load not achievable within the δ0 bound => best estimate at the bound
	if Nhi < load {
		pch = o.newPatch(o.MaxPen, Nhi, Chi, o.ItMax, false, true)
		pch.Residual = math.Abs(Nhi-load) / load
		return pch, chk.Err("force balance cannot reach load=%g within maxpen=%g: N(maxpen)=%g", load, o.MaxPen, Nhi)
	}

	// bounded root-find on f(δ0) = N(δ0) - load
	fcn := func(delta0 float64) (float64, error) {
		N, _ := o.LoadFor(delta0)
		return N - load, nil
	}
	var brent num.Brent
	brent.Init(func(x float64) (float64, error) { return fcn(x) })
	brent.MAXIT = o.ItMax
	brent.TOL = 1e-3 * o.Tol * o.MaxPen // x-tolerance well below the force tolerance
	delta0, err := brent.Solve(1e-12, o.MaxPen, true)

	// assemble patch and convergence diagnostics
	N, C := o.LoadFor(delta0)
	res := math.Abs(N-load) / load
	diverged := err != nil || res > o.Tol
	pch = o.newPatch(delta0, N, C, brent.It, false, diverged)
	pch.Residual = res
	if diverged {
		return pch, chk.Err("force balance did not converge: residual=%g tol=%g iterations=%d", res, o.Tol, brent.It)
	}
	return pch, nil
}

// newPatch builds the patch structure for a solved (or degenerate) δ0
func (o *Solver) newPatch(delta0, N, C float64, it int, nocontact, diverged bool) (pch *Patch) {
	pch = &Patch{
		Y:         make([]float64, o.Ny),
		Dy:        make([]float64, o.Ny),
		Sep:       make([]float64, o.Ny),
		G:         make([]float64, o.Ny),
		A:         make([]float64, o.Ny),
		R:         make([]float64, o.Ny),
		Delta0:    delta0,
		Delta:     delta0 / o.Eps,
		Load:      N,
		Pcoef:     C,
		It:        it,
		NoContact: nocontact,
		Diverged:  diverged,
	}
	copy(pch.Y, o.y)
	copy(pch.Sep, o.sep)
	copy(pch.R, o.rr)
	for j := range pch.Y {
		pch.Dy[j] = o.dy
		g := delta0 - o.sep[j]
		if g > 0 {
			pch.G[j] = g
			pch.A[j] = math.Sqrt(2.0 * o.rr[j] * g)
		}
	}
	return
}
