// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package creep

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"

	"github.com/wenquantongxin/piotrowski-kik-model/contact"
)

// Creepage holds the rigid-slip input of one evaluation, normalised by the
// rolling speed. Immutable per evaluation.
type Creepage struct {
	Xix float64 // longitudinal creepage [-]
	Xiy float64 // lateral creepage [-]
	Phi float64 // spin creepage [1/mm]
}

// Forces aggregates the tangential solution: element tractions with the
// adhesion/slip partition, and the integrated creep forces and spin moment.
// Tractions act on the wheel and oppose the local slip.
type Forces struct {

	// totals
	Fx float64 // longitudinal creep force [N]
	Fy float64 // lateral creep force [N]
	Mz float64 // spin moment about the patch centre [N·mm]
	N  float64 // discrete normal load carried by the grid [N]

	// element grids (one row per slice, leading to trailing edge)
	X    [][]float64 // rolling-direction element centres [mm]
	P    [][]float64 // normal pressure [MPa]
	Tx   [][]float64 // longitudinal traction [MPa]
	Ty   [][]float64 // lateral traction [MPa]
	Slip [][]bool    // true where the traction bound is active

	// diagnostics
	Nadh, Nslip int     // adhesion/slip element counts
	L1, L2, L3  float64 // flexibilities used: L1, L2 [mm/MPa], L3 [mm²/MPa]
}

// Solver integrates the tangential tractions over the patch with the
// simplified rolling-contact (FASTSIM) algorithm. Each lateral row is swept
// independently from the leading edge x = +a(y) to the trailing edge; the
// elastic traction accumulates the rigid-slip increment and is clamped to
// the traction bound μ·p wherever it would exceed it.
type Solver struct {

	// input
	Mu float64 // friction coefficient
	G  float64 // shear modulus [MPa]; derived from E and nu when given
	Nx int     // elements per row along the rolling direction

	// flexibilities; all three zero means derive from the equivalent ellipse
	L1 float64 // longitudinal [mm/MPa]
	L2 float64 // lateral [mm/MPa]
	L3 float64 // spin [mm²/MPa]
}

// Init initialises the solver with parameters; missing entries keep defaults
func (o *Solver) Init(prms fun.Params) (err error) {

	// defaults
	o.Mu = 0.3
	o.Nx = 50
	var E, nu float64 = 183000.0, 0.3

	// parameters
	for _, p := range prms {
		switch p.N {
		case "mu":
			o.Mu = p.V
		case "G":
			o.G = p.V
		case "E":
			E = p.V
		case "nu":
			nu = p.V
		case "nx":
			o.Nx = int(p.V)
		case "L1":
			o.L1 = p.V
		case "L2":
			o.L2 = p.V
		case "L3":
			o.L3 = p.V
		default:
			return chk.Err("creep solver: parameter %q is unknown", p.N)
		}
	}
	if o.G == 0 {
		o.G = E / (2.0 * (1.0 + nu))
	}

	// check
	if o.Mu <= 0 || math.IsNaN(o.Mu) {
		return chk.Err("creep solver: friction coefficient mu=%v is invalid", o.Mu)
	}
	if o.G <= 0 || math.IsNaN(o.G) {
		return chk.Err("creep solver: shear modulus G=%v is invalid", o.G)
	}
	if o.Nx < 2 {
		return chk.Err("creep solver: nx=%d is invalid", o.Nx)
	}
	return
}

// Solve computes tractions and integrated forces for one creepage triple.
// An empty (NoContact) patch is an error; rows with zero half-width simply
// contribute nothing.
func (o *Solver) Solve(prs *contact.Pressure, crp *Creepage) (res *Forces, err error) {
	pch := prs.Patch()
	if pch.NoContact || pch.Ncon() == 0 {
		return nil, chk.Err("creep solver: patch is empty (no contact)")
	}

	// flexibilities
	L1, L2, L3 := o.L1, o.L2, o.L3
	if L1 == 0 && L2 == 0 && L3 == 0 {
		ae, be, e := EquivalentEllipse(pch)
		if e != nil {
			return nil, e
		}
		L1, L2, L3 = Flexibilities(ae, be, o.G)
	}

	// allocate element grids
	ny := len(pch.Y)
	res = &Forces{
		X:    la.MatAlloc(ny, o.Nx),
		P:    la.MatAlloc(ny, o.Nx),
		Tx:   la.MatAlloc(ny, o.Nx),
		Ty:   la.MatAlloc(ny, o.Nx),
		Slip: make([][]bool, ny),
		L1:   L1,
		L2:   L2,
		L3:   L3,
	}
	for j := 0; j < ny; j++ {
		res.Slip[j] = make([]bool, o.Nx)
	}

	// rows are independent: each sweep reads shared inputs and writes only
	// its own row, so this loop maps directly onto a parallel-for
	for j := 0; j < ny; j++ {
		row := o.sweepRow(prs, crp, L1, L2, L3, j, res.X[j], res.P[j], res.Tx[j], res.Ty[j], res.Slip[j])
		res.Fx += row.fx
		res.Fy += row.fy
		res.Mz += row.mz
		res.N += row.n
		res.Nadh += row.nadh
		res.Nslip += row.nslip
	}
	return
}

// rowSums holds the integrated contribution of one lateral row
type rowSums struct {
	fx, fy, mz, n float64
	nadh, nslip   int
}

// sweepRow processes lateral row j from the leading edge to the trailing
// edge, accumulating the elastic traction and clamping it to the bound.
// Pure per-row function: it touches nothing outside the given row slices.
func (o *Solver) sweepRow(prs *contact.Pressure, crp *Creepage, L1, L2, L3 float64, j int, X, P, Tx, Ty []float64, slip []bool) (row rowSums) {
	pch := prs.Patch()
	a := pch.A[j]
	if a == 0 {
		return
	}
	y := pch.Y[j]
	dx := 2.0 * a / float64(o.Nx)
	dA := dx * pch.Dy[j]
	var tx, ty float64
	for i := 0; i < o.Nx; i++ {
		x := a - (float64(i)+0.5)*dx

		// rigid-slip increment; traction opposes the slip direction
		tx -= dx * (crp.Xix - crp.Phi*y) / L1
		ty -= dx*crp.Xiy/L2 + dx*crp.Phi*x/L3

		// traction bound
		p := prs.Slice(j, x)
		bound := o.Mu * p
		norm := math.Sqrt(tx*tx + ty*ty)
		if norm > bound {
			s := bound / norm
			tx *= s
			ty *= s
			slip[i] = true
			row.nslip++
		} else {
			row.nadh++
		}

		// store and integrate
		X[i] = x
		P[i] = p
		Tx[i] = tx
		Ty[i] = ty
		row.fx += tx * dA
		row.fy += ty * dA
		row.mz += (x*ty - y*tx) * dA
		row.n += p * dA
	}
	return
}
