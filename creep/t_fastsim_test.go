// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package creep

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/wenquantongxin/piotrowski-kik-model/contact"
)

func verbose() {
	chk.Verbose = true
}

// spherePressure solves the normal problem for a spherical wheel on a flat
// rail and returns the pressure field used by the creep tests
func spherePressure(tst *testing.T, load float64) (*contact.Pressure, *contact.Solver) {
	R := 460.0
	y := utl.LinSpace(-15, 15, 401)
	zw := make([]float64, len(y))
	zr := make([]float64, len(y))
	for i := range y {
		zw[i] = R - math.Sqrt(R*R-y[i]*y[i])
	}
	wheel, err := contact.NewProfile(y, zw)
	if err != nil {
		tst.Fatalf("cannot build wheel: %v", err)
	}
	rail, err := contact.NewProfile(y, zr)
	if err != nil {
		tst.Fatalf("cannot build rail: %v", err)
	}
	sol := new(contact.Solver)
	err = sol.Init(fun.Params{
		&fun.P{N: "E", V: 206000},
		&fun.P{N: "nu", V: 0.3},
		&fun.P{N: "R0", V: R},
		&fun.P{N: "insitu", V: 0},
		&fun.P{N: "ny", V: 401},
	})
	if err != nil {
		tst.Fatalf("cannot initialise penetration solver: %v", err)
	}
	err = sol.SetProfiles(wheel, rail, 0)
	if err != nil {
		tst.Fatalf("cannot set profiles: %v", err)
	}
	pch, err := sol.Solve(load)
	if err != nil {
		tst.Fatalf("force balance failed: %v", err)
	}
	return contact.NewPressure(pch), sol
}

func newCreepSolver(tst *testing.T, mu float64) (o *Solver) {
	o = new(Solver)
	err := o.Init(fun.Params{
		&fun.P{N: "mu", V: mu},
		&fun.P{N: "E", V: 206000},
		&fun.P{N: "nu", V: 0.3},
		&fun.P{N: "nx", V: 50},
	})
	if err != nil {
		tst.Fatalf("cannot initialise creep solver: %v", err)
	}
	return
}

func Test_fastsim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fastsim01. pure rolling gives zero tangential force")

	prs, _ := spherePressure(tst, 100e3)
	sol := newCreepSolver(tst, 0.3)
	res, err := sol.Solve(prs, &Creepage{})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Fx", 1e-15, res.Fx, 0)
	chk.Scalar(tst, "Fy", 1e-15, res.Fy, 0)
	chk.Scalar(tst, "Mz", 1e-15, res.Mz, 0)
	chk.IntAssert(res.Nslip, 0)
}

func Test_fastsim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fastsim02. traction bound and adhesion/slip partition")

	prs, _ := spherePressure(tst, 100e3)
	sol := newCreepSolver(tst, 0.3)

	for _, crp := range []*Creepage{
		{Xix: 1e-4},
		{Xix: 1e-3, Xiy: 5e-4},
		{Xiy: 2e-3, Phi: 1e-4},
		{Xix: 5e-3, Phi: -2e-4},
	} {
		res, err := sol.Solve(prs, crp)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		for j := range res.Tx {
			for i := range res.Tx[j] {
				tn := math.Sqrt(res.Tx[j][i]*res.Tx[j][i] + res.Ty[j][i]*res.Ty[j][i])
				bound := sol.Mu * res.P[j][i]
				if tn > bound+1e-12 {
					tst.Errorf("traction %g exceeds bound %g at %d,%d\n", tn, bound, j, i)
					return
				}
				if res.Slip[j][i] {
					// saturated elements sit exactly on the bound
					chk.Scalar(tst, io.Sf("bound %d,%d", j, i), 1e-10, tn, bound)
				}
			}
		}
		chk.IntAssert(res.Nadh+res.Nslip, prs.Patch().Ncon()*sol.Nx)
	}
}

func Test_fastsim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fastsim03. creep-force characteristic")

	prs, _ := spherePressure(tst, 100e3)
	sol := newCreepSolver(tst, 0.3)

	// pure longitudinal creepage: no lateral force, no spin moment
	var prev float64
	for _, xi := range []float64{1e-5, 1e-4, 1e-3, 1e-2} {
		res, err := sol.Solve(prs, &Creepage{Xix: xi})
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		io.Pforan("xi=%8.1e  Fx=%12.4e  adh=%4d slip=%4d\n", xi, res.Fx, res.Nadh, res.Nslip)
		if res.Fx*xi >= 0 {
			tst.Errorf("Fx must oppose the creepage: xi=%g Fx=%g\n", xi, res.Fx)
			return
		}
		if math.Abs(res.Fx) <= prev {
			tst.Errorf("|Fx| must grow with creepage\n")
			return
		}
		prev = math.Abs(res.Fx)
		chk.Scalar(tst, "Fy", 1e-12, res.Fy, 0)
		chk.Scalar(tst, "Mz", 1e-6, res.Mz, 0)
	}

	// small-creepage regime approaches the linear theory slope G·a·b·c11
	xi := 1e-5
	res, err := sol.Solve(prs, &Creepage{Xix: xi})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	ae, be, err := EquivalentEllipse(prs.Patch())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	c11, _, _ := KalkerCoeffs(be / ae)
	slope := sol.G * ae * be * c11
	io.Pforan("slope = %v  linear theory = %v\n", -res.Fx/xi, slope)
	chk.Scalar(tst, "linear slope", 0.05*slope, -res.Fx/xi, slope)
}

func Test_fastsim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fastsim04. full sliding saturation")

	prs, _ := spherePressure(tst, 100e3)
	sol := newCreepSolver(tst, 0.3)

	// large creepage saturates every element: |Fx| = mu*N exactly on the grid
	res, err := sol.Solve(prs, &Creepage{Xix: 0.5})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.IntAssert(res.Nadh, 0)
	chk.Scalar(tst, "|Fx| = mu*N", 1e-8*sol.Mu*res.N, math.Abs(res.Fx), sol.Mu*res.N)

	// further increase changes nothing
	res2, err := sol.Solve(prs, &Creepage{Xix: 5.0})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "saturation is flat", 1e-8*math.Abs(res.Fx), math.Abs(res2.Fx), math.Abs(res.Fx))

	// the grid integral of the pressure approaches the balanced load
	chk.Scalar(tst, "grid normal load", 2e-3*prs.Patch().Load, res.N, prs.Patch().Load)
}

func Test_fastsim05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fastsim05. spin creepage")

	prs, _ := spherePressure(tst, 100e3)
	sol := newCreepSolver(tst, 0.3)

	phi := 1e-4
	res, err := sol.Solve(prs, &Creepage{Phi: phi})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("Fx=%v Fy=%v Mz=%v\n", res.Fx, res.Fy, res.Mz)

	// pure spin on a symmetric patch: no longitudinal force, a lateral force,
	// and a moment opposing the spin
	chk.Scalar(tst, "Fx", 1e-6, res.Fx, 0)
	if res.Fy == 0 {
		tst.Errorf("spin must induce a lateral force\n")
		return
	}
	if res.Mz*phi >= 0 {
		tst.Errorf("spin moment must oppose the spin: phi=%g Mz=%g\n", phi, res.Mz)
	}
}

func Test_fastsim06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fastsim06. invalid input and empty patch")

	// invalid friction
	var sol Solver
	if err := sol.Init(fun.Params{&fun.P{N: "mu", V: -0.1}}); err == nil {
		tst.Errorf("negative friction must fail\n")
		return
	}
	if err := sol.Init(fun.Params{&fun.P{N: "wrong", V: 1}}); err == nil {
		tst.Errorf("unknown parameter must fail\n")
		return
	}

	// empty patch propagates as an error
	solOK := newCreepSolver(tst, 0.3)
	_, nsol := spherePressure(tst, 100e3)
	empty, err := nsol.Solve(0) // zero load => valid NoContact patch
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	if _, err := solOK.Solve(contact.NewPressure(empty), &Creepage{Xix: 1e-3}); err == nil {
		tst.Errorf("empty patch must fail\n")
		return
	}
}

func Test_flex01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("flex01. flexibilities from the equivalent ellipse")

	// coefficients at a/b = 1 (fits to Kalker's tables, nu = 0.25)
	c11, c22, c23 := KalkerCoeffs(1.0)
	chk.Scalar(tst, "c11", 1e-4, c11, 4.2523)
	chk.Scalar(tst, "c22", 1e-4, c22, 3.6993)
	chk.Scalar(tst, "c23", 1e-4, c23, 1.4883)

	// longitudinal stiffness exceeds lateral over the tabulated range
	for _, g := range []float64{0.5, 1.0, 2.0, 5.0, 10.0} {
		c11, c22, _ = KalkerCoeffs(g)
		if c11 <= c22 {
			tst.Errorf("c11 must exceed c22 at g=%g: %g <= %g\n", g, c11, c22)
			return
		}
	}

	// large b/a is the laterally-wide limit: the fits approach the
	// thin-strip values pi^2/(4(1-nu)) and pi^2/4
	c11, c22, _ = KalkerCoeffs(1000.0)
	chk.Scalar(tst, "c11 strip limit", 1e-3, c11, math.Pi*math.Pi/3.0)
	chk.Scalar(tst, "c22 strip limit", 0.07, c22, math.Pi*math.Pi/4.0)

	// flexibilities are positive and scale with the semi-axis
	G := 79230.0
	L1, L2, L3 := Flexibilities(6.0, 6.0, G)
	io.Pforan("L1=%v L2=%v L3=%v\n", L1, L2, L3)
	if L1 <= 0 || L2 <= 0 || L3 <= 0 {
		tst.Errorf("flexibilities must be positive\n")
		return
	}

	// laterally wide patch: longitudinal direction is the stiffer one
	l1w, l2w, _ := Flexibilities(4.0, 12.0, G)
	if l1w >= l2w {
		tst.Errorf("L1 must be below L2 for a wide patch: %g >= %g\n", l1w, l2w)
		return
	}
	l1, _, _ := Flexibilities(12.0, 12.0, G)
	chk.Scalar(tst, "L1 scales with a", 1e-12*l1, l1, 2.0*L1)

	// degenerate patch is rejected
	prs, _ := spherePressure(tst, 100e3)
	empty := &contact.Patch{Y: prs.Patch().Y, Dy: prs.Patch().Dy, A: make([]float64, len(prs.Patch().Y)), G: make([]float64, len(prs.Patch().Y))}
	if _, _, err := EquivalentEllipse(empty); err == nil {
		tst.Errorf("degenerate ellipse must fail\n")
	}
}
