// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/wenquantongxin/piotrowski-kik-model/contact"
	"github.com/wenquantongxin/piotrowski-kik-model/creep"
	"github.com/wenquantongxin/piotrowski-kik-model/inp"
	"github.com/wenquantongxin/piotrowski-kik-model/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	simfnpath, _ := io.ArgToFilename(0, "inp/data/contact", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nPkmodel -- semi-Hertzian wheel-rail contact\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename path", "simfnpath", simfnpath,
			"show messages", "verbose", verbose,
			"save plots", "doplot", doplot,
		))
	}

	// input data
	sim, err := inp.ReadSim(simfnpath)
	if err != nil {
		chk.Panic("cannot load simulation:\n%v", err)
	}
	wheel, rail, err := inp.ReadProfiles(sim)
	if err != nil {
		chk.Panic("cannot load profiles:\n%v", err)
	}

	// normal problem: contact patch and pressure
	var psolver contact.Solver
	err = psolver.Init(sim.ContactParams())
	if err != nil {
		chk.Panic("cannot initialise penetration solver:\n%v", err)
	}
	err = psolver.SetProfiles(wheel, rail, sim.Offset)
	if err != nil {
		chk.Panic("cannot set profiles:\n%v", err)
	}
	pch, err := psolver.Solve(sim.Load)
	if err != nil {
		chk.Panic("force balance failed:\n%v", err)
	}
	if pch.NoContact {
		io.PfYel("no contact: bodies do not touch at load = %g N\n", sim.Load)
		return
	}
	prs := contact.NewPressure(pch)

	// tangential problem: creep forces
	var csolver creep.Solver
	err = csolver.Init(sim.CreepParams())
	if err != nil {
		chk.Panic("cannot initialise creep solver:\n%v", err)
	}
	crp := &creep.Creepage{Xix: sim.Xix, Xiy: sim.Xiy, Phi: sim.Phi}
	forces, err := csolver.Solve(prs, crp)
	if err != nil {
		chk.Panic("creep-force solution failed:\n%v", err)
	}

	// results
	if verbose {
		ylo, yhi := pch.Bounds()
		amax, _ := pch.Amax()
		io.Pf("%v\n", io.ArgsTable("RESULTS",
			"virtual penetration [mm]", "delta0", io.Sf("%.6f", pch.Delta0),
			"penetration [mm]", "delta", io.Sf("%.6f", pch.Delta),
			"balanced load [N]", "N", io.Sf("%.1f", pch.Load),
			"residual [-]", "res", io.Sf("%.2e", pch.Residual),
			"iterations", "it", pch.It,
			"patch extent [mm]", "ylo:yhi", io.Sf("%.2f : %.2f", ylo, yhi),
			"max half-width [mm]", "amax", io.Sf("%.3f", amax),
			"peak pressure [MPa]", "pmax", io.Sf("%.1f", prs.Pmax()),
			"creep force Fx [N]", "Fx", io.Sf("%.1f", forces.Fx),
			"creep force Fy [N]", "Fy", io.Sf("%.1f", forces.Fy),
			"spin moment Mz [N·mm]", "Mz", io.Sf("%.1f", forces.Mz),
			"adhesion elements", "nadh", forces.Nadh,
			"slip elements", "nslip", forces.Nslip,
		))
	}

	// plots
	if doplot {
		out.Profiles(sim.DirOut, "profiles", wheel, rail)
		out.Penetration(sim.DirOut, "penetration", pch)
		out.PressureDistribution(sim.DirOut, "pressure", prs)
		out.PatchOutline(sim.DirOut, "patch", pch)
		if verbose {
			io.Pf("plots saved to %s\n", sim.DirOut)
		}
	}
}
