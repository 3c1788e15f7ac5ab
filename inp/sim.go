// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file and
// from wheel/rail profile tables
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// Simulation holds all data for one contact evaluation
type Simulation struct {

	// global information
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/pkmodel

	// geometry
	WheelPath string  `json:"wheel"`  // path to wheel profile table
	RailPath  string  `json:"rail"`   // path to rail profile table
	WheelSkip int     `json:"wskip"`  // header lines to skip in wheel table
	RailSkip  int     `json:"rskip"`  // header lines to skip in rail table
	FlipZ     bool    `json:"flipz"`  // profile tables store depth; point z-axis upwards
	Offset    float64 `json:"offset"` // lateral shift of wheel relative to rail [mm]
	R0        float64 `json:"r0"`     // nominal rolling radius [mm]
	InSitu    bool    `json:"insitu"` // use in-situ rolling radius per slice
	Gap       float64 `json:"gap"`    // extra clearance between touching profiles [mm]

	// material
	E  float64 `json:"e"`  // Young's modulus [MPa]
	Nu float64 `json:"nu"` // Poisson's ratio
	Mu float64 `json:"mu"` // friction coefficient

	// loading
	Load float64 `json:"load"` // target normal load [N]
	Xix  float64 `json:"xix"`  // longitudinal creepage [-]
	Xiy  float64 `json:"xiy"`  // lateral creepage [-]
	Phi  float64 `json:"phi"`  // spin creepage [1/mm]

	// discretisation
	Ny    int `json:"ny"`    // lateral slices
	Nx    int `json:"nx"`    // elements per row (rolling direction)
	Nquad int `json:"nquad"` // quadrature stations per slice

	// force balance
	Eps    float64 `json:"eps"`    // virtual-to-actual penetration ratio
	Tol    float64 `json:"tol"`    // relative tolerance on the balanced load
	ItMax  int     `json:"itmax"`  // root-find iteration cap
	MaxPen float64 `json:"maxpen"` // upper bound for the virtual penetration [mm]

	// derived
	Dir string // directory of the .sim file; profile paths are relative to it
}

// SetDefaults fills zero-valued fields with defaults
func (o *Simulation) SetDefaults() {
	if o.DirOut == "" {
		o.DirOut = "/tmp/pkmodel"
	}
	if o.R0 == 0 {
		o.R0 = 460.0
	}
	if o.E == 0 {
		o.E = 183000.0
	}
	if o.Nu == 0 {
		o.Nu = 0.3
	}
	if o.Mu == 0 {
		o.Mu = 0.3
	}
	if o.Ny == 0 {
		o.Ny = 201
	}
	if o.Nx == 0 {
		o.Nx = 50
	}
	if o.Nquad == 0 {
		o.Nquad = 64
	}
	if o.Eps == 0 {
		o.Eps = 0.55
	}
	if o.Tol == 0 {
		o.Tol = 1e-6
	}
	if o.ItMax == 0 {
		o.ItMax = 100
	}
	if o.MaxPen == 0 {
		o.MaxPen = 2.0
	}
}

// Check validates the simulation data before any computation starts
func (o *Simulation) Check() (err error) {
	if o.WheelPath == "" || o.RailPath == "" {
		return chk.Err("simulation: wheel and rail profile paths are required")
	}
	if o.Load < 0 {
		return chk.Err("simulation: load=%g is invalid", o.Load)
	}
	if o.Mu <= 0 {
		return chk.Err("simulation: friction coefficient mu=%g is invalid", o.Mu)
	}
	if o.E <= 0 || o.Nu < 0 || o.Nu >= 0.5 {
		return chk.Err("simulation: material E=%g nu=%g is invalid", o.E, o.Nu)
	}
	return
}

// ContactParams returns the parameters for the penetration solver
func (o *Simulation) ContactParams() fun.Params {
	insitu := 0.0
	if o.InSitu {
		insitu = 1.0
	}
	return fun.Params{
		&fun.P{N: "E", V: o.E},
		&fun.P{N: "nu", V: o.Nu},
		&fun.P{N: "R0", V: o.R0},
		&fun.P{N: "insitu", V: insitu},
		&fun.P{N: "gap", V: o.Gap},
		&fun.P{N: "eps", V: o.Eps},
		&fun.P{N: "ny", V: float64(o.Ny)},
		&fun.P{N: "nquad", V: float64(o.Nquad)},
		&fun.P{N: "tol", V: o.Tol},
		&fun.P{N: "itmax", V: float64(o.ItMax)},
		&fun.P{N: "maxpen", V: o.MaxPen},
	}
}

// CreepParams returns the parameters for the creep-force solver
func (o *Simulation) CreepParams() fun.Params {
	return fun.Params{
		&fun.P{N: "mu", V: o.Mu},
		&fun.P{N: "E", V: o.E},
		&fun.P{N: "nu", V: o.Nu},
		&fun.P{N: "nx", V: float64(o.Nx)},
	}
}

// ReadSim reads and validates a simulation file
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	o.Dir = filepath.Dir(simfilepath)
	o.SetDefaults()
	err = o.Check()
	if err != nil {
		return nil, err
	}
	return
}
