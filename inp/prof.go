// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/wenquantongxin/piotrowski-kik-model/contact"
)

// ReadProfile reads one cross-section table: one "y z" pair per line,
// blank lines and '#' comments ignored, the first skip data lines dropped.
// With flipz, the z column is negated so the axis points upwards (profile
// tables commonly store depth below the reference).
func ReadProfile(fn string, skip int, flipz bool) (p *contact.Profile, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read profile file %q:\n%v", fn, err)
	}
	var y, z []float64
	nline := 0
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		nline++
		if nline <= skip {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, chk.Err("profile file %q: cannot parse line %q", fn, line)
		}
		y = append(y, io.Atof(fields[0]))
		if flipz {
			z = append(z, -io.Atof(fields[1]))
		} else {
			z = append(z, io.Atof(fields[1]))
		}
	}
	p, err = contact.NewProfile(y, z)
	if err != nil {
		return nil, chk.Err("profile file %q: %v", fn, err)
	}
	return
}

// ReadProfiles reads the wheel and rail tables referenced by a simulation;
// relative paths resolve against the simulation file's directory
func ReadProfiles(sim *Simulation) (wheel, rail *contact.Profile, err error) {
	wfn, rfn := sim.WheelPath, sim.RailPath
	if !filepath.IsAbs(wfn) {
		wfn = filepath.Join(sim.Dir, wfn)
	}
	if !filepath.IsAbs(rfn) {
		rfn = filepath.Join(sim.Dir, rfn)
	}
	wheel, err = ReadProfile(wfn, sim.WheelSkip, sim.FlipZ)
	if err != nil {
		return
	}
	rail, err = ReadProfile(rfn, sim.RailSkip, sim.FlipZ)
	return
}
