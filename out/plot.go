// Copyright 2020 The Pkmodel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements plotting of profiles and contact results
package out

import (
	"github.com/cpmech/gosl/plt"

	"github.com/wenquantongxin/piotrowski-kik-model/contact"
)

// Profiles plots the wheel and rail cross-sections
func Profiles(dirout, fnkey string, wheel, rail *contact.Profile) {
	plt.Reset(false, nil)
	plt.Plot(rail.Y, rail.Z, &plt.A{C: "b", L: "rail"})
	plt.Plot(wheel.Y, wheel.Z, &plt.A{C: "r", Ls: "--", L: "wheel"})
	plt.Gll("$y$ [mm]", "$z$ [mm]", nil)
	plt.Save(dirout, fnkey)
}

// Penetration plots separation and interpenetration along the lateral axis
func Penetration(dirout, fnkey string, pch *contact.Patch) {
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(pch.Y, pch.Sep, &plt.A{C: "b", L: "separation"})
	plt.Gll("$y$ [mm]", "$s$ [mm]", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(pch.Y, pch.G, &plt.A{C: "r", L: "interpenetration"})
	plt.Gll("$y$ [mm]", "$g$ [mm]", nil)
	plt.Save(dirout, fnkey)
}

// PressureDistribution plots the peak pressure of each slice along y
func PressureDistribution(dirout, fnkey string, prs *contact.Pressure) {
	pch := prs.Patch()
	p0 := make([]float64, len(pch.Y))
	for j := range pch.Y {
		p0[j] = prs.P0(j)
	}
	plt.Reset(false, nil)
	plt.Plot(pch.Y, p0, &plt.A{C: "b", L: "peak pressure"})
	plt.Gll("$y$ [mm]", "$p_0$ [MPa]", nil)
	plt.Save(dirout, fnkey)
}

// PatchOutline plots the contact patch boundary x = ±a(y)
func PatchOutline(dirout, fnkey string, pch *contact.Patch) {
	top := make([]float64, len(pch.Y))
	bot := make([]float64, len(pch.Y))
	for j, a := range pch.A {
		top[j] = a
		bot[j] = -a
	}
	plt.Reset(false, nil)
	plt.Plot(pch.Y, top, &plt.A{C: "b"})
	plt.Plot(pch.Y, bot, &plt.A{C: "b"})
	plt.Gll("$y$ [mm]", "$x$ [mm]", nil)
	plt.Equal()
	plt.Save(dirout, fnkey)
}
