// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcc

import (
	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/HisuiFlask77/gofcc/nlp"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// RegenState holds the solved regenerator scalars and operating decisions
type RegenState struct {
	Tregen    float64 // regenerator temperature [K]
	CokeSpent float64 // coke fraction on spent catalyst
	CokeRegen float64 // residual coke fraction after regeneration
	Fcat      float64 // catalyst circulation rate [kg/s]
	Air       float64 // combustion air flow [kg/s]
	SlackEb   float64 // heat-balance slack
	SlackComb float64 // combustion-balance slack
}

// Profile holds the solved riser profile together with the regenerator state,
// the objective value and the verbatim solver status
type Profile struct {
	Z      []float64   // [N] dimensionless axial positions
	Y      [][]float64 // [N][Nlumps] lump mass fractions
	T      []float64   // [N] temperatures [K]
	Phi    []float64   // [N] catalyst activities
	Regen  RegenState  // regenerator scalars
	Obj    float64     // objective value
	Status nlp.Status  // solver status
	Resid  float64     // max-norm of equality residuals
}

// Extract maps a flat solution vector into a structured profile
func (o *Domain) Extract(sol *nlp.Solution) (p *Profile) {
	n, x := o.Lay.N, sol.X
	p = &Profile{
		Z:      utl.LinSpace(0, 1, n),
		Y:      make([][]float64, n),
		T:      make([]float64, n),
		Phi:    make([]float64, n),
		Obj:    sol.Obj,
		Status: sol.Status,
		Resid:  sol.Resid,
	}
	for i := 0; i < n; i++ {
		p.Y[i] = make([]float64, kin.Nlumps)
		for l := 0; l < kin.Nlumps; l++ {
			p.Y[i][l] = x[o.Lay.Y(i, kin.Lump(l))]
		}
		p.T[i] = x[o.Lay.T(i)]
		p.Phi[i] = x[o.Lay.Phi(i)]
	}
	p.Regen = RegenState{
		Tregen:    x[o.Lay.Tregen()],
		CokeSpent: x[o.Lay.CokeSpent()],
		CokeRegen: x[o.Lay.CokeRegen()],
		Fcat:      x[o.Lay.Fcat()],
		Air:       x[o.Lay.Air()],
		SlackEb:   x[o.Lay.SlackEb()],
		SlackComb: x[o.Lay.SlackComb()],
	}
	return
}

// GasolineYield returns the gasoline mass fraction at the riser exit
func (o *Profile) GasolineYield() float64 {
	return o.Y[len(o.Y)-1][kin.GAS]
}

// Exit returns the lump fractions at the riser exit
func (o *Profile) Exit() []float64 {
	return o.Y[len(o.Y)-1]
}

// Report prints a summary of the solved operating point
func (o *Profile) Report() {
	n := len(o.Z)
	io.Pf("status            = %v\n", o.Status)
	io.Pf("residual          = %13.6e\n", o.Resid)
	io.Pf("objective         = %13.6e\n", o.Obj)
	io.Pf("gasoline yield    = %13.6e\n", o.GasolineYield())
	io.Pf("riser exit T      = %13.6e K\n", o.T[n-1])
	io.Pf("regenerator T     = %13.6e K\n", o.Regen.Tregen)
	io.Pf("catalyst flow     = %13.6e kg/s\n", o.Regen.Fcat)
	io.Pf("air flow          = %13.6e kg/s\n", o.Regen.Air)
	io.Pf("coke spent/regen  = %13.6e / %13.6e\n", o.Regen.CokeSpent, o.Regen.CokeRegen)
	io.Pf("slacks (eb, comb) = %13.6e, %13.6e\n", o.Regen.SlackEb, o.Regen.SlackComb)
	io.Pf("exit composition:\n")
	for l := 0; l < kin.Nlumps; l++ {
		io.Pf("  %-5s = %13.6e\n", kin.Lump(l), o.Y[n-1][l])
	}
}

// Plot draws the composition, temperature and activity profiles along the
// riser and saves the figure to dirout/fnkey.eps
func (o *Profile) Plot(dirout, fnkey string) {
	n := len(o.Z)
	plt.SetForEps(1.2, 455)

	plt.Subplot(3, 1, 1)
	for l := 0; l < kin.Nlumps; l++ {
		y := make([]float64, n)
		for i := 0; i < n; i++ {
			y[i] = o.Y[i][l]
		}
		plt.Plot(o.Z, y, io.Sf("label='%s'", kin.Lump(l)))
	}
	plt.Gll("$z$", "$y_l$", "")

	plt.Subplot(3, 1, 2)
	plt.Plot(o.Z, o.T, "'r-'")
	plt.Gll("$z$", "$T$ [K]", "")

	plt.Subplot(3, 1, 3)
	plt.Plot(o.Z, o.Phi, "'g-'")
	plt.Gll("$z$", "$\\Phi$", "")

	plt.SaveD(dirout, fnkey+".eps")
}
