// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"math"

	"github.com/HisuiFlask77/gofcc/inp"
	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/la"
)

// Regenerator implements the lumped coke and heat balances of the catalyst
// regeneration loop:
//
//   Cs - Cr - y(N-1,COKE)·Ff/Fc                                  = 0
//   Fc·Cpc·T(N-1) + (Cs-Cr)·Fc·ΔHc - Fc·Cpc·Tregen - slackEb     = 0
//   (Cs-Cr)·Fc - kc(Tregen)·Cs·Fc·√Air - slackComb               = 0
//
// with kc(T) = Kcomb·exp(-Ecomb/(R·T)). The two slack variables turn the heat
// and combustion balances into soft constraints; their magnitudes are
// penalized in the objective (exact-penalty relaxation) instead of being
// forced to zero by the solver. Air flow is bounded strictly positive at
// setup so the square root stays in domain
type Regenerator struct {
	Lay   *Layout        // variable/equation layout
	Plant *inp.PlantData // physical scalars
	Rgas  float64        // gas constant shared with the kinetic network
}

// NewRegenerator returns a new regenerator element
func NewRegenerator(lay *Layout, plant *inp.PlantData, net *kin.Network) *Regenerator {
	return &Regenerator{Lay: lay, Plant: plant, Rgas: net.Rgas}
}

// Neq returns the number of equations contributed
func (o *Regenerator) Neq() int { return 3 }

// AddToRhs adds element residuals R to the global vector fb
func (o *Regenerator) AddToRhs(fb []float64, sol *Solution) (err error) {
	x := sol.X
	eq := o.Lay.EqRegen()
	exit := o.Lay.N - 1

	cs := x[o.Lay.CokeSpent()]
	cr := x[o.Lay.CokeRegen()]
	fc := x[o.Lay.Fcat()]
	tr := x[o.Lay.Tregen()]
	air := x[o.Lay.Air()]
	ycExit := x[o.Lay.Y(exit, kin.COKE)]

	// coke balance
	fb[eq+0] += cs - cr - ycExit*o.Plant.FeedFlow/fc

	// heat balance (soft)
	fb[eq+1] += fc*o.Plant.CatCp*x[o.Lay.T(exit)] + (cs-cr)*fc*o.Plant.DHcomb -
		fc*o.Plant.CatCp*tr - x[o.Lay.SlackEb()]

	// combustion rate (soft)
	kc := o.Plant.Kcomb * math.Exp(-o.Plant.Ecomb/(o.Rgas*tr))
	fb[eq+2] += (cs-cr)*fc - kc*cs*fc*math.Sqrt(air) - x[o.Lay.SlackComb()]
	return
}

// AddToKb adds element dR/dx to the global Jacobian matrix Kb
func (o *Regenerator) AddToKb(Kb *la.Triplet, sol *Solution) (err error) {
	x := sol.X
	eq := o.Lay.EqRegen()
	exit := o.Lay.N - 1

	cs := x[o.Lay.CokeSpent()]
	cr := x[o.Lay.CokeRegen()]
	fc := x[o.Lay.Fcat()]
	tr := x[o.Lay.Tregen()]
	air := x[o.Lay.Air()]
	ycExit := x[o.Lay.Y(exit, kin.COKE)]

	// coke balance
	Kb.Put(eq+0, o.Lay.CokeSpent(), 1.0)
	Kb.Put(eq+0, o.Lay.CokeRegen(), -1.0)
	Kb.Put(eq+0, o.Lay.Y(exit, kin.COKE), -o.Plant.FeedFlow/fc)
	Kb.Put(eq+0, o.Lay.Fcat(), ycExit*o.Plant.FeedFlow/(fc*fc))

	// heat balance
	Kb.Put(eq+1, o.Lay.T(exit), fc*o.Plant.CatCp)
	Kb.Put(eq+1, o.Lay.CokeSpent(), fc*o.Plant.DHcomb)
	Kb.Put(eq+1, o.Lay.CokeRegen(), -fc*o.Plant.DHcomb)
	Kb.Put(eq+1, o.Lay.Tregen(), -fc*o.Plant.CatCp)
	Kb.Put(eq+1, o.Lay.Fcat(), o.Plant.CatCp*(x[o.Lay.T(exit)]-tr)+(cs-cr)*o.Plant.DHcomb)
	Kb.Put(eq+1, o.Lay.SlackEb(), -1.0)

	// combustion rate
	kc := o.Plant.Kcomb * math.Exp(-o.Plant.Ecomb/(o.Rgas*tr))
	sq := math.Sqrt(air)
	q := kc * cs * fc * sq
	Kb.Put(eq+2, o.Lay.CokeSpent(), fc-kc*fc*sq)
	Kb.Put(eq+2, o.Lay.CokeRegen(), -fc)
	Kb.Put(eq+2, o.Lay.Fcat(), (cs-cr)-kc*cs*sq)
	Kb.Put(eq+2, o.Lay.Tregen(), -q*o.Plant.Ecomb/(o.Rgas*tr*tr))
	Kb.Put(eq+2, o.Lay.Air(), -q/(2.0*air))
	Kb.Put(eq+2, o.Lay.SlackComb(), -1.0)
	return
}
