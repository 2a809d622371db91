// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/HisuiFlask77/gofcc/inp"
	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/la"
)

// Inlet implements the boundary-coupling equations fixing grid point 0 and
// closing the recycle loop:
//
//   y(0,VGO) - 1                                        = 0
//   y(0,l)                                              = 0   (l ≠ VGO)
//   (Ff·Cpo + Fc·Cpc)·T(0) - Ff·Cpo·Tf - Fc·Cpc·Tregen  = 0   (mixing)
//   Φ(0) - 1 + cokeRegen                                = 0
//
// The mixing equation makes the riser inlet depend on the regenerator
// temperature, which itself depends on the riser exit: this element is what
// turns the profile into one closed algebraic loop
type Inlet struct {
	Lay   *Layout        // variable/equation layout
	Plant *inp.PlantData // physical scalars
}

// NewInlet returns a new boundary-coupling element
func NewInlet(lay *Layout, plant *inp.PlantData) *Inlet {
	return &Inlet{Lay: lay, Plant: plant}
}

// Neq returns the number of equations contributed
func (o *Inlet) Neq() int { return nvp }

// AddToRhs adds element residuals R to the global vector fb
func (o *Inlet) AddToRhs(fb []float64, sol *Solution) (err error) {
	x := sol.X
	eq := o.Lay.EqPoint(0)

	// fixed inlet composition
	fb[eq+int(kin.VGO)] += x[o.Lay.Y(0, kin.VGO)] - 1.0
	for l := 0; l < kin.Nlumps; l++ {
		if kin.Lump(l) != kin.VGO {
			fb[eq+l] += x[o.Lay.Y(0, kin.Lump(l))]
		}
	}

	// flow-weighted mixing of feed and hot regenerated catalyst
	hf := o.Plant.FeedFlow * o.Plant.OilCp
	hc := x[o.Lay.Fcat()] * o.Plant.CatCp
	fb[eq+kin.Nlumps] += (hf+hc)*x[o.Lay.T(0)] - hf*o.Plant.FeedTemp - hc*x[o.Lay.Tregen()]

	// inlet activity reduced by residual coke
	fb[eq+kin.Nlumps+1] += x[o.Lay.Phi(0)] - 1.0 + x[o.Lay.CokeRegen()]
	return
}

// AddToKb adds element dR/dx to the global Jacobian matrix Kb
func (o *Inlet) AddToKb(Kb *la.Triplet, sol *Solution) (err error) {
	x := sol.X
	eq := o.Lay.EqPoint(0)

	// composition rows
	for l := 0; l < kin.Nlumps; l++ {
		Kb.Put(eq+l, o.Lay.Y(0, kin.Lump(l)), 1.0)
	}

	// mixing row
	hf := o.Plant.FeedFlow * o.Plant.OilCp
	hc := x[o.Lay.Fcat()] * o.Plant.CatCp
	Kb.Put(eq+kin.Nlumps, o.Lay.T(0), hf+hc)
	Kb.Put(eq+kin.Nlumps, o.Lay.Fcat(), o.Plant.CatCp*(x[o.Lay.T(0)]-x[o.Lay.Tregen()]))
	Kb.Put(eq+kin.Nlumps, o.Lay.Tregen(), -hc)

	// activity row
	Kb.Put(eq+kin.Nlumps+1, o.Lay.Phi(0), 1.0)
	Kb.Put(eq+kin.Nlumps+1, o.Lay.CokeRegen(), 1.0)
	return
}
