// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/HisuiFlask77/gofcc/inp"
	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/chk"
)

// testState returns a layout for n grid points, the default plant data, the
// six-lump network and a generic in-bounds state vector
func testState(tst *testing.T, n int) (lay *Layout, plant *inp.PlantData, net *kin.Network, x []float64) {
	sim := new(inp.Simulation)
	sim.SetDefaults()
	plant = &sim.Plant
	net, err := kin.New("sixlump")
	if err != nil {
		tst.Errorf("cannot load kinetic scheme:\n%v", err)
		return
	}
	lay = NewLayout(n)
	x = make([]float64, lay.Nx)
	for i := 0; i < n; i++ {
		y := []float64{0.55, 0.2, 0.12, 0.06, 0.04, 0.03}
		for l := 0; l < kin.Nlumps; l++ {
			x[lay.Y(i, kin.Lump(l))] = y[l]
		}
		x[lay.T(i)] = 820.0
		x[lay.Phi(i)] = 0.9
	}
	x[lay.Tregen()] = 980.0
	x[lay.CokeSpent()] = 0.015
	x[lay.CokeRegen()] = 0.002
	x[lay.Fcat()] = 600.0
	x[lay.Air()] = 60.0
	x[lay.SlackEb()] = 0.1
	x[lay.SlackComb()] = -0.2
	return
}

func Test_inlet01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inlet01. boundary-coupling residuals")

	lay, plant, _, x := testState(tst, 2)
	e := NewInlet(lay, plant)
	chk.IntAssert(e.Neq(), 8)

	// state satisfying all inlet equations exactly
	for l := 0; l < kin.Nlumps; l++ {
		x[lay.Y(0, kin.Lump(l))] = 0
	}
	x[lay.Y(0, kin.VGO)] = 1.0
	hf := plant.FeedFlow * plant.OilCp
	hc := x[lay.Fcat()] * plant.CatCp
	x[lay.T(0)] = (hf*plant.FeedTemp + hc*x[lay.Tregen()]) / (hf + hc)
	x[lay.Phi(0)] = 1.0 - x[lay.CokeRegen()]

	fb := make([]float64, lay.Ne)
	err := e.AddToRhs(fb, &Solution{X: x})
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	for m := 0; m < e.Neq(); m++ {
		chk.Scalar(tst, "inlet residual", 1e-8, fb[m], 0)
	}

	// perturbations map one to one onto the residuals
	x[lay.Y(0, kin.DSL)] = 0.05
	x[lay.Phi(0)] += 0.01
	for m := range fb {
		fb[m] = 0
	}
	e.AddToRhs(fb, &Solution{X: x})
	chk.Scalar(tst, "composition residual", 1e-15, fb[lay.EqPoint(0)+int(kin.DSL)], 0.05)
	chk.Scalar(tst, "activity residual", 1e-12, fb[lay.EqPoint(0)+kin.Nlumps+1], 0.01)
}

func Test_inlet02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("inlet02. boundary-coupling Jacobian")

	lay, plant, _, x := testState(tst, 2)
	e := NewInlet(lay, plant)
	CheckKb(tst, lay, e, x, 1e-4, 1e-4, chk.Verbose)
}

func Test_riser01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("riser01. grid-point residuals")

	lay, plant, net, x := testState(tst, 2)
	e := NewRiserPoint(1, lay, net, plant)
	chk.IntAssert(e.Neq(), 8)

	// with zero activity at point 1 all rates vanish: the residuals reduce to
	// pure backward differences
	x[lay.Phi(1)] = 0
	x[lay.Y(1, kin.VGO)] = 0.50
	x[lay.T(1)] = 800.0
	fb := make([]float64, lay.Ne)
	err := e.AddToRhs(fb, &Solution{X: x})
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	eq := lay.EqPoint(1)
	chk.Scalar(tst, "mass balance VGO", 1e-15, fb[eq+int(kin.VGO)], 0.50-0.55)
	chk.Scalar(tst, "mass balance DSL", 1e-15, fb[eq+int(kin.DSL)], 0)
	chk.Scalar(tst, "energy balance", 1e-13, fb[eq+kin.Nlumps], 800.0-820.0)
	chk.Scalar(tst, "deactivation", 1e-15, fb[eq+kin.Nlumps+1], 0-0.9)

	// with active catalyst the balances must match the network directly
	x[lay.Phi(1)] = 0.9
	y := x[lay.Y(1, 0):lay.T(1)]
	netp := make([]float64, kin.Nlumps)
	net.NetProd(netp, y, x[lay.T(1)], 0.9)
	dztau := lay.Dz * plant.Tau()
	for m := range fb {
		fb[m] = 0
	}
	e.AddToRhs(fb, &Solution{X: x})
	chk.Scalar(tst, "mass balance VGO with rates", 1e-14, fb[eq+int(kin.VGO)], 0.50-0.55-dztau*netp[kin.VGO])
	chk.Scalar(tst, "mass balance COKE with rates", 1e-14, fb[eq+int(kin.COKE)], -dztau*netp[kin.COKE])

	cp := plant.OilCp + x[lay.Fcat()]/plant.FeedFlow*plant.CatCp
	sum := net.TotalRate(y, x[lay.T(1)], 0.9)
	chk.Scalar(tst, "energy balance with rates", 1e-12, fb[eq+kin.Nlumps], 800.0-820.0+dztau*plant.DHrxn*sum/cp)
	chk.Scalar(tst, "deactivation with coke", 1e-14, fb[eq+kin.Nlumps+1], 0.9-0.9+dztau*2.0*0.9*x[lay.Y(1, kin.COKE)])
}

func Test_riser02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("riser02. grid-point Jacobian")

	lay, plant, net, x := testState(tst, 3)

	// make the state non-uniform so no derivative vanishes by accident
	x[lay.Y(1, kin.VGO)] = 0.48
	x[lay.Y(1, kin.GAS)] = 0.17
	x[lay.T(1)] = 840.0
	x[lay.Phi(1)] = 0.85

	for i := 1; i < lay.N; i++ {
		e := NewRiserPoint(i, lay, net, plant)
		CheckKb(tst, lay, e, x, 1e-6, 1e-6, chk.Verbose)
	}
}

func Test_regen01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("regen01. regenerator residuals and Jacobian")

	lay, plant, net, x := testState(tst, 2)
	e := NewRegenerator(lay, plant, net)
	chk.IntAssert(e.Neq(), 3)

	fb := make([]float64, lay.Ne)
	err := e.AddToRhs(fb, &Solution{X: x})
	if err != nil {
		tst.Errorf("AddToRhs failed:\n%v", err)
		return
	}
	eq := lay.EqRegen()

	// coke balance closes when cs = cr + yc·Ff/Fc
	x2 := make([]float64, lay.Nx)
	copy(x2, x)
	x2[lay.CokeSpent()] = x[lay.CokeRegen()] + x[lay.Y(1, kin.COKE)]*plant.FeedFlow/x[lay.Fcat()]
	for m := range fb {
		fb[m] = 0
	}
	e.AddToRhs(fb, &Solution{X: x2})
	chk.Scalar(tst, "closed coke balance", 1e-15, fb[eq+0], 0)

	// slack columns enter linearly with coefficient -1
	for m := range fb {
		fb[m] = 0
	}
	e.AddToRhs(fb, &Solution{X: x})
	x2 = make([]float64, lay.Nx)
	copy(x2, x)
	x2[lay.SlackEb()] += 1.0
	x2[lay.SlackComb()] += 2.0
	fb2 := make([]float64, lay.Ne)
	e.AddToRhs(fb2, &Solution{X: x2})
	chk.Scalar(tst, "slackEb column", 1e-12, fb2[eq+1]-fb[eq+1], -1.0)
	chk.Scalar(tst, "slackComb column", 1e-12, fb2[eq+2]-fb[eq+2], -2.0)

	// Jacobian
	CheckKb(tst, lay, e, x, 1e-4, 1e-3, chk.Verbose)
}
