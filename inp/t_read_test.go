// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read full simulation file")

	sim, err := ReadSim("data/abadan.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}

	io.Pforan("desc   = %v\n", sim.Data.Desc)
	io.Pforan("scheme = %v\n", sim.Data.Scheme)
	io.Pforan("ngrid  = %v\n", sim.Ngrid)

	chk.IntAssert(sim.Ngrid, 31)
	chk.String(tst, sim.Data.Scheme, "sixlump")
	chk.Scalar(tst, "rlen", 1e-15, sim.Plant.RiserLength, 32.5)
	chk.Scalar(tst, "rarea", 1e-15, sim.Plant.RiserArea, 1.815)
	chk.Scalar(tst, "qfeed", 1e-15, sim.Plant.FeedFlow, 76.159)
	chk.Scalar(tst, "tfeed", 1e-15, sim.Plant.FeedTemp, 550.0)
	chk.Scalar(tst, "catcp", 1e-15, sim.Plant.CatCp, 1.1)
	chk.Scalar(tst, "oilcp", 1e-15, sim.Plant.OilCp, 2.5)
	chk.Scalar(tst, "tau", 1e-13, sim.Plant.Tau(), 32.5*1.815*5.0/76.159)

	// kinetic network is loaded and validated
	if sim.Net == nil {
		tst.Errorf("kinetic network was not loaded")
		return
	}
	chk.IntAssert(sim.Net.Nrxn(), 15)

	// bounds and initial guesses
	chk.Scalar(tst, "y.ini", 1e-15, sim.Vars.Y.Ini, 0.1)
	chk.Scalar(tst, "yfeedini", 1e-15, sim.Vars.YfeedIni, 0.9)
	chk.Scalar(tst, "tregen.min", 1e-15, sim.Vars.Tregen.Min, 800.0)
	chk.Scalar(tst, "cokeregen.min", 1e-20, sim.Vars.CokeRegen.Min, 1e-6)

	// solver data
	chk.String(tst, sim.Solver.Type, "penalty")
	chk.IntAssert(sim.Solver.NmaxIt, 3000)
	chk.Scalar(tst, "penweight", 1e-15, sim.Solver.PenWeight, 1000.0)
	if !sim.Solver.WarmStart {
		tst.Errorf("warm start must be enabled")
		return
	}

	// output directory comes from the file
	chk.String(tst, sim.DirOut, "/tmp/gofcc")

	// and defaults to /tmp/gofcc/<fnkey> when absent
	io.WriteFileSD("/tmp/gofcc/inp", "nodirout.sim", `{ "ngrid" : 5 }`)
	sim, err = ReadSim("/tmp/gofcc/inp/nodirout.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.DirOut, "/tmp/gofcc/nodirout")
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. kinetic table file and parameter overrides")

	sim, err := ReadSim("data/abadan-kin.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}

	// kinetic table from .kin file
	chk.IntAssert(sim.Net.Nrxn(), 15)
	chk.String(tst, sim.Net.Reactions[0].Name, "r1")
	if sim.Net.Reactions[0].Order != kin.SourceQuadratic {
		tst.Errorf("r1 must be quadratic in the source fraction")
		return
	}
	if sim.Net.Reactions[5].Order != kin.SourceLinear {
		tst.Errorf("r6 must be linear in the source fraction")
		return
	}

	// prms overrides on top of defaults
	chk.Scalar(tst, "tfeed", 1e-15, sim.Plant.FeedTemp, 560.0)
	chk.Scalar(tst, "taucte", 1e-15, sim.Plant.TauCte, 4.0)
	chk.Scalar(tst, "rlen (default)", 1e-15, sim.Plant.RiserLength, 32.5)
	chk.IntAssert(sim.Ngrid, 11)
	chk.String(tst, sim.Solver.Type, "newton")
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. validation rejections")

	newSim := func() *Simulation {
		o := new(Simulation)
		o.SetDefaults()
		return o
	}

	// defaults are valid
	if err := newSim().Validate(); err != nil {
		tst.Errorf("default configuration must be valid:\n%v", err)
		return
	}

	// each broken field must be rejected with a ConfigError
	for _, tc := range []struct {
		label string
		mod   func(o *Simulation)
	}{
		{"ngrid < 2", func(o *Simulation) { o.Ngrid = 1 }},
		{"negative feed flow", func(o *Simulation) { o.Plant.FeedFlow = -1 }},
		{"zero riser length", func(o *Simulation) { o.Plant.RiserLength = 0 }},
		{"zero heat capacity", func(o *Simulation) { o.Plant.CatCp = 0 }},
		{"zero taucte", func(o *Simulation) { o.Plant.TauCte = 0 }},
		{"zero activation energy", func(o *Simulation) { o.Plant.Ecomb = 0 }},
		{"temperature lower bound", func(o *Simulation) { o.Vars.T.Min = 0 }},
		{"regenerator temperature lower bound", func(o *Simulation) { o.Vars.Tregen.Min = -10 }},
		{"catalyst flow lower bound", func(o *Simulation) { o.Vars.Fcat.Min = 0 }},
		{"air flow lower bound", func(o *Simulation) { o.Vars.Air.Min = 0 }},
		{"swapped bounds", func(o *Simulation) { o.Vars.Phi.Min, o.Vars.Phi.Max = 2, 1 }},
		{"initial guess out of bounds", func(o *Simulation) { o.Vars.Fcat.Ini = 5000 }},
		{"feed initial guess out of bounds", func(o *Simulation) { o.Vars.YfeedIni = 1.5 }},
		{"zero iterations", func(o *Simulation) { o.Solver.NmaxIt = 0 }},
		{"negative penalty weight", func(o *Simulation) { o.Solver.PenWeight = -1 }},
	} {
		o := newSim()
		tc.mod(o)
		err := o.Validate()
		if err == nil {
			tst.Errorf("%s must be rejected", tc.label)
			return
		}
		if _, ok := err.(*ConfigError); !ok {
			tst.Errorf("%s must yield a ConfigError; got %T", tc.label, err)
			return
		}
		io.Pf("%-40s : %v\n", tc.label, err)
	}

	// missing file
	if _, err := ReadSim("data/nonexistent.sim"); err == nil {
		tst.Errorf("missing simulation file must be rejected")
		return
	}
}

func Test_kin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kin01. read kinetic table file")

	net, err := ReadKin("data/sixlump.kin")
	if err != nil {
		tst.Errorf("ReadKin failed:\n%v", err)
		return
	}
	chk.IntAssert(net.Nrxn(), 15)
	chk.Scalar(tst, "rgas", 1e-15, net.Rgas, 8.314)
	chk.Scalar(tst, "eps", 1e-22, net.Eps, 1e-8)
	chk.Scalar(tst, "k0 of r1", 1e-15, net.Reactions[0].K0, 7957.29)
	chk.Scalar(tst, "ea of r15", 1e-15, net.Reactions[14].Ea, 53046.0)
	chk.IntAssert(int(net.Reactions[14].Src), int(kin.DG))
	chk.IntAssert(int(net.Reactions[14].Dst), int(kin.COKE))

	// malformed tables
	io.WriteFileSD("/tmp/gofcc/inp", "badorder.kin",
		`{"reactions":[{"name":"r1","k0":1,"ea":1000,"src":"VGO","dst":"DSL","order":"cubic"}]}`)
	if _, err = ReadKin("/tmp/gofcc/inp/badorder.kin"); err == nil {
		tst.Errorf("unknown rate order must be rejected")
		return
	}

	io.WriteFileSD("/tmp/gofcc/inp", "badlump.kin",
		`{"reactions":[{"name":"r1","k0":1,"ea":1000,"src":"NAPHTHA","dst":"DSL"}]}`)
	if _, err = ReadKin("/tmp/gofcc/inp/badlump.kin"); err == nil {
		tst.Errorf("unknown lump name must be rejected")
		return
	}

	io.WriteFileSD("/tmp/gofcc/inp", "empty.kin", `{"reactions":[]}`)
	if _, err = ReadKin("/tmp/gofcc/inp/empty.kin"); err == nil {
		tst.Errorf("empty reaction table must be rejected")
		return
	}
}
