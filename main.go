// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/HisuiFlask77/gofcc/fcc"
	"github.com/HisuiFlask77/gofcc/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/abadan", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGofcc -- Fluid Catalytic Cracking Unit Model\n")
		io.Pf("Copyright 2026 The Gofcc Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"simulation filename", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot solved profiles", "doplot", doplot,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation file:\n%v", err)
	}

	// solve
	dom := fcc.NewDomain(sim)
	prof, err := dom.Run(verbose)
	if prof != nil {
		io.Pf("\n")
		prof.Report()
	}
	if err != nil {
		chk.Panic("solution failed:\n%v", err)
	}

	// plot
	if doplot {
		prof.Plot(sim.DirOut, fnkey)
	}
}
