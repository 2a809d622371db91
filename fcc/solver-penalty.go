// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcc

import (
	"github.com/HisuiFlask77/gofcc/nlp"
	"github.com/cpmech/gosl/io"
)

// PenaltySolver implements optimization mode: all unknowns are free within
// their bounds and the gasoline yield, discounted by the quadratic slack
// penalty, is maximized with a damped Gauss-Newton iteration on the penalty
// merit. When warm starting is enabled, the rating solution at the initial
// catalyst and air flows seeds the iteration
type PenaltySolver struct {
	dom *Domain
}

// add to factory
func init() {
	allocators["penalty"] = func(d *Domain) Solver {
		return &PenaltySolver{dom: d}
	}
}

// Run maximizes the objective subject to the model equations and bounds
func (o *PenaltySolver) Run(verbose bool) (sol *nlp.Solution, err error) {
	p, err := o.dom.Problem(false)
	if err != nil {
		return
	}
	cfg := &o.dom.Sim.Solver

	// seed from the rating solution at the initial flows
	if cfg.WarmStart {
		wsol, werr := (&NewtonSolver{dom: o.dom}).Run(false)
		if werr == nil {
			copy(p.X0, wsol.X)
			p.Clamp(p.X0)
			if verbose {
				io.Pf("warm start: rating residual = %g\n", wsol.Resid)
			}
		} else if verbose {
			io.Pforan("warm start failed (%v); starting from initial values\n", werr)
		}
	}

	lm := nlp.LM{
		NmaxIt: cfg.NmaxIt,
		Ftol:   cfg.Ftol,
		Atol:   cfg.Atol,
		ObjFac: cfg.ObjFac,
		ShowR:  cfg.ShowR && verbose,
	}
	return lm.Solve(p, verbose)
}
