// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcc

import "github.com/HisuiFlask77/gofcc/nlp"

// NewtonSolver implements rating mode: the catalyst and air flows are pinned
// at their initial values and the slacks at zero, making the system exactly
// square; a Newton iteration then finds the operating point those flows imply.
// No objective is involved
type NewtonSolver struct {
	dom *Domain
}

// add to factory
func init() {
	allocators["newton"] = func(d *Domain) Solver {
		return &NewtonSolver{dom: d}
	}
}

// Run solves the square rating system
func (o *NewtonSolver) Run(verbose bool) (sol *nlp.Solution, err error) {
	p, err := o.dom.Problem(true)
	if err != nil {
		return
	}
	cfg := &o.dom.Sim.Solver
	nwt := nlp.Newton{NmaxIt: cfg.NmaxIt, Ftol: cfg.Ftol, Atol: cfg.Atol}
	return nwt.Solve(p, verbose)
}
