// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fcc assembles the discretized riser, the lumped regenerator and the
// boundary coupling into one joint nonlinear program and drives its solution
package fcc

import (
	"github.com/HisuiFlask77/gofcc/ele"
	"github.com/HisuiFlask77/gofcc/inp"
	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/HisuiFlask77/gofcc/nlp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// InconsistencyError reports a solved state violating the mass-conservation
// invariant: lump fractions at a grid point not summing to one within
// tolerance. This is a post-solve validation, not an equation of the system
type InconsistencyError struct {
	GridIdx int     // grid point index
	Sum     float64 // sum of lump mass fractions found
	Tol     float64 // tolerance used
}

// Error returns the error message
func (e *InconsistencyError) Error() string {
	return io.Sf("mass-conservation violated at grid point %d: lump fractions sum to %.8f (tolerance %g)", e.GridIdx, e.Sum, e.Tol)
}

// Domain holds the complete assembled system: the variable layout, all
// equation elements in grid-index order, and scratch space for joint
// residual/Jacobian assembly
type Domain struct {

	// input
	Sim *inp.Simulation // simulation data

	// derived
	Lay   *ele.Layout   // variable/equation layout
	Elems []ele.Element // inlet, interior points 1..N-1 (in order), regenerator
	Sol   *ele.Solution // solution vector (filled by Run)

	// scratch
	Kb la.Triplet // global Jacobian
}

// NewDomain returns a new domain with all elements allocated
func NewDomain(sim *inp.Simulation) (o *Domain) {
	o = new(Domain)
	o.Sim = sim
	o.Lay = ele.NewLayout(sim.Ngrid)

	// elements, strictly in grid-index order so that every interior point's
	// reference to the previous point resolves unambiguously
	o.Elems = append(o.Elems, ele.NewInlet(o.Lay, &sim.Plant))
	for i := 1; i < sim.Ngrid; i++ {
		o.Elems = append(o.Elems, ele.NewRiserPoint(i, o.Lay, sim.Net, &sim.Plant))
	}
	o.Elems = append(o.Elems, ele.NewRegenerator(o.Lay, &sim.Plant, sim.Net))

	// Jacobian triplet: interior points put 8×17 entries each; inlet and
	// regenerator are small
	o.Kb.Init(o.Lay.Ne, o.Lay.Nx, 136*(sim.Ngrid-1)+40)
	return
}

// AssembleRhs writes the full residual vector into fb. fb must have length Ne
func (o *Domain) AssembleRhs(fb, x []float64) (err error) {
	for i := range fb {
		fb[i] = 0
	}
	sol := &ele.Solution{X: x}
	for _, e := range o.Elems {
		err = e.AddToRhs(fb, sol)
		if err != nil {
			return
		}
	}
	return
}

// AssembleKb writes the full Jacobian into the internal triplet
func (o *Domain) AssembleKb(x []float64) (err error) {
	o.Kb.Start()
	sol := &ele.Solution{X: x}
	for _, e := range o.Elems {
		err = e.AddToKb(&o.Kb, sol)
		if err != nil {
			return
		}
	}
	return
}

// DenseKb assembles the Jacobian at x and returns it as a dense [Ne][Nx] matrix
func (o *Domain) DenseKb(x []float64) (J [][]float64, err error) {
	err = o.AssembleKb(x)
	if err != nil {
		return
	}
	return o.Kb.ToMatrix(nil).ToDense(), nil
}

// Objective computes the figure of merit: gasoline fraction at the riser exit
// minus the quadratic slack penalty (exact-penalty relaxation of the two soft
// regenerator balances)
func (o *Domain) Objective(x []float64) float64 {
	seb := x[o.Lay.SlackEb()]
	scb := x[o.Lay.SlackComb()]
	return x[o.Lay.Y(o.Lay.N-1, kin.GAS)] - o.Sim.Solver.PenWeight*(seb*seb+scb*scb)
}

// ObjGrad computes the gradient of the objective. g must have length Nx
func (o *Domain) ObjGrad(g, x []float64) {
	for i := range g {
		g[i] = 0
	}
	g[o.Lay.Y(o.Lay.N-1, kin.GAS)] = 1.0
	g[o.Lay.SlackEb()] = -2.0 * o.Sim.Solver.PenWeight * x[o.Lay.SlackEb()]
	g[o.Lay.SlackComb()] = -2.0 * o.Sim.Solver.PenWeight * x[o.Lay.SlackComb()]
}

// Problem emits the assembled system as a solver-agnostic nonlinear program.
// With simulate=true the operating decisions (catalyst and air flows) are
// pinned at their initial values and the slacks at zero, which makes the
// system square (rating mode); otherwise all unknowns are free within bounds
func (o *Domain) Problem(simulate bool) (p *nlp.Problem, err error) {
	v := &o.Sim.Vars
	p = &nlp.Problem{
		Nx:    o.Lay.Nx,
		Ne:    o.Lay.Ne,
		X0:    make([]float64, o.Lay.Nx),
		Lmin:  make([]float64, o.Lay.Nx),
		Lmax:  make([]float64, o.Lay.Nx),
		Names: o.Lay.Names(),
		Fcn:   func(fb, x []float64) error { return o.AssembleRhs(fb, x) },
		Jcn: func(Kb *la.Triplet, x []float64) error {
			Kb.Start()
			sol := &ele.Solution{X: x}
			for _, e := range o.Elems {
				if err := e.AddToKb(Kb, sol); err != nil {
					return err
				}
			}
			return nil
		},
		Obj:   o.Objective,
		Grad:  o.ObjGrad,
		Sense: nlp.Maximize,
		Jnnz:  136*(o.Lay.N-1) + 40,
	}

	// grid point unknowns
	set := func(idx int, r inp.Range) {
		p.Lmin[idx], p.Lmax[idx], p.X0[idx] = r.Min, r.Max, r.Ini
	}
	for i := 0; i < o.Lay.N; i++ {
		for l := 0; l < kin.Nlumps; l++ {
			set(o.Lay.Y(i, kin.Lump(l)), v.Y)
		}
		p.X0[o.Lay.Y(i, kin.VGO)] = v.YfeedIni
		set(o.Lay.T(i), v.T)
		set(o.Lay.Phi(i), v.Phi)
	}

	// regenerator scalars
	set(o.Lay.Tregen(), v.Tregen)
	set(o.Lay.CokeSpent(), v.CokeSpent)
	set(o.Lay.CokeRegen(), v.CokeRegen)
	set(o.Lay.Fcat(), v.Fcat)
	set(o.Lay.Air(), v.Air)
	set(o.Lay.SlackEb(), v.Slack)
	set(o.Lay.SlackComb(), v.Slack)

	// rating mode: pin decisions and slacks
	if simulate {
		pin := func(idx int, val float64) {
			p.Lmin[idx], p.Lmax[idx], p.X0[idx] = val, val, val
		}
		pin(o.Lay.Fcat(), v.Fcat.Ini)
		pin(o.Lay.Air(), v.Air.Ini)
		pin(o.Lay.SlackEb(), 0)
		pin(o.Lay.SlackComb(), 0)
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// CheckSolution validates the mass-conservation invariant at every grid point
func (o *Domain) CheckSolution(x []float64) (err error) {
	tol := o.Sim.Solver.MassTol
	for i := 0; i < o.Lay.N; i++ {
		sum := 0.0
		for l := 0; l < kin.Nlumps; l++ {
			sum += x[o.Lay.Y(i, kin.Lump(l))]
		}
		if sum < 1.0-tol || sum > 1.0+tol {
			return &InconsistencyError{GridIdx: i, Sum: sum, Tol: tol}
		}
	}
	return
}

// Run allocates the configured solver, solves the joint system, extracts the
// profile and validates the solved state. Solver failures are returned
// verbatim together with the best available profile
func (o *Domain) Run(verbose bool) (prof *Profile, err error) {
	alloc, ok := allocators[o.Sim.Solver.Type]
	if !ok {
		return nil, chk.Err("cannot find solver type named %q", o.Sim.Solver.Type)
	}
	sol, err := alloc(o).Run(verbose)
	if sol != nil {
		o.Sol = &ele.Solution{X: sol.X}
		prof = o.Extract(sol)
	}
	if err != nil {
		return
	}
	err = o.CheckSolution(sol.X)
	return
}
