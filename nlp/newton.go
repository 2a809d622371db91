// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// Newton solves problems whose free unknowns make the equality constraints
// square. Unknowns with Lmin == Lmax are treated as fixed parameters; the
// remaining ones must match the number of equations exactly. Bounds on free
// unknowns are NOT enforced during iterations
type Newton struct {
	NmaxIt int     // maximum number of iterations
	Ftol   float64 // residual tolerance
	Atol   float64 // absolute tolerance on unknowns
}

// Solve runs Newton iterations on the reduced (square) system
func (o *Newton) Solve(p *Problem, verbose bool) (sol *Solution, err error) {

	// reduced system: only the free unknowns enter
	var free []int
	for i := 0; i < p.Nx; i++ {
		if p.Lmin[i] < p.Lmax[i] {
			free = append(free, i)
		}
	}
	if len(free) != p.Ne {
		return nil, chk.Err("system is not square: %d free unknowns for %d equations", len(free), p.Ne)
	}

	// full vector with fixed unknowns held at their initial values
	xfull := make([]float64, p.Nx)
	copy(xfull, p.X0)
	expand := func(xf []float64) {
		for k, i := range free {
			xfull[i] = xf[k]
		}
	}

	// residual over the reduced vector
	ffcn := func(fx, xf []float64) error {
		expand(xf)
		return p.Fcn(fx, xfull)
	}

	// dense reduced Jacobian: assemble the full sparse one and keep the
	// columns of free unknowns
	nnz := p.Jnnz
	if nnz == 0 {
		nnz = p.Ne * p.Nx
	}
	var Kb la.Triplet
	Kb.Init(p.Ne, p.Nx, nnz)
	njac := 0
	JfcnD := func(dfdx [][]float64, xf []float64) error {
		njac++
		expand(xf)
		if e := p.Jcn(&Kb, xfull); e != nil {
			return e
		}
		J := Kb.ToMatrix(nil).ToDense()
		for m := 0; m < p.Ne; m++ {
			for k, i := range free {
				dfdx[m][k] = J[m][i]
			}
		}
		return nil
	}

	// solve
	xf := make([]float64, len(free))
	for k, i := range free {
		xf[k] = p.X0[i]
	}
	var nls num.NlSolver
	defer nls.Clean()
	nls.Init(p.Ne, ffcn, nil, JfcnD, true, false, map[string]float64{
		"atol":  o.Atol,
		"ftol":  o.Ftol,
		"maxIt": float64(o.NmaxIt),
	})
	serr := func() (e error) {
		defer func() {
			// the linear solver panics on singular systems
			if r := recover(); r != nil {
				e = chk.Err("%v", r)
			}
		}()
		return nls.Solve(xf, !verbose)
	}()
	expand(xf)

	// pack solution
	sol = &Solution{X: make([]float64, p.Nx), Status: Optimal}
	copy(sol.X, xfull)
	fb := make([]float64, p.Ne)
	if e := p.Fcn(fb, xfull); e != nil {
		return nil, e
	}
	for _, f := range fb {
		if a := math.Abs(f); a > sol.Resid || math.IsNaN(f) {
			sol.Resid = a
		}
	}
	if p.Obj != nil {
		sol.Obj = p.Obj(xfull)
	}
	if serr != nil {
		// only an exhausted iteration budget is an iteration limit; anything
		// else (singular Jacobian, NaN/Inf residuals) is a numerical failure
		sol.Status = NumFail
		if njac >= o.NmaxIt && !math.IsNaN(sol.Resid) && !math.IsInf(sol.Resid, 0) {
			sol.Status = IterLimit
		}
		return sol, &SolverError{Status: sol.Status, Best: sol}
	}
	return
}
