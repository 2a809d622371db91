// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package nlp defines a solver-agnostic description of nonlinear programs
// with equality constraints and simple bounds, plus the solver contract
package nlp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Sense defines the optimization direction
type Sense int

// senses
const (
	Maximize Sense = iota
	Minimize
)

// Status reports the outcome of a solve, surfaced verbatim from the solver
type Status int

// statuses
const (
	Optimal    Status = iota // converged to the requested tolerances
	Infeasible               // equality residuals could not be reduced below tolerance
	Unbounded                // objective diverges within the feasible region
	IterLimit                // iteration limit reached before convergence
	NumFail                  // numerical failure (NaN/Inf or singular system)
)

// String returns the name of a status
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case IterLimit:
		return "iteration-limit-reached"
	case NumFail:
		return "numerical-failure"
	}
	return "unknown"
}

// Problem holds the complete assembled system handed to a solver: the ordered
// unknown vector with bounds and initial values, the equality-constraint
// residuals with their Jacobian, and the objective with its gradient. The
// callbacks must treat x as read-only
type Problem struct {
	Nx    int       // number of unknowns
	Ne    int       // number of equality constraints
	X0    []float64 // [Nx] initial values
	Lmin  []float64 // [Nx] lower bounds
	Lmax  []float64 // [Nx] upper bounds
	Names []string  // [Nx] unknown names, for reporting

	Fcn  func(fb, x []float64) error             // writes all Ne residuals into fb
	Jcn  func(Kb *la.Triplet, x []float64) error // resets Kb and writes dF/dx into it
	Obj  func(x []float64) float64               // objective value
	Grad func(g, x []float64)                    // objective gradient; g has length Nx

	Sense Sense // optimization direction
	Jnnz  int   // Jacobian triplet capacity hint; 0 means assume dense
}

// Validate checks dimensions and bound ordering
func (o *Problem) Validate() (err error) {
	if o.Nx < 1 || o.Ne < 1 {
		return chk.Err("problem dimensions are invalid: nx=%d ne=%d", o.Nx, o.Ne)
	}
	if len(o.X0) != o.Nx || len(o.Lmin) != o.Nx || len(o.Lmax) != o.Nx {
		return chk.Err("bounds/initial vectors have wrong lengths: %d %d %d (nx=%d)", len(o.X0), len(o.Lmin), len(o.Lmax), o.Nx)
	}
	if o.Fcn == nil || o.Jcn == nil {
		return chk.Err("residual and Jacobian callbacks must both be set")
	}
	for i := 0; i < o.Nx; i++ {
		if o.Lmin[i] > o.Lmax[i] {
			return chk.Err("unknown %d (%s): lower bound %g greater than upper bound %g", i, o.name(i), o.Lmin[i], o.Lmax[i])
		}
		if o.X0[i] < o.Lmin[i] || o.X0[i] > o.Lmax[i] {
			return chk.Err("unknown %d (%s): initial value %g outside bounds [%g,%g]", i, o.name(i), o.X0[i], o.Lmin[i], o.Lmax[i])
		}
	}
	return
}

// DenseJ assembles the constraint Jacobian at x and returns it as a dense
// [Ne][Nx] matrix
func (o *Problem) DenseJ(x []float64) (J [][]float64, err error) {
	nnz := o.Jnnz
	if nnz == 0 {
		nnz = o.Ne * o.Nx
	}
	var Kb la.Triplet
	Kb.Init(o.Ne, o.Nx, nnz)
	err = o.Jcn(&Kb, x)
	if err != nil {
		return
	}
	return Kb.ToMatrix(nil).ToDense(), nil
}

// Clamp projects x onto the box defined by the bounds, in place
func (o *Problem) Clamp(x []float64) {
	for i := 0; i < o.Nx; i++ {
		if x[i] < o.Lmin[i] {
			x[i] = o.Lmin[i]
		}
		if x[i] > o.Lmax[i] {
			x[i] = o.Lmax[i]
		}
	}
}

// name returns the name of unknown i, or its index when names are absent
func (o *Problem) name(i int) string {
	if i < len(o.Names) {
		return o.Names[i]
	}
	return io.Sf("x%d", i)
}

// Solution holds the result of one solve: the best available solution vector
// and the verbatim solver status
type Solution struct {
	X      []float64 // [Nx] solution vector (best available, possibly non-optimal)
	Obj    float64   // objective value at X
	Status Status    // solver status
	Nit    int       // number of iterations performed
	Resid  float64   // max-norm of equality residuals at X
}

// Solver defines what nonlinear solvers must implement. Solve never retries
// internally; on non-optimal status it returns a SolverError carrying the
// best available solution
type Solver interface {
	Solve(p *Problem, verbose bool) (sol *Solution, err error)
}

// SolverError reports a non-optimal solver outcome together with the best
// available solution vector
type SolverError struct {
	Status Status    // verbatim solver status
	Best   *Solution // best available solution
}

// Error returns the error message
func (e *SolverError) Error() string {
	return io.Sf("solver finished with status %q (residual=%g)", e.Status, e.Best.Resid)
}
