// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nlp

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// LM solves the full program with a bound-clamped Levenberg-Marquardt
// iteration on the penalty merit
//
//   M(x) = ‖F(x)‖² ± σ·f(x)
//
// (minus for maximization). Steps come from (2JᵀJ + λI)·δ = -∇M with an Armijo
// backtracking line search; every trial point is projected onto the bound box.
// λ shrinks on success and grows on rejected steps, so the method degrades
// gracefully towards steepest descent when the Gauss-Newton model is poor.
// A stationary point of the merit leaves an O(σ) equality residual, so σ is
// shrunk whenever the iteration stalls while still infeasible (penalty
// continuation); Optimal therefore means feasible to Ftol AND stationary
type LM struct {
	NmaxIt int     // maximum number of iterations
	Ftol   float64 // residual tolerance on equality constraints
	Atol   float64 // step-size tolerance declaring stationarity
	ObjFac float64 // σ: weight of the objective within the merit
	ShowR  bool    // show residual and merit every iteration
}

// lm iteration constants
const (
	lmLambdaIni = 1e-3  // initial damping
	lmLambdaMin = 1e-12 // damping floor
	lmLambdaMax = 1e+12 // damping ceiling; reaching it means stalled
	lmArmijoC   = 1e-4  // sufficient-decrease coefficient
	lmLsMaxIt   = 25    // backtracking limit
	lmSigmaCut  = 0.1   // continuation factor applied to σ on infeasible stalls
	lmSigmaMin  = 1e-14 // below this the objective no longer matters; give up
)

// Solve runs the damped iterations from p.X0 (projected onto the bounds)
func (o *LM) Solve(p *Problem, verbose bool) (sol *Solution, err error) {

	// objective sign and weight within the merit. The objective enters only
	// when its gradient is available too; otherwise the Armijo slope would
	// not match the merit being searched, so the iteration reduces to
	// feasibility seeking
	sgn := 0.0
	if p.Obj != nil && p.Grad != nil {
		sgn = o.ObjFac
		if p.Sense == Maximize {
			sgn = -o.ObjFac
		}
	}

	// workspace
	ne, nx := p.Ne, p.Nx
	fb := make([]float64, ne)
	fn := make([]float64, ne)
	g := make([]float64, nx)
	gm := make([]float64, nx)
	dx := make([]float64, nx)
	x := make([]float64, nx)
	xn := make([]float64, nx)
	H := la.MatAlloc(nx, nx)
	copy(x, p.X0)
	p.Clamp(x)

	// merit evaluation; residuals are left in fv
	merit := func(fv, xv []float64) (float64, error) {
		if e := p.Fcn(fv, xv); e != nil {
			return 0, e
		}
		m := 0.0
		for _, f := range fv {
			m += f * f
		}
		if sgn != 0 {
			m += sgn * p.Obj(xv)
		}
		return m, nil
	}

	M, err := merit(fb, x)
	if err != nil {
		return nil, err
	}

	lam := lmLambdaIni
	step := math.Inf(1)
	status := IterLimit
	it := 0
	for ; it < o.NmaxIt; it++ {

		// residual norm and sanity
		resid := 0.0
		for _, f := range fb {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				status = NumFail
				goto done
			}
			if a := math.Abs(f); a > resid {
				resid = a
			}
		}

		// stationary point of the merit
		if step <= o.Atol {
			if resid <= o.Ftol {
				status = Optimal
				goto done
			}
			if math.Abs(sgn) < lmSigmaMin {
				status = Infeasible
				goto done
			}
			sgn *= lmSigmaCut
			lam = lmLambdaIni
			step = math.Inf(1)
			if M, err = merit(fb, x); err != nil {
				return nil, err
			}
			continue
		}
		if o.ShowR {
			io.Pf("it=%4d  resid=%13.6e  merit=%13.6e  lam=%9.2e\n", it, resid, M, lam)
		}

		// Jacobian at x
		{
			J, e := p.DenseJ(x)
			if e != nil {
				return nil, e
			}

			// merit gradient: ∇M = 2JᵀF ± σ∇f
			if sgn != 0 {
				p.Grad(g, x)
			}
			for i := 0; i < nx; i++ {
				s := 0.0
				for m := 0; m < ne; m++ {
					s += J[m][i] * fb[m]
				}
				gm[i] = 2.0 * s
				if sgn != 0 {
					gm[i] += sgn * g[i]
				}
			}

			// damped Gauss-Newton matrix: H = 2JᵀJ + λI
			for i := 0; i < nx; i++ {
				for j := i; j < nx; j++ {
					s := 0.0
					for m := 0; m < ne; m++ {
						s += J[m][i] * J[m][j]
					}
					H[i][j] = 2.0 * s
					H[j][i] = H[i][j]
				}
				H[i][i] += lam
			}
		}

		// step: H·δ = -∇M
		for i := 0; i < nx; i++ {
			g[i] = -gm[i]
		}
		if !denSolve(dx, H, g) {
			lam *= 10
			if lam > lmLambdaMax {
				status = NumFail
				goto done
			}
			continue
		}

		// backtracking with bound projection
		{
			slope := 0.0
			for i := 0; i < nx; i++ {
				slope += gm[i] * dx[i]
			}
			alp := 1.0
			accepted := false
			for ls := 0; ls < lmLsMaxIt; ls++ {
				for i := 0; i < nx; i++ {
					xn[i] = x[i] + alp*dx[i]
				}
				p.Clamp(xn)
				Mn, e := merit(fn, xn)
				if e != nil {
					return nil, e
				}
				if !math.IsNaN(Mn) && Mn <= M+lmArmijoC*alp*slope {
					step = 0.0
					for i := 0; i < nx; i++ {
						if a := math.Abs(xn[i] - x[i]); a > step {
							step = a
						}
					}
					copy(x, xn)
					copy(fb, fn)
					M = Mn
					accepted = true
					break
				}
				alp *= 0.5
			}
			if accepted {
				lam = math.Max(lam/3.0, lmLambdaMin)
				continue
			}
		}

		// no acceptable step at this damping
		lam *= 10
		if lam > lmLambdaMax {
			if resid <= o.Ftol {
				status = Optimal
				goto done
			}
			if math.Abs(sgn) < lmSigmaMin {
				status = Infeasible
				goto done
			}
			sgn *= lmSigmaCut
			lam = lmLambdaIni
			step = math.Inf(1)
			if M, err = merit(fb, x); err != nil {
				return nil, err
			}
		}
	}

done:
	sol = &Solution{X: make([]float64, nx), Status: status, Nit: it}
	copy(sol.X, x)
	for _, f := range fb {
		if a := math.Abs(f); a > sol.Resid || math.IsNaN(f) {
			sol.Resid = a
		}
	}
	if p.Obj != nil {
		sol.Obj = p.Obj(x)
	}
	if status != Optimal {
		return sol, &SolverError{Status: status, Best: sol}
	}
	return
}

// denSolve solves A·x = b, absorbing the panic thrown on singular systems
func denSolve(x []float64, A [][]float64, b []float64) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	la.DenSolve(x, A, b, true)
	return true
}
