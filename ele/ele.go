// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the equation "elements" of the coupled
// riser/regenerator system: blocks of residuals and Jacobian contributions
// over one flat vector of unknowns
package ele

import (
	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Solution holds the flat vector of unknowns owned by the nonlinear solver.
// Elements read it; they never write to it
type Solution struct {
	X []float64 // [Nx] current values of all unknowns
}

// Element defines what all equation elements must implement
type Element interface {
	Neq() int                                          // number of equations contributed
	AddToRhs(fb []float64, sol *Solution) (err error)  // adds element residuals R to the global vector fb
	AddToKb(Kb *la.Triplet, sol *Solution) (err error) // adds element dR/dx to the global Jacobian matrix Kb
}

// nvp is the number of unknowns per grid point: 6 mass fractions,
// temperature, and catalyst activity
const nvp = kin.Nlumps + 2

// Layout maps grid indices and regenerator scalars onto positions in the flat
// unknown vector, and equation blocks onto positions in the flat residual
// vector. Grid point i owns unknowns [i·8, i·8+8); the shared scalars come
// after all grid points. Equation blocks are laid out in grid-index order so
// that each interior point's reference to the previous point is unambiguous
type Layout struct {

	// input
	N int // number of grid points (≥ 2)

	// derived
	Nx int     // total number of unknowns = 8·N + 7
	Ne int     // total number of equations = 8·N + 3
	Dz float64 // grid spacing = 1/(N-1)
}

// NewLayout returns a new layout for N grid points
func NewLayout(N int) (o *Layout) {
	o = new(Layout)
	o.N = N
	o.Nx = nvp*N + 7
	o.Ne = nvp*N + 3
	o.Dz = 1.0 / float64(N-1)
	return
}

// Y returns the unknown index of the mass fraction of lump l at grid point i
func (o *Layout) Y(i int, l kin.Lump) int { return i*nvp + int(l) }

// T returns the unknown index of the temperature at grid point i
func (o *Layout) T(i int) int { return i*nvp + kin.Nlumps }

// Phi returns the unknown index of the catalyst activity at grid point i
func (o *Layout) Phi(i int) int { return i*nvp + kin.Nlumps + 1 }

// indices of the shared regenerator scalars
func (o *Layout) Tregen() int    { return o.N*nvp + 0 }
func (o *Layout) CokeSpent() int { return o.N*nvp + 1 }
func (o *Layout) CokeRegen() int { return o.N*nvp + 2 }
func (o *Layout) Fcat() int      { return o.N*nvp + 3 }
func (o *Layout) Air() int       { return o.N*nvp + 4 }
func (o *Layout) SlackEb() int   { return o.N*nvp + 5 }
func (o *Layout) SlackComb() int { return o.N*nvp + 6 }

// EqPoint returns the first equation index of the block of grid point i.
// Point 0 holds the boundary-coupling equations
func (o *Layout) EqPoint(i int) int { return i * nvp }

// EqRegen returns the first equation index of the regenerator block
func (o *Layout) EqRegen() int { return o.N * nvp }

// Names returns the names of all unknowns, in vector order
func (o *Layout) Names() (names []string) {
	names = make([]string, o.Nx)
	for i := 0; i < o.N; i++ {
		for l := 0; l < kin.Nlumps; l++ {
			names[o.Y(i, kin.Lump(l))] = io.Sf("y%s_%d", kin.Lump(l), i)
		}
		names[o.T(i)] = io.Sf("T_%d", i)
		names[o.Phi(i)] = io.Sf("phi_%d", i)
	}
	names[o.Tregen()] = "Tregen"
	names[o.CokeSpent()] = "cokeSpent"
	names[o.CokeRegen()] = "cokeRegen"
	names[o.Fcat()] = "Fcat"
	names[o.Air()] = "airFlow"
	names[o.SlackEb()] = "slackEb"
	names[o.SlackComb()] = "slackComb"
	return
}
