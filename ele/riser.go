// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/HisuiFlask77/gofcc/inp"
	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/la"
)

// RiserPoint implements the backward-Euler balance equations of one interior
// grid point i ≥ 1 of the riser profile:
//
//   y(i,l) - y(i-1,l) - dz·τ·netrate_l(i)          = 0   (6 mass balances)
//   T(i) - T(i-1) + dz·τ·ΔH·Σrate(i)/Cpmix         = 0   (energy balance)
//   Φ(i) - Φ(i-1) + dz·τ·2·Φ(i)·y(i,COKE)          = 0   (deactivation)
//
// The implicit form evaluates all rates at point i, so the equations of every
// point, the boundary coupling and the regenerator must be solved as one
// simultaneous system; there is no forward march. Cpmix depends on the
// catalyst circulation rate, one of the shared unknowns
type RiserPoint struct {

	// basic data
	I     int            // grid point index (1..N-1)
	Lay   *Layout        // variable/equation layout
	Net   *kin.Network   // kinetic network
	Plant *inp.PlantData // physical scalars

	// derived
	dztau float64 // dz·τ

	// scratchpad
	net  []float64   // [Nlumps] net production rates
	K    [][]float64 // [8][17] local Jacobian
	cmap []int       // [17] global column indices: point i (8), point i-1 (8), Fcat
}

// NewRiserPoint returns a new interior grid-point element
func NewRiserPoint(i int, lay *Layout, net *kin.Network, plant *inp.PlantData) (o *RiserPoint) {
	o = new(RiserPoint)
	o.I = i
	o.Lay = lay
	o.Net = net
	o.Plant = plant
	o.dztau = lay.Dz * plant.Tau()
	o.net = make([]float64, kin.Nlumps)
	o.K = la.MatAlloc(nvp, 2*nvp+1)
	o.cmap = make([]int, 2*nvp+1)
	for j := 0; j < nvp; j++ {
		o.cmap[j] = i*nvp + j
		o.cmap[nvp+j] = (i-1)*nvp + j
	}
	o.cmap[2*nvp] = lay.Fcat()
	return
}

// Neq returns the number of equations contributed
func (o *RiserPoint) Neq() int { return nvp }

// cpmix computes the heat capacity of the oil/catalyst mixture
func (o *RiserPoint) cpmix(fcat float64) float64 {
	return o.Plant.OilCp + fcat/o.Plant.FeedFlow*o.Plant.CatCp
}

// AddToRhs adds element residuals R to the global vector fb
func (o *RiserPoint) AddToRhs(fb []float64, sol *Solution) (err error) {

	// local state at point i
	i, x := o.I, sol.X
	y := x[o.Lay.Y(i, 0):o.Lay.T(i)]
	T := x[o.Lay.T(i)]
	phi := x[o.Lay.Phi(i)]
	eq := o.Lay.EqPoint(i)

	// mass balances
	o.Net.NetProd(o.net, y, T, phi)
	for l := 0; l < kin.Nlumps; l++ {
		fb[eq+l] += x[o.Lay.Y(i, kin.Lump(l))] - x[o.Lay.Y(i-1, kin.Lump(l))] - o.dztau*o.net[l]
	}

	// energy balance
	cp := o.cpmix(x[o.Lay.Fcat()])
	sum := o.Net.TotalRate(y, T, phi)
	fb[eq+kin.Nlumps] += T - x[o.Lay.T(i-1)] + o.dztau*o.Plant.DHrxn*sum/cp

	// deactivation
	fb[eq+kin.Nlumps+1] += phi - x[o.Lay.Phi(i-1)] + o.dztau*2.0*phi*x[o.Lay.Y(i, kin.COKE)]
	return
}

// AddToKb adds element dR/dx to the global Jacobian matrix Kb
func (o *RiserPoint) AddToKb(Kb *la.Triplet, sol *Solution) (err error) {

	// local state at point i
	i, x := o.I, sol.X
	y := x[o.Lay.Y(i, 0):o.Lay.T(i)]
	T := x[o.Lay.T(i)]
	phi := x[o.Lay.Phi(i)]
	fcat := x[o.Lay.Fcat()]
	cp := o.cpmix(fcat)

	// local columns: 0..5 y(i), 6 T(i), 7 Φ(i), 8..15 point i-1, 16 Fcat
	iT, iPhi, iFc := kin.Nlumps, kin.Nlumps+1, 2*nvp
	la.MatFill(o.K, 0)

	// reaction-rate derivatives
	var sum, sumDT, sumDphi float64
	for r := range o.Net.Reactions {
		rate, dy, dT, dphi := o.Net.RateDerivs(r, y, T, phi)
		s := int(o.Net.Reactions[r].Src)
		d := int(o.Net.Reactions[r].Dst)

		// mass-balance rows: R_l -= dz·τ·ν(l,r)·rate
		o.K[s][s] += o.dztau * dy
		o.K[s][iT] += o.dztau * dT
		o.K[s][iPhi] += o.dztau * dphi
		o.K[d][s] -= o.dztau * dy
		o.K[d][iT] -= o.dztau * dT
		o.K[d][iPhi] -= o.dztau * dphi

		// energy-balance accumulators
		sum += rate
		sumDT += dT
		sumDphi += dphi
		o.K[iT][s] += o.dztau * o.Plant.DHrxn * dy / cp
	}

	// mass balances: identity and backward-difference terms
	for l := 0; l < kin.Nlumps; l++ {
		o.K[l][l] += 1.0
		o.K[l][nvp+l] = -1.0
	}

	// energy balance
	o.K[iT][iT] = 1.0 + o.dztau*o.Plant.DHrxn*sumDT/cp
	o.K[iT][iPhi] = o.dztau * o.Plant.DHrxn * sumDphi / cp
	o.K[iT][nvp+iT] = -1.0
	o.K[iT][iFc] = -o.dztau * o.Plant.DHrxn * sum * (o.Plant.CatCp / o.Plant.FeedFlow) / (cp * cp)

	// deactivation
	yc := x[o.Lay.Y(i, kin.COKE)]
	o.K[iPhi][iPhi] = 1.0 + o.dztau*2.0*yc
	o.K[iPhi][int(kin.COKE)] += o.dztau * 2.0 * phi
	o.K[iPhi][nvp+iPhi] = -1.0

	// add to sparse matrix Kb
	eq := o.Lay.EqPoint(i)
	for m := 0; m < nvp; m++ {
		for n, J := range o.cmap {
			if o.K[m][n] != 0 {
				Kb.Put(eq+m, J, o.K[m][n])
			}
		}
	}
	return
}
