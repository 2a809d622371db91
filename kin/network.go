// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package kin implements lumped kinetic networks for catalytic cracking
package kin

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Lump indexes one of the six pseudo-species tracked by mass fraction
type Lump int

// lumps. the set is closed: every network works over exactly these six
const (
	VGO  Lump = iota // heavy vacuum gas oil (feed)
	DSL              // diesel-range
	GAS              // gasoline-range
	LPG              // liquefied petroleum gas
	DG               // dry gas
	COKE             // coke deposited on catalyst
)

// Nlumps is the (fixed) number of lumps
const Nlumps = 6

// lumpNames holds the names of lumps
var lumpNames = []string{"VGO", "DSL", "GAS", "LPG", "DG", "COKE"}

// String returns the name of a lump
func (l Lump) String() string {
	if l < 0 || int(l) >= Nlumps {
		return "invalid"
	}
	return lumpNames[l]
}

// LumpByName returns the lump corresponding to name
func LumpByName(name string) (l Lump, err error) {
	for i, n := range lumpNames {
		if n == name {
			return Lump(i), nil
		}
	}
	return -1, chk.Err("unknown lump %q; options are %v", name, lumpNames)
}

// RateOrder selects the kinetic order of a reaction with respect to the
// mass fraction of its source lump
type RateOrder int

// rate orders
const (
	SourceLinear    RateOrder = iota // rate ∝ y_src
	SourceQuadratic                  // rate ∝ y_src²
)

// Reaction holds one directed conversion between two lumps
type Reaction struct {
	Name  string    // identifier; e.g. "r1"
	K0    float64   // pre-exponential factor [1/s]
	Ea    float64   // activation energy [J/mol]
	Src   Lump      // source lump (consumed)
	Dst   Lump      // destination lump (produced)
	Order RateOrder // kinetic order w.r.t. source fraction
}

// Network holds a fixed kinetic/stoichiometric table and computes pointwise
// reaction rates. Each reaction converts one source lump into one destination
// lump, hence every stoichiometric column is {-1 source, +1 destination} and
// sums to zero. Methods are pure functions of the local state.
type Network struct {

	// input
	Reactions []Reaction // reaction table
	Rgas      float64    // universal gas constant [J/(mol·K)]
	Eps       float64    // stabilizer added to source fraction inside rate law

	// derived
	bySrc [Nlumps][]int // reaction indices grouped by source lump
	byDst [Nlumps][]int // reaction indices grouped by destination lump
}

// Init validates the reaction table and builds derived maps
func (o *Network) Init() (err error) {
	if len(o.Reactions) < 1 {
		return chk.Err("kinetic network needs at least one reaction")
	}
	if o.Rgas <= 0 {
		return chk.Err("gas constant must be positive. Rgas=%g is invalid", o.Rgas)
	}
	for i := 0; i < Nlumps; i++ {
		o.bySrc[i] = nil
		o.byDst[i] = nil
	}
	for r, rxn := range o.Reactions {
		if rxn.K0 < 0 {
			return chk.Err("reaction %q: pre-exponential factor must be non-negative. k0=%g is invalid", rxn.Name, rxn.K0)
		}
		if rxn.Ea <= 0 {
			return chk.Err("reaction %q: activation energy must be positive. Ea=%g is invalid", rxn.Name, rxn.Ea)
		}
		if rxn.Src == rxn.Dst {
			return chk.Err("reaction %q: source and destination lumps must differ (stoichiometric column would not conserve mass)", rxn.Name)
		}
		if rxn.Src < 0 || int(rxn.Src) >= Nlumps || rxn.Dst < 0 || int(rxn.Dst) >= Nlumps {
			return chk.Err("reaction %q: invalid lump indices src=%d dst=%d", rxn.Name, rxn.Src, rxn.Dst)
		}
		o.bySrc[rxn.Src] = append(o.bySrc[rxn.Src], r)
		o.byDst[rxn.Dst] = append(o.byDst[rxn.Dst], r)
	}
	return
}

// Nrxn returns the number of reactions
func (o *Network) Nrxn() int { return len(o.Reactions) }

// Nu returns the stoichiometric coefficient of lump l in reaction r
func (o *Network) Nu(l Lump, r int) float64 {
	switch l {
	case o.Reactions[r].Src:
		return -1
	case o.Reactions[r].Dst:
		return +1
	}
	return 0
}

// RateCoef computes the Arrhenius rate coefficient of reaction r at
// temperature T. T must be positive; this is enforced by variable bounds,
// not checked here.
func (o *Network) RateCoef(r int, T float64) float64 {
	rxn := &o.Reactions[r]
	return rxn.K0 * math.Exp(-rxn.Ea/(o.Rgas*T))
}

// Rate computes the rate of reaction r for the local state {y, T, phi}
func (o *Network) Rate(r int, y []float64, T, phi float64) float64 {
	rxn := &o.Reactions[r]
	g := y[rxn.Src]
	if rxn.Order == SourceQuadratic {
		g *= g
	}
	return o.RateCoef(r, T) * phi * (g + o.Eps)
}

// RateDerivs computes the rate of reaction r and its derivatives with respect
// to the source mass fraction, temperature and catalyst activity
func (o *Network) RateDerivs(r int, y []float64, T, phi float64) (rate, dRdy, dRdT, dRdphi float64) {
	rxn := &o.Reactions[r]
	k := o.RateCoef(r, T)
	g, dg := y[rxn.Src], 1.0
	if rxn.Order == SourceQuadratic {
		dg = 2.0 * g
		g *= g
	}
	rate = k * phi * (g + o.Eps)
	dRdy = k * phi * dg
	dRdT = rate * rxn.Ea / (o.Rgas * T * T)
	dRdphi = k * (g + o.Eps)
	return
}

// NetProd computes the net production rate of every lump for the local state.
// net must have length Nlumps
func (o *Network) NetProd(net, y []float64, T, phi float64) {
	for l := 0; l < Nlumps; l++ {
		net[l] = 0
	}
	for r := range o.Reactions {
		rate := o.Rate(r, y, T, phi)
		net[o.Reactions[r].Src] -= rate
		net[o.Reactions[r].Dst] += rate
	}
}

// TotalRate computes the sum of all reaction rates (extent of cracking) for
// the local state
func (o *Network) TotalRate(y []float64, T, phi float64) (sum float64) {
	for r := range o.Reactions {
		sum += o.Rate(r, y, T, phi)
	}
	return
}

// BySrc returns the indices of reactions whose source is lump l
func (o *Network) BySrc(l Lump) []int { return o.bySrc[l] }

// registry ///////////////////////////////////////////////////////////////////////////////////////

// New returns a new network from the database of named kinetic schemes
func New(name string) (net *Network, err error) {
	maker, ok := schemes[name]
	if !ok {
		return nil, chk.Err("kinetic scheme %q is not available in 'kin' database", name)
	}
	net = maker()
	err = net.Init()
	return
}

// schemes holds all available kinetic schemes
var schemes = map[string]func() *Network{}
