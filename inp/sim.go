// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

// ConfigError indicates invalid configuration; rejected before any solve attempt
type ConfigError struct {
	Msg string
}

// Error returns the error message
func (e *ConfigError) Error() string { return e.Msg }

// cfgErr returns a new ConfigError
func cfgErr(msg string, prm ...interface{}) error {
	return &ConfigError{Msg: io.Sf(msg, prm...)}
}

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Scheme  string `json:"scheme"`  // name of kinetic scheme; e.g. "sixlump"
	Kinfile string `json:"kinfile"` // optional kinetic table file path, overrides scheme
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/gofcc
}

// PlantData holds the physical scalars of the riser/regenerator unit
type PlantData struct {
	RiserLength float64 `json:"rlen"`   // riser length [m]
	RiserArea   float64 `json:"rarea"`  // riser cross-section area [m²]
	FeedFlow    float64 `json:"qfeed"`  // fresh feed mass flow [kg/s]
	FeedTemp    float64 `json:"tfeed"`  // fresh feed temperature [K]
	CatDensity  float64 `json:"catden"` // catalyst density [kg/m³]; input-deck fidelity only, unused by balances
	CatCp       float64 `json:"catcp"`  // catalyst heat capacity [kJ/(kg·K)]
	OilCp       float64 `json:"oilcp"`  // oil heat capacity [kJ/(kg·K)]
	DHcomb      float64 `json:"dhcomb"` // heat of coke combustion [kJ/kg]
	DHrxn       float64 `json:"dhrxn"`  // heat of cracking reactions [kJ/kg]
	Kcomb       float64 `json:"kcomb"`  // combustion rate constant
	Ecomb       float64 `json:"ecomb"`  // combustion activation energy [J/mol]
	TauCte      float64 `json:"taucte"` // residence-time scaling constant (unclear physical origin; default 5.0)
}

// Tau returns the residence-time scaling factor of the discretized balances
func (o *PlantData) Tau() float64 {
	return o.RiserArea * o.RiserLength * o.TauCte / o.FeedFlow
}

// Range holds lower bound, upper bound and initial guess of one unknown group
type Range struct {
	Min float64 `json:"min"` // lower bound
	Max float64 `json:"max"` // upper bound
	Ini float64 `json:"ini"` // initial guess
}

// VarsData holds bounds and initial guesses for all unknowns
type VarsData struct {
	Y         Range   `json:"y"`         // lump mass fractions
	YfeedIni  float64 `json:"yfeedini"`  // initial guess of heavy-feed fraction (others use Y.Ini)
	T         Range   `json:"t"`         // riser temperature [K]
	Phi       Range   `json:"phi"`       // catalyst activity
	Tregen    Range   `json:"tregen"`    // regenerator temperature [K]
	CokeSpent Range   `json:"cokespent"` // coke on spent catalyst
	CokeRegen Range   `json:"cokeregen"` // coke on regenerated catalyst
	Fcat      Range   `json:"fcat"`      // catalyst circulation rate [kg/s]
	Air       Range   `json:"air"`       // regenerator air flow [kg/s]
	Slack     Range   `json:"slack"`     // regenerator balance slacks
}

// SolverData holds nonlinear solver data
type SolverData struct {
	Type      string  `json:"type"`      // solver type: {newton, penalty}
	NmaxIt    int     `json:"nmaxit"`    // number of max iterations
	Ftol      float64 `json:"ftol"`      // tolerance for convergence on residual norm
	Atol      float64 `json:"atol"`      // absolute tolerance on step size
	PenWeight float64 `json:"penweight"` // slack penalty weight in objective; e.g. 1000
	ObjFac    float64 `json:"objfac"`    // objective weight in penalty-solver merit function
	WarmStart bool    `json:"warmstart"` // pre-solve the square rating problem before optimizing
	SlackTol  float64 `json:"slacktol"`  // acceptance tolerance on slack magnitudes (reporting/tests)
	MassTol   float64 `json:"masstol"`   // post-solve mass-conservation tolerance
	ShowR     bool    `json:"showr"`     // show residual during iterations
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data   Data       `json:"data"`   // global data
	Plant  PlantData  `json:"plant"`  // physical scalars
	Ngrid  int        `json:"ngrid"`  // number of grid points along dimensionless riser height
	Vars   VarsData   `json:"vars"`   // bounds and initial guesses
	Solver SolverData `json:"solver"` // solver data
	Prms   fun.Prms   `json:"prms"`   // optional scalar overrides for plant data

	// derived
	Net    *kin.Network // kinetic network
	DirOut string       // output directory
}

// ReadSim reads a simulation (.sim) JSON file, applies defaults and overrides,
// loads the kinetic network and validates everything
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		return nil, cfgErr("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	o.SetDefaults()
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, cfgErr("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// scalar overrides
	for _, p := range o.Prms {
		switch p.N {
		case "rlen":
			o.Plant.RiserLength = p.V
		case "rarea":
			o.Plant.RiserArea = p.V
		case "qfeed":
			o.Plant.FeedFlow = p.V
		case "tfeed":
			o.Plant.FeedTemp = p.V
		case "catcp":
			o.Plant.CatCp = p.V
		case "oilcp":
			o.Plant.OilCp = p.V
		case "dhcomb":
			o.Plant.DHcomb = p.V
		case "dhrxn":
			o.Plant.DHrxn = p.V
		case "kcomb":
			o.Plant.Kcomb = p.V
		case "ecomb":
			o.Plant.Ecomb = p.V
		case "taucte":
			o.Plant.TauCte = p.V
		default:
			return nil, cfgErr("unknown plant parameter %q in simulation file", p.N)
		}
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gofcc/" + io.FnKey(filepath.Base(simfilepath))
	}

	// kinetic network
	if o.Data.Kinfile != "" {
		o.Net, err = ReadKin(filepath.Join(filepath.Dir(simfilepath), o.Data.Kinfile))
	} else {
		o.Net, err = kin.New(o.Data.Scheme)
	}
	if err != nil {
		return nil, cfgErr("cannot load kinetic network:\n%v", err)
	}

	// validate
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// SetDefaults sets the published Abadan-unit fixture values
func (o *Simulation) SetDefaults() {
	o.Data.Scheme = "sixlump"
	o.Plant = PlantData{
		RiserLength: 32.5,
		RiserArea:   1.815,
		FeedFlow:    76.159,
		FeedTemp:    550.0,
		CatDensity:  770.0,
		CatCp:       1.1,
		OilCp:       2.5,
		DHcomb:      30000.0,
		DHrxn:       500.0,
		Kcomb:       1e3,
		Ecomb:       50000.0,
		TauCte:      5.0,
	}
	o.Ngrid = 31
	o.Vars = VarsData{
		Y:         Range{0, 1, 0.1},
		YfeedIni:  0.9,
		T:         Range{500, 1200, 850},
		Phi:       Range{0, 1.1, 1.0},
		Tregen:    Range{800, 1300, 980},
		CokeSpent: Range{0, 0.3, 0.015},
		CokeRegen: Range{1e-6, 0.1, 0.002},
		Fcat:      Range{100, 2000, 600},
		Air:       Range{10, 500, 60},
		Slack:     Range{-1000, 1000, 0},
	}
	o.Solver = SolverData{
		Type:      "penalty",
		NmaxIt:    3000,
		Ftol:      1e-6,
		Atol:      1e-8,
		PenWeight: 1e3,
		ObjFac:    1e-3,
		WarmStart: true,
		SlackTol:  1e-3,
		MassTol:   1e-3, // must cover residual accumulation across grid points
	}
}

// Validate checks the configuration; it rejects anything that could later
// drive an exponential or square-root argument out of domain, so that no
// runtime checks are needed inside the residual functions
func (o *Simulation) Validate() (err error) {

	// grid
	if o.Ngrid < 2 {
		return cfgErr("at least two grid points are required for the discretization. ngrid=%d is invalid", o.Ngrid)
	}

	// plant scalars
	if o.Plant.RiserLength <= 0 || o.Plant.RiserArea <= 0 {
		return cfgErr("riser geometry must be positive. rlen=%g rarea=%g", o.Plant.RiserLength, o.Plant.RiserArea)
	}
	if o.Plant.FeedFlow <= 0 {
		return cfgErr("feed flow must be positive. qfeed=%g is invalid", o.Plant.FeedFlow)
	}
	if o.Plant.FeedTemp <= 0 {
		return cfgErr("feed temperature must be positive. tfeed=%g is invalid", o.Plant.FeedTemp)
	}
	if o.Plant.CatCp <= 0 || o.Plant.OilCp <= 0 {
		return cfgErr("heat capacities must be positive. catcp=%g oilcp=%g", o.Plant.CatCp, o.Plant.OilCp)
	}
	if o.Plant.Ecomb <= 0 {
		return cfgErr("combustion activation energy must be positive. ecomb=%g is invalid", o.Plant.Ecomb)
	}
	if o.Plant.TauCte <= 0 {
		return cfgErr("residence-time scaling constant must be positive. taucte=%g is invalid", o.Plant.TauCte)
	}

	// bounds: exponential and square-root arguments must stay in domain for
	// any value the solver may visit
	if o.Vars.T.Min <= 0 {
		return cfgErr("riser temperature lower bound must be strictly positive. t.min=%g is invalid", o.Vars.T.Min)
	}
	if o.Vars.Tregen.Min <= 0 {
		return cfgErr("regenerator temperature lower bound must be strictly positive. tregen.min=%g is invalid", o.Vars.Tregen.Min)
	}
	if o.Vars.Fcat.Min <= 0 {
		return cfgErr("catalyst flow lower bound must be strictly positive. fcat.min=%g is invalid", o.Vars.Fcat.Min)
	}
	if o.Vars.Air.Min <= 0 {
		return cfgErr("air flow lower bound must be strictly positive. air.min=%g is invalid", o.Vars.Air.Min)
	}

	// bounds: consistency
	for _, rng := range []struct {
		key string
		r   Range
	}{
		{"y", o.Vars.Y}, {"t", o.Vars.T}, {"phi", o.Vars.Phi},
		{"tregen", o.Vars.Tregen}, {"cokespent", o.Vars.CokeSpent},
		{"cokeregen", o.Vars.CokeRegen}, {"fcat", o.Vars.Fcat},
		{"air", o.Vars.Air}, {"slack", o.Vars.Slack},
	} {
		if rng.r.Min > rng.r.Max {
			return cfgErr("lower bound greater than upper bound for %q: [%g,%g]", rng.key, rng.r.Min, rng.r.Max)
		}
		if rng.r.Ini < rng.r.Min || rng.r.Ini > rng.r.Max {
			return cfgErr("initial guess outside bounds for %q: %g not in [%g,%g]", rng.key, rng.r.Ini, rng.r.Min, rng.r.Max)
		}
	}
	if o.Vars.YfeedIni < o.Vars.Y.Min || o.Vars.YfeedIni > o.Vars.Y.Max {
		return cfgErr("initial guess of heavy-feed fraction outside bounds: %g not in [%g,%g]", o.Vars.YfeedIni, o.Vars.Y.Min, o.Vars.Y.Max)
	}

	// solver
	if o.Solver.NmaxIt < 1 {
		return cfgErr("maximum number of iterations must be positive. nmaxit=%d is invalid", o.Solver.NmaxIt)
	}
	if o.Solver.PenWeight < 0 {
		return cfgErr("slack penalty weight must be non-negative. penweight=%g is invalid", o.Solver.PenWeight)
	}
	return
}
