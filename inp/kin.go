// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"

	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/io"
)

// KinReaction holds one reaction row of a kinetic table (.kin) JSON file
type KinReaction struct {
	Name  string  `json:"name"`  // identifier; e.g. "r1"
	K0    float64 `json:"k0"`    // pre-exponential factor
	Ea    float64 `json:"ea"`    // activation energy
	Src   string  `json:"src"`   // source lump name
	Dst   string  `json:"dst"`   // destination lump name
	Order string  `json:"order"` // "linear" or "quadratic"; empty means linear
}

// KinData holds the content of a kinetic table (.kin) JSON file
type KinData struct {
	Rgas      float64       `json:"rgas"` // gas constant; 0 means 8.314
	Eps       float64       `json:"eps"`  // rate-law stabilizer; 0 means 1e-8
	Reactions []KinReaction `json:"reactions"`
}

// ReadKin reads a kinetic table from a .kin JSON file and builds the network
func ReadKin(kinfilepath string) (net *kin.Network, err error) {

	// read file
	b, err := io.ReadFile(kinfilepath)
	if err != nil {
		return nil, cfgErr("cannot read kinetic table file %q:\n%v", kinfilepath, err)
	}

	// decode
	var kd KinData
	err = json.Unmarshal(b, &kd)
	if err != nil {
		return nil, cfgErr("cannot unmarshal kinetic table file %q:\n%v", kinfilepath, err)
	}
	if kd.Rgas == 0 {
		kd.Rgas = 8.314
	}
	if kd.Eps == 0 {
		kd.Eps = 1e-8
	}

	// build network
	net = &kin.Network{Rgas: kd.Rgas, Eps: kd.Eps}
	for _, row := range kd.Reactions {
		src, err := kin.LumpByName(row.Src)
		if err != nil {
			return nil, cfgErr("kinetic table %q, reaction %q: %v", kinfilepath, row.Name, err)
		}
		dst, err := kin.LumpByName(row.Dst)
		if err != nil {
			return nil, cfgErr("kinetic table %q, reaction %q: %v", kinfilepath, row.Name, err)
		}
		order := kin.SourceLinear
		switch row.Order {
		case "", "linear":
		case "quadratic":
			order = kin.SourceQuadratic
		default:
			return nil, cfgErr("kinetic table %q, reaction %q: unknown order %q; options are \"linear\" and \"quadratic\"", kinfilepath, row.Name, row.Order)
		}
		net.Reactions = append(net.Reactions, kin.Reaction{
			Name: row.Name, K0: row.K0, Ea: row.Ea, Src: src, Dst: dst, Order: order,
		})
	}

	// validate
	err = net.Init()
	if err != nil {
		return nil, cfgErr("kinetic table %q is malformed:\n%v", kinfilepath, err)
	}
	return
}
