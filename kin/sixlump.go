// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kin

// add the published 6-lump / 15-reaction industrial FCC scheme to the
// database. Rate constants and activation energies follow the Abadan
// refinery calibration; reactions sourced from VGO are second order in the
// feed fraction, all others first order.
func init() {
	schemes["sixlump"] = func() *Network {
		return &Network{
			Rgas: 8.314,
			Eps:  1e-8,
			Reactions: []Reaction{
				{"r1", 7957.29, 53927.7, VGO, DSL, SourceQuadratic},
				{"r2", 14433.4, 57186.6, VGO, GAS, SourceQuadratic},
				{"r3", 1057.1, 53408.6, VGO, LPG, SourceQuadratic},
				{"r4", 271.917, 49950.4, VGO, DG, SourceQuadratic},
				{"r5", 27.253, 35433.6, VGO, COKE, SourceQuadratic},
				{"r6", 399.933, 47014.5, DSL, GAS, SourceLinear},
				{"r7", 2.506, 67792.9, DSL, LPG, SourceLinear},
				{"r8", 3.095, 66266.9, DSL, DG, SourceLinear},
				{"r9", 48.282, 69859.4, DSL, COKE, SourceLinear},
				{"r10", 1.189, 56194.4, GAS, LPG, SourceLinear},
				{"r11", 1.018, 66319.1, GAS, DG, SourceLinear},
				{"r12", 2.031, 61785.1, GAS, COKE, SourceLinear},
				{"r13", 3.411, 55513.0, LPG, DG, SourceLinear},
				{"r14", 0.601, 52548.2, LPG, COKE, SourceLinear},
				{"r15", 2.196, 53046.0, DG, COKE, SourceLinear},
			},
		}
	}
}
