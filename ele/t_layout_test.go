// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/HisuiFlask77/gofcc/kin"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_lay01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lay01. variable and equation numbering")

	lay := NewLayout(4)
	chk.IntAssert(lay.Nx, 39)
	chk.IntAssert(lay.Ne, 35)
	chk.Scalar(tst, "dz", 1e-17, lay.Dz, 1.0/3.0)

	// grid point unknowns: [y0..y5, T, phi] at base i·8
	chk.IntAssert(lay.Y(0, kin.VGO), 0)
	chk.IntAssert(lay.Y(0, kin.COKE), 5)
	chk.IntAssert(lay.T(0), 6)
	chk.IntAssert(lay.Phi(0), 7)
	chk.IntAssert(lay.Y(1, kin.VGO), 8)
	chk.IntAssert(lay.Y(1, kin.COKE), 13)
	chk.IntAssert(lay.T(2), 22)
	chk.IntAssert(lay.Phi(3), 31)

	// shared scalars come after all grid points
	chk.IntAssert(lay.Tregen(), 32)
	chk.IntAssert(lay.CokeSpent(), 33)
	chk.IntAssert(lay.CokeRegen(), 34)
	chk.IntAssert(lay.Fcat(), 35)
	chk.IntAssert(lay.Air(), 36)
	chk.IntAssert(lay.SlackEb(), 37)
	chk.IntAssert(lay.SlackComb(), 38)

	// equation blocks in grid-index order, regenerator last
	chk.IntAssert(lay.EqPoint(0), 0)
	chk.IntAssert(lay.EqPoint(2), 16)
	chk.IntAssert(lay.EqRegen(), 32)

	// names
	names := lay.Names()
	chk.IntAssert(len(names), lay.Nx)
	chk.String(tst, names[0], "yVGO_0")
	chk.String(tst, names[13], "yCOKE_1")
	chk.String(tst, names[22], "T_2")
	chk.String(tst, names[31], "phi_3")
	chk.String(tst, names[32], "Tregen")
	chk.String(tst, names[38], "slackComb")
	for i, name := range names {
		if name == "" {
			tst.Errorf("unknown %d has no name", i)
			return
		}
		io.Pf("%2d : %s\n", i, name)
	}
}
