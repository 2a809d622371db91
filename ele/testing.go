// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
)

// CheckKb compares the analytical Jacobian of one element against central
// finite differences of its residuals, entry by entry over the full layout
func CheckKb(tst *testing.T, lay *Layout, e Element, x []float64, step, tol float64, verb bool) {

	// analytical
	var Kb la.Triplet
	Kb.Init(lay.Ne, lay.Nx, lay.Ne*lay.Nx)
	err := e.AddToKb(&Kb, &Solution{X: x})
	if err != nil {
		tst.Errorf("AddToKb failed:\n%v", err)
		return
	}
	Kana := Kb.ToMatrix(nil).ToDense()

	// numerical
	fb := make([]float64, lay.Ne)
	xtmp := make([]float64, lay.Nx)
	copy(xtmp, x)
	for I := 0; I < lay.Ne; I++ {
		for J := 0; J < lay.Nx; J++ {
			dnum, _ := num.DerivCentral(func(v float64, args ...interface{}) (res float64) {
				tmp := xtmp[J]
				xtmp[J] = v
				for k := range fb {
					fb[k] = 0
				}
				e.AddToRhs(fb, &Solution{X: xtmp})
				res = fb[I]
				xtmp[J] = tmp
				return
			}, x[J], step)
			if Kana[I][J] != 0 || dnum != 0 {
				chk.AnaNum(tst, io.Sf("K%3d%3d", I, J), tol, Kana[I][J], dnum, verb)
			}
		}
	}
}
