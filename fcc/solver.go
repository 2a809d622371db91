// Copyright 2026 The Gofcc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fcc

import "github.com/HisuiFlask77/gofcc/nlp"

// Solver implements the actual solution strategy over the assembled domain
type Solver interface {
	Run(verbose bool) (sol *nlp.Solution, err error)
}

// allocators holds all available solvers
var allocators = make(map[string]func(d *Domain) Solver)

// SolverTypes returns the names of all registered solvers
func SolverTypes() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}
