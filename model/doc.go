// Package model supplies the fixed data of an anyon model: the braiding
// R-matrix, the basis-change F-matrix and the fusion table.
//
// Engines never hard-code these constants; they consume a Model:
//
//	type Model interface {
//		Name() string
//		RMatrix() *matrix.Dense
//		FMatrix() *matrix.Dense
//		FusionTable() anyon.FusionTable
//	}
//
// Ising() is the built-in model. Other parameterizations over the same
// three labels can be constructed with New or read from YAML with Load /
// LoadFile:
//
//	name: ising
//	r_matrix:
//	  - ["0.9238795325112867-0.3826834323650898i", "0"]
//	  - ["0", "0.38268343236508984+0.9238795325112867i"]
//	f_matrix:
//	  - ["0.7071067811865476", "0.7071067811865476"]
//	  - ["0.7071067811865476", "-0.7071067811865476"]
//	fusion:
//	  - {left: Sigma, right: Sigma, result: [Psi, Vacuum]}
//	  ...
//
// Matrix entries are parsed with strconv.ParseComplex. Fusion rules that are
// listed only once are mirrored (a⊗b = b⊗a); every pair must end up covered.
package model
