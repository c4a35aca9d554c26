// Package anyon defines topological charges, charge-multiplicity vectors,
// fusion tables and the immutable Anyon value.
//
// Charges are limited to the Ising-type label set {Vacuum, Psi, Sigma}.
// A ChargeVector counts how many times each label appears, in the canonical
// order [Psi, Vacuum, Sigma]:
//
//	Psi    = [1 0 0]
//	Vacuum = [0 1 0]
//	Sigma  = [0 0 1]
//
// Intermediate nodes of a fusion tree carry accumulated multiplicities, so
// FusionTable.Fuse is defined on full vectors, not just single labels:
//
//	σ ⊗ σ = 1 + ψ
//	[1 1 0] ⊗ σ = [0 0 2]
//
// All values in this package are immutable or copied by value.
package anyon
