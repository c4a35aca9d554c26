// Package tqc is an emulator for topological quantum computation with Ising
// anyons: fusion algebra, qubit encoding and braiding as register unitaries.
//
// What is in the module?
//
//	• Charges and fusion rules over the Ising charges Psi, Vacuum, Sigma
//	• A mutable state of anyons plus a time-ordered fusion schedule
//	• Fusion-basis validation for schedules
//	• Charge propagation and the derived qubit encoding
//	• Braids recorded as time steps of adjacent swaps, lifted to unitaries
//	• Complex dense matrices (Kronecker, inverse, change of basis)
//	• Anyon models loaded from YAML
//
// Packages:
//
//	anyon/   Charge, ChargeVector, FusionTable, Anyon
//	state/   State, FusionPair, FusionNode, StateVec
//	basis/   fusion-basis validation of a schedule
//	fusion/  charge propagation and the qubit encoding
//	braid/   swap history, swap matrices and register unitaries
//	model/   Model (R, F, fusion rules), Ising(), YAML configs
//	matrix/  complex128 Dense matrices and kernels
//	builder/ composable state fixtures (Chain, RightFold, Balanced, Random)
//	examples/ runnable demos
//
// Quick start:
//
//	st, _ := builder.BuildState(nil, builder.Anyons(6, anyon.Sigma), builder.Chain())
//	eng, _ := braid.New(st)
//	_ = eng.Swap([]braid.Swap{{A: 0, B: 1}})
//	u, _ := eng.Unitary(1, 0) // 8×8: R ⊗ I ⊗ I
//
// Engines log through log/slog (slog.Default() unless WithLogger is given)
// and are not safe for concurrent use. Errors wrap a kind sentinel and a
// cause sentinel; test them with errors.Is.
package tqc
