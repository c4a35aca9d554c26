// Package braid implements the braid engine: it records adjacent anyon
// exchanges over discrete time steps and turns each recorded exchange into
// a register-level unitary.
//
// Lifecycle:
//
//	e, err := braid.New(st)                  // ≥ 3 anyons, snapshot of st
//	err = e.Swap([]braid.Swap{{A: 0, B: 1}}) // time step 1
//	q, ok, err := e.SwapToQubit(1, 0)        // which logical qubit
//	u, err := e.Unitary(1, 0)                // 2^n × 2^n
//
// Swap validates the whole set before touching the state: every pair must
// be adjacent (|a−b| = 1), in range, and no index may appear twice in one
// call. On failure neither the anyon ordering nor the history changes.
//
// SwapMatrix returns the model's R-matrix when the swapped anyons were
// fused with each other at time 1 of the original schedule, and F⁻¹·R·F
// otherwise. Unitary places that matrix on the swap's qubit and 2×2
// identities on every other qubit, composed by Kronecker product in encoding
// order. A model whose swap matrix is not 2×2 fails with ErrGateShape.
//
// Limitation: Unitary is dense; n qubits cost O(4^n) memory.
//
// Every engine carries a random uuid used to correlate its log records.
// Engines are not safe for concurrent use.
package braid
