// Package matrix offers the dense complex linear algebra the braid engine
// needs to turn swaps into unitaries.
//
// The matrix package provides:
//
//   - Dense, a row-major complex128 matrix with bounds-checked At/Set.
//   - Kernels: Add, Sub, Mul, Scale, ConjTranspose, Kronecker, Inverse.
//   - Numeric comparisons: AllClose, IsUnitary.
//
// Every kernel allocates a fresh result and never mutates its operands.
// Errors are package sentinels (see errors.go) wrapped with an operation tag,
// so callers match them with errors.Is.
//
// Kronecker products grow as (r1*r2)×(c1*c2); a register of n qubits yields a
// 2^n × 2^n operator, so memory is O(4^n). Keep registers small.
package matrix
