// Package state holds the system state shared by the fusion and braid
// engines: an ordered list of anyons plus a time-stamped fusion schedule.
//
// The schedule is a flat, time-indexed arena. Each FusionNode records one
// fusion of two anyon indices at a discrete time step (≥ 1); Events groups
// nodes with equal time into FusionEvents, in time order. No pointer tree is
// built; adjacency questions are answered with index-range checks.
//
// Invariants enforced by AddFusionOp:
//
//   - time ≥ 1 (ErrZeroTime)
//   - time never decreases (ErrTimeOrder)
//   - both indices address an anyon present when the op is recorded (ErrAnyonIndex)
//   - an anyon is not fused with itself (ErrSelfFusion)
//   - an index appears at most once within one time step (ErrIndexReused)
//
// Every such failure also matches ErrConstruction. A rejected op leaves the
// state unchanged.
//
// StateVec is a small amplitude container for 2^n-dimensional register
// states; it applies the unitaries produced by the braid engine.
//
// Concurrency: State is not safe for concurrent mutation. Engines take a
// Clone at construction and never observe later changes.
package state
