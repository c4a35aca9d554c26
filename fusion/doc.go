// Package fusion implements the fusion engine: it groups a state's fusion
// schedule into events, propagates topological charge through the fusion
// tree and selects the fusion pairs that encode logical qubits.
//
// Charge propagation keeps one working ChargeVector per anyon index,
// seeded with each anyon's canonical vector. For every pair (a, b), in event
// order and list order within an event, the engine computes
// w[a] ⊗ w[b], records it for the pair and writes it back to w[a]: anyon a
// becomes the fusion-tree node. A pair belongs to the qubit encoding iff its
// recorded vector has no Sigma component. The encoding is sorted and cached.
//
// The terminal charge (w[a] of the last op) is checked against an explicit
// EncodingPolicy; by default a terminal Sigma component is rejected with
// ErrInvalidEncoding.
//
// Example, six Sigma anyons fused as a chain 0←1, 0←2 … 0←5:
//
//	σσ = 1+ψ          (0 1) encodes
//	(1+ψ)σ = 2σ       (0 2)
//	2σ·σ = 2+2ψ       (0 3) encodes
//	…                 (0 5) encodes
//
// String renders the fusion tree; for anyons a, b, c fused (0 1) then
// (0 2), with trailing spaces omitted:
//
//	a b c
//	| | |
//	|─| |
//	|───|
//	|
//
// Engines are not safe for concurrent use.
package fusion
