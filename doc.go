// Package qucosi is an in-memory playground for simulating quantum
// circuits on pure states — from single qubits to multi-wire registers,
// gates, oracles and measurement.
//
// 🚀 What is qucosi?
//
//	A small, deterministic state-vector simulator that brings together:
//		• Dense complex algebra: vectors, matrices, tensor products (linalg/)
//		• Qubits: basis states, registers, normalization checks (qubit/)
//		• Measurement: full and partial collapse with faithful phases (qubit/)
//		• Gates: Pauli, Hadamard, phase, CNOT/SWAP/Toffoli/Fredkin (gate/)
//		• Combinators: tensor powers, wire positioning, permutations (gate/)
//		• Constructors: controlled gates, classical oracles, the QFT (gate/)
//
// ✨ Why choose qucosi?
//
//   - Exact conventions – wire 0 is the leftmost (most significant) tensor
//     factor everywhere; no hidden endianness surprises
//   - Honest numerics – scalar checks near machine epsilon, matrix checks at
//     a documented tolerance; warnings instead of silent drift
//   - Deterministic tests – every sampling operation accepts an explicit
//     generator; the process-wide source is used only when you pass nil
//
// Everything is organized under three subpackages plus a demo driver:
//
//	linalg/     — dense complex vector/matrix layer over gonum's CDense
//	qubit/      — Qubit states, randomization, full & partial measurement
//	gate/       — named gates, combinators, S(σ), controlled-U, U_f, QFT
//	cmd/qucosi/ — illustrative circuits: Deutsch, Deutsch–Jozsa,
//	              Bernstein–Vazirani, Simon
//
// Quick sketch of a two-wire circuit:
//
//	q, _ := qubit.NewBasis(1, 2)        // |01⟩
//	h, _ := gate.H().TensorPow(2)       // H ⊗ H
//	_ = h.Apply(q)                      // superpose both wires
//	outcome := q.Measure(nil)           // collapse, classical result
//
// Dive into the package docs for the full operation set and the driver
// for complete algorithm walk-throughs.
package qucosi
