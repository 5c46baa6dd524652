// Package product implements the synchronous intersection (binary product)
// of two automaton.Automaton values over a shared event.Alphabet.
//
// What:
//   - Product(a, b) returns the reachable subset of Q_a × Q_b, synchronized
//     on shared events.
//
// Why:
//   - Folding a plant or spec into L′/K′ (verifier's inner loop, spec.md
//     §4.6 step 3d) is exactly this intersection: L′ ← L′ × p.
//
// Errors:
//   - ErrIncompatibleAlphabets if a and b declare different event sets.
package product
