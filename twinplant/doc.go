// Package twinplant: the twin-plant construction.
//
// What:
//   - Build(k, masks) returns K̃, the reachable self-synchronized pairs of
//     K-trajectories that no controller in masks can yet tell apart.
//
// Why:
//   - ustructure.Build needs, at every reachable state, a signal for
//     "the trace that actually happened is legal, but a trace no
//     controller can distinguish from it is not" — Divergent carries
//     exactly that signal per twin-plant state.
//
// Determinism: state/transition discovery order is fixed by BFS over
// (q1,q2) pairs and the spec automaton k's own transition insertion
// order, so two Build calls on the same (k, masks) produce
// structurally identical output.
package twinplant
