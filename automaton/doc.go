// Package automaton provides the in-memory labelled transition system at
// the core of the verification engine: States, Transitions over a shared
// event.Alphabet, and the Automaton type itself.
//
// What:
//
//   - New(alphabet, opts...) builds an empty Automaton over Σ.
//   - AddState/AddTransition/SetInitial construct δ, Q, q0.
//   - Duplicate returns a deep copy with a fresh Handle.
//   - WithSelfLoops(a) returns a fresh Automaton with every Σ-inactive event
//     self-looped on every state (pure; never mutates a).
//   - AcceptsCounterExample(trace) runs non-deterministic set simulation
//     and reports the rejection depth, or NoRejection if the whole trace
//     is accepted.
//   - Universal(alphabet) builds G_Σ*, the one-state accept-everything
//     automaton used to seed each outer verification iteration.
//
// Why:
//
//   - product, twinplant and ustructure all operate on Automaton values;
//     keeping state/event/transition modelling in one package avoids three
//     copies of the same (From, Event, To) triple.
//   - Handle gives verifier and memo a stable identity to track inclusion
//     sets and memoization keys without relying on pointer identity or
//     on-disk filenames (SPEC_FULL.md §9).
//
// Complexity (|Q| states, |δ| transitions, |Σ| events):
//
//   - AddState/AddTransition: O(1) amortized.
//   - Duplicate/WithSelfLoops: O(|Q| + |δ| + |Σ|).
//   - AcceptsCounterExample: O(len(trace) · (|Q| + |δ|)) worst case.
package automaton
