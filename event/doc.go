// Package event models Σ, the fixed event alphabet shared by every plant
// and specification automaton in a single verification run.
//
// What:
//   - Event: stable ID, Label, Observable, Controllable.
//   - Alphabet: ordered, deduplicated set of Event, shared by value across
//     a run's automata.
//
// Why:
//   - Every automaton in a run must agree on Σ (spec.md §6 precondition);
//     Alphabet gives product/twinplant/ustructure a single comparable
//     handle to check that precondition defensively.
//
// See also: automaton (consumes Alphabet), twinplant (ObservationMask is
// indexed per event of an Alphabet).
package event
