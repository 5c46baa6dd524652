// Package ustructure: synchronized composition and counter-example
// search.
//
// What:
//   - Build(plant, twin, controllers) returns the reachable
//     (plant-state, twin-plant-state) pairs, each flagged Bad when its
//     twin component is Divergent, plus a Bad terminal sink for every
//     plant move the twin plant cannot follow.
//   - (*UStructure).FindCounterExample(shortest) walks the structure for
//     a path to a Bad state.
//
// Why: this is the artifact verifier.Verify's inner loop inspects on
// every iteration (spec.md §4.6 step 3b) — if FindCounterExample finds
// nothing, the current (L′,K′) pair is locally sound and the outer loop
// moves on to the next spec; if it finds a trace, that trace drives the
// next inclusion decision, which grows one of the partial products.
package ustructure
