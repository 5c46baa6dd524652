// Package verifier: the incremental outer/inner verification loop.
//
// What:
//   - Verify(plants, specs, gSigmaStar, masks, mem, criteria, telemetry)
//     decides whether every spec's U-Structure, grown incrementally
//     against a shrinking plant/spec universe, is counter-example-free.
//   - Sweep repeats Verify across every permutation of plants and specs
//     and every Criteria tuple, to study criterion robustness.
//
// Why: rebuilding the full synchronous product of every plant and spec
// up front is exponential in the number of components (SPEC_FULL.md
// §1); the inner loop instead folds in only the components a discovered
// counter-example actually implicates.
package verifier
