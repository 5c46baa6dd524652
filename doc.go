// Package udec implements incremental verification of decentralized
// discrete-event systems: given plant automata, specification automata
// over a shared event alphabet, and a set of per-controller observation
// masks, it decides whether the specifications are observable under the
// plants (no reachable counter-example in their U-Structure),
// growing the U-Structure used to search for counter-examples only as
// far as each counter-example search demands.
//
// The engine lives in automaton, product, twinplant, ustructure, memo,
// and verifier; internal/automfile and internal/obslog are the on-disk
// loading and logging surfaces cmd/udecctl's CLI uses to drive it.
package udec
