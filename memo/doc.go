// Package memo: the UStructure build cache.
//
// What: Key canonicalizes a set of component handles; Memoizer caches
// the UStructure (or error) built for a given Key, guaranteeing
// at-most-one build per key.
//
// Why: a caller that passes one Memoizer to several verifier.Verify
// calls revisits the same (L′,K′) memberships — rebuilding the
// U-Structure each time would repeat work for no benefit, since the
// pair's membership alone determines the result. verifier.Sweep does
// not share a Memoizer: it gives every run a fresh one.
package memo
