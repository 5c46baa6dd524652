// File: selfloop.go
// Role: pure self-loop completion for inactive events.
//
// Design Notes (SPEC_FULL.md §9): the distilled spec's
// addSelfLoopsForInactiveEvents mutates an automaton in place and is
// idempotent only by virtue of re-scanning "no transition exists anywhere".
// This repo instead exposes a pure WithSelfLoops(a) -> a' that always
// returns a fresh Automaton, called exactly once by the loader
// (internal/automfile) right after parsing. Because the result is itself
// fully-active on every event, calling WithSelfLoops again is a provably
// idempotent no-op copy (every event is already active, so the added-loop
// set is empty) without needing any additional bookkeeping.
package automaton

import "github.com/Summer2023SHY/udec/event"

// WithSelfLoops returns a fresh Automaton equal to a, except that for every
// event e in a's Alphabet with no transition anywhere in a, a (q, e, q)
// transition is added for every state q. This aligns silent components so
// that events from other components pass through unconstrained once the
// automata are combined by product.Product.
// Complexity: O(|Q| + |δ| + |Σ|).
func WithSelfLoops(a *Automaton) *Automaton {
	out := a.Duplicate()

	var inactive []event.ID
	for _, e := range a.alphabet.Events() {
		if !a.activeEvent[e.ID] {
			inactive = append(inactive, e.ID)
		}
	}
	if len(inactive) == 0 {
		return out
	}

	for _, s := range out.states {
		for _, eid := range inactive {
			out.out[s.ID] = append(out.out[s.ID], Transition{From: s.ID, Event: eid, To: s.ID})
		}
	}
	for _, eid := range inactive {
		out.activeEvent[eid] = true
	}

	return out
}
