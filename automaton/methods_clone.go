// File: methods_clone.go
// Role: deep duplication of an Automaton with a fresh Handle, mirroring
// core's CloneEmpty/Clone split (here collapsed into one Duplicate, since
// an Automaton has no edge-less "empty" notion worth exposing separately).
package automaton

import "github.com/Summer2023SHY/udec/event"

// Duplicate returns a deep copy of a: same states (ids, labels, marked
// flags), same initial state, same transitions, but a fresh Handle — the
// copy is a distinct automaton for memoization and inclusion-set purposes
// even though it is structurally identical to a.
// Complexity: O(|Q| + |δ|).
func (a *Automaton) Duplicate() *Automaton {
	dup := &Automaton{
		alphabet:    a.alphabet,
		handle:      newHandle(),
		states:      make([]State, len(a.states)),
		out:         make(map[StateID][]Transition, len(a.out)),
		activeEvent: make(map[event.ID]bool, len(a.activeEvent)),
		initial:     a.initial,
		hasInitial:  a.hasInitial,
	}
	copy(dup.states, a.states)
	for s, ts := range a.out {
		cp := make([]Transition, len(ts))
		copy(cp, ts)
		dup.out[s] = cp
	}
	for e, active := range a.activeEvent {
		dup.activeEvent[e] = active
	}

	return dup
}
