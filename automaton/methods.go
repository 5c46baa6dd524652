// Package automaton: construction-time mutators.
//
// These mirror core.Graph's AddVertex/AddEdge shape: validate, mutate the
// owning Automaton's maps/slices, return a sentinel error on misuse. Unlike
// core.Graph, an Automaton carries no locks — it is built once by a single
// goroutine (the loader or a test) and never mutated again afterward
// (SPEC_FULL.md §5); adding unused RWMutex fields here would contradict the
// "no partial/defensive feature" guidance.
package automaton

import "github.com/Summer2023SHY/udec/event"

// AddState appends a new state with the given label and marked flag, and
// returns its dense StateID.
// Complexity: O(1) amortized.
func (a *Automaton) AddState(label string, marked bool) StateID {
	id := StateID(len(a.states))
	a.states = append(a.states, State{ID: id, Label: label, Marked: marked})
	a.out[id] = nil

	return id
}

// HasState reports whether id was produced by AddState on this Automaton.
func (a *Automaton) HasState(id StateID) bool {
	return int(id) >= 0 && int(id) < len(a.states)
}

// SetInitial designates s as q0. Returns ErrUnknownState if s was not
// produced by AddState, ErrDuplicateInitialState if called twice.
func (a *Automaton) SetInitial(s StateID) error {
	if !a.HasState(s) {
		return ErrUnknownState
	}
	if a.hasInitial {
		return ErrDuplicateInitialState
	}
	a.initial = s
	a.hasInitial = true

	return nil
}

// Initial returns q0. Returns ErrNoInitialState if SetInitial was never
// called.
func (a *Automaton) Initial() (StateID, error) {
	if !a.hasInitial {
		return 0, ErrNoInitialState
	}

	return a.initial, nil
}

// AddTransition adds (from, e, to) to δ. Returns ErrUnknownState if either
// endpoint is invalid, ErrUnknownEvent if e is outside Σ. Multi-edges
// (repeated calls with the same endpoints and possibly the same event) are
// permitted, matching spec.md §3's non-determinism allowance.
// Complexity: O(1) amortized.
func (a *Automaton) AddTransition(from StateID, e event.ID, to StateID) error {
	if !a.HasState(from) || !a.HasState(to) {
		return ErrUnknownState
	}
	if _, err := a.alphabet.ByID(e); err != nil {
		return ErrUnknownEvent
	}
	a.out[from] = append(a.out[from], Transition{From: from, Event: e, To: to})
	a.activeEvent[e] = true

	return nil
}

// States returns every state, in construction (dense-id) order.
func (a *Automaton) States() []State {
	out := make([]State, len(a.states))
	copy(out, a.states)

	return out
}

// Marked reports whether s is a marked state. Returns false (not an error)
// for an invalid id — callers are expected to validate with HasState first
// when the distinction matters.
func (a *Automaton) Marked(s StateID) bool {
	if !a.HasState(s) {
		return false
	}

	return a.states[s].Marked
}

// TransitionsFrom returns the transitions with From == s, in the order they
// were added. Returns ErrUnknownState if s is invalid.
func (a *Automaton) TransitionsFrom(s StateID) ([]Transition, error) {
	if !a.HasState(s) {
		return nil, ErrUnknownState
	}
	out := make([]Transition, len(a.out[s]))
	copy(out, a.out[s])

	return out, nil
}

// IsActive reports whether at least one transition anywhere in the
// automaton carries event e.
func (a *Automaton) IsActive(e event.ID) bool {
	return a.activeEvent[e]
}

// NumberOfStates returns |Q|, for telemetry.
func (a *Automaton) NumberOfStates() int {
	return len(a.states)
}

// NumberOfTransitions returns |δ|, for telemetry.
func (a *Automaton) NumberOfTransitions() int {
	n := 0
	for _, ts := range a.out {
		n += len(ts)
	}

	return n
}
