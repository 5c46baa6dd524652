// Package twinplant builds the twin plant K̃ of a single specification
// automaton K: the reachable pairs of K-trajectories that share the same
// per-controller observation so far. ustructure.Build synchronizes a twin
// plant with the running plant product to find states where the "real"
// trajectory (first component) is legal but an indistinguishable
// alternate trajectory (second component) is not — the counter-example
// condition of SPEC_FULL.md §3/§8.
//
// Errors:
//
//	ErrEmptyObservationMask - Build called with a mask declaring zero controllers.
package twinplant

import (
	"errors"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
)

// ErrEmptyObservationMask indicates an ObservationMask with zero controllers
// was supplied to Build.
var ErrEmptyObservationMask = errors.New("twinplant: empty observation mask")

// ObservationMask records, per controller, which events of Σ that
// controller observes. Unset entries default to unobservable.
type ObservationMask struct {
	controllers int
	observable  map[event.ID][]bool // event.ID -> per-controller flags, len == controllers
}

// NewObservationMask creates a mask for the given number of controllers.
// Every event starts fully unobservable until Set is called.
func NewObservationMask(controllers int) *ObservationMask {
	return &ObservationMask{
		controllers: controllers,
		observable:  make(map[event.ID][]bool),
	}
}

// Set records whether controller (0-indexed) observes event e.
func (m *ObservationMask) Set(e event.ID, controller int, observable bool) {
	flags, ok := m.observable[e]
	if !ok {
		flags = make([]bool, m.controllers)
	}
	flags[controller] = observable
	m.observable[e] = flags
}

// Observes reports whether controller observes event e.
func (m *ObservationMask) Observes(controller int, e event.ID) bool {
	flags, ok := m.observable[e]
	if !ok || controller < 0 || controller >= len(flags) {
		return false
	}

	return flags[controller]
}

// GloballyUnobservable reports whether no controller observes e.
func (m *ObservationMask) GloballyUnobservable(e event.ID) bool {
	flags, ok := m.observable[e]
	if !ok {
		return true
	}
	for _, f := range flags {
		if f {
			return false
		}
	}

	return true
}

// Controllers returns the number of controllers this mask was built for.
func (m *ObservationMask) Controllers() int {
	return m.controllers
}

// StateID identifies a state within a TwinPlant.
type StateID int

// State is a twin-plant state: a pair of K-states reachable by mutually
// indistinguishable trajectories. Divergent is true when Q1 is a marked
// (legal) K-state and Q2 is not — the signal ustructure propagates to
// flag a U-state as bad.
type State struct {
	ID        StateID
	Q1, Q2    automaton.StateID
	Divergent bool
}

// Transition is a synchronized move of both components. Vector carries
// the event each controller observes on this move (event.Unobservable
// where hidden); RealEvent is the literal symbol driving the first
// ("real") component, which ustructure synchronizes against the plant.
type Transition struct {
	From      StateID
	Vector    []event.ID
	RealEvent event.ID
	To        StateID
}

// TwinPlant is the twin plant K̃ of a single specification automaton.
type TwinPlant struct {
	alphabet    *event.Alphabet
	controllers int

	states  []State
	initial StateID
	out     map[StateID][]Transition
}

// Alphabet returns the Σ this twin plant was built over.
func (tp *TwinPlant) Alphabet() *event.Alphabet {
	return tp.alphabet
}

// Controllers returns the number of controllers this twin plant's
// observation mask declared.
func (tp *TwinPlant) Controllers() int {
	return tp.controllers
}

// Initial returns the twin plant's initial state, (q0, q0).
func (tp *TwinPlant) Initial() StateID {
	return tp.initial
}

// States returns every reachable twin-plant state, in discovery order.
func (tp *TwinPlant) States() []State {
	out := make([]State, len(tp.states))
	copy(out, tp.states)

	return out
}

// State returns the State value for id.
func (tp *TwinPlant) State(id StateID) State {
	return tp.states[id]
}

// TransitionsFrom returns the transitions with From == s, in discovery
// order.
func (tp *TwinPlant) TransitionsFrom(s StateID) []Transition {
	out := make([]Transition, len(tp.out[s]))
	copy(out, tp.out[s])

	return out
}

// NumberOfStates returns the number of reachable twin-plant states, for
// telemetry.
func (tp *TwinPlant) NumberOfStates() int {
	return len(tp.states)
}

// NumberOfTransitions returns the number of twin-plant transitions, for
// telemetry.
func (tp *TwinPlant) NumberOfTransitions() int {
	n := 0
	for _, ts := range tp.out {
		n += len(ts)
	}

	return n
}
