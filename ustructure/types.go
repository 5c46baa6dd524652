// Package ustructure implements the U-Structure: the synchronized
// composition of a plant product with a specification's twin plant, and
// counter-example search over the result.
//
// Errors:
//
//	ErrControllerMismatch - Build called with a twin plant declaring a
//	                        different controller count than requested.
package ustructure

import (
	"errors"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
	"github.com/Summer2023SHY/udec/twinplant"
)

// ErrControllerMismatch indicates Build was called with a controllers
// count that disagrees with the twin plant's own ObservationMask.
var ErrControllerMismatch = errors.New("ustructure: controller count mismatch")

// UStateID identifies a state within a UStructure.
type UStateID int

// UState pairs a plant state with a twin-plant state. Bad is set when the
// twin-plant state is Divergent, and on every terminal sink Build adds for
// a plant move the twin plant cannot follow: a trace reaching a Bad state
// is a counter-example (spec.md §3/§8 invariant 5).
type UState struct {
	ID    UStateID
	Plant automaton.StateID
	Twin  twinplant.StateID
	Bad   bool
}

// UTransition is a synchronized move. Vector is the per-controller view
// (event.Unobservable where hidden); RealEvent is the literal Σ-event
// driving the underlying plant/spec transition — the value
// automaton.AcceptsCounterExample needs, since plant and spec automata
// are defined over Σ directly rather than over event-vectors.
type UTransition struct {
	From      UStateID
	Vector    []event.ID
	RealEvent event.ID
	To        UStateID
}

// Trace is a counter-example witness: the sequence of real Σ-events from
// the U-Structure's initial state to a Bad state, suitable as the
// argument to automaton.AcceptsCounterExample.
type Trace []event.ID

// UStructure is the synchronized composition of a plant automaton and a
// specification's twin plant.
type UStructure struct {
	controllers int
	states      []UState
	initial     UStateID
	out         map[UStateID][]UTransition
}

// Controllers returns the number of controllers this U-Structure's
// event-vectors carry.
func (u *UStructure) Controllers() int {
	return u.controllers
}

// Initial returns the U-Structure's initial state.
func (u *UStructure) Initial() UStateID {
	return u.initial
}

// States returns every reachable U-state, in discovery order.
func (u *UStructure) States() []UState {
	out := make([]UState, len(u.states))
	copy(out, u.states)

	return out
}

// TransitionsFrom returns the transitions with From == s, in discovery
// order.
func (u *UStructure) TransitionsFrom(s UStateID) []UTransition {
	out := make([]UTransition, len(u.out[s]))
	copy(out, u.out[s])

	return out
}

// NumberOfStates returns the number of reachable U-states, for telemetry.
func (u *UStructure) NumberOfStates() int {
	return len(u.states)
}

// NumberOfTransitions returns the number of U-transitions, for
// telemetry.
func (u *UStructure) NumberOfTransitions() int {
	n := 0
	for _, ts := range u.out {
		n += len(ts)
	}

	return n
}
