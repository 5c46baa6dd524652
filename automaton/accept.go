// File: accept.go
// Role: trace acceptance via non-deterministic set simulation, mirroring
// bfs.walker's "visited/frontier" bookkeeping shape but over a *set* of
// current states rather than a single BFS queue (an automaton need not be
// deterministic, per spec.md §3).
package automaton

import "github.com/Summer2023SHY/udec/event"

// AcceptsCounterExample simulates trace against a starting from its
// initial state, tracking the set of all currently-reachable states after
// each consumed event (non-deterministic set simulation). It returns the
// number of events consumed before every candidate state set became empty
// (i.e. rejection), or NoRejection if the entire trace was consumed with
// at least one reachable state remaining at every step.
//
// "Accepted" here means every prefix has at least one matching outgoing
// transition from the current reachable set — acceptance does not require
// ending in a marked state, matching the distilled spec's definition in
// §4.1.
func (a *Automaton) AcceptsCounterExample(trace []event.ID) int {
	initial, err := a.Initial()
	if err != nil {
		return 0
	}
	current := map[StateID]bool{initial: true}

	for i, e := range trace {
		next := make(map[StateID]bool)
		for s := range current {
			for _, t := range a.out[s] {
				if t.Event == e {
					next[t.To] = true
				}
			}
		}
		if len(next) == 0 {
			return i
		}
		current = next
	}

	return NoRejection
}
