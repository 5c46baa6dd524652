package ustructure

import (
	"sort"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
	"github.com/Summer2023SHY/udec/twinplant"
)

// uPair is a U-structure state before it is assigned a dense id.
type uPair struct {
	p automaton.StateID
	t twinplant.StateID
}

// Build synchronizes plant (the running L′ product) with twin, the
// specification's twin plant: from (p, (q1,q2)), a move is taken iff
// twin offers a transition whose RealEvent the plant can also take from
// p, giving a transition labelled by the twin transition's event-vector
// to (p', (q1',q2')). A state is Bad iff its twin component is
// Divergent.
//
// A plant transition on an event twin cannot follow at all from the
// current twin state is a second, more basic kind of violation — the
// specification simply forbids an event the plant permits — and is
// modelled as a move into a fresh terminal sink UState flagged Bad,
// labelled by the lone offending event (not a true per-controller
// vector, since no twin transition existed to derive one from).
//
// Implements "union(L′, twin(K′)).synchronizedComposition()" of
// SPEC_FULL.md §4.5 as a single reachable-state BFS, the same discipline
// product.Product and twinplant.Build use.
//
// Returns ErrControllerMismatch if controllers != twin.Controllers().
func Build(plant *automaton.Automaton, twin *twinplant.TwinPlant, controllers int) (*UStructure, error) {
	if controllers != twin.Controllers() {
		return nil, ErrControllerMismatch
	}

	p0, err := plant.Initial()
	if err != nil {
		return nil, err
	}

	u := &UStructure{
		controllers: controllers,
		out:         make(map[UStateID][]UTransition),
	}

	seen := make(map[uPair]UStateID)
	start := uPair{p0, twin.Initial()}
	startID := u.addState(start, twin)
	seen[start] = startID
	u.initial = startID

	queue := []uPair{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := seen[cur]

		plantTrans, err := plant.TransitionsFrom(cur.p)
		if err != nil {
			return nil, err
		}
		sortPlantTransitions(plantTrans)
		twinTrans := twin.TransitionsFrom(cur.t)

		for _, pt := range plantTrans {
			matched := false
			for _, tt := range twinTrans {
				if pt.Event != tt.RealEvent {
					continue
				}
				matched = true

				next := uPair{pt.To, tt.To}
				nextID, ok := seen[next]
				if !ok {
					nextID = u.addState(next, twin)
					seen[next] = nextID
					queue = append(queue, next)
				}

				u.out[curID] = append(u.out[curID], UTransition{
					From:      curID,
					Vector:    tt.Vector,
					RealEvent: tt.RealEvent,
					To:        nextID,
				})
			}

			if !matched {
				sinkID := u.addSink(pt.To, cur.t)
				u.out[curID] = append(u.out[curID], UTransition{
					From:      curID,
					Vector:    []event.ID{pt.Event},
					RealEvent: pt.Event,
					To:        sinkID,
				})
			}
		}
	}

	return u, nil
}

// addSink creates a fresh terminal Bad state for a plant move no twin
// transition can follow. Unlike addState, sinks are never deduplicated
// via the pair-keyed seen map and never enqueued: they are always a new,
// unreachable-any-further state, since distinct occurrences of "the
// plant did something the spec can't" need not (and need not not) share
// identity.
func (u *UStructure) addSink(plantState automaton.StateID, twinState twinplant.StateID) UStateID {
	id := UStateID(len(u.states))
	u.states = append(u.states, UState{
		ID:    id,
		Plant: plantState,
		Twin:  twinState,
		Bad:   true,
	})
	u.out[id] = nil

	return id
}

func (u *UStructure) addState(pair uPair, twin *twinplant.TwinPlant) UStateID {
	id := UStateID(len(u.states))
	u.states = append(u.states, UState{
		ID:    id,
		Plant: pair.p,
		Twin:  pair.t,
		Bad:   twin.State(pair.t).Divergent,
	})
	u.out[id] = nil

	return id
}

func sortPlantTransitions(ts []automaton.Transition) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Event != ts[j].Event {
			return ts[i].Event < ts[j].Event
		}

		return ts[i].To < ts[j].To
	})
}
