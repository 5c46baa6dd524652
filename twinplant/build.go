package twinplant

import (
	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
)

// twinPair is a twin-plant state before it is assigned a dense id.
type twinPair struct {
	q1, q2 automaton.StateID
}

// Build constructs the twin plant of k: the reachable pairs of
// K-trajectories (q1, q2) synchronized so that every controller's
// observation of the two trajectories agrees so far. A move (q1,e1,q1') ×
// (q2,e2,q2') is legal iff e1 == e2, or both e1 and e2 are globally
// unobservable under masks (two distinct hidden events are, by
// definition, indistinguishable to every controller).
//
// Returns ErrEmptyObservationMask if masks declares zero controllers.
// Complexity: O(|Q_k|²·deg_max²) worst case; only the reachable fragment
// is built, exactly as product.Product explores only reachable pairs.
func Build(k *automaton.Automaton, masks *ObservationMask) (*TwinPlant, error) {
	if masks == nil || masks.Controllers() == 0 {
		return nil, ErrEmptyObservationMask
	}

	q0, err := k.Initial()
	if err != nil {
		return nil, err
	}

	tp := &TwinPlant{
		alphabet:    k.Alphabet(),
		controllers: masks.Controllers(),
		out:         make(map[StateID][]Transition),
	}

	seen := make(map[twinPair]StateID)
	start := twinPair{q0, q0}
	startID := tp.addState(start, k)
	seen[start] = startID
	tp.initial = startID

	queue := []twinPair{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := seen[cur]

		t1, err := k.TransitionsFrom(cur.q1)
		if err != nil {
			return nil, err
		}
		t2, err := k.TransitionsFrom(cur.q2)
		if err != nil {
			return nil, err
		}

		for _, e1 := range t1 {
			for _, e2 := range t2 {
				if e1.Event != e2.Event && !(masks.GloballyUnobservable(e1.Event) && masks.GloballyUnobservable(e2.Event)) {
					continue
				}

				next := twinPair{e1.To, e2.To}
				nextID, ok := seen[next]
				if !ok {
					nextID = tp.addState(next, k)
					seen[next] = nextID
					queue = append(queue, next)
				}

				vector := make([]event.ID, masks.Controllers())
				for i := 0; i < masks.Controllers(); i++ {
					if masks.Observes(i, e1.Event) {
						vector[i] = e1.Event
					} else {
						vector[i] = event.Unobservable
					}
				}
				tp.out[curID] = append(tp.out[curID], Transition{
					From:      curID,
					Vector:    vector,
					RealEvent: e1.Event,
					To:        nextID,
				})
			}
		}
	}

	return tp, nil
}

func (tp *TwinPlant) addState(pair twinPair, k *automaton.Automaton) StateID {
	id := StateID(len(tp.states))
	tp.states = append(tp.states, State{
		ID:        id,
		Q1:        pair.q1,
		Q2:        pair.q2,
		Divergent: k.Marked(pair.q1) && !k.Marked(pair.q2),
	})
	tp.out[id] = nil

	return id
}
