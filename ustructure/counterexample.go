package ustructure

import "github.com/Summer2023SHY/udec/event"

// visit records how BFS first reached a state: its parent and the real
// event labelling the transition taken to reach it.
type visit struct {
	parent UStateID
	edge   event.ID
	depth  int
}

// FindCounterExample searches the U-Structure for a path from the
// initial state to a Bad state.
//
// shortest == true returns the first bad state BFS discovers — minimal
// length by construction, first among ties in transition-discovery
// order.
//
// shortest == false ("longest among the shortest", spec.md §4.6's
// SecondCriteria.LONGEST_COUNTER_EXAMPLE, resolved per SPEC_FULL.md §9)
// finds the minimal depth L* at which any bad state is reachable, then
// returns the last bad state BFS dequeues at exactly depth L* — i.e. the
// maximal trace among the equally-shortest counter-examples, never a
// globally longest one.
//
// Returns (nil, false) if no Bad state is reachable.
func (u *UStructure) FindCounterExample(shortest bool) (Trace, bool) {
	visited := map[UStateID]visit{u.initial: {}}
	queue := []UStateID{u.initial}

	type badHit struct {
		id    UStateID
		depth int
	}
	var badStates []badHit
	if u.states[u.initial].Bad {
		badStates = append(badStates, badHit{u.initial, 0})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curDepth := visited[cur].depth

		for _, tr := range u.TransitionsFrom(cur) {
			if _, seen := visited[tr.To]; seen {
				continue
			}
			visited[tr.To] = visit{parent: cur, edge: tr.RealEvent, depth: curDepth + 1}
			queue = append(queue, tr.To)
			if u.states[tr.To].Bad {
				badStates = append(badStates, badHit{tr.To, curDepth + 1})
			}
		}
	}

	if len(badStates) == 0 {
		return nil, false
	}

	target := badStates[0]
	if !shortest {
		minDepth := badStates[0].depth
		for _, b := range badStates {
			if b.depth == minDepth {
				target = b // last one at minimal depth wins
			}
		}
	}

	return u.reconstruct(visited, target.id), true
}

// reconstruct walks the BFS parent chain from target back to the
// initial state, building the Trace in forward order.
func (u *UStructure) reconstruct(visited map[UStateID]visit, target UStateID) Trace {
	var reversed Trace
	for cur := target; cur != u.initial; {
		v := visited[cur]
		reversed = append(reversed, v.edge)
		cur = v.parent
	}

	trace := make(Trace, len(reversed))
	for i, v := range reversed {
		trace[len(reversed)-1-i] = v
	}

	return trace
}
