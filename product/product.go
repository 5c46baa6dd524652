// Package product computes the binary synchronous intersection of two
// automata over a shared event.Alphabet.
//
// The construction explores only the reachable subset of Q_A × Q_B — it
// never materializes the full cross product up front — using the same
// queue-walker discipline as bfs.BFS (see bfs/bfs.go in the teacher repo),
// retargeted from core.Graph vertices to on-the-fly product states.
package product

import (
	"errors"
	"sort"

	"github.com/Summer2023SHY/udec/automaton"
)

// ErrIncompatibleAlphabets is returned when the two operands of Product (or
// the union step inside ustructure.Build) declare different event sets.
var ErrIncompatibleAlphabets = errors.New("product: incompatible alphabets")

// pairState is a product state (p, q) before it is assigned a dense id in
// the output automaton.
type pairState struct {
	p, q automaton.StateID
}

// Product returns an automaton whose states are the reachable subset of
// Q_a × Q_b starting from (q0_a, q0_b), with a transition
// ((p,q), e, (p',q')) iff both (p,e,p') ∈ δ_a and (q,e,q') ∈ δ_b. A state
// is marked iff both components are marked.
//
// Returns ErrIncompatibleAlphabets if a and b disagree on Σ.
// Complexity: O(|Q_a|·|Q_b| + |δ_a|·|δ_b|) worst case, but only the
// reachable fragment is ever built.
func Product(a, b *automaton.Automaton) (*automaton.Automaton, error) {
	if !a.Alphabet().SameEvents(b.Alphabet()) {
		return nil, ErrIncompatibleAlphabets
	}

	a0, err := a.Initial()
	if err != nil {
		return nil, err
	}
	b0, err := b.Initial()
	if err != nil {
		return nil, err
	}

	out, err := automaton.New(a.Alphabet())
	if err != nil {
		return nil, err
	}

	seen := make(map[pairState]automaton.StateID)
	start := pairState{a0, b0}
	startID := out.AddState("", a.Marked(a0) && b.Marked(b0))
	if err := out.SetInitial(startID); err != nil {
		return nil, err
	}
	seen[start] = startID

	queue := []pairState{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curID := seen[cur]

		ta, err := a.TransitionsFrom(cur.p)
		if err != nil {
			return nil, err
		}
		tb, err := b.TransitionsFrom(cur.q)
		if err != nil {
			return nil, err
		}
		sortTransitions(ta)
		sortTransitions(tb)

		for _, ea := range ta {
			for _, eb := range tb {
				if ea.Event != eb.Event {
					continue
				}
				next := pairState{ea.To, eb.To}
				nextID, ok := seen[next]
				if !ok {
					nextID = out.AddState("", a.Marked(next.p) && b.Marked(next.q))
					seen[next] = nextID
					queue = append(queue, next)
				}
				if err := out.AddTransition(curID, ea.Event, nextID); err != nil {
					return nil, err
				}
			}
		}
	}

	return out, nil
}

func sortTransitions(ts []automaton.Transition) {
	sort.Slice(ts, func(i, j int) bool {
		if ts[i].Event != ts[j].Event {
			return ts[i].Event < ts[j].Event
		}

		return ts[i].To < ts[j].To
	})
}
