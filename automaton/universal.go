// File: universal.go
// Role: builds G_Σ*, the one-state universal automaton accepting every
// string over Σ, used as the starting L′ of each outer iteration
// (spec.md §4.6 step 1).
package automaton

import "github.com/Summer2023SHY/udec/event"

// Universal builds G_Σ*: a single marked state, self-looped on every event
// of alphabet. It accepts every string over Σ.
func Universal(alphabet *event.Alphabet) (*Automaton, error) {
	a, err := New(alphabet)
	if err != nil {
		return nil, err
	}
	q0 := a.AddState("q0", true)
	if err := a.SetInitial(q0); err != nil {
		return nil, err
	}
	for _, e := range alphabet.Events() {
		if err := a.AddTransition(q0, e.ID, q0); err != nil {
			return nil, err
		}
	}

	return a, nil
}
