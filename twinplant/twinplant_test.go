package twinplant_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
	"github.com/Summer2023SHY/udec/twinplant"
)

// buildK constructs a two-branch spec: q0 -b-> q1 (marked), q0 -c-> q2
// (unmarked), where b and c are both unobservable to the lone controller.
func buildK(t *testing.T) (*automaton.Automaton, *twinplant.ObservationMask) {
	t.Helper()
	alpha, err := event.NewAlphabet(
		event.Event{ID: 1, Label: "b"},
		event.Event{ID: 2, Label: "c"},
	)
	require.NoError(t, err)

	k, err := automaton.New(alpha)
	require.NoError(t, err)
	q0 := k.AddState("q0", false)
	q1 := k.AddState("q1", true)
	q2 := k.AddState("q2", false)
	require.NoError(t, k.SetInitial(q0))
	require.NoError(t, k.AddTransition(q0, 1, q1))
	require.NoError(t, k.AddTransition(q0, 2, q2))

	masks := twinplant.NewObservationMask(1) // neither event is ever Set -> globally unobservable

	return k, masks
}

func TestBuild_EmptyObservationMask(t *testing.T) {
	k, _ := buildK(t)
	_, err := twinplant.Build(k, twinplant.NewObservationMask(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, twinplant.ErrEmptyObservationMask))
}

func TestBuild_DivergenceOnHiddenMismatch(t *testing.T) {
	k, masks := buildK(t)
	tp, err := twinplant.Build(k, masks)
	require.NoError(t, err)

	assert.Equal(t, 5, tp.NumberOfStates())
	assert.Equal(t, 4, tp.NumberOfTransitions())

	var sawDivergent, sawConvergentMarked bool
	for _, s := range tp.States() {
		if s.ID == tp.Initial() {
			continue
		}
		q1Marked := k.Marked(s.Q1)
		q2Marked := k.Marked(s.Q2)
		assert.Equal(t, q1Marked && !q2Marked, s.Divergent)
		if s.Divergent {
			sawDivergent = true
		}
		if q1Marked && q2Marked {
			sawConvergentMarked = true
		}
	}
	assert.True(t, sawDivergent, "expected at least one divergent pair (q1,q2)")
	assert.True(t, sawConvergentMarked, "expected the (q1,q1) pair to be reachable and non-divergent")
}

func TestBuild_ObservableEventForcesLockstep(t *testing.T) {
	alpha, err := event.NewAlphabet(
		event.Event{ID: 1, Label: "a", Observable: true},
		event.Event{ID: 2, Label: "d", Observable: true},
	)
	require.NoError(t, err)
	k, err := automaton.New(alpha)
	require.NoError(t, err)
	q0 := k.AddState("q0", false)
	q1 := k.AddState("q1", true)
	q2 := k.AddState("q2", false)
	require.NoError(t, k.SetInitial(q0))
	require.NoError(t, k.AddTransition(q0, 1, q1))
	require.NoError(t, k.AddTransition(q0, 2, q2))

	masks := twinplant.NewObservationMask(1)
	masks.Set(1, 0, true)
	masks.Set(2, 0, true)

	tp, err := twinplant.Build(k, masks)
	require.NoError(t, err)

	// a and d are both observable, so cross pairs (a,d)/(d,a) are illegal:
	// only (q0,q0) -a-> (q1,q1) and (q0,q0) -d-> (q2,q2) exist.
	assert.Equal(t, 3, tp.NumberOfStates())
	assert.Equal(t, 2, tp.NumberOfTransitions())
	for _, s := range tp.States() {
		assert.False(t, s.Divergent)
	}
}
