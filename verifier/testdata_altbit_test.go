package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
	"github.com/Summer2023SHY/udec/twinplant"
)

// buildAltBitProtocol builds an in-memory alternating-bit-protocol-shaped
// seed scenario (SPEC_FULL.md §8): two plants cycling
// send0 -> ack0 -> send1 -> ack1 -> ... in lockstep, and a spec
// accepting exactly that cycle, so the plants' combined language is
// already a subset of the spec's — the scenario exercises a
// multi-event, multi-state Verify run end to end rather than proving a
// historical protocol property.
func buildAltBitProtocol(t *testing.T) (plants, specs []*automaton.Automaton, gSigmaStar *automaton.Automaton, masks *twinplant.ObservationMask) {
	t.Helper()
	alpha, err := event.NewAlphabet(
		event.Event{ID: 1, Label: "send0", Observable: true},
		event.Event{ID: 2, Label: "ack0", Observable: true},
		event.Event{ID: 3, Label: "send1", Observable: true},
		event.Event{ID: 4, Label: "ack1", Observable: true},
	)
	require.NoError(t, err)

	cycle := func(name string) *automaton.Automaton {
		a, err := automaton.New(alpha)
		require.NoError(t, err)
		s0 := a.AddState(name+"0", true)
		s1 := a.AddState(name+"1", true)
		s2 := a.AddState(name+"2", true)
		s3 := a.AddState(name+"3", true)
		require.NoError(t, a.SetInitial(s0))
		require.NoError(t, a.AddTransition(s0, 1, s1))
		require.NoError(t, a.AddTransition(s1, 2, s2))
		require.NoError(t, a.AddTransition(s2, 3, s3))
		require.NoError(t, a.AddTransition(s3, 4, s0))

		return a
	}

	sender := cycle("sender")
	receiver := cycle("receiver")
	spec := cycle("spec")

	masks = twinplant.NewObservationMask(1)
	for _, e := range alpha.IDs() {
		masks.Set(e, 0, true)
	}

	g, err := automaton.Universal(alpha)
	require.NoError(t, err)

	return []*automaton.Automaton{sender, receiver}, []*automaton.Automaton{spec}, g, masks
}
