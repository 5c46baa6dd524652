package automfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/internal/automfile"
	"github.com/Summer2023SHY/udec/twinplant"
	"github.com/Summer2023SHY/udec/verifier"
)

// TestLoad_SilentComponentPropagatesThroughVerify loads a two-plant,
// one-spec family in which each plant's file mentions only one of the
// two declared events (locally silent on the other) and checks that the
// real-world violation this induces is actually found by verifier.Verify.
//
// Without self-loop completion at load time (SPEC_FULL.md §3, invariant
// 2), each silent plant would carry zero transitions for the event it
// doesn't mention, so product.Product — which only keeps an event a
// state pair agrees on — would drop it from every product the plant
// takes part in. Folding such a plant into the running L′ is then
// indistinguishable from forbidding the event outright, which can only
// shrink L′'s language and can therefore only make Verify *more* likely
// to report true: a component that in reality has no opinion about "b"
// would silently make "a"-then-"b" impossible to ever construct,
// masking a genuine spec violation. This test pins the corrected,
// permissive behavior.
func TestLoad_SilentComponentPropagatesThroughVerify(t *testing.T) {
	// aEventsOnly is silent on "b": it only ever mentions "a".
	aHeader := `
EVENT 1 a 1 1
EVENT 2 b 1 1
STATE 0 s0
INITIAL 0
`
	aBody := `
TRANSITION 0 1 0
`
	aHdr, aBdy := writePair(t, aHeader, aBody)
	plantA, err := automfile.Load(aHdr, aBdy)
	require.NoError(t, err)
	assert.True(t, plantA.IsActive(2), "plant silent on b must be self-loop completed")

	// bEventsOnly is silent on "a": it only ever mentions "b".
	bHeader := `
EVENT 1 a 1 1
EVENT 2 b 1 1
STATE 0 t0
INITIAL 0
`
	bBody := `
TRANSITION 0 2 0
`
	bHdr, bBdy := writePair(t, bHeader, bBody)
	plantB, err := automfile.Load(bHdr, bBdy)
	require.NoError(t, err)
	assert.True(t, plantB.IsActive(1), "plant silent on a must be self-loop completed")

	// spec forbids starting with "b" and forbids "aa"; it keeps "b" as a
	// globally active event via an unreachable state so Load's own
	// self-loop completion leaves it untouched (the spec genuinely
	// restricts b, it isn't merely silent about it).
	specHeader := `
EVENT 1 a 1 1
EVENT 2 b 1 1
STATE 0 s0
STATE 1 s1
STATE 2 dummy
INITIAL 0
`
	specBody := `
MARKED 0
TRANSITION 0 1 1
TRANSITION 2 2 2
`
	specHdr, specBdy := writePair(t, specHeader, specBody)
	spec, err := automfile.Load(specHdr, specBdy)
	require.NoError(t, err)

	alphabet := plantA.Alphabet()
	g, err := automaton.Universal(alphabet)
	require.NoError(t, err)

	masks := twinplant.NewObservationMask(1)
	masks.Set(1, 0, true)
	masks.Set(2, 0, true)

	tel := verifier.NewTelemetry()
	verdict, err := verifier.Verify(
		[]*automaton.Automaton{plantA, plantB},
		[]*automaton.Automaton{spec},
		g, masks, nil,
		verifier.Criteria{},
		tel,
	)
	require.NoError(t, err)
	assert.False(t, verdict, "combined plant can do \"b\" first, which the spec forbids")
}
