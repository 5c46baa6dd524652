package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
	"github.com/Summer2023SHY/udec/twinplant"
	"github.com/Summer2023SHY/udec/verifier"
)

func buildTwoPlantTwoSpecScenario(t *testing.T) (plants, specs []*automaton.Automaton, g *automaton.Automaton, masks *twinplant.ObservationMask) {
	t.Helper()
	alpha, err := event.NewAlphabet(
		event.Event{ID: 1, Label: "a", Observable: true},
		event.Event{ID: 2, Label: "b", Observable: true},
	)
	require.NoError(t, err)

	selfLoop := func(name string, events ...event.ID) *automaton.Automaton {
		a, err := automaton.New(alpha)
		require.NoError(t, err)
		s := a.AddState(name, true)
		require.NoError(t, a.SetInitial(s))
		for _, e := range events {
			require.NoError(t, a.AddTransition(s, e, s))
		}

		return a
	}

	plants = []*automaton.Automaton{selfLoop("p1", 1), selfLoop("p2", 2)}
	specs = []*automaton.Automaton{selfLoop("k1", 1), selfLoop("k2", 2)}

	masks = twinplant.NewObservationMask(1)
	masks.Set(1, 0, true)
	masks.Set(2, 0, true)

	g, err = automaton.Universal(alpha)
	require.NoError(t, err)

	return plants, specs, g, masks
}

func TestSweep_VerdictInvariantAcrossPermutationsAndThirdCriteria(t *testing.T) {
	plants, specs, g, masks := buildTwoPlantTwoSpecScenario(t)

	criteria := []verifier.Criteria{
		{First: verifier.PlantOverSpec, Second: verifier.ShortestCounterExample, Third: verifier.InsertSpecsAtStart, Fourth: verifier.FirstMatch},
		{First: verifier.PlantOverSpec, Second: verifier.ShortestCounterExample, Third: verifier.InsertSpecsAtEnd, Fourth: verifier.FirstMatch},
		{First: verifier.SpecOverPlant, Second: verifier.LongestCounterExample, Third: verifier.InsertSpecsAtStart, Fourth: verifier.MinStates},
		{First: verifier.Alternating, Second: verifier.ShortestCounterExample, Third: verifier.InsertSpecsAtEnd, Fourth: verifier.LongestRejection},
	}

	report, err := verifier.Sweep(plants, specs, g, masks, criteria)
	require.NoError(t, err)
	require.NotEmpty(t, report.Runs)

	// invariant 8: fixing Criteria, the verdict must not vary across
	// plant/spec permutations.
	verdictByCriteria := make(map[verifier.Criteria]bool)
	for _, run := range report.Runs {
		want, ok := verdictByCriteria[run.Criteria]
		if !ok {
			verdictByCriteria[run.Criteria] = run.Verdict
			continue
		}
		assert.Equal(t, want, run.Verdict, "verdict must not depend on permutation order for %s", run.Criteria)
	}

	// invariant 8 (ThirdCriteria half): the two runs that differ only in
	// ThirdCriteria must agree, for a fixed permutation pair.
	byPerm := make(map[[2]int][]verifier.Run)
	for _, run := range report.Runs {
		if run.Criteria.First != verifier.PlantOverSpec || run.Criteria.Fourth != verifier.FirstMatch {
			continue
		}
		key := [2]int{run.PlantPermutation, run.SpecPermutation}
		byPerm[key] = append(byPerm[key], run)
	}
	for key, runs := range byPerm {
		require.Len(t, runs, 2, "expected one run per ThirdCriteria value for permutation %v", key)
		assert.Equal(t, runs[0].Verdict, runs[1].Verdict, "verdict must not depend on ThirdCriteria")
	}
}
