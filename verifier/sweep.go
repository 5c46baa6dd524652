package verifier

import (
	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/memo"
	"github.com/Summer2023SHY/udec/twinplant"
)

// Run is one (Criteria, plant permutation, spec permutation) row of a
// Sweep: the distilled spec's "Telemetry recorded per (criteria tuple,
// permutation index)" (§6), made concrete as one row per combination
// rather than a rectangular array (SPEC_FULL.md §9).
type Run struct {
	Criteria         Criteria
	PlantPermutation int
	SpecPermutation  int
	Verdict          bool
	Aggregate        Aggregate
}

// SweepReport is the result of sweeping every permutation of plants and
// specs across every Criteria tuple.
type SweepReport struct {
	Runs []Run
}

// AllCriteria enumerates the full Cartesian matrix of §4.6's four
// selection criteria (60 combinations: 3×2×2×5).
func AllCriteria() []Criteria {
	var all []Criteria
	firsts := []FirstCriteria{PlantOverSpec, SpecOverPlant, Alternating}
	seconds := []SecondCriteria{ShortestCounterExample, LongestCounterExample}
	thirds := []ThirdCriteria{InsertSpecsAtStart, InsertSpecsAtEnd}
	fourths := []FourthCriteria{FirstMatch, MinTransitions, MinStates, ShortestRejection, LongestRejection}
	for _, f1 := range firsts {
		for _, f2 := range seconds {
			for _, f3 := range thirds {
				for _, f4 := range fourths {
					all = append(all, Criteria{First: f1, Second: f2, Third: f3, Fourth: f4})
				}
			}
		}
	}

	return all
}

// Sweep runs Verify over every permutation of plants and every
// permutation of specs, for every Criteria in criteria, recording one
// Run per combination. Each Run gets its own fresh Memoizer and
// Telemetry so its Aggregate reflects that single permutation alone
// (invariant 8, §8, is checked by the caller's tests by comparing
// Verdict across Runs that share a Criteria but differ in permutation).
func Sweep(plants, specs []*automaton.Automaton, gSigmaStar *automaton.Automaton, masks *twinplant.ObservationMask, criteria []Criteria) (SweepReport, error) {
	plantPerms := permutations(plants)
	specPerms := permutations(specs)

	var report SweepReport
	for _, c := range criteria {
		for pi, pp := range plantPerms {
			for si, sp := range specPerms {
				tel := NewTelemetry()
				verdict, err := Verify(pp, sp, gSigmaStar, masks, memo.NewMemoizer(), c, tel)
				if err != nil {
					return SweepReport{}, err
				}
				report.Runs = append(report.Runs, Run{
					Criteria:         c,
					PlantPermutation: pi,
					SpecPermutation:  si,
					Verdict:          verdict,
					Aggregate:        *tel.aggregateFor(c),
				})
			}
		}
	}

	return report, nil
}

// permutations returns every ordering of list (n! entries). Bounded to
// small families by construction — a Sweep caller is expected to pass a
// handful of automata, not a loader-scale corpus.
func permutations(list []*automaton.Automaton) [][]*automaton.Automaton {
	if len(list) == 0 {
		return [][]*automaton.Automaton{{}}
	}

	var out [][]*automaton.Automaton
	for i := range list {
		rest := make([]*automaton.Automaton, 0, len(list)-1)
		rest = append(rest, list[:i]...)
		rest = append(rest, list[i+1:]...)
		for _, sub := range permutations(rest) {
			perm := append([]*automaton.Automaton{list[i]}, sub...)
			out = append(out, perm)
		}
	}

	return out
}
