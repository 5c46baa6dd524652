package verifier

import (
	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/memo"
	"github.com/Summer2023SHY/udec/product"
	"github.com/Summer2023SHY/udec/twinplant"
	"github.com/Summer2023SHY/udec/ustructure"
)

// candidate is one plant or spec scanned against a counter-example
// during inner-loop step 3a: its own automaton plus the four statistics
// FourthCriteria scores on (rejection depth, transition count, state
// count, list position).
type candidate struct {
	automaton   *automaton.Automaton
	handle      automaton.Handle
	index       int
	rejectDepth int
	transitions int
	states      int
}

// Verify implements the outer/inner incremental-verification loop of
// SPEC_FULL.md §4.6. mem may be nil, in which case a fresh one-shot
// Memoizer is created; pass a shared Memoizer across multiple Verify
// calls to observe memoization hits (invariant 4, §8).
//
// Returns (false, nil) the moment a counter-example survives every
// rejecting candidate on both sides (inner-loop step 3e: a true
// counter-example has been isolated). Returns (true, nil) once every
// spec's inner loop succeeds. A non-nil error comes from building a twin
// plant, a U-Structure or a product (an empty observation mask, a
// controller-count mismatch, a missing initial state, or incompatible
// alphabets); the verdict returned alongside it is always false.
func Verify(
	plants, specs []*automaton.Automaton,
	gSigmaStar *automaton.Automaton,
	masks *twinplant.ObservationMask,
	mem *memo.Memoizer,
	c Criteria,
	tel Telemetry,
) (bool, error) {
	if mem == nil {
		mem = memo.NewMemoizer()
	}
	agg := tel.aggregateFor(c)

	workingPlants := append([]*automaton.Automaton(nil), plants...)
	remainingSpecs := append([]*automaton.Automaton(nil), specs...)
	choosePlantFirst := true

	for len(remainingSpecs) > 0 {
		spec := remainingSpecs[0]
		remainingSpecs = remainingSpecs[1:]

		lPrime := gSigmaStar
		kPrime := spec
		inL := map[automaton.Handle]struct{}{gSigmaStar.Handle(): {}}
		inK := map[automaton.Handle]struct{}{spec.Handle(): {}}
		foldedSpecs := []*automaton.Automaton{spec}

		for {
			key := memo.NewKey(append(handlesOf(inL), handlesOf(inK)...))
			u, err := mem.GetOrBuild(key, func() (*ustructure.UStructure, error) {
				twin, err := twinplant.Build(kPrime, masks)
				if err != nil {
					return nil, err
				}

				return ustructure.Build(lPrime, twin, masks.Controllers())
			})
			if err != nil {
				return false, err
			}

			agg.observeInnerIteration()
			agg.observeUStructureStates(u.NumberOfStates())
			agg.observeAutomatonStates(lPrime.NumberOfStates())
			agg.observeAutomatonStates(kPrime.NumberOfStates())

			trace, found := u.FindCounterExample(c.Second == ShortestCounterExample)
			if !found {
				break // inner loop succeeds for this spec
			}

			plantCands := scanSide(workingPlants, inL, trace)
			specCands := scanSide(specs, inK, trace)
			plantChosen, plantOk := chooseFourth(plantCands, c.Fourth)
			specChosen, specOk := chooseFourth(specCands, c.Fourth)

			tryPlantFirst := firstSideIsPlant(c.First, choosePlantFirst)
			choosePlantFirst = !choosePlantFirst

			applied := false
			switch {
			case tryPlantFirst && plantOk:
				lPrime, err = product.Product(lPrime, plantChosen.automaton)
				if err != nil {
					return false, err
				}
				inL[plantChosen.handle] = struct{}{}
				applied = true
			case tryPlantFirst && specOk:
				kPrime, err = product.Product(kPrime, specChosen.automaton)
				if err != nil {
					return false, err
				}
				inK[specChosen.handle] = struct{}{}
				foldedSpecs = append(foldedSpecs, specChosen.automaton)
				applied = true
			case !tryPlantFirst && specOk:
				kPrime, err = product.Product(kPrime, specChosen.automaton)
				if err != nil {
					return false, err
				}
				inK[specChosen.handle] = struct{}{}
				foldedSpecs = append(foldedSpecs, specChosen.automaton)
				applied = true
			case !tryPlantFirst && plantOk:
				lPrime, err = product.Product(lPrime, plantChosen.automaton)
				if err != nil {
					return false, err
				}
				inL[plantChosen.handle] = struct{}{}
				applied = true
			}

			if !applied {
				return false, nil // neither side rejects c: a true counter-example
			}
		}

		if c.Third == InsertSpecsAtStart {
			workingPlants = append(append([]*automaton.Automaton{}, foldedSpecs...), workingPlants...)
		} else {
			workingPlants = append(workingPlants, foldedSpecs...)
		}
		remainingSpecs = removeByHandle(remainingSpecs, foldedSpecs)
	}

	return true, nil
}

// firstSideIsPlant resolves FirstCriteria to a concrete side for this
// inner iteration (SPEC_FULL.md §9: all three values implemented
// uniformly, not just PLANT_OVER_SPEC forced).
func firstSideIsPlant(first FirstCriteria, choosePlantFirst bool) bool {
	switch first {
	case SpecOverPlant:
		return false
	case Alternating:
		return choosePlantFirst
	default: // PlantOverSpec
		return true
	}
}

// scanSide implements inner-loop step 3a for one side: every automaton
// in list not already folded into the corresponding prime that rejects
// trace, with the statistics FourthCriteria scores on.
func scanSide(list []*automaton.Automaton, included map[automaton.Handle]struct{}, trace ustructure.Trace) []candidate {
	var cands []candidate
	for i, a := range list {
		if _, in := included[a.Handle()]; in {
			continue
		}
		depth := a.AcceptsCounterExample(trace)
		if depth == automaton.NoRejection {
			continue
		}
		cands = append(cands, candidate{
			automaton:   a,
			handle:      a.Handle(),
			index:       i,
			rejectDepth: depth,
			transitions: a.NumberOfTransitions(),
			states:      a.NumberOfStates(),
		})
	}

	return cands
}

// chooseFourth applies FourthCriteria to a side's rejecting candidates,
// breaking ties by list index (inner-loop step 3b). The scoring key
// always derives from the candidate's own side — a spec candidate is
// never scored against the plant side's statistics (SPEC_FULL.md §9's
// resolution of the statesForSpecs/statesForPlants indexing question).
func chooseFourth(cands []candidate, fourth FourthCriteria) (candidate, bool) {
	if len(cands) == 0 {
		return candidate{}, false
	}

	best := cands[0]
	for _, cand := range cands[1:] {
		if better(cand, best, fourth) {
			best = cand
		}
	}

	return best, true
}

func better(a, b candidate, fourth FourthCriteria) bool {
	switch fourth {
	case MinTransitions:
		if a.transitions != b.transitions {
			return a.transitions < b.transitions
		}
	case MinStates:
		if a.states != b.states {
			return a.states < b.states
		}
	case ShortestRejection:
		if a.rejectDepth != b.rejectDepth {
			return a.rejectDepth < b.rejectDepth
		}
	case LongestRejection:
		if a.rejectDepth != b.rejectDepth {
			return a.rejectDepth > b.rejectDepth
		}
	default: // FirstMatch
	}

	return a.index < b.index
}

func handlesOf(set map[automaton.Handle]struct{}) []automaton.Handle {
	out := make([]automaton.Handle, 0, len(set))
	for h := range set {
		out = append(out, h)
	}

	return out
}

func removeByHandle(list []*automaton.Automaton, remove []*automaton.Automaton) []*automaton.Automaton {
	drop := make(map[automaton.Handle]struct{}, len(remove))
	for _, a := range remove {
		drop[a.Handle()] = struct{}{}
	}

	out := make([]*automaton.Automaton, 0, len(list))
	for _, a := range list {
		if _, ok := drop[a.Handle()]; ok {
			continue
		}
		out = append(out, a)
	}

	return out
}
