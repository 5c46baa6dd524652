// Package verifier implements the incremental outer/inner verification
// loop of SPEC_FULL.md §4.6: growing partial products L′ ⊆ plants and
// K′ ⊆ specs on demand until their U-Structure is counter-example-free,
// pluggable across four independent selection criteria.
package verifier

import "fmt"

// FirstCriteria decides which side (plant or spec) the inner loop tries
// first when both sides offer a rejecting candidate. All three values are
// implemented uniformly (SPEC_FULL.md §9): the distilled spec's source
// forced PLANT_OVER_SPEC permanently and left the other two dead.
type FirstCriteria int

const (
	PlantOverSpec FirstCriteria = iota
	SpecOverPlant
	Alternating
)

func (c FirstCriteria) String() string {
	switch c {
	case PlantOverSpec:
		return "PLANT_OVER_SPEC"
	case SpecOverPlant:
		return "SPEC_OVER_PLANT"
	case Alternating:
		return "ALTERNATING"
	default:
		return fmt.Sprintf("FirstCriteria(%d)", int(c))
	}
}

// SecondCriteria picks which counter-example FindCounterExample returns.
type SecondCriteria int

const (
	ShortestCounterExample SecondCriteria = iota
	LongestCounterExample
)

func (c SecondCriteria) String() string {
	switch c {
	case ShortestCounterExample:
		return "SHORTEST_COUNTER_EXAMPLE"
	case LongestCounterExample:
		return "LONGEST_COUNTER_EXAMPLE"
	default:
		return fmt.Sprintf("SecondCriteria(%d)", int(c))
	}
}

// ThirdCriteria decides where a spec folded into K′ is reinserted into
// the plants list once a spec's inner loop succeeds.
type ThirdCriteria int

const (
	InsertSpecsAtStart ThirdCriteria = iota
	InsertSpecsAtEnd
)

func (c ThirdCriteria) String() string {
	switch c {
	case InsertSpecsAtStart:
		return "INSERT_SPECS_AT_START"
	case InsertSpecsAtEnd:
		return "INSERT_SPECS_AT_END"
	default:
		return fmt.Sprintf("ThirdCriteria(%d)", int(c))
	}
}

// FourthCriteria scores which rejecting candidate (per side) is folded
// into the corresponding prime on this inner iteration.
type FourthCriteria int

const (
	FirstMatch FourthCriteria = iota
	MinTransitions
	MinStates
	ShortestRejection
	LongestRejection
)

func (c FourthCriteria) String() string {
	switch c {
	case FirstMatch:
		return "FIRST_MATCH"
	case MinTransitions:
		return "MIN_TRANSITIONS"
	case MinStates:
		return "MIN_STATES"
	case ShortestRejection:
		return "SHORTEST_REJECTION"
	case LongestRejection:
		return "LONGEST_REJECTION"
	default:
		return fmt.Sprintf("FourthCriteria(%d)", int(c))
	}
}

// Criteria bundles one selection of each of the four independent
// criterion axes, and is itself the Telemetry map key.
type Criteria struct {
	First  FirstCriteria
	Second SecondCriteria
	Third  ThirdCriteria
	Fourth FourthCriteria
}

func (c Criteria) String() string {
	return fmt.Sprintf("%s/%s/%s/%s", c.First, c.Second, c.Third, c.Fourth)
}
