package automfile

import "errors"

// ErrMalformedAutomaton is the umbrella error Load returns for any
// structurally invalid header/body pair; wrap it with fmt.Errorf("%w: ...")
// to attach the specific cause (SPEC_FULL.md §7).
var ErrMalformedAutomaton = errors.New("automfile: malformed automaton")

// Sentinel causes. ErrMissingInitialState, ErrDuplicateState and
// ErrDanglingTransition are returned wrapped by ErrMalformedAutomaton;
// ErrUnknownDirective is returned on its own, not wrapped by it.
var (
	// ErrMissingInitialState indicates the header declared no INITIAL
	// directive, or INITIAL named a state never declared via STATE.
	ErrMissingInitialState = errors.New("missing or unknown initial state")

	// ErrDuplicateState indicates two STATE directives declared the same
	// id, or STATE ids were not given in contiguous 0-based order.
	ErrDuplicateState = errors.New("duplicate or out-of-order state id")

	// ErrDanglingTransition indicates a TRANSITION or MARKED directive
	// referenced a state id never declared via STATE.
	ErrDanglingTransition = errors.New("transition references unknown state")

	// ErrUnknownDirective indicates a line did not match any recognized
	// directive keyword.
	ErrUnknownDirective = errors.New("unrecognized directive")
)
