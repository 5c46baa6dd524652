// Package automaton defines the labelled transition system shared by plant
// and specification descriptions: States, Transitions over a shared
// event.Alphabet, and the Automaton type itself.
//
// An Automaton is mutable only through its constructor methods (AddState,
// AddTransition, SetInitial); once handed to product, twinplant or
// ustructure it is treated as read-only for the remainder of a
// verification run — self-loop completion (WithSelfLoops) returns a fresh
// Automaton rather than mutating in place.
//
// Errors:
//
//	ErrEmptyAlphabet        - Automaton constructed with a nil/empty Alphabet.
//	ErrUnknownEvent         - AddTransition referenced an event outside Σ.
//	ErrUnknownState         - operation referenced a state id outside the automaton.
//	ErrNoInitialState       - Initial() called before SetInitial.
//	ErrDuplicateInitialState - SetInitial called more than once.
package automaton

import (
	"errors"
	"sync/atomic"

	"github.com/Summer2023SHY/udec/event"
)

// Sentinel errors for automaton construction and mutation.
var (
	// ErrEmptyAlphabet indicates a nil or zero-length Alphabet was supplied to New.
	ErrEmptyAlphabet = errors.New("automaton: empty alphabet")

	// ErrUnknownEvent indicates a transition referenced an event outside Σ.
	ErrUnknownEvent = errors.New("automaton: unknown event")

	// ErrUnknownState indicates an operation referenced a non-existent state id.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrNoInitialState indicates an automaton has no initial state set yet.
	ErrNoInitialState = errors.New("automaton: no initial state")

	// ErrDuplicateInitialState indicates SetInitial was called more than once.
	ErrDuplicateInitialState = errors.New("automaton: initial state already set")
)

// NoRejection is the sentinel returned by AcceptsCounterExample when the
// entire trace is accepted.
const NoRejection = -1

// StateID identifies a state within its owning Automaton. Dense, starting
// at 0 in construction order.
type StateID int

// State carries a human label and marked flag.
type State struct {
	ID     StateID
	Label  string
	Marked bool
}

// Transition is a directed triple (From, Event, To). Multiple transitions
// with distinct events (or even the same event, for non-deterministic
// automata) between the same pair of states are permitted.
type Transition struct {
	From  StateID
	Event event.ID
	To    StateID
}

// Handle is a stable, run-scoped identity token for an Automaton. Two
// Automaton values never share a Handle, including after Duplicate();
// it replaces filename- or pointer-identity-based set membership (see
// SPEC_FULL.md §9) for the inL′/inK′ inclusion sets and the memo.Key.
type Handle uint64

var nextHandle uint64

func newHandle() Handle {
	return Handle(atomic.AddUint64(&nextHandle, 1))
}

// Automaton is a tuple (Σ, Q, q0, δ, M).
type Automaton struct {
	alphabet *event.Alphabet
	handle   Handle

	states      []State
	initial     StateID
	hasInitial  bool
	out         map[StateID][]Transition // adjacency by source state, insertion order
	activeEvent map[event.ID]bool        // events appearing on at least one transition
}

// Option configures an Automaton at construction time.
type Option func(*Automaton)

// New creates an empty Automaton over the given alphabet. Returns
// ErrEmptyAlphabet if alphabet is nil or declares zero events.
func New(alphabet *event.Alphabet, opts ...Option) (*Automaton, error) {
	if alphabet == nil || alphabet.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Automaton{
		alphabet:    alphabet,
		handle:      newHandle(),
		out:         make(map[StateID][]Transition),
		activeEvent: make(map[event.ID]bool),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Alphabet returns the Σ this automaton was built over.
func (a *Automaton) Alphabet() *event.Alphabet {
	return a.alphabet
}

// Handle returns this Automaton's stable run-scoped identity.
func (a *Automaton) Handle() Handle {
	return a.handle
}
