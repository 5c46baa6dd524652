// Package event defines the shared event alphabet Σ used across a single
// verification run: event identity, observability/controllability
// attributes, and the ordered Alphabet value every automaton is built
// against.
//
// Events are immutable once placed in an Alphabet. Two Alphabets built from
// the same ordered Event list compare equal by ID set, which is all the
// product and twin-plant constructions require.
package event

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for alphabet construction and lookup.
var (
	// ErrEmptyAlphabet indicates an Alphabet was built with zero events.
	ErrEmptyAlphabet = errors.New("event: alphabet is empty")

	// ErrDuplicateEventID indicates two events in the same Alphabet share an ID.
	ErrDuplicateEventID = errors.New("event: duplicate event id")

	// ErrUnknownEvent indicates a lookup for an ID not present in the Alphabet.
	ErrUnknownEvent = errors.New("event: unknown event id")
)

// ID identifies a single event within its owning Alphabet.
type ID int

// Unobservable is the reserved ID used by the twinplant package to label a
// transition slot an event is hidden from a given controller.
const Unobservable ID = -1

// Event is one member of Σ.
//
// Observable events may be seen by at least one controller (per-controller
// visibility is carried separately, by twinplant.ObservationMask, since the
// distilled spec leaves visibility as a per-controller concern rather than
// a single flag — Observable here records whether the event is observable
// to *any* controller at all, which is enough for automaton-level self-loop
// completion and acceptance checks).
type Event struct {
	ID           ID
	Label        string
	Observable   bool
	Controllable bool
}

// Alphabet is the fixed, ordered, deduplicated Σ shared by every automaton
// in a verification run.
type Alphabet struct {
	events []Event
	byID   map[ID]int // ID -> index into events
}

// NewAlphabet builds an Alphabet from the given events, preserving order.
// Returns ErrEmptyAlphabet if events is empty, ErrDuplicateEventID if two
// events share an ID.
func NewAlphabet(events ...Event) (*Alphabet, error) {
	if len(events) == 0 {
		return nil, ErrEmptyAlphabet
	}
	a := &Alphabet{
		events: make([]Event, len(events)),
		byID:   make(map[ID]int, len(events)),
	}
	copy(a.events, events)
	for i, e := range a.events {
		if _, exists := a.byID[e.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateEventID, e.ID)
		}
		a.byID[e.ID] = i
	}

	return a, nil
}

// Len returns |Σ|.
func (a *Alphabet) Len() int {
	return len(a.events)
}

// Events returns the events of Σ, in construction order. The returned
// slice must not be mutated by callers.
func (a *Alphabet) Events() []Event {
	return a.events
}

// ByID looks up an event by its stable ID.
func (a *Alphabet) ByID(id ID) (Event, error) {
	idx, ok := a.byID[id]
	if !ok {
		return Event{}, fmt.Errorf("%w: %d", ErrUnknownEvent, id)
	}

	return a.events[idx], nil
}

// IDs returns the sorted list of event IDs in Σ. Useful for deterministic
// iteration when building self-loops or event-vectors.
func (a *Alphabet) IDs() []ID {
	ids := make([]ID, len(a.events))
	for i, e := range a.events {
		ids[i] = e.ID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// SameEvents reports whether two alphabets declare the same set of event
// IDs (used by product/twinplant compatibility checks). Two Alphabets built
// from the same loader run are expected to be pointer-identical, but the
// check is defensive and compares by ID set rather than pointer identity.
func (a *Alphabet) SameEvents(b *Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.events) != len(b.events) {
		return false
	}
	for id := range a.byID {
		if _, ok := b.byID[id]; !ok {
			return false
		}
	}

	return true
}
