package automfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/event"
)

// Load parses headerPath and bodyPath into a single automaton.Automaton.
// The header supplies the alphabet, the declared states, and the initial
// state; the body supplies marked states and transitions. Returns
// ErrMalformedAutomaton (wrapping a more specific cause where there is
// one) for a missing initial state, an undeclared or out-of-order state
// id, a dangling TRANSITION/MARKED id, a TRANSITION on an event outside
// the alphabet, or an unparsable number;
// ErrUnknownDirective, unwrapped, for an unrecognized or mis-sized
// directive; the event package's errors, unwrapped, when the EVENT
// directives do not form a valid alphabet; and the underlying
// *os.PathError unwrapped if either file cannot be opened.
func Load(headerPath, bodyPath string) (*automaton.Automaton, error) {
	headerLines, err := readLines(headerPath)
	if err != nil {
		return nil, err
	}
	bodyLines, err := readLines(bodyPath)
	if err != nil {
		return nil, err
	}

	events, err := parseEvents(headerLines)
	if err != nil {
		return nil, err
	}
	alphabet, err := event.NewAlphabet(events...)
	if err != nil {
		return nil, err
	}

	a, err := automaton.New(alphabet)
	if err != nil {
		return nil, err
	}

	// Marking happens at AddState time, so the body's MARKED ids (declared
	// alongside transitions, not alongside states) must be known before
	// the header's STATE directives are applied.
	marked, err := parseMarked(bodyLines)
	if err != nil {
		return nil, err
	}

	declared, initialID, hasInitial, err := parseStates(headerLines, a, marked)
	if err != nil {
		return nil, err
	}
	for id := range marked {
		if !declared[id] {
			return nil, fmt.Errorf("%w: %w: marked state %d", ErrMalformedAutomaton, ErrDanglingTransition, id)
		}
	}
	if !hasInitial || !declared[initialID] {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAutomaton, ErrMissingInitialState)
	}
	if err := a.SetInitial(automaton.StateID(initialID)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedAutomaton, err)
	}

	if err := applyTransitions(bodyLines, a, declared); err != nil {
		return nil, err
	}

	// Self-loop completion happens exactly once, right after parsing
	// (SPEC_FULL.md §3, invariant 2, §8): a component silent on an event
	// must not constrain that event once combined with others by
	// product.Product.
	return automaton.WithSelfLoops(a), nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, scanner.Err()
}

// parseEvents extracts every EVENT directive, in file order, so the
// resulting Alphabet can be built before any STATE or TRANSITION line is
// interpreted.
func parseEvents(headerLines []string) ([]event.Event, error) {
	var events []event.Event
	for _, line := range headerLines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "EVENT" {
			continue
		}
		if len(fields) != 5 {
			return nil, fmt.Errorf("%w: EVENT directive %q", ErrUnknownDirective, line)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAutomaton, err)
		}
		observable, err := strconv.ParseBool(fields[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAutomaton, err)
		}
		controllable, err := strconv.ParseBool(fields[4])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAutomaton, err)
		}
		events = append(events, event.Event{
			ID:           event.ID(id),
			Label:        fields[2],
			Observable:   observable,
			Controllable: controllable,
		})
	}

	return events, nil
}

// parseMarked scans the body for MARKED directives ahead of state
// construction, returning the set of marked state ids.
func parseMarked(bodyLines []string) (map[int]bool, error) {
	marked := make(map[int]bool)
	for _, line := range bodyLines {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] != "MARKED" {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: MARKED directive %q", ErrUnknownDirective, line)
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedAutomaton, err)
		}
		marked[id] = true
	}

	return marked, nil
}

// parseStates processes INITIAL and STATE directives against an already
// alphabet-bearing Automaton, adding states via a.AddState in file order.
// STATE ids must appear contiguously from 0 (AddState assigns dense ids in
// call order, so the file order IS the id order); any other value trips
// ErrDuplicateState.
func parseStates(headerLines []string, a *automaton.Automaton, marked map[int]bool) (declared map[int]bool, initialID int, hasInitial bool, err error) {
	declared = make(map[int]bool)
	next := 0
	for _, line := range headerLines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "STATE":
			if len(fields) < 2 {
				return nil, 0, false, fmt.Errorf("%w: STATE directive %q", ErrUnknownDirective, line)
			}
			id, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				return nil, 0, false, fmt.Errorf("%w: %v", ErrMalformedAutomaton, convErr)
			}
			if id != next {
				return nil, 0, false, fmt.Errorf("%w: %w: state %d", ErrMalformedAutomaton, ErrDuplicateState, id)
			}
			label := ""
			if len(fields) >= 3 {
				label = strings.Join(fields[2:], " ")
			}
			a.AddState(label, marked[id])
			declared[id] = true
			next++
		case "INITIAL":
			if len(fields) != 2 {
				return nil, 0, false, fmt.Errorf("%w: INITIAL directive %q", ErrUnknownDirective, line)
			}
			id, convErr := strconv.Atoi(fields[1])
			if convErr != nil {
				return nil, 0, false, fmt.Errorf("%w: %v", ErrMalformedAutomaton, convErr)
			}
			initialID = id
			hasInitial = true
		case "EVENT":
			// already consumed by parseEvents
		default:
			return nil, 0, false, fmt.Errorf("%w: %q", ErrUnknownDirective, line)
		}
	}

	return declared, initialID, hasInitial, nil
}

// applyTransitions processes the body's TRANSITION directives now that
// every state is built.
func applyTransitions(bodyLines []string, a *automaton.Automaton, declared map[int]bool) error {
	for _, line := range bodyLines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "TRANSITION":
			if len(fields) != 4 {
				return fmt.Errorf("%w: TRANSITION directive %q", ErrUnknownDirective, line)
			}
			from, err1 := strconv.Atoi(fields[1])
			evID, err2 := strconv.Atoi(fields[2])
			to, err3 := strconv.Atoi(fields[3])
			if err1 != nil || err2 != nil || err3 != nil {
				return fmt.Errorf("%w: %q", ErrMalformedAutomaton, line)
			}
			if !declared[from] || !declared[to] {
				return fmt.Errorf("%w: %w: %q", ErrMalformedAutomaton, ErrDanglingTransition, line)
			}
			if err := a.AddTransition(automaton.StateID(from), event.ID(evID), automaton.StateID(to)); err != nil {
				return fmt.Errorf("%w: %w", ErrMalformedAutomaton, err)
			}
		case "MARKED":
			// already consumed by parseMarked
		default:
			return fmt.Errorf("%w: %q", ErrUnknownDirective, line)
		}
	}

	return nil
}
