// Package memo caches UStructure builds keyed by the set of component
// automata (plants and specs) that produced them, so the verifier's
// inner loop never rebuilds the same U-Structure twice for the same
// partial-product membership.
package memo

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Summer2023SHY/udec/automaton"
)

// Key is the canonical cache key for a U-Structure build: the sorted
// multiset of component automaton.Handle values that went into it
// (SPEC_FULL.md §9 — handles replace the distilled spec's filename-based
// key, which breaks as soon as components are synthesized rather than
// loaded from disk).
type Key string

// NewKey builds the canonical Key for a set of component handles. Order
// of the input slice does not matter; two calls with the same handles in
// any order produce the same Key.
func NewKey(handles []automaton.Handle) Key {
	sorted := make([]automaton.Handle, len(handles))
	copy(sorted, handles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, len(sorted))
	for i, h := range sorted {
		parts[i] = strconv.FormatUint(uint64(h), 10)
	}

	return Key(strings.Join(parts, ","))
}
