package memo

import "github.com/Summer2023SHY/udec/ustructure"

// entry caches the outcome of one build — a value or an error — so a
// previously failing key never silently re-attempts a fresh build.
type entry struct {
	value *ustructure.UStructure
	err   error
}

// Memoizer caches UStructure builds by Key. It carries no lock: the
// verifier's outer/inner loop runs single-threaded per run (SPEC_FULL.md
// §5), so a Memoizer has exactly one caller at a time and an RWMutex
// here would be unused defensive weight.
type Memoizer struct {
	cache map[Key]entry
}

// NewMemoizer creates an empty Memoizer.
func NewMemoizer() *Memoizer {
	return &Memoizer{cache: make(map[Key]entry)}
}

// GetOrBuild returns the cached UStructure for key, building it with
// build and caching the result (value or error) on first use. build is
// invoked at most once per key for the lifetime of the Memoizer.
func (m *Memoizer) GetOrBuild(key Key, build func() (*ustructure.UStructure, error)) (*ustructure.UStructure, error) {
	if e, ok := m.cache[key]; ok {
		return e.value, e.err
	}

	value, err := build()
	m.cache[key] = entry{value: value, err: err}

	return value, err
}

// Len returns the number of distinct keys built so far, for telemetry.
func (m *Memoizer) Len() int {
	return len(m.cache)
}
