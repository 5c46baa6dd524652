package automfile_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Summer2023SHY/udec/automaton"
	"github.com/Summer2023SHY/udec/internal/automfile"
)

func writePair(t *testing.T, header, body string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	headerPath := filepath.Join(dir, "a.hdr")
	bodyPath := filepath.Join(dir, "a.bdy")
	require.NoError(t, writeFile(headerPath, header))
	require.NoError(t, writeFile(bodyPath, body))

	return headerPath, bodyPath
}

func TestLoad_WellFormedAutomaton(t *testing.T) {
	header := `
EVENT 1 a 1 1
EVENT 2 b 0 1
STATE 0 s0
STATE 1 s1
INITIAL 0
`
	body := `
MARKED 1
TRANSITION 0 1 1
TRANSITION 1 2 0
`
	headerPath, bodyPath := writePair(t, header, body)

	a, err := automfile.Load(headerPath, bodyPath)
	require.NoError(t, err)
	assert.Equal(t, 2, a.NumberOfStates())
	assert.Equal(t, 2, a.NumberOfTransitions())
	initial, err := a.Initial()
	require.NoError(t, err)
	assert.Equal(t, automaton.StateID(0), initial)
	assert.False(t, a.Marked(0))
	assert.True(t, a.Marked(1))
}

func TestLoad_SelfLoopCompletesLocallySilentEvent(t *testing.T) {
	header := `
EVENT 1 a 1 1
EVENT 2 b 1 1
STATE 0 s0
INITIAL 0
`
	// Event 2 ("b") never appears in the body: the loaded automaton must
	// come back active on it anyway (SPEC_FULL.md §3, invariant 2).
	body := `
TRANSITION 0 1 0
`
	headerPath, bodyPath := writePair(t, header, body)

	a, err := automfile.Load(headerPath, bodyPath)
	require.NoError(t, err)
	assert.True(t, a.IsActive(1))
	assert.True(t, a.IsActive(2))
	assert.Equal(t, 2, a.NumberOfTransitions())
}

func TestLoad_MissingInitialState(t *testing.T) {
	header := `
EVENT 1 a 1 1
STATE 0 s0
`
	body := ``
	headerPath, bodyPath := writePair(t, header, body)

	_, err := automfile.Load(headerPath, bodyPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, automfile.ErrMalformedAutomaton))
	assert.True(t, errors.Is(err, automfile.ErrMissingInitialState))
}

func TestLoad_DanglingTransitionEndpoint(t *testing.T) {
	header := `
EVENT 1 a 1 1
STATE 0 s0
INITIAL 0
`
	body := `
TRANSITION 0 1 5
`
	headerPath, bodyPath := writePair(t, header, body)

	_, err := automfile.Load(headerPath, bodyPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, automfile.ErrDanglingTransition))
}

func TestLoad_DuplicateStateID(t *testing.T) {
	header := `
EVENT 1 a 1 1
STATE 0 s0
STATE 0 s0again
INITIAL 0
`
	body := ``
	headerPath, bodyPath := writePair(t, header, body)

	_, err := automfile.Load(headerPath, bodyPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, automfile.ErrDuplicateState))
}

func TestLoad_UnknownDirective(t *testing.T) {
	header := `
EVENT 1 a 1 1
STATE 0 s0
INITIAL 0
GARBAGE line
`
	body := ``
	headerPath, bodyPath := writePair(t, header, body)

	_, err := automfile.Load(headerPath, bodyPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, automfile.ErrUnknownDirective))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := automfile.Load("/nonexistent/a.hdr", "/nonexistent/a.bdy")
	require.Error(t, err)
}
