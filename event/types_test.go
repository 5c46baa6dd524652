package event_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Summer2023SHY/udec/event"
)

func TestNewAlphabet_Empty(t *testing.T) {
	_, err := event.NewAlphabet()
	require.Error(t, err)
	assert.True(t, errors.Is(err, event.ErrEmptyAlphabet))
}

func TestNewAlphabet_Duplicate(t *testing.T) {
	_, err := event.NewAlphabet(
		event.Event{ID: 1, Label: "a"},
		event.Event{ID: 1, Label: "b"},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, event.ErrDuplicateEventID))
}

func TestAlphabet_ByID(t *testing.T) {
	a, err := event.NewAlphabet(
		event.Event{ID: 1, Label: "a", Observable: true},
		event.Event{ID: 2, Label: "b", Controllable: true},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())

	e, err := a.ByID(2)
	require.NoError(t, err)
	assert.Equal(t, "b", e.Label)
	assert.True(t, e.Controllable)

	_, err = a.ByID(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, event.ErrUnknownEvent))
}

func TestAlphabet_IDs_Sorted(t *testing.T) {
	a, err := event.NewAlphabet(
		event.Event{ID: 5, Label: "e"},
		event.Event{ID: 1, Label: "a"},
		event.Event{ID: 3, Label: "c"},
	)
	require.NoError(t, err)
	assert.Equal(t, []event.ID{1, 3, 5}, a.IDs())
}

func TestAlphabet_SameEvents(t *testing.T) {
	a, err := event.NewAlphabet(event.Event{ID: 1, Label: "a"}, event.Event{ID: 2, Label: "b"})
	require.NoError(t, err)
	b, err := event.NewAlphabet(event.Event{ID: 2, Label: "b"}, event.Event{ID: 1, Label: "a"})
	require.NoError(t, err)
	c, err := event.NewAlphabet(event.Event{ID: 1, Label: "a"})
	require.NoError(t, err)

	assert.True(t, a.SameEvents(b))
	assert.False(t, a.SameEvents(c))
	assert.True(t, a.SameEvents(a))
}
