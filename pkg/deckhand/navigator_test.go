package deckhand_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

func newNavigator(t *testing.T, total int) (*deckhand.Navigator, *recorder, *clock.Timeline) {
	t.Helper()
	tl := clock.NewTimeline()
	rec := newRecorder()
	nav, err := deckhand.NewNavigator(total, tl, rec)
	require.NoError(t, err)
	rec.markers[0] = constants.MarkerActive
	return nav, rec, tl
}

func TestNewNavigatorRejectsEmptyDeck(t *testing.T) {
	_, err := deckhand.NewNavigator(0, clock.NewTimeline(), nil)
	assert.ErrorIs(t, err, deckhand.ErrEmptyDeck)

	_, err = deckhand.NewNavigator(3, nil, nil)
	assert.ErrorIs(t, err, deckhand.ErrNoScheduler)
}

func TestGoToEveryIndexFromSettled(t *testing.T) {
	const total = 6
	for from := 0; from < total; from++ {
		for to := 0; to < total; to++ {
			if from == to {
				continue
			}
			nav, rec, tl := newNavigator(t, total)
			if from != 0 {
				require.True(t, nav.GoTo(from))
				tl.Advance(constants.SettleDuration)
			}

			require.True(t, nav.GoTo(to), "from %d to %d", from, to)
			assert.Equal(t, to, nav.Current())
			assert.Equal(t, []int{to}, rec.activeSlides())

			tl.Advance(constants.SettleDuration)
			assert.False(t, nav.Transitioning())
			assert.Equal(t, []int{to}, rec.activeSlides())
			assert.Equal(t, constants.MarkerNone, rec.markers[from])
		}
	}
}

func TestRejectedRequestsAreSilent(t *testing.T) {
	nav, rec, tl := newNavigator(t, 4)
	fired := 0
	nav.OnTransition(func(deckhand.Transition) { fired++ })

	assert.False(t, nav.GoTo(0), "current index")
	assert.False(t, nav.GoTo(-1), "below range")
	assert.False(t, nav.GoTo(4), "above range")
	assert.False(t, nav.Previous(), "previous at first")

	assert.Empty(t, rec.calls)
	assert.Zero(t, fired)
	assert.Zero(t, tl.Pending())
	assert.False(t, nav.Transitioning())
	assert.Equal(t, 0, nav.Current())
}

func TestSecondRequestInsideSettleWindowIsDropped(t *testing.T) {
	nav, rec, tl := newNavigator(t, 5)

	require.True(t, nav.Next())
	rec.reset()

	tl.Advance(constants.SettleDuration - time.Millisecond)
	assert.True(t, nav.Transitioning())
	assert.False(t, nav.Next())
	assert.False(t, nav.GoTo(4))
	assert.False(t, nav.Previous())
	assert.Equal(t, 1, nav.Current())
	assert.Empty(t, rec.calls)

	tl.Advance(time.Millisecond)
	assert.False(t, nav.Transitioning())
	assert.True(t, nav.Next())
	assert.Equal(t, 2, nav.Current())
}

func TestNextAtLastIsNoop(t *testing.T) {
	nav, rec, tl := newNavigator(t, 2)
	require.True(t, nav.Next())
	tl.Advance(constants.SettleDuration)
	rec.reset()

	assert.False(t, nav.Next())
	assert.Equal(t, 1, nav.Current())
	assert.Empty(t, rec.calls)
	assert.Zero(t, tl.Pending())
}

func TestForwardTransitionMarksOutgoingSlide(t *testing.T) {
	nav, rec, tl := newNavigator(t, 3)

	require.True(t, nav.Next())
	want := []string{
		"marker 0 none",
		"marker 0 exiting-forward",
		"marker 1 active",
	}
	if diff := cmp.Diff(want, rec.calls); diff != "" {
		t.Errorf("marker calls mismatch (-want +got):\n%s", diff)
	}

	rec.reset()
	tl.Advance(constants.SettleDuration)
	assert.Equal(t, []string{"marker 0 none"}, rec.calls)
}

func TestBackwardTransitionLeavesNoExitMarker(t *testing.T) {
	nav, rec, tl := newNavigator(t, 3)
	require.True(t, nav.Next())
	tl.Advance(constants.SettleDuration)
	rec.reset()

	require.True(t, nav.Previous())
	assert.Equal(t, []string{"marker 1 none", "marker 0 active"}, rec.calls)
	assert.Equal(t, constants.MarkerNone, rec.markers[1])
}

func TestSymmetricExitMarkers(t *testing.T) {
	nav, rec, tl := newNavigator(t, 3)
	nav.SetSymmetricExitMarkers(true)
	require.True(t, nav.GoTo(2))
	tl.Advance(constants.SettleDuration)
	rec.reset()

	require.True(t, nav.Previous())
	assert.Equal(t, constants.MarkerExitingBackward, rec.markers[2])
	tl.Advance(constants.SettleDuration)
	assert.Equal(t, constants.MarkerNone, rec.markers[2])
}

func TestTransitionListenersSeeNewIndex(t *testing.T) {
	nav, _, _ := newNavigator(t, 4)

	var got []deckhand.Transition
	nav.OnTransition(func(tr deckhand.Transition) {
		assert.Equal(t, tr.To, nav.Current())
		assert.True(t, nav.Transitioning())
		got = append(got, tr)
	})

	require.True(t, nav.GoTo(3))
	assert.Equal(t, []deckhand.Transition{{From: 0, To: 3, Direction: deckhand.Forward}}, got)
}

func TestNavigatorWithoutMarkers(t *testing.T) {
	tl := clock.NewTimeline()
	nav, err := deckhand.NewNavigator(3, tl, nil)
	require.NoError(t, err)

	assert.True(t, nav.Next())
	tl.Advance(constants.SettleDuration)
	assert.True(t, nav.Next())
	assert.Equal(t, 2, nav.Current())
}
