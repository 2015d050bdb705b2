package router_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/router"
)

// recordingNav records calls and accepts everything.
type recordingNav struct {
	total int
	calls []string
}

func (n *recordingNav) Next() bool {
	n.calls = append(n.calls, "next")
	return true
}

func (n *recordingNav) Previous() bool {
	n.calls = append(n.calls, "prev")
	return true
}

func (n *recordingNav) GoTo(i int) bool {
	n.calls = append(n.calls, fmt.Sprintf("goto %d", i))
	return true
}

func (n *recordingNav) Total() int { return n.total }

func newRouter() (*router.Router, *recordingNav, *clock.Timeline) {
	nav := &recordingNav{total: 12}
	tl := clock.NewTimeline()
	return router.New(nav, tl), nav, tl
}

func TestDefaultKeyBindings(t *testing.T) {
	r, nav, _ := newRouter()

	keys := []constants.Key{
		constants.KeyArrowRight,
		constants.KeyArrowDown,
		constants.KeySpace,
		constants.KeyArrowLeft,
		constants.KeyArrowUp,
		constants.KeyHome,
		constants.KeyEnd,
	}
	for _, k := range keys {
		assert.True(t, r.HandleKey(k), k.GetName())
	}

	want := []string{"next", "next", "next", "prev", "prev", "goto 0", "goto 11"}
	if diff := cmp.Diff(want, nav.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestUnboundKeyIsNotHandled(t *testing.T) {
	r, nav, _ := newRouter()
	assert.False(t, r.HandleKey(constants.KeyUnassigned))
	assert.Empty(t, nav.calls)
}

func TestBindOverridesAndRemoves(t *testing.T) {
	r, nav, _ := newRouter()
	r.Bind(constants.KeySpace, router.ActionPrevious).Bind(constants.KeyHome, router.ActionNone)

	assert.True(t, r.HandleKey(constants.KeySpace))
	assert.False(t, r.HandleKey(constants.KeyHome))
	assert.Equal(t, []string{"prev"}, nav.calls)
}

func TestSwipeThresholdIsStrict(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       []string
	}{
		{"exactly fifty up", 300, 250, nil},
		{"exactly fifty down", 250, 300, nil},
		{"fifty-one up", 300, 249, []string{"next"}},
		{"fifty-one down", 249, 300, []string{"prev"}},
		{"tap", 200, 200, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, nav, _ := newRouter()
			r.TouchStart(tt.start)
			r.TouchEnd(tt.end)
			assert.Equal(t, tt.want, nav.calls)
		})
	}
}

func TestWheelCooldown(t *testing.T) {
	r, nav, tl := newRouter()

	r.Wheel(120)
	tl.Advance(499 * time.Millisecond)
	r.Wheel(120)
	assert.Equal(t, []string{"next"}, nav.calls)
	assert.True(t, r.WheelSuppressed())

	tl.Advance(time.Millisecond)
	assert.False(t, r.WheelSuppressed())
	r.Wheel(-3)
	assert.Equal(t, []string{"next", "prev"}, nav.calls)
}

func TestWheelZeroDeltaStillSuppresses(t *testing.T) {
	r, nav, tl := newRouter()

	r.Wheel(0)
	r.Wheel(10)
	assert.Empty(t, nav.calls)

	tl.Advance(constants.WheelCooldown)
	r.Wheel(10)
	assert.Equal(t, []string{"next"}, nav.calls)
}

func TestClicksAndIndicators(t *testing.T) {
	r, nav, _ := newRouter()

	r.Click(constants.ButtonNext)
	r.Click(constants.ButtonPrev)
	r.Indicator(7)
	r.Dispatch(router.ActionLast)

	assert.Equal(t, []string{"next", "prev", "goto 7", "goto 11"}, nav.calls)
}
