package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
)

func TestTimelineFiresInDueOrder(t *testing.T) {
	tl := clock.NewTimeline()
	var fired []string

	tl.After(300*time.Millisecond, func() { fired = append(fired, "c") })
	tl.After(100*time.Millisecond, func() { fired = append(fired, "a") })
	tl.After(200*time.Millisecond, func() { fired = append(fired, "b") })

	tl.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, 150*time.Millisecond, tl.Now())

	tl.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, tl.Pending())
}

func TestTimelineTiesAreFIFO(t *testing.T) {
	tl := clock.NewTimeline()
	var fired []int
	for i := 0; i < 5; i++ {
		tl.After(50*time.Millisecond, func() { fired = append(fired, i) })
	}
	tl.Advance(50 * time.Millisecond)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, fired)
}

func TestTimelineCallbackSeesDueTime(t *testing.T) {
	tl := clock.NewTimeline()
	var at time.Duration
	tl.After(120*time.Millisecond, func() { at = tl.Now() })
	tl.Advance(time.Second)
	assert.Equal(t, 120*time.Millisecond, at)
}

func TestTimelineNestedTimers(t *testing.T) {
	tl := clock.NewTimeline()
	var at []time.Duration
	tl.After(100*time.Millisecond, func() {
		at = append(at, tl.Now())
		tl.After(100*time.Millisecond, func() { at = append(at, tl.Now()) })
	})
	tl.Advance(250 * time.Millisecond)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, at)
}

func TestTimelineFrameSlots(t *testing.T) {
	tl := clock.NewTimelineWithInterval(10 * time.Millisecond)
	var slots []time.Duration

	var tick func(now time.Duration)
	tick = func(now time.Duration) {
		slots = append(slots, now)
		if len(slots) < 3 {
			tl.Frame(tick)
		}
	}
	tl.Advance(5 * time.Millisecond)
	tl.Frame(tick)
	tl.Advance(100 * time.Millisecond)

	require.Len(t, slots, 3)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond, 30 * time.Millisecond}, slots)
}

func TestTimelineAdvanceToPastIsNoop(t *testing.T) {
	tl := clock.NewTimeline()
	tl.Advance(time.Second)
	tl.AdvanceTo(500 * time.Millisecond)
	assert.Equal(t, time.Second, tl.Now())
}

func TestTimelineNegativeDelayRunsNow(t *testing.T) {
	tl := clock.NewTimeline()
	ran := false
	tl.After(-time.Second, func() { ran = true })
	tl.Advance(0)
	assert.True(t, ran)
}
