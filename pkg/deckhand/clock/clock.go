// Package clock provides the timer and animation-frame primitives the
// presentation core schedules its delayed effects on.
//
// The core never reads wall-clock time. Hosts drive a Timeline from their
// main loop with AdvanceTo, and tests drive it with Advance, so every
// delayed callback fires deterministically and in order.
package clock

import (
	"container/heap"
	"time"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

// Scheduler is the capability the core depends on for delayed and
// per-frame work. Callbacks are fire-and-forget and run on the goroutine
// that drives the scheduler.
type Scheduler interface {
	// After runs fn once, d after now.
	After(d time.Duration, fn func())
	// Frame runs fn once at the next frame slot with the slot's timestamp.
	Frame(fn func(now time.Duration))
	// Now returns the scheduler's current time.
	Now() time.Duration
}

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x any) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Timeline is a discrete-event Scheduler. Time only moves when the owner
// advances it; timers fire in due order (FIFO on ties) and frame callbacks
// fire at multiples of the frame interval.
//
// A Timeline is not safe for concurrent use. Schedule and advance from the
// same goroutine.
type Timeline struct {
	now           time.Duration
	seq           uint64
	timers        timerQueue
	frames        []func(now time.Duration)
	frameInterval time.Duration
}

// NewTimeline creates a Timeline at time zero with the default 16ms frame
// interval.
func NewTimeline() *Timeline {
	return NewTimelineWithInterval(constants.DefaultFrameInterval)
}

// NewTimelineWithInterval creates a Timeline with a custom frame interval.
func NewTimelineWithInterval(interval time.Duration) *Timeline {
	if interval <= 0 {
		interval = constants.DefaultFrameInterval
	}
	return &Timeline{
		timers:        make(timerQueue, 0),
		frameInterval: interval,
	}
}

func (t *Timeline) Now() time.Duration {
	return t.now
}

func (t *Timeline) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	t.seq++
	heap.Push(&t.timers, &timer{due: t.now + d, seq: t.seq, fn: fn})
}

func (t *Timeline) Frame(fn func(now time.Duration)) {
	t.frames = append(t.frames, fn)
}

// Pending returns the number of timers and frame callbacks not yet run.
func (t *Timeline) Pending() int {
	return len(t.timers) + len(t.frames)
}

// Advance moves time forward by d, running everything that falls due.
func (t *Timeline) Advance(d time.Duration) {
	t.AdvanceTo(t.now + d)
}

// AdvanceTo moves time forward to target, running timers and frame slots
// in time order. Callbacks scheduled while advancing run in the same call
// if they fall due before target. Moving backwards is a no-op.
func (t *Timeline) AdvanceTo(target time.Duration) {
	for {
		nextTimer, hasTimer := t.nextTimerDue()
		nextFrame, hasFrame := t.nextFrameSlot()

		switch {
		case hasTimer && nextTimer <= target && (!hasFrame || nextTimer <= nextFrame):
			tm := heap.Pop(&t.timers).(*timer)
			t.now = tm.due
			tm.fn()
		case hasFrame && nextFrame <= target:
			t.now = nextFrame
			batch := t.frames
			t.frames = nil
			for _, fn := range batch {
				fn(t.now)
			}
		default:
			if target > t.now {
				t.now = target
			}
			return
		}
	}
}

func (t *Timeline) nextTimerDue() (time.Duration, bool) {
	if len(t.timers) == 0 {
		return 0, false
	}
	return t.timers[0].due, true
}

// nextFrameSlot is the first slot strictly after now, so a frame requested
// from inside a frame callback runs one interval later.
func (t *Timeline) nextFrameSlot() (time.Duration, bool) {
	if len(t.frames) == 0 {
		return 0, false
	}
	return (t.now/t.frameInterval + 1) * t.frameInterval, true
}
