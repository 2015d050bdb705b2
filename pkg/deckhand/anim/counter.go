// Package anim implements the numeric count-up animation used to bring
// counters onto a slide.
package anim

import (
	"math"
	"time"

	"golang.org/x/text/message"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

// Counter describes one count-up from zero to Target.
type Counter struct {
	Target   int
	Prefix   string
	Suffix   string
	Duration time.Duration // Zero means constants.CounterDuration
}

// Run is a single count-up in flight. It cannot be restarted; call
// Animator.Animate again for a fresh run.
type Run struct {
	counter Counter
	start   time.Duration
	text    string
	frames  int
	done    bool
	stopped bool
}

// Done reports whether the run reached its final frame.
func (r *Run) Done() bool {
	return r.done
}

// Text returns the most recently displayed text.
func (r *Run) Text() string {
	return r.text
}

// Frames returns the number of frames rendered so far.
func (r *Run) Frames() int {
	return r.frames
}

// Stop ends the run before its next frame. The element keeps whatever text
// it last displayed.
func (r *Run) Stop() {
	r.stopped = true
}

// Animator drives count-ups on a scheduler.
type Animator struct {
	sched   clock.Scheduler
	printer *message.Printer
}

// NewAnimator creates an Animator. A nil printer formats with English
// digit grouping.
func NewAnimator(sched clock.Scheduler, printer *message.Printer) *Animator {
	if printer == nil {
		printer = NewPrinter("")
	}
	return &Animator{sched: sched, printer: printer}
}

// Animate starts a count-up. On every frame set receives
// Prefix + value + Suffix, until the frame where progress reaches 1.
func (a *Animator) Animate(c Counter, set func(text string)) *Run {
	if c.Duration <= 0 {
		c.Duration = constants.CounterDuration
	}
	run := &Run{counter: c, start: a.sched.Now()}

	var step func(now time.Duration)
	step = func(now time.Duration) {
		if run.stopped {
			return
		}
		progress := Progress(now-run.start, c.Duration)
		current := int(math.Floor(float64(c.Target) * EaseOutQuart(progress)))

		run.text = c.Prefix + FormatCount(a.printer, current, c.Target) + c.Suffix
		run.frames++
		set(run.text)

		if progress < 1 {
			a.sched.Frame(step)
			return
		}
		run.done = true
	}
	a.sched.Frame(step)

	return run
}

// Progress returns min(elapsed/duration, 1), treating a non-positive
// duration as already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}
