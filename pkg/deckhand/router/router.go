package router

import (
	"math"
	"time"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

// Navigation is the slice of the navigator the router drives. Every method
// must be safe to call at any time; admission is the navigator's job.
type Navigation interface {
	Next() bool
	Previous() bool
	GoTo(index int) bool
	Total() int
}

// Action is what a bound key asks the navigator to do.
type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrevious
	ActionFirst
	ActionLast
)

// Router funnels keys, touches, wheel ticks and clicks into a Navigation.
// Each channel applies its own admission rule; there is no coordination
// between channels.
type Router struct {
	nav      Navigation
	sched    clock.Scheduler
	bindings map[constants.Key]Action

	swipeThreshold float64
	wheelCooldown  time.Duration

	touchStartY     float64
	wheelSuppressed *atomic.Bool
}

// New creates a Router with the default key bindings.
func New(nav Navigation, sched clock.Scheduler) *Router {
	r := &Router{
		nav:             nav,
		sched:           sched,
		bindings:        make(map[constants.Key]Action),
		swipeThreshold:  constants.SwipeThreshold,
		wheelCooldown:   constants.WheelCooldown,
		wheelSuppressed: atomic.NewBool(false),
	}

	r.Bind(constants.KeyArrowRight, ActionNext).
		Bind(constants.KeyArrowDown, ActionNext).
		Bind(constants.KeySpace, ActionNext).
		Bind(constants.KeyArrowLeft, ActionPrevious).
		Bind(constants.KeyArrowUp, ActionPrevious).
		Bind(constants.KeyHome, ActionFirst).
		Bind(constants.KeyEnd, ActionLast)

	return r
}

// Bind maps a key to an action, replacing any previous binding.
// Binding ActionNone removes the key.
func (r *Router) Bind(key constants.Key, action Action) *Router {
	if action == ActionNone {
		delete(r.bindings, key)
		return r
	}
	r.bindings[key] = action
	return r
}

// HandleKey dispatches a key press. It returns true when the key is bound,
// in which case the host should suppress the key's default behaviour.
func (r *Router) HandleKey(key constants.Key) bool {
	action, ok := r.bindings[key]
	if !ok {
		return false
	}
	r.Dispatch(action)
	return true
}

// Dispatch performs an action against the navigator.
func (r *Router) Dispatch(action Action) {
	switch action {
	case ActionNext:
		r.nav.Next()
	case ActionPrevious:
		r.nav.Previous()
	case ActionFirst:
		r.nav.GoTo(0)
	case ActionLast:
		r.nav.GoTo(r.nav.Total() - 1)
	}
}

// TouchStart records where a touch began.
func (r *Router) TouchStart(y float64) {
	r.touchStartY = y
}

// TouchEnd finishes a touch. A vertical travel strictly greater than the
// swipe threshold navigates: upward swipes go forward, downward go back.
func (r *Router) TouchEnd(y float64) {
	diff := r.touchStartY - y
	if math.Abs(diff) <= r.swipeThreshold {
		return
	}
	if diff > 0 {
		r.nav.Next()
	} else {
		r.nav.Previous()
	}
}

// Wheel handles one wheel tick. After any admitted tick, including one
// with zero delta, the wheel channel ignores ticks for the cooldown.
func (r *Router) Wheel(deltaY float64) {
	if !r.wheelSuppressed.CompareAndSwap(false, true) {
		return
	}
	r.sched.After(r.wheelCooldown, func() {
		r.wheelSuppressed.Store(false)
	})

	switch {
	case deltaY > 0:
		r.nav.Next()
	case deltaY < 0:
		r.nav.Previous()
	}
}

// WheelSuppressed reports whether wheel ticks are currently ignored.
func (r *Router) WheelSuppressed() bool {
	return r.wheelSuppressed.Load()
}

// Click handles a press on one of the navigation buttons.
func (r *Router) Click(b constants.Button) {
	if b == constants.ButtonPrev {
		r.nav.Previous()
		return
	}
	r.nav.Next()
}

// Indicator handles a press on the indicator dot for a slide.
func (r *Router) Indicator(index int) {
	r.nav.GoTo(index)
}

// Next, Previous and GoTo expose the navigator to hosts that route their
// own inputs.
func (r *Router) Next() bool { return r.nav.Next() }

func (r *Router) Previous() bool { return r.nav.Previous() }

func (r *Router) GoTo(index int) bool { return r.nav.GoTo(index) }
