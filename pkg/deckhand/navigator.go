package deckhand

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

// Direction of an accepted transition.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Transition describes an accepted index change.
type Transition struct {
	From      int
	To        int
	Direction Direction
}

// Navigator owns the current slide index and the transition latch. It is
// the only writer of either.
//
// A transition is accepted only when the target is in range, differs from
// the current index, and no other transition is in flight. Accepted
// transitions hold the latch for the settle duration; everything that
// arrives meanwhile is dropped, not queued.
type Navigator struct {
	total         int
	current       int
	transitioning *atomic.Bool

	sched     clock.Scheduler
	markers   SlideMarkers
	symmetric bool
	listeners []func(Transition)
	logger    *slog.Logger
}

// NewNavigator creates a navigator at index 0, settled.
func NewNavigator(total int, sched clock.Scheduler, markers SlideMarkers) (*Navigator, error) {
	if total <= 0 {
		return nil, ErrEmptyDeck
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}
	return &Navigator{
		total:         total,
		sched:         sched,
		markers:       markers,
		transitioning: atomic.NewBool(false),
		logger:        GetInternalLogger(),
	}, nil
}

// SetSymmetricExitMarkers makes backward transitions mark the outgoing
// slide exiting-backward. By default only forward transitions leave an
// exit marker on the outgoing slide.
func (n *Navigator) SetSymmetricExitMarkers(enabled bool) {
	n.symmetric = enabled
}

// OnTransition registers a listener run, in registration order, after each
// accepted transition has updated the index.
func (n *Navigator) OnTransition(fn func(Transition)) {
	n.listeners = append(n.listeners, fn)
}

// Current returns the active index.
func (n *Navigator) Current() int {
	return n.current
}

// Total returns the number of slides.
func (n *Navigator) Total() int {
	return n.total
}

// Transitioning reports whether a transition is inside its settle window.
func (n *Navigator) Transitioning() bool {
	return n.transitioning.Load()
}

// Next moves forward one slide unless already on the last.
func (n *Navigator) Next() bool {
	if n.current >= n.total-1 {
		return false
	}
	return n.GoTo(n.current + 1)
}

// Previous moves back one slide unless already on the first.
func (n *Navigator) Previous() bool {
	if n.current <= 0 {
		return false
	}
	return n.GoTo(n.current - 1)
}

// GoTo makes index the active slide. It returns false, having changed
// nothing, when the request is rejected.
func (n *Navigator) GoTo(index int) bool {
	if index < 0 || index >= n.total || index == n.current {
		return false
	}
	if !n.transitioning.CompareAndSwap(false, true) {
		return false
	}

	t := Transition{From: n.current, To: index, Direction: Forward}
	if index < n.current {
		t.Direction = Backward
	}

	if n.markers != nil {
		n.markers.SetMarker(t.From, constants.MarkerNone)
		if exit := n.exitMarker(t.Direction); exit != constants.MarkerNone {
			n.markers.SetMarker(t.From, exit)
		}
		n.markers.SetMarker(t.To, constants.MarkerActive)
	}

	n.current = index
	n.logger.Debug("Slide transition", "from", t.From, "to", t.To, "direction", t.Direction.String())

	for _, fn := range n.listeners {
		fn(t)
	}

	n.sched.After(constants.SettleDuration, func() { n.settle(t) })

	return true
}

func (n *Navigator) exitMarker(d Direction) constants.Marker {
	if d == Forward {
		return constants.MarkerExitingForward
	}
	if n.symmetric {
		return constants.MarkerExitingBackward
	}
	return constants.MarkerNone
}

func (n *Navigator) settle(t Transition) {
	n.transitioning.Store(false)
	if n.markers != nil && t.From != n.current {
		n.markers.SetMarker(t.From, constants.MarkerNone)
	}
}
