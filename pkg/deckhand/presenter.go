package deckhand

import (
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/anim"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/router"
)

// Presenter wires a deck to a surface: navigator, synchronizer, revealer
// and input router, sharing one scheduler.
type Presenter struct {
	deck    Deck
	surface Surface
	sched   clock.Scheduler

	nav    *Navigator
	sync   *Synchronizer
	reveal *Revealer
	router *router.Router

	startOnce sync.Once
	hintOnce  sync.Once
	logger    *slog.Logger
}

// New builds a Presenter. Nothing is shown until Start.
func New(deck Deck, surface Surface, sched clock.Scheduler, options Options) (*Presenter, error) {
	if deck.Len() == 0 {
		return nil, ErrEmptyDeck
	}

	nav, err := NewNavigator(deck.Len(), sched, surface.Slides)
	if err != nil {
		return nil, err
	}
	nav.SetSymmetricExitMarkers(options.SymmetricExitMarkers)

	locale := options.Locale
	if locale == "" {
		locale = deck.Locale
	}

	p := &Presenter{
		deck:    deck,
		surface: surface,
		sched:   sched,
		nav:     nav,
		sync:    NewSynchronizer(surface),
		reveal:  NewRevealer(deck, sched, surface.Elements, anim.NewPrinter(locale)),
		router:  router.New(nav, sched),
		logger:  GetInternalLogger(),
	}

	nav.OnTransition(func(t Transition) {
		p.sync.Push(t.To, nav.Total())
		p.reveal.Reveal(t.To)
	})

	return p, nil
}

// Start runs the one-time startup sequence: indicators, first sync, input
// binding, first reveal, and the delayed hint fade. Later calls do nothing.
func (p *Presenter) Start() {
	p.startOnce.Do(func() {
		total := p.nav.Total()

		if p.surface.Indicators != nil {
			p.surface.Indicators.CreateIndicators(total, 0)
		}

		if p.surface.Slides != nil {
			p.surface.Slides.SetMarker(p.nav.Current(), constants.MarkerActive)
		}

		p.sync.Push(p.nav.Current(), total)

		if p.surface.Input != nil {
			p.surface.Input.BindInput(p.router)
		}

		p.reveal.Reveal(p.nav.Current())

		p.sched.After(constants.HintDelay, p.hideHint)

		p.logger.Debug("Presentation started", "title", p.deck.Title, "slides", total)
	})
}

func (p *Presenter) hideHint() {
	p.hintOnce.Do(func() {
		if p.surface.Hint != nil {
			p.surface.Hint.HideHint(constants.HintFade)
		}
	})
}

// Navigator returns the presenter's navigator.
func (p *Presenter) Navigator() *Navigator {
	return p.nav
}

// Router returns the input router bound at Start.
func (p *Presenter) Router() *router.Router {
	return p.router
}

// Deck returns the deck being presented.
func (p *Presenter) Deck() Deck {
	return p.deck
}

// Snapshot returns the current derived display state.
func (p *Presenter) Snapshot() Snapshot {
	return Compute(p.nav.Current(), p.nav.Total())
}
