package deckhand

import (
	"log/slog"
	"time"

	"golang.org/x/text/message"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/anim"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

var (
	hiddenCard    = Visibility{Opacity: 0, OffsetY: constants.CardHiddenOffset}
	shownCard     = Visibility{Opacity: 1, OffsetY: 0, Transition: constants.CardTransition}
	hiddenCounter = Visibility{Opacity: 0}
	shownCounter  = Visibility{Opacity: 1, Transition: constants.CounterFade}
	shownStatic   = Visibility{Opacity: 1, Transition: constants.StaticCounterFade}
)

// Revealer staggers the entrance of a slide's cards and counters.
//
// Every delay is measured from the moment Reveal is called; items do not
// wait on each other. Each call starts a new generation for that slide:
// callbacks and count-ups left over from an earlier visit stop touching the
// slide's elements.
type Revealer struct {
	slides   []Slide
	sched    clock.Scheduler
	elements Elements
	animator *anim.Animator

	generation map[int]uint64
	runs       map[int][]*anim.Run
	logger     *slog.Logger
}

// NewRevealer creates a Revealer for the deck's slides. A nil printer
// formats counters with English grouping.
func NewRevealer(deck Deck, sched clock.Scheduler, elements Elements, printer *message.Printer) *Revealer {
	return &Revealer{
		slides:     deck.Slides,
		sched:      sched,
		elements:   elements,
		animator:   anim.NewAnimator(sched, printer),
		generation: make(map[int]uint64),
		runs:       make(map[int][]*anim.Run),
		logger:     GetInternalLogger(),
	}
}

// CardDelay returns when the i-th card starts to appear.
func CardDelay(i int) time.Duration {
	return constants.CardBaseDelay + time.Duration(i)*constants.CardStagger
}

// CounterDelay returns when the j-th counter starts to fade in and count.
func CounterDelay(j int) time.Duration {
	return constants.CounterBaseDelay + time.Duration(j)*constants.CounterStagger
}

// Reveal hides the slide's content and schedules its staggered entrance.
func (r *Revealer) Reveal(index int) {
	if index < 0 || index >= len(r.slides) || r.elements == nil {
		return
	}

	r.generation[index]++
	gen := r.generation[index]
	for _, run := range r.runs[index] {
		run.Stop()
	}
	r.runs[index] = nil

	live := func() bool { return r.generation[index] == gen }
	slide := r.slides[index]

	for i := range slide.Cards {
		ref := ElementRef{Slide: index, Kind: ElementCard, Index: i}
		r.elements.SetVisibility(ref, hiddenCard)
		r.sched.After(CardDelay(i), func() {
			if live() {
				r.elements.SetVisibility(ref, shownCard)
			}
		})
	}

	for j, counter := range slide.Counters {
		ref := ElementRef{Slide: index, Kind: ElementCounter, Index: j}
		r.elements.SetVisibility(ref, hiddenCounter)

		if !counter.Animated() {
			r.sched.After(constants.StaticCounterDelay, func() {
				if live() {
					r.elements.SetVisibility(ref, shownStatic)
				}
			})
			continue
		}

		c := anim.Counter{Target: counter.Target, Prefix: counter.Prefix, Suffix: counter.Suffix}
		r.sched.After(CounterDelay(j), func() {
			if !live() {
				return
			}
			r.elements.SetVisibility(ref, shownCounter)
			run := r.animator.Animate(c, func(text string) {
				r.elements.SetText(ref, text)
			})
			r.runs[index] = append(r.runs[index], run)
		})
	}

	r.logger.Debug("Revealing slide", "slide", index, "cards", len(slide.Cards), "counters", len(slide.Counters), "generation", gen)
}
