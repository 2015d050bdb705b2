package host

import (
	"time"

	"golang.org/x/text/message"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/anim"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/internal"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/router"
)

// progressTransition is how long the progress bar takes to reach a new
// width.
const progressTransition = 300 * time.Millisecond

// slideShift is how far, in pixels at 1x, a slide travels while it enters
// or leaves.
const slideShift = 40.0

// tween eases a single value from one level to another.
type tween struct {
	from, to float64
	since    time.Duration
	duration time.Duration
}

func (t tween) at(now time.Duration) float64 {
	p := anim.EaseOutQuart(anim.Progress(now-t.since, t.duration))
	return t.from + (t.to-t.from)*p
}

func (t *tween) retarget(now time.Duration, to float64, duration time.Duration) {
	t.from = t.at(now)
	t.to = to
	t.since = now
	t.duration = duration
}

type element struct {
	opacity tween
	offset  tween
	text    string
}

type slideState struct {
	marker constants.Marker
	since  time.Duration
}

// Stage is the SDL host's View. It keeps the state the presenter pushes
// and draws it each frame, easing between states on the host clock.
type Stage struct {
	deck    deckhand.Deck
	now     func() time.Duration
	loc     *internal.Localizer
	printer *message.Printer

	slides     []slideState
	elements   map[deckhand.ElementRef]*element
	progress   tween
	page       int
	indicators []bool
	buttons    [2]bool
	hint       tween
	hintHidden bool

	router *router.Router
	layout layout
}

// NewStage creates a Stage for deck. now reports the host clock and is
// read whenever state changes or a frame is drawn.
func NewStage(deck deckhand.Deck, now func() time.Duration, locale string) *Stage {
	if locale == "" {
		locale = deck.Locale
	}

	s := &Stage{
		deck:     deck,
		now:      now,
		loc:      internal.NewLocalizer(locale),
		printer:  anim.NewPrinter(locale),
		slides:   make([]slideState, deck.Len()),
		elements: make(map[deckhand.ElementRef]*element),
		hint:     tween{from: 1, to: 1},
	}

	for i, slide := range deck.Slides {
		for j := range slide.Cards {
			ref := deckhand.ElementRef{Slide: i, Kind: deckhand.ElementCard, Index: j}
			s.elements[ref] = &element{offset: tween{from: constants.CardHiddenOffset, to: constants.CardHiddenOffset}}
		}
		for j, c := range slide.Counters {
			ref := deckhand.ElementRef{Slide: i, Kind: deckhand.ElementCounter, Index: j}
			s.elements[ref] = &element{text: s.restingText(c)}
		}
	}

	return s
}

// restingText is what a counter shows before it has counted: its final
// value, or just its affixes when it never counts.
func (s *Stage) restingText(c deckhand.CounterItem) string {
	if !c.Animated() {
		return c.Prefix + c.Suffix
	}
	return c.Prefix + anim.FormatCount(s.printer, c.Target, c.Target) + c.Suffix
}

func (s *Stage) SetMarker(slide int, m constants.Marker) {
	if slide < 0 || slide >= len(s.slides) {
		return
	}
	s.slides[slide] = slideState{marker: m, since: s.now()}
}

func (s *Stage) SetVisibility(ref deckhand.ElementRef, v deckhand.Visibility) {
	e, ok := s.elements[ref]
	if !ok {
		return
	}
	now := s.now()
	e.opacity.retarget(now, v.Opacity, v.Transition)
	e.offset.retarget(now, v.OffsetY, v.Transition)
}

func (s *Stage) SetText(ref deckhand.ElementRef, text string) {
	if e, ok := s.elements[ref]; ok {
		e.text = text
	}
}

func (s *Stage) SetProgress(percent float64) {
	s.progress.retarget(s.now(), percent, progressTransition)
}

func (s *Stage) SetPage(n int) {
	s.page = n
}

func (s *Stage) CreateIndicators(n int, active int) {
	s.indicators = make([]bool, n)
	if active >= 0 && active < n {
		s.indicators[active] = true
	}
}

func (s *Stage) SetIndicatorActive(index int, active bool) {
	if index >= 0 && index < len(s.indicators) {
		s.indicators[index] = active
	}
}

func (s *Stage) SetButtonEnabled(b constants.Button, enabled bool) {
	s.buttons[b] = enabled
}

func (s *Stage) HideHint(fade time.Duration) {
	if s.hintHidden {
		return
	}
	s.hintHidden = true
	s.hint.retarget(s.now(), 0, fade)
}

func (s *Stage) BindInput(r *router.Router) {
	s.router = r
}

// Router returns the router bound by the presenter, or nil before Start.
func (s *Stage) Router() *router.Router {
	return s.router
}

// Resize recomputes hit areas for a window of the given size.
func (s *Stage) Resize(width, height int32) {
	s.layout = computeLayout(width, height, len(s.indicators))
}

// Click routes a pointer press at (x, y). Disabled buttons swallow the
// press without navigating.
func (s *Stage) Click(x, y int32) {
	if s.router == nil {
		return
	}

	for _, b := range []constants.Button{constants.ButtonPrev, constants.ButtonNext} {
		if contains(s.layout.buttons[b], x, y) {
			if s.buttons[b] {
				s.router.Click(b)
			}
			return
		}
	}

	for i := range s.layout.indicators {
		if contains(s.layout.indicatorHits[i], x, y) {
			s.router.Indicator(i)
			return
		}
	}
}

// visibleSlides lists the slides that need drawing, outgoing first.
func (s *Stage) visibleSlides() []int {
	var out []int
	active := -1
	for i, st := range s.slides {
		switch st.marker {
		case constants.MarkerExitingForward, constants.MarkerExitingBackward:
			out = append(out, i)
		case constants.MarkerActive:
			active = i
		}
	}
	if active >= 0 {
		out = append(out, active)
	}
	return out
}

// slidePose returns a slide's opacity and vertical shift at now.
func (s *Stage) slidePose(i int, now time.Duration) (float64, float64) {
	st := s.slides[i]
	p := anim.EaseOutQuart(anim.Progress(now-st.since, constants.SettleDuration))

	switch st.marker {
	case constants.MarkerActive:
		return p, slideShift * (1 - p)
	case constants.MarkerExitingForward:
		return 1 - p, -slideShift * p
	case constants.MarkerExitingBackward:
		return 1 - p, slideShift * p
	default:
		return 0, 0
	}
}

func (s *Stage) elementPose(ref deckhand.ElementRef, now time.Duration) (opacity, offset float64, text string) {
	e, ok := s.elements[ref]
	if !ok {
		return 0, 0, ""
	}
	return e.opacity.at(now), e.offset.at(now), e.text
}

func (s *Stage) hintOpacity(now time.Duration) float64 {
	return s.hint.at(now)
}
