package deckhand_test

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/router"
)

// recorder implements every view capability and keeps both a call log and
// the resulting state.
type recorder struct {
	calls []string

	markers    map[int]constants.Marker
	visibility map[deckhand.ElementRef]deckhand.Visibility
	texts      map[deckhand.ElementRef][]string
	progress   float64
	page       int
	indicators []bool
	buttons    map[constants.Button]bool
	hintHidden int
	router     *router.Router
}

func newRecorder() *recorder {
	return &recorder{
		markers:    make(map[int]constants.Marker),
		visibility: make(map[deckhand.ElementRef]deckhand.Visibility),
		texts:      make(map[deckhand.ElementRef][]string),
		buttons:    make(map[constants.Button]bool),
	}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.calls = nil
}

func (r *recorder) SetMarker(slide int, m constants.Marker) {
	r.log("marker %d %s", slide, m)
	r.markers[slide] = m
}

func (r *recorder) SetVisibility(ref deckhand.ElementRef, v deckhand.Visibility) {
	r.log("visibility %d/%d/%d %.0f", ref.Slide, ref.Kind, ref.Index, v.Opacity)
	r.visibility[ref] = v
}

func (r *recorder) SetText(ref deckhand.ElementRef, text string) {
	r.texts[ref] = append(r.texts[ref], text)
}

func (r *recorder) SetProgress(percent float64) {
	r.log("progress %.2f", percent)
	r.progress = percent
}

func (r *recorder) SetPage(n int) {
	r.log("page %d", n)
	r.page = n
}

func (r *recorder) CreateIndicators(n int, active int) {
	r.log("indicators %d", n)
	r.indicators = make([]bool, n)
	r.indicators[active] = true
}

func (r *recorder) SetIndicatorActive(i int, active bool) {
	r.indicators[i] = active
}

func (r *recorder) SetButtonEnabled(b constants.Button, enabled bool) {
	r.log("button %s %t", b, enabled)
	r.buttons[b] = enabled
}

func (r *recorder) HideHint(fade time.Duration) {
	r.log("hint %s", fade)
	r.hintHidden++
}

func (r *recorder) BindInput(rt *router.Router) {
	r.log("bind")
	r.router = rt
}

func (r *recorder) activeSlides() []int {
	var active []int
	for i, m := range r.markers {
		if m == constants.MarkerActive {
			active = append(active, i)
		}
	}
	return active
}

func (r *recorder) activeIndicators() []int {
	var active []int
	for i, on := range r.indicators {
		if on {
			active = append(active, i)
		}
	}
	return active
}

func (r *recorder) lastText(ref deckhand.ElementRef) string {
	texts := r.texts[ref]
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

// testDeck builds n slides, each with two cards and a counter.
func testDeck(n int) deckhand.Deck {
	slides := make([]deckhand.Slide, n)
	for i := range slides {
		slides[i] = deckhand.Slide{
			Title: fmt.Sprintf("Slide %d", i+1),
			Cards: []deckhand.RevealItem{{Heading: "a"}, {Heading: "b"}},
			Counters: []deckhand.CounterItem{
				{Target: 100 * (i + 1), Suffix: "+"},
			},
		}
	}
	return deckhand.Deck{Title: "test", Slides: slides}
}
