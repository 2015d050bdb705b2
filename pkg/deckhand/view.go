package deckhand

import (
	"time"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/router"
)

// ElementKind distinguishes the two kinds of animated slide content.
type ElementKind int

const (
	ElementCard ElementKind = iota
	ElementCounter
)

// ElementRef addresses one animated element: the Index-th card or counter
// on a slide.
type ElementRef struct {
	Slide int
	Kind  ElementKind
	Index int
}

// Visibility is the target state of an element and how long the host
// should take to get there.
type Visibility struct {
	Opacity    float64
	OffsetY    float64
	Transition time.Duration
}

// SlideMarkers styles whole slides.
type SlideMarkers interface {
	SetMarker(slide int, marker constants.Marker)
}

// Elements shows, hides and relabels slide content.
type Elements interface {
	SetVisibility(ref ElementRef, v Visibility)
	SetText(ref ElementRef, text string)
}

// ProgressBar shows how far through the deck the presenter is.
type ProgressBar interface {
	SetProgress(percent float64)
}

// PageLabel shows the 1-based slide number.
type PageLabel interface {
	SetPage(n int)
}

// Indicators is the row of per-slide dots.
type Indicators interface {
	CreateIndicators(n int, active int)
	SetIndicatorActive(index int, active bool)
}

// Buttons are the prev/next controls. A disabled button must ignore
// presses, not just look disabled.
type Buttons interface {
	SetButtonEnabled(b constants.Button, enabled bool)
}

// Hint is the one-time "swipe to continue" overlay.
type Hint interface {
	HideHint(fade time.Duration)
}

// InputBinder receives the router once the presenter has started so the
// host can feed it events.
type InputBinder interface {
	BindInput(r *router.Router)
}

// Surface bundles the view capabilities. Any field may be nil; the core
// skips updates to absent parts and carries on with the rest.
type Surface struct {
	Slides     SlideMarkers
	Elements   Elements
	Progress   ProgressBar
	Page       PageLabel
	Indicators Indicators
	Buttons    Buttons
	Hint       Hint
	Input      InputBinder
}

// View is implemented by hosts that provide every part from one value.
type View interface {
	SlideMarkers
	Elements
	ProgressBar
	PageLabel
	Indicators
	Buttons
	Hint
	InputBinder
}

// SurfaceOf builds a fully populated Surface from a single View.
func SurfaceOf(v View) Surface {
	return Surface{
		Slides:     v,
		Elements:   v,
		Progress:   v,
		Page:       v,
		Indicators: v,
		Buttons:    v,
		Hint:       v,
		Input:      v,
	}
}
