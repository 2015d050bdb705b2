// Package constants defines shared constants, types, and timing values
// used throughout the deckhand presentation controller.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names read by the host and the CLI.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
	LogLevelEnvVar     = "DECKHAND_LOG_LEVEL"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Key represents an abstract navigation key, mapped from whatever physical
// input the host reads (SDL keysyms, evdev codes, terminal escapes).
type Key int

const (
	KeyUnassigned Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyHome
	KeyEnd
)

func (k Key) GetName() string {
	switch k {
	case KeyUnassigned:
		return "Unassigned"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowLeft:
		return "ArrowLeft"
	case KeyArrowRight:
		return "ArrowRight"
	case KeySpace:
		return "Space"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Button identifies one of the two on-screen navigation buttons.
type Button int

const (
	ButtonPrev Button = iota
	ButtonNext
)

func (b Button) String() string {
	if b == ButtonPrev {
		return "prev"
	}
	return "next"
}

// Marker is the transient styling cue a slide carries.
type Marker int

const (
	MarkerNone            Marker = iota // Not shown
	MarkerActive                        // The slide being shown
	MarkerExitingForward                // Outgoing slide during a forward transition
	MarkerExitingBackward               // Outgoing slide during a backward transition (opt-in)
)

func (m Marker) String() string {
	switch m {
	case MarkerActive:
		return "active"
	case MarkerExitingForward:
		return "exiting-forward"
	case MarkerExitingBackward:
		return "exiting-backward"
	default:
		return "none"
	}
}

// Navigation timing.
const (
	SettleDuration = 600 * time.Millisecond // Latch window after an accepted transition
	WheelCooldown  = 500 * time.Millisecond // Wheel channel suppression after a tick
	HintDelay      = 3000 * time.Millisecond
	HintFade       = 500 * time.Millisecond
)

// SwipeThreshold is the vertical distance a touch must exceed (strictly)
// to count as a swipe.
const SwipeThreshold = 50.0

// Reveal timing. Delays are offsets from slide activation, not chained.
const (
	CardBaseDelay        = 100 * time.Millisecond
	CardStagger          = 100 * time.Millisecond
	CardTransition       = 600 * time.Millisecond
	CardHiddenOffset     = 30.0
	CounterBaseDelay     = 500 * time.Millisecond
	CounterStagger       = 200 * time.Millisecond
	CounterFade          = 300 * time.Millisecond
	CounterDuration      = 2000 * time.Millisecond
	StaticCounterDelay   = 300 * time.Millisecond
	StaticCounterFade    = 500 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond
)
