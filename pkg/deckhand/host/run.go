// Package host presents a deck in an SDL window.
//
// The host owns the main loop: it drives a clock.Timeline from SDL ticks,
// turns SDL and evdev input into router calls, and draws the Stage the
// presenter updates.
package host

import (
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/clock"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

// Options configures the SDL host.
type Options struct {
	WindowTitle   string
	WindowOptions WindowOptions
	FontPath      string           // TTF/OTF font for all text
	Theme         Theme            // Zero value uses DefaultTheme(FontPath)
	EvdevPath     string           // Optional input device for presentation remotes
	Locale        string           // Label and digit-grouping language; overrides Deckhand.Locale
	Deckhand      deckhand.Options // Logging, locale and marker options for the core
}

func logger() *slog.Logger {
	return deckhand.GetInternalLogger()
}

// Run opens a window and presents deck until the window is closed or
// Escape is pressed.
func Run(deck deckhand.Deck, options Options) error {
	deckhand.Init(options.Deckhand)
	defer deckhand.Close()

	if options.Locale != "" {
		options.Deckhand.Locale = options.Locale
	}
	if options.WindowTitle == "" {
		options.WindowTitle = deck.Title
	}
	if options.WindowOptions.IsZero() {
		options.WindowOptions, _ = ParseWindowMode("")
	}
	theme := options.Theme
	if theme.IsZero() {
		theme = DefaultTheme(options.FontPath)
	}

	if err := initSDL(); err != nil {
		return err
	}
	defer cleanupSDL()

	window, err := initWindow(options.WindowTitle, options.WindowOptions)
	if err != nil {
		return err
	}
	defer window.close()

	if err := window.loadFonts(theme.FontPath); err != nil {
		logger().Warn("Fonts unavailable; text will not be drawn", "path", theme.FontPath, "error", err)
	}

	tl := clock.NewTimeline()
	stage := NewStage(deck, tl.Now, options.Deckhand.Locale)
	stage.Resize(window.GetWidth(), window.GetHeight())

	presenter, err := deckhand.New(deck, deckhand.SurfaceOf(stage), tl, options.Deckhand)
	if err != nil {
		return err
	}

	var keys *KeyReader
	if options.EvdevPath != "" {
		keys, err = OpenKeyReader(options.EvdevPath)
		if err != nil {
			logger().Warn("Input device unavailable", "path", options.EvdevPath, "error", err)
		} else {
			defer keys.Close()
		}
	}

	painter := newPainter(window, theme)
	defer painter.destroy()

	presenter.Start()

	quit := atomic.NewBool(false)
	start := sdl.GetTicks64()

	for !quit.Load() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if !stage.handleEvent(event) {
				quit.Store(true)
			}
		}

		if keys != nil {
			keys.Drain(func(k constants.Key) {
				presenter.Router().HandleKey(k)
			})
		}

		now := time.Duration(sdl.GetTicks64()-start) * time.Millisecond
		tl.AdvanceTo(now)

		painter.draw(stage, tl.Now())
		window.Present()
	}

	logger().Debug("Presentation closed", "slide", presenter.Navigator().Current())
	return nil
}
