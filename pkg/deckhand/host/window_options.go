package host

import (
	"fmt"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions picks the SDL window flags the stage opens with.
type WindowOptions struct {
	Borderless        bool // No decorations, for kiosks and projectors
	Resizable         bool
	Fullscreen        bool // Exclusive fullscreen at the display's mode
	FullscreenDesktop bool // Fullscreen at desktop resolution; the default for presenting
	AlwaysOnTop       bool
}

// Window modes accepted by ParseWindowMode.
var windowModes = map[string]WindowOptions{
	"desktop":    {FullscreenDesktop: true, Resizable: true},
	"fullscreen": {Fullscreen: true},
	"windowed":   {Resizable: true},
	"kiosk":      {Borderless: true, FullscreenDesktop: true, AlwaysOnTop: true},
}

// ParseWindowMode maps a mode name (desktop, fullscreen, windowed, kiosk)
// to window options. The empty string is desktop.
func ParseWindowMode(mode string) (WindowOptions, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = "desktop"
	}
	if wo, ok := windowModes[mode]; ok {
		return wo, nil
	}
	return WindowOptions{}, fmt.Errorf("unknown window mode %q", mode)
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := uint32(sdl.WINDOW_SHOWN)

	for _, f := range []struct {
		on   bool
		flag uint32
	}{
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
		{wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP},
	} {
		if f.on {
			flags |= f.flag
		}
	}

	return flags
}
