package host

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the visual appearance of the presentation.
type Theme struct {
	BackgroundColor sdl.Color // Slide background
	TextColor       sdl.Color // Titles, card text, counters
	MutedColor      sdl.Color // Card bodies, page label, hint
	CardColor       sdl.Color // Card background
	AccentColor     sdl.Color // Progress bar, active indicator, counters
	IndicatorColor  sdl.Color // Inactive indicators
	FontPath        string    // Path to the primary UI font
}

// DefaultTheme is a dark theme with a teal accent.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor: HexToColor(0x0F1419),
		TextColor:       HexToColor(0xFFFFFF),
		MutedColor:      HexToColor(0x8B95A1),
		CardColor:       HexToColor(0x1C2430),
		AccentColor:     HexToColor(0x00B3A4),
		IndicatorColor:  HexToColor(0x3A4554),
		FontPath:        fontPath,
	}
}

// HexToColor converts 0xRRGGBB to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// withAlpha scales a color's alpha by opacity in [0, 1].
func withAlpha(c sdl.Color, opacity float64) sdl.Color {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}

// IsZero reports whether no theme was configured.
func (t Theme) IsZero() bool {
	return t == Theme{}
}
