package host

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

var sdlKeyMap = map[sdl.Keycode]constants.Key{
	sdl.K_UP:       constants.KeyArrowUp,
	sdl.K_DOWN:     constants.KeyArrowDown,
	sdl.K_LEFT:     constants.KeyArrowLeft,
	sdl.K_RIGHT:    constants.KeyArrowRight,
	sdl.K_SPACE:    constants.KeySpace,
	sdl.K_HOME:     constants.KeyHome,
	sdl.K_END:      constants.KeyEnd,
	sdl.K_PAGEUP:   constants.KeyArrowUp,
	sdl.K_PAGEDOWN: constants.KeyArrowDown,
}

// keyFromSDL maps an SDL keycode to a navigation key.
func keyFromSDL(code sdl.Keycode) constants.Key {
	if k, ok := sdlKeyMap[code]; ok {
		return k
	}
	return constants.KeyUnassigned
}

func isQuitKey(code sdl.Keycode) bool {
	return code == sdl.K_ESCAPE || code == sdl.K_q
}

// wheelDelta converts an SDL wheel event to a scroll delta where positive
// means "scroll down", matching the browser's deltaY.
func wheelDelta(e *sdl.MouseWheelEvent) float64 {
	y := -float64(e.Y)
	if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
		y = -y
	}
	return y
}

// handleEvent feeds one SDL event to the stage's router. It returns false
// when the event asks the host to quit.
func (s *Stage) handleEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return false

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return true
		}
		if isQuitKey(e.Keysym.Sym) {
			return false
		}
		if s.router != nil {
			s.router.HandleKey(keyFromSDL(e.Keysym.Sym))
		}

	case *sdl.MouseWheelEvent:
		if s.router != nil {
			s.router.Wheel(wheelDelta(e))
		}

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN && e.Button == sdl.BUTTON_LEFT {
			s.Click(e.X, e.Y)
		}

	case *sdl.TouchFingerEvent:
		if s.router == nil {
			return true
		}
		y := float64(e.Y) * float64(s.layout.height)
		switch e.Type {
		case sdl.FINGERDOWN:
			s.router.TouchStart(y)
		case sdl.FINGERUP:
			s.router.TouchEnd(y)
		}
	}

	return true
}
