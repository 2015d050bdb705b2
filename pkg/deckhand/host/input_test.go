package host

import (
	"testing"

	"github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

func TestKeyFromSDL(t *testing.T) {
	tests := []struct {
		code sdl.Keycode
		want constants.Key
	}{
		{sdl.K_RIGHT, constants.KeyArrowRight},
		{sdl.K_DOWN, constants.KeyArrowDown},
		{sdl.K_SPACE, constants.KeySpace},
		{sdl.K_LEFT, constants.KeyArrowLeft},
		{sdl.K_UP, constants.KeyArrowUp},
		{sdl.K_HOME, constants.KeyHome},
		{sdl.K_END, constants.KeyEnd},
		{sdl.K_PAGEDOWN, constants.KeyArrowDown},
		{sdl.K_a, constants.KeyUnassigned},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, keyFromSDL(tt.code), "keycode %d", tt.code)
	}
}

func TestQuitKeys(t *testing.T) {
	assert.True(t, isQuitKey(sdl.K_ESCAPE))
	assert.True(t, isQuitKey(sdl.K_q))
	assert.False(t, isQuitKey(sdl.K_SPACE))
}

func TestWheelDelta(t *testing.T) {
	assert.Equal(t, 1.0, wheelDelta(&sdl.MouseWheelEvent{Y: -1}))
	assert.Equal(t, -2.0, wheelDelta(&sdl.MouseWheelEvent{Y: 2}))
	assert.Equal(t, -1.0, wheelDelta(&sdl.MouseWheelEvent{Y: -1, Direction: sdl.MOUSEWHEEL_FLIPPED}))
}

func TestKeyFromEvdev(t *testing.T) {
	press := func(code evdev.EvCode) *evdev.InputEvent {
		return &evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: 1}
	}

	assert.Equal(t, constants.KeyArrowRight, keyFromEvdev(press(evdev.KEY_RIGHT)))
	assert.Equal(t, constants.KeySpace, keyFromEvdev(press(evdev.KEY_SPACE)))
	assert.Equal(t, constants.KeyEnd, keyFromEvdev(press(evdev.KEY_END)))
	assert.Equal(t, constants.KeyArrowUp, keyFromEvdev(press(evdev.KEY_PAGEUP)))
	assert.Equal(t, constants.KeyUnassigned, keyFromEvdev(press(evdev.KEY_A)))

	release := press(evdev.KEY_RIGHT)
	release.Value = 0
	assert.Equal(t, constants.KeyUnassigned, keyFromEvdev(release))

	repeat := press(evdev.KEY_RIGHT)
	repeat.Value = 2
	assert.Equal(t, constants.KeyUnassigned, keyFromEvdev(repeat))

	assert.Equal(t, constants.KeyUnassigned, keyFromEvdev(&evdev.InputEvent{Type: evdev.EV_REL, Code: evdev.REL_WHEEL, Value: 1}))
	assert.Equal(t, constants.KeyUnassigned, keyFromEvdev(nil))
}

func TestKeyReaderDrain(t *testing.T) {
	r := &KeyReader{keys: make(chan constants.Key, 4)}
	r.keys <- constants.KeyArrowRight
	r.keys <- constants.KeyHome

	var got []constants.Key
	r.Drain(func(k constants.Key) { got = append(got, k) })
	assert.Equal(t, []constants.Key{constants.KeyArrowRight, constants.KeyHome}, got)

	got = nil
	r.Drain(func(k constants.Key) { got = append(got, k) })
	assert.Empty(t, got)

	close(r.keys)
	r.Drain(func(k constants.Key) { got = append(got, k) })
	assert.Empty(t, got)
}
