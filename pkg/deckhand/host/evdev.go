package host

import (
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

const evdevKeyPress = 1

var evdevKeyMap = map[evdev.EvCode]constants.Key{
	evdev.KEY_UP:       constants.KeyArrowUp,
	evdev.KEY_DOWN:     constants.KeyArrowDown,
	evdev.KEY_LEFT:     constants.KeyArrowLeft,
	evdev.KEY_RIGHT:    constants.KeyArrowRight,
	evdev.KEY_SPACE:    constants.KeySpace,
	evdev.KEY_HOME:     constants.KeyHome,
	evdev.KEY_END:      constants.KeyEnd,
	evdev.KEY_PAGEUP:   constants.KeyArrowUp,
	evdev.KEY_PAGEDOWN: constants.KeyArrowDown,
}

// keyFromEvdev maps a key press from an input device to a navigation key.
// Releases, autorepeats and non-key events are unassigned.
func keyFromEvdev(ev *evdev.InputEvent) constants.Key {
	if ev == nil || ev.Type != evdev.EV_KEY || ev.Value != evdevKeyPress {
		return constants.KeyUnassigned
	}
	if k, ok := evdevKeyMap[ev.Code]; ok {
		return k
	}
	return constants.KeyUnassigned
}

// KeyReader reads navigation keys straight from a Linux input device,
// for presentation remotes and kiosks without a window manager.
type KeyReader struct {
	device *evdev.InputDevice
	keys   chan constants.Key
	wg     sync.WaitGroup
}

// OpenKeyReader opens the input device at path and starts reading it.
func OpenKeyReader(path string) (*KeyReader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, deckhand.NewInfrastructureError("open_evdev", err)
	}

	name, _ := device.Name()
	logger().Debug("Reading keys from input device", "path", path, "name", name)

	r := &KeyReader{
		device: device,
		keys:   make(chan constants.Key, 16),
	}
	r.wg.Add(1)
	go r.read()
	return r, nil
}

func (r *KeyReader) read() {
	defer r.wg.Done()
	defer close(r.keys)

	for {
		ev, err := r.device.ReadOne()
		if err != nil {
			logger().Debug("Input device reader stopped", "error", err)
			return
		}

		key := keyFromEvdev(ev)
		if key == constants.KeyUnassigned {
			continue
		}

		select {
		case r.keys <- key:
		default:
			logger().Warn("Dropping input device key; host is not keeping up", "key", key.GetName())
		}
	}
}

// Drain passes every key read since the last call to handle without
// blocking.
func (r *KeyReader) Drain(handle func(constants.Key)) {
	for {
		select {
		case key, ok := <-r.keys:
			if !ok {
				return
			}
			handle(key)
		default:
			return
		}
	}
}

// Close stops the reader and releases the device.
func (r *KeyReader) Close() error {
	err := r.device.Close()
	r.wg.Wait()
	return err
}
