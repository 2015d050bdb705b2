package host

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

const (
	devWindowWidth  = 1024
	devWindowHeight = 768
)

// Window wraps the SDL window and renderer with the fonts the stage draws
// with.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	TitleFont   *ttf.Font
	BodyFont    *ttf.Font
	CounterFont *ttf.Font

	hasVSync        bool
	lastPresentTime uint64
}

func initSDL() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return deckhand.NewInfrastructureError("init_sdl", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return deckhand.NewInfrastructureError("init_ttf", err)
	}
	return nil
}

func initWindow(title string, winOpts WindowOptions) (*Window, error) {
	displayMode, err := sdl.GetCurrentDisplayMode(0)
	if err != nil {
		logger().Error("Failed to Get display mode!", "error", err)
		displayMode.W, displayMode.H = devWindowWidth, devWindowHeight
	}

	width, height := displayMode.W, displayMode.H
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		winOpts.Borderless = false
		winOpts.Fullscreen = false
		winOpts.FullscreenDesktop = false

		x, y = int32(50), int32(50)
		width = envDimension(constants.WindowWidthEnvVar, devWindowWidth)
		height = envDimension(constants.WindowHeightEnvVar, devWindowHeight)
	}

	logger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, deckhand.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		logger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, deckhand.NewInfrastructureError("create_renderer", err)
	}

	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		logger().Warn("Invalid window dimension; using default", "name", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// loadFonts opens the three sizes the stage uses. A missing font is not
// fatal: the stage skips text it has no font for.
func (w *Window) loadFonts(path string) error {
	if path == "" {
		return deckhand.NewInfrastructureError("open_font", os.ErrNotExist)
	}

	height := int(w.GetHeight())
	sizes := []struct {
		dst  **ttf.Font
		size int
	}{
		{&w.TitleFont, height / 14},
		{&w.CounterFont, height / 10},
		{&w.BodyFont, height / 32},
	}

	for _, s := range sizes {
		font, err := ttf.OpenFont(path, max(s.size, 10))
		if err != nil {
			w.closeFonts()
			return deckhand.NewInfrastructureError("open_font", err)
		}
		*s.dst = font
	}
	return nil
}

func (w *Window) closeFonts() {
	for _, f := range []**ttf.Font{&w.TitleFont, &w.BodyFont, &w.CounterFont} {
		if *f != nil {
			(*f).Close()
			*f = nil
		}
	}
}

func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	w.closeFonts()
	w.Renderer.Destroy()
	w.Window.Destroy()
}

func cleanupSDL() {
	ttf.Quit()
	sdl.Quit()
}
