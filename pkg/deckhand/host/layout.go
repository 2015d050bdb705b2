package host

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Layout is tuned for a 768px tall window and scaled from there.
const referenceHeight = 768.0

type layout struct {
	width, height int32
	scale         float64

	progress      sdl.Rect
	buttons       [2]sdl.Rect
	indicators    []sdl.Rect
	indicatorHits []sdl.Rect

	margin      int32
	pageY       int32
	hintY       int32
	titleY      int32
	cardsY      int32
	cardHeight  int32
	countersY   int32
	columnWidth int32
}

func (l layout) px(v float64) int32 {
	return int32(v * l.scale)
}

func computeLayout(width, height int32, indicators int) layout {
	l := layout{width: width, height: height, scale: float64(height) / referenceHeight}
	if l.scale <= 0 {
		l.scale = 1
	}

	l.margin = l.px(48)
	l.progress = sdl.Rect{X: 0, Y: 0, W: width, H: max(l.px(4), 2)}

	button := l.px(56)
	bottom := height - l.margin - button
	l.buttons[1] = sdl.Rect{X: width - l.margin - button, Y: bottom, W: button, H: button}
	l.buttons[0] = sdl.Rect{X: l.buttons[1].X - l.px(12) - button, Y: bottom, W: button, H: button}

	dot := max(l.px(10), 4)
	gap := l.px(14)
	rowWidth := int32(indicators)*dot + int32(max(indicators-1, 0))*gap
	x := (width - rowWidth) / 2
	y := bottom + (button-dot)/2
	pad := l.px(8)
	for i := 0; i < indicators; i++ {
		l.indicators = append(l.indicators, sdl.Rect{X: x, Y: y, W: dot, H: dot})
		l.indicatorHits = append(l.indicatorHits, sdl.Rect{X: x - pad/2, Y: y - pad, W: dot + pad, H: dot + 2*pad})
		x += dot + gap
	}

	l.pageY = bottom + button/2
	l.hintY = bottom - l.px(40)
	l.titleY = l.px(140)
	l.cardsY = l.px(280)
	l.cardHeight = l.px(150)
	l.countersY = l.px(470)
	l.columnWidth = width - 2*l.margin

	return l
}

// column returns the x offset and width of slot i of n across the content
// area.
func (l layout) column(i, n int) (int32, int32) {
	if n <= 0 {
		return l.margin, l.columnWidth
	}
	gap := l.px(24)
	w := (l.columnWidth - int32(n-1)*gap) / int32(n)
	return l.margin + int32(i)*(w+gap), w
}

func contains(r sdl.Rect, x, y int32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
