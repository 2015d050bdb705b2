package host

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand"
	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

// painter draws a Stage into a window.
type painter struct {
	window *Window
	theme  Theme
	cache  *TextureCache
	icons  [2]*sdl.Texture
}

func newPainter(window *Window, theme Theme) *painter {
	p := &painter{
		window: window,
		theme:  theme,
		cache:  NewTextureCache(),
	}

	size := int(window.GetHeight() * 28 / int32(referenceHeight))
	for _, b := range []constants.Button{constants.ButtonPrev, constants.ButtonNext} {
		icon, err := iconTexture(window.Renderer, buttonIconSVG(b), max(size, 12))
		if err != nil {
			logger().Warn("Failed to load button icon", "button", b, "error", err)
			continue
		}
		p.icons[b] = icon
	}

	return p
}

func (p *painter) destroy() {
	p.cache.Destroy()
	for _, icon := range p.icons {
		if icon != nil {
			icon.Destroy()
		}
	}
}

func (p *painter) fill(rect sdl.Rect, c sdl.Color) {
	r := p.window.Renderer
	r.SetDrawColor(c.R, c.G, c.B, c.A)
	r.FillRect(&rect)
}

// text draws s with its top edge at y. align is -1 for left, 0 for
// centred on x, 1 for right.
func (p *painter) text(font *ttf.Font, s string, c sdl.Color, x, y int32, align int, opacity float64) int32 {
	t, ok := p.cache.Text(p.window.Renderer, font, s, c)
	if !ok || opacity <= 0 {
		return 0
	}

	switch align {
	case 0:
		x -= t.w / 2
	case 1:
		x -= t.w
	}

	t.texture.SetAlphaMod(withAlpha(c, opacity).A)
	p.window.Renderer.Copy(t.texture, nil, &sdl.Rect{X: x, Y: y, W: t.w, H: t.h})
	return t.h
}

// draw renders one frame of the stage at now.
func (p *painter) draw(s *Stage, now time.Duration) {
	w, h := p.window.GetWidth(), p.window.GetHeight()
	if s.layout.width != w || s.layout.height != h || len(s.layout.indicators) != len(s.indicators) {
		s.Resize(w, h)
	}
	l := s.layout

	bg := p.theme.BackgroundColor
	p.window.Renderer.SetDrawColor(bg.R, bg.G, bg.B, 255)
	p.window.Renderer.Clear()

	for _, i := range s.visibleSlides() {
		opacity, shift := s.slidePose(i, now)
		if opacity > 0 {
			p.drawSlide(s, i, l, now, opacity, l.px(shift))
		}
	}

	p.drawChrome(s, l, now)
}

func (p *painter) drawSlide(s *Stage, index int, l layout, now time.Duration, opacity float64, shift int32) {
	slide := s.deck.Slides[index]
	cx := l.width / 2

	p.text(p.window.TitleFont, slide.Title, p.theme.TextColor, cx, l.titleY+shift, 0, opacity)

	for i, card := range slide.Cards {
		ref := deckhand.ElementRef{Slide: index, Kind: deckhand.ElementCard, Index: i}
		o, off, _ := s.elementPose(ref, now)
		o *= opacity
		if o <= 0 {
			continue
		}

		x, width := l.column(i, len(slide.Cards))
		y := l.cardsY + shift + l.px(off)
		p.fill(sdl.Rect{X: x, Y: y, W: width, H: l.cardHeight}, withAlpha(p.theme.CardColor, o))

		pad := l.px(20)
		th := p.text(p.window.BodyFont, card.Heading, p.theme.TextColor, x+pad, y+pad, -1, o)
		p.text(p.window.BodyFont, card.Body, p.theme.MutedColor, x+pad, y+pad+th+l.px(8), -1, o)
	}

	for j, counter := range slide.Counters {
		ref := deckhand.ElementRef{Slide: index, Kind: deckhand.ElementCounter, Index: j}
		o, _, text := s.elementPose(ref, now)
		o *= opacity
		if o <= 0 {
			continue
		}

		x, width := l.column(j, len(slide.Counters))
		y := l.countersY + shift
		th := p.text(p.window.CounterFont, text, p.theme.AccentColor, x+width/2, y, 0, o)
		p.text(p.window.BodyFont, counter.Label, p.theme.MutedColor, x+width/2, y+th+l.px(6), 0, o)
	}
}

func (p *painter) drawChrome(s *Stage, l layout, now time.Duration) {
	bar := l.progress
	p.fill(bar, withAlpha(p.theme.IndicatorColor, 1))
	bar.W = int32(float64(l.width) * s.progress.at(now) / 100)
	p.fill(bar, p.theme.AccentColor)

	for i, r := range l.indicators {
		c := p.theme.IndicatorColor
		if s.indicators[i] {
			c = p.theme.AccentColor
		}
		p.fill(r, c)
	}

	for _, b := range []constants.Button{constants.ButtonPrev, constants.ButtonNext} {
		r := l.buttons[b]
		opacity := 1.0
		if !s.buttons[b] {
			opacity = 0.3
		}
		p.fill(r, withAlpha(p.theme.CardColor, opacity))

		if icon := p.icons[b]; icon != nil {
			_, _, iw, ih, err := icon.Query()
			if err == nil {
				tc := p.theme.TextColor
				icon.SetColorMod(tc.R, tc.G, tc.B)
				icon.SetAlphaMod(withAlpha(tc, opacity).A)
				p.window.Renderer.Copy(icon, nil, &sdl.Rect{X: r.X + (r.W-iw)/2, Y: r.Y + (r.H-ih)/2, W: iw, H: ih})
			}
		}
	}

	if s.page > 0 {
		label := s.loc.PageCounter(s.page, len(s.slides))
		p.text(p.window.BodyFont, label, p.theme.MutedColor, l.margin, l.pageY-l.px(12), -1, 1)
	}

	if o := s.hintOpacity(now); o > 0 {
		p.text(p.window.BodyFont, s.loc.SwipeHint(), p.theme.MutedColor, l.width/2, l.hintY, 0, o)
	}
}
