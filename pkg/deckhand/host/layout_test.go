package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

func TestComputeLayout(t *testing.T) {
	l := computeLayout(1024, 768, 3)

	assert.Equal(t, sdl.Rect{X: 920, Y: 664, W: 56, H: 56}, l.buttons[constants.ButtonNext])
	assert.Equal(t, sdl.Rect{X: 852, Y: 664, W: 56, H: 56}, l.buttons[constants.ButtonPrev])

	require.Len(t, l.indicators, 3)
	assert.Equal(t, int32(483), l.indicators[0].X)
	assert.Equal(t, int32(531), l.indicators[2].X)
	for i := range l.indicators {
		r := l.indicators[i]
		assert.True(t, contains(l.indicatorHits[i], r.X, r.Y))
	}
}

func TestLayoutColumns(t *testing.T) {
	l := computeLayout(1024, 768, 0)

	x, w := l.column(0, 1)
	assert.Equal(t, l.margin, x)
	assert.Equal(t, l.columnWidth, w)

	x0, w0 := l.column(0, 2)
	x1, w1 := l.column(1, 2)
	assert.Equal(t, w0, w1)
	assert.Equal(t, x0+w0+l.px(24), x1)
}

func TestContains(t *testing.T) {
	r := sdl.Rect{X: 10, Y: 10, W: 5, H: 5}
	assert.True(t, contains(r, 10, 10))
	assert.True(t, contains(r, 14, 14))
	assert.False(t, contains(r, 15, 10))
	assert.False(t, contains(r, 9, 12))
}

func TestRasterizeSVG(t *testing.T) {
	img, err := rasterizeSVG(chevronRightSVG, 24)
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())

	var painted bool
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			painted = true
			break
		}
	}
	assert.True(t, painted, "chevron should cover some pixels")

	_, err = rasterizeSVG(chevronLeftSVG, 0)
	assert.Error(t, err)
}

func TestTextureCacheEviction(t *testing.T) {
	c := NewTextureCacheWithSize(2)
	c.textures["a"] = textTexture{}
	c.order = append(c.order, "a")
	c.textures["b"] = textTexture{}
	c.order = append(c.order, "b")

	c.moveToEnd("a")
	assert.Equal(t, []string{"b", "a"}, c.order)
	assert.Equal(t, 2, c.Len())
}
