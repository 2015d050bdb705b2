package host

import (
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/deckhand/pkg/deckhand/constants"
)

// Chevron icons for the navigation buttons, drawn white so SetColorMod can
// tint them.
const (
	chevronLeftSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#ffffff" d="M15.41 7.41 L14 6 L8 12 L14 18 L15.41 16.59 L10.83 12 Z"/>
</svg>`
	chevronRightSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="#ffffff" d="M10 6 L8.59 7.41 L13.17 12 L8.59 16.59 L10 18 L16 12 Z"/>
</svg>`
)

func buttonIconSVG(b constants.Button) string {
	if b == constants.ButtonPrev {
		return chevronLeftSVG
	}
	return chevronRightSVG
}

// rasterizeSVG draws an SVG document into a size x size RGBA image.
func rasterizeSVG(svg string, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// iconTexture uploads a rasterized SVG as a blendable texture.
func iconTexture(renderer *sdl.Renderer, svg string, size int) (*sdl.Texture, error) {
	rgba, err := rasterizeSVG(svg, size)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(size), int32(size), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon texture: %w", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}
