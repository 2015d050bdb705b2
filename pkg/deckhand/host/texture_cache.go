package host

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Counters re-render every frame while they count, so the cache needs room
// for a few screens of labels plus the churn of one count-up per counter.
const defaultMaxCacheSize = 96

type textTexture struct {
	texture *sdl.Texture
	w, h    int32
}

// TextureCache keeps rendered text textures, evicting the least recently
// used once full.
type TextureCache struct {
	textures map[string]textTexture
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]textTexture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func textKey(font *ttf.Font, text string, color sdl.Color) string {
	return fmt.Sprintf("%p|%02x%02x%02x|%s", font, color.R, color.G, color.B, text)
}

// Text returns a texture for text, rendering it on a miss. Alpha is not
// part of the key; callers apply opacity with SetAlphaMod.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (textTexture, bool) {
	if font == nil || text == "" {
		return textTexture{}, false
	}

	color.A = 255
	key := textKey(font, text, color)
	if t, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return t, true
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		logger().Error("Failed to render text", "text", text, "error", err)
		return textTexture{}, false
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		logger().Error("Failed to create text texture", "text", text, "error", err)
		return textTexture{}, false
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	t := textTexture{texture: texture, w: surface.W, h: surface.H}
	c.set(key, t)
	return t, true
}

func (c *TextureCache) set(key string, t textTexture) {
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = t
	c.order = append(c.order, key)
}

func (c *TextureCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if t, exists := c.textures[oldest]; exists {
		t.texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}

func (c *TextureCache) Destroy() {
	for _, t := range c.textures {
		t.texture.Destroy()
	}
	c.textures = make(map[string]textTexture)
	c.order = c.order[:0]
}
