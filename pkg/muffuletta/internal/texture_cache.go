package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 24

// TextureCache is a small LRU cache for rendered text textures. Marker labels
// and control captions are re-rendered every frame; caching the textures keeps
// the strip cheap on low-powered kiosk hardware.
type TextureCache struct {
	textures map[string]*sdl.Texture
	sizes    map[string]sdl.Rect
	order    []string // tracks insertion order for LRU eviction
	maxSize  int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		sizes:    make(map[string]sdl.Rect),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Text returns a cached texture for the given text and color, rendering and
// caching it on a miss. The returned rect carries the texture dimensions.
// Returns nil when rendering fails.
func (c *TextureCache) Text(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) (*sdl.Texture, sdl.Rect) {
	key := fmt.Sprintf("%p|%02x%02x%02x%02x|%s", font, color.R, color.G, color.B, color.A, text)

	if texture, exists := c.textures[key]; exists {
		c.moveToEnd(key)
		return texture, c.sizes[key]
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, sdl.Rect{}
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, sdl.Rect{}
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.textures[key] = texture
	c.sizes[key] = sdl.Rect{W: surface.W, H: surface.H}
	c.order = append(c.order, key)
	return texture, c.sizes[key]
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

	if texture, exists := c.textures[oldest]; exists {
		texture.Destroy()
		delete(c.textures, oldest)
		delete(c.sizes, oldest)
	}
}

func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.sizes = make(map[string]sdl.Rect)
	c.order = c.order[:0]
}
