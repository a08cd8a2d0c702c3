package img2ascii

import "github.com/wbrown/img2ascii/imageutil"

// glyphKey identifies one rendered glyph bitmap.
type glyphKey struct {
	text          string
	width, height int
	fontSize      int
}

// glyphCache hands out glyph bitmaps for the duration of one conversion.
// Rendering is pure, so a memoised bitmap is identical to a fresh render.
// With caching disabled every lookup renders again.
//
// Bitmaps returned by get are shared and must not be modified.
type glyphCache struct {
	renderer *Renderer
	enabled  bool
	glyphs   map[glyphKey]*imageutil.GrayImage

	renders int
	hits    int
}

func newGlyphCache(renderer *Renderer, enabled bool) *glyphCache {
	return &glyphCache{
		renderer: renderer,
		enabled:  enabled,
		glyphs:   make(map[glyphKey]*imageutil.GrayImage),
	}
}

// get returns the bitmap for text, rendering it on a miss.
func (c *glyphCache) get(text string, width, height, fontSize int) *imageutil.GrayImage {
	k := glyphKey{text: text, width: width, height: height, fontSize: fontSize}
	if c.enabled {
		if bitmap, exists := c.glyphs[k]; exists {
			c.hits++
			return bitmap
		}
	}

	c.renders++
	bitmap := c.renderer.Render(text, width, height, fontSize)
	if c.enabled {
		c.glyphs[k] = bitmap
	}
	return bitmap
}

// candidates returns the bitmaps for every character in chars, in order.
func (c *glyphCache) candidates(chars []rune, width, height, fontSize int) []*imageutil.GrayImage {
	bitmaps := make([]*imageutil.GrayImage, len(chars))
	for i, ch := range chars {
		bitmaps[i] = c.get(string(ch), width, height, fontSize)
	}
	return bitmaps
}
