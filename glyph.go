package img2ascii

import (
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/wbrown/img2ascii/imageutil"
)

// glyphDPI makes one point equal one pixel, so font sizes are in pixels.
const glyphDPI = 72

// Renderer draws characters into glyph bitmaps used as comparison
// templates.
//
// Text is measured as follows: the width is the sum of the glyph advances
// and the height is the face ascent plus descent, both rounded to whole
// pixels. The text is centred in the tile using those extents, with the
// baseline placed one ascent below the top of the text box. Offsets are
// floored and may be negative, in which case the glyph is clipped.
type Renderer struct {
	font *Font
}

// NewRenderer returns a renderer drawing with f.
func NewRenderer(f *Font) *Renderer {
	return &Renderer{font: f}
}

// Font returns the font the renderer draws with.
func (r *Renderer) Font() *Font {
	return r.font
}

// Render draws text in black (0) on a white (255) width x height canvas at
// fontSize pixels. text is normally one character, but longer strings are
// drawn whole and centred the same way. The result depends only on the
// arguments.
func (r *Renderer) Render(text string, width, height, fontSize int) *imageutil.GrayImage {
	canvas := imageutil.NewFilledGrayImage(width, height, 255)

	face := truetype.NewFace(r.font.ttf, &truetype.Options{
		Size:    float64(fontSize),
		DPI:     glyphDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	textWidth, textHeight, ascent := measure(face, text)
	x := floorDiv(width-textWidth, 2)
	y := floorDiv(height-textHeight, 2)

	ctx := freetype.NewContext()
	ctx.SetDPI(glyphDPI)
	ctx.SetFont(r.font.ttf)
	ctx.SetFontSize(float64(fontSize))
	ctx.SetClip(canvas.Bounds())
	ctx.SetDst(canvas.Gray)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	ctx.DrawString(text, freetype.Pt(x, y+ascent))

	return canvas
}

// Measure returns the pixel width and height of text at fontSize, using
// the same convention as Render.
func (r *Renderer) Measure(text string, fontSize int) (width, height int) {
	face := truetype.NewFace(r.font.ttf, &truetype.Options{
		Size:    float64(fontSize),
		DPI:     glyphDPI,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	width, height, _ = measure(face, text)
	return width, height
}

func measure(face font.Face, text string) (width, height, ascent int) {
	metrics := face.Metrics()
	ascent = metrics.Ascent.Round()
	height = ascent + metrics.Descent.Round()
	width = font.MeasureString(face, text).Round()
	return width, height, ascent
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
