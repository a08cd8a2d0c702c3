// Package imageutil provides the pure Go image handling used by the
// converter: decoding, single-channel reduction and resizing.
package imageutil

import (
	"image"
	"image/color"
)

// RGB represents a color in the RGB color space with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// ToColor converts RGB to an opaque color.NRGBA.
func (rgb RGB) ToColor() color.NRGBA {
	return color.NRGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// NRGBAImage wraps image.NRGBA. Channels are kept non-premultiplied so
// that transparent pixels still report their stored color values.
type NRGBAImage struct {
	*image.NRGBA
}

// NewNRGBAImage creates a new NRGBAImage with the specified dimensions.
func NewNRGBAImage(width, height int) *NRGBAImage {
	return &NRGBAImage{
		NRGBA: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// NRGBAImageFromImage converts any image.Image to an NRGBAImage whose
// bounds start at the origin.
func NRGBAImageFromImage(img image.Image) *NRGBAImage {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return &NRGBAImage{NRGBA: n}
	}

	bounds := img.Bounds()
	nrgba := NewNRGBAImage(bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			nrgba.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, c)
		}
	}
	return nrgba
}

// Width returns the image width.
func (img *NRGBAImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *NRGBAImage) Height() int {
	return img.Bounds().Dy()
}

// GetRGB returns the RGB value at (x, y), ignoring alpha.
func (img *NRGBAImage) GetRGB(x, y int) RGB {
	c := img.NRGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// SetRGB sets an opaque RGB value at (x, y).
func (img *NRGBAImage) SetRGB(x, y int, c RGB) {
	img.SetNRGBA(x, y, c.ToColor())
}

// GrayImage wraps image.Gray for single-channel intensity images. Source
// images after channel reduction, glyph bitmaps and tiles are all
// GrayImages.
type GrayImage struct {
	*image.Gray
}

// NewGrayImage creates a new GrayImage with the specified dimensions.
func NewGrayImage(width, height int) *GrayImage {
	return &GrayImage{
		Gray: image.NewGray(image.Rect(0, 0, width, height)),
	}
}

// NewFilledGrayImage creates a GrayImage with every pixel set to v.
func NewFilledGrayImage(width, height int, v uint8) *GrayImage {
	img := NewGrayImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// Width returns the image width.
func (img *GrayImage) Width() int {
	return img.Bounds().Dx()
}

// Height returns the image height.
func (img *GrayImage) Height() int {
	return img.Bounds().Dy()
}

// GetGray returns the intensity at (x, y) relative to the image origin.
func (img *GrayImage) GetGray(x, y int) uint8 {
	b := img.Bounds()
	return img.GrayAt(b.Min.X+x, b.Min.Y+y).Y
}

// SetGrayValue sets the intensity at (x, y) relative to the image origin.
func (img *GrayImage) SetGrayValue(x, y int, v uint8) {
	b := img.Bounds()
	img.Gray.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: v})
}

// Row returns the pixels of row y (relative to the image origin) without
// copying.
func (img *GrayImage) Row(y int) []uint8 {
	start := img.PixOffset(img.Bounds().Min.X, img.Bounds().Min.Y+y)
	return img.Pix[start : start+img.Width()]
}

// Tile returns the w x h region whose top-left corner is (x, y). The tile
// shares pixels with img.
func (img *GrayImage) Tile(x, y, w, h int) *GrayImage {
	b := img.Bounds()
	r := image.Rect(b.Min.X+x, b.Min.Y+y, b.Min.X+x+w, b.Min.Y+y+h)
	return &GrayImage{Gray: img.SubImage(r).(*image.Gray)}
}

// Clone creates a deep copy of the image with bounds at the origin.
func (img *GrayImage) Clone() *GrayImage {
	clone := NewGrayImage(img.Width(), img.Height())
	for y := 0; y < img.Height(); y++ {
		copy(clone.Row(y), img.Row(y))
	}
	return clone
}

// Equal reports whether both images have the same size and pixels.
func (img *GrayImage) Equal(other *GrayImage) bool {
	if img.Width() != other.Width() || img.Height() != other.Height() {
		return false
	}
	for y := 0; y < img.Height(); y++ {
		a, b := img.Row(y), other.Row(y)
		for x := range a {
			if a[x] != b[x] {
				return false
			}
		}
	}
	return true
}
