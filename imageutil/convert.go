package imageutil

import "fmt"

// Channel selects how a color pixel is reduced to one intensity value.
type Channel int

const (
	// Lightness is ITU-R 601-2 luma, the "L" mode of common imaging
	// libraries.
	Lightness Channel = iota
	// Red takes the raw red channel.
	Red
	// Green takes the raw green channel.
	Green
	// Blue takes the raw blue channel.
	Blue
)

// String returns the single-letter mode name of the channel.
func (c Channel) String() string {
	switch c {
	case Lightness:
		return "L"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Valid reports whether c is one of the defined channels.
func (c Channel) Valid() bool {
	return c >= Lightness && c <= Blue
}

// Luma returns the ITU-R 601-2 luma of an RGB triple:
// L = R*299/1000 + G*587/1000 + B*114/1000, computed in 16.16 fixed point
// with rounding so the result is bit-exact with the usual "L" conversion.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 0x8000) >> 16)
}

// ReduceChannel converts img to a single-channel image using the given
// channel. Alpha is ignored.
func ReduceChannel(img *NRGBAImage, ch Channel) *GrayImage {
	width, height := img.Width(), img.Height()
	gray := NewGrayImage(width, height)
	b := img.Bounds()

	for y := 0; y < height; y++ {
		row := gray.Row(y)
		for x := 0; x < width; x++ {
			c := img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			switch ch {
			case Red:
				row[x] = c.R
			case Green:
				row[x] = c.G
			case Blue:
				row[x] = c.B
			default:
				row[x] = Luma(c.R, c.G, c.B)
			}
		}
	}

	return gray
}

// ToGrayscale converts an image to lightness.
func ToGrayscale(img *NRGBAImage) *GrayImage {
	return ReduceChannel(img, Lightness)
}
