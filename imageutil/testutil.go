package imageutil

// CreateGradientImage creates a horizontal black to white gradient.
func CreateGradientImage(width, height int) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(255 * x / max(width-1, 1))
			img.SetRGB(x, y, RGB{R: v, G: v, B: v})
		}
	}
	return img
}

// CreateCheckerboardImage creates a black and white checkerboard pattern.
func CreateCheckerboardImage(width, height, squareSize int) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 == 0 {
				img.SetRGB(x, y, RGB{R: 255, G: 255, B: 255})
			} else {
				img.SetRGB(x, y, RGB{R: 0, G: 0, B: 0})
			}
		}
	}
	return img
}

// CreateSolidImage creates a solid color image.
func CreateSolidImage(width, height int, c RGB) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y, c)
		}
	}
	return img
}

// CreateColorBarsImage creates a color bars test pattern.
func CreateColorBarsImage(width, height int) *NRGBAImage {
	img := NewNRGBAImage(width, height)
	colors := []RGB{
		{255, 255, 255}, // White
		{255, 255, 0},   // Yellow
		{0, 255, 255},   // Cyan
		{0, 255, 0},     // Green
		{255, 0, 255},   // Magenta
		{255, 0, 0},     // Red
		{0, 0, 255},     // Blue
		{0, 0, 0},       // Black
	}

	barWidth := max(width/len(colors), 1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			colorIdx := min(x/barWidth, len(colors)-1)
			img.SetRGB(x, y, colors[colorIdx])
		}
	}
	return img
}

// MaxDiffGray returns the largest absolute pixel difference between two
// equally sized grayscale images, or 256 if the sizes differ.
func MaxDiffGray(img1, img2 *GrayImage) int {
	if img1.Width() != img2.Width() || img1.Height() != img2.Height() {
		return 256
	}

	maxDiff := 0
	for y := 0; y < img1.Height(); y++ {
		a, b := img1.Row(y), img2.Row(y)
		for x := range a {
			d := int(a[x]) - int(b[x])
			if d < 0 {
				d = -d
			}
			maxDiff = max(maxDiff, d)
		}
	}
	return maxDiff
}
