package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationBicubic uses Catmull-Rom, the bicubic filter most imaging
	// libraries resize with by default.
	InterpolationBicubic Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest

	// InterpolationApprox uses draw.ApproxBiLinear, a faster bilinear
	// approximation.
	InterpolationApprox
)

// ParseInterpolation maps a name to an Interpolation.
func ParseInterpolation(name string) (Interpolation, bool) {
	switch name {
	case "bicubic", "catmullrom", "":
		return InterpolationBicubic, true
	case "bilinear", "linear":
		return InterpolationLinear, true
	case "nearest":
		return InterpolationNearest, true
	case "approx":
		return InterpolationApprox, true
	}
	return InterpolationBicubic, false
}

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	case InterpolationApprox:
		return draw.ApproxBiLinear
	default:
		return draw.CatmullRom
	}
}

// ResizeGray resizes a grayscale image to the specified dimensions. When
// the size already matches, a copy is returned unchanged so that no
// resampling error is introduced.
func ResizeGray(img *GrayImage, width, height int, interp Interpolation) *GrayImage {
	if img.Width() == width && img.Height() == height {
		return img.Clone()
	}

	dst := NewGrayImage(width, height)
	if width == 0 || height == 0 {
		return dst
	}
	dstRect := image.Rect(0, 0, width, height)

	scalerFor(interp).Scale(dst.Gray, dstRect, img.Gray, img.Bounds(), draw.Src, nil)
	return dst
}

// FitToTiles resizes img down to the largest multiple of the tile size that
// fits in it and returns the resized image with the tile grid dimensions.
// Either dimension may be zero when img is smaller than one tile.
func FitToTiles(img *GrayImage, tileWidth, tileHeight int, interp Interpolation) (fitted *GrayImage, cols, rows int) {
	cols = img.Width() / tileWidth
	rows = img.Height() / tileHeight
	return ResizeGray(img, cols*tileWidth, rows*tileHeight, interp), cols, rows
}
