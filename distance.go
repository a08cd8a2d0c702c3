package img2ascii

import (
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// Distance returns the Euclidean distance between two equally sized
// bitmaps, treating each as a flat vector of intensities. Bitmaps of
// different sizes are infinitely far apart.
func Distance(a, b *imageutil.GrayImage) float64 {
	sq, ok := squaredDistance(a, b)
	if !ok {
		return math.Inf(1)
	}
	return math.Sqrt(float64(sq))
}

// squaredDistance is the integer sum of squared pixel differences. Ranking
// by it is equivalent to ranking by Distance and keeps ties exact.
func squaredDistance(a, b *imageutil.GrayImage) (int64, bool) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return 0, false
	}

	var sum int64
	for y := 0; y < a.Height(); y++ {
		ra, rb := a.Row(y), b.Row(y)
		for x := range ra {
			d := int64(ra[x]) - int64(rb[x])
			sum += d * d
		}
	}
	return sum, true
}

// bestMatch returns the index of the candidate closest to tile. When
// several candidates share the minimum distance the lowest index wins.
// It returns -1 if there are no candidates of the tile's size.
func bestMatch(tile *imageutil.GrayImage, candidates []*imageutil.GrayImage) int {
	best := -1
	var bestDist int64
	for i, c := range candidates {
		d, ok := squaredDistance(tile, c)
		if !ok {
			continue
		}
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
