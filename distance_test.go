package img2ascii

import (
	"math"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func grayFrom(w, h int, pix ...uint8) *imageutil.GrayImage {
	img := imageutil.NewGrayImage(w, h)
	copy(img.Pix, pix)
	return img
}

func TestDistance(t *testing.T) {
	a := grayFrom(2, 1, 0, 0)
	b := grayFrom(2, 1, 3, 4)
	if d := Distance(a, b); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	if d := Distance(a, a); d != 0 {
		t.Errorf("Expected distance 0 to itself, got %f", d)
	}

	white := imageutil.NewFilledGrayImage(10, 10, 255)
	black := imageutil.NewGrayImage(10, 10)
	if d := Distance(white, black); math.Abs(d-2550) > 1e-9 {
		t.Errorf("Expected distance 2550, got %f", d)
	}
}

func TestDistanceSizeMismatch(t *testing.T) {
	if d := Distance(imageutil.NewGrayImage(2, 2), imageutil.NewGrayImage(2, 3)); !math.IsInf(d, 1) {
		t.Errorf("Expected +Inf for mismatched sizes, got %f", d)
	}
}

func TestDistanceOnTiles(t *testing.T) {
	img := imageutil.NewGrayImage(4, 2)
	img.SetGrayValue(3, 1, 10)
	tile := img.Tile(2, 0, 2, 2)
	if d := Distance(tile, imageutil.NewGrayImage(2, 2)); d != 10 {
		t.Errorf("Expected distance 10 on sub-image, got %f", d)
	}
}

// TestBestMatchFirstMinimumWins checks that ties go to the earliest
// candidate.
func TestBestMatchFirstMinimumWins(t *testing.T) {
	tile := grayFrom(1, 1, 100)
	far := grayFrom(1, 1, 0)
	near := grayFrom(1, 1, 110)
	alsoNear := grayFrom(1, 1, 90)

	tests := []struct {
		name       string
		candidates []*imageutil.GrayImage
		want       int
	}{
		{"single", []*imageutil.GrayImage{far}, 0},
		{"identical", []*imageutil.GrayImage{near, near, near}, 0},
		{"later minimum", []*imageutil.GrayImage{far, near}, 1},
		{"equal distance either side", []*imageutil.GrayImage{far, alsoNear, near}, 1},
		{"none", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestMatch(tile, tt.candidates); got != tt.want {
				t.Errorf("Expected index %d, got %d", tt.want, got)
			}
		})
	}
}

// TestBestMatchRenderedTie compares a blank tile against two separate
// renders of the same character; the earlier one must win every time.
func TestBestMatchRenderedTie(t *testing.T) {
	r := embeddedRenderer(t)
	hash := r.Render("#", 10, 10, 8)
	spaceA := r.Render(" ", 10, 10, 8)
	spaceB := r.Render(" ", 10, 10, 8)
	tile := imageutil.NewFilledGrayImage(10, 10, 255)

	for i := 0; i < 3; i++ {
		if got := bestMatch(tile, []*imageutil.GrayImage{hash, spaceA, spaceB}); got != 1 {
			t.Fatalf("Expected the first space (index 1), got %d", got)
		}
	}
}
