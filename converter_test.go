package img2ascii

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func testParams(charset string) Params {
	return Params{
		TileWidth:    10,
		TileHeight:   10,
		FontSize:     8,
		Channel:      ChannelLightness,
		CharacterSet: charset,
	}
}

// writePNG saves img into a temporary directory and returns its path.
func writePNG(t *testing.T, img *imageutil.NRGBAImage) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.png")
	if err := imageutil.SaveImage(img.NRGBA, path); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}
	return path
}

// TestConvertWhiteImage is the basic scenario: a blank white image matches
// the space glyph in every tile.
func TestConvertWhiteImage(t *testing.T) {
	img := imageutil.CreateSolidImage(20, 20, imageutil.RGB{R: 255, G: 255, B: 255})
	p := testParams(" #")
	p.ImagePath = writePNG(t, img)

	grid, err := NewConverter().Convert(context.Background(), p)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got := grid.String(); got != "  \n  \n" {
		t.Errorf("Expected a 2x2 grid of spaces, got %q", got)
	}
}

func TestConvertBlackImage(t *testing.T) {
	img := imageutil.CreateSolidImage(20, 10, imageutil.RGB{})
	grid, err := NewConverter().ConvertImage(context.Background(), img, testParams(" #"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got := grid.String(); got != "##\n" {
		t.Errorf("Expected \"##\\n\", got %q", got)
	}
}

// TestConvertSingleCharacter checks that a one-character set fills the
// whole grid with that character.
func TestConvertSingleCharacter(t *testing.T) {
	img := imageutil.CreateGradientImage(37, 23)
	p := testParams("@")
	p.TileWidth, p.TileHeight = 5, 7

	grid, err := NewConverter().ConvertImage(context.Background(), img, p)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if grid.Len() != 3 || grid.Cols() != 7 {
		t.Fatalf("Expected 7x3 grid, got %dx%d", grid.Cols(), grid.Len())
	}
	want := strings.Repeat(strings.Repeat("@", 7)+"\n", 3)
	if got := grid.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestConvertGridDimensions(t *testing.T) {
	tests := []struct {
		w, h, tw, th int
		cols, rows   int
	}{
		{45, 30, 10, 10, 4, 3},
		{40, 40, 10, 20, 4, 2},
		{64, 48, 8, 16, 8, 3},
		{11, 11, 3, 5, 3, 2},
	}
	for _, tt := range tests {
		img := imageutil.CreateCheckerboardImage(tt.w, tt.h, 4)
		p := testParams(DefaultCharacterSet)
		p.TileWidth, p.TileHeight = tt.tw, tt.th

		grid, err := NewConverter().ConvertImage(context.Background(), img, p)
		if err != nil {
			t.Fatalf("%dx%d: Convert failed: %v", tt.w, tt.h, err)
		}
		if grid.Len() != tt.rows {
			t.Errorf("%dx%d tile %dx%d: expected %d rows, got %d", tt.w, tt.h, tt.tw, tt.th, tt.rows, grid.Len())
		}
		lines := strings.Split(strings.TrimSuffix(grid.String(), "\n"), "\n")
		for i, line := range lines {
			if n := len([]rune(line)); n != tt.cols {
				t.Errorf("%dx%d: line %d has %d characters, expected %d", tt.w, tt.h, i, n, tt.cols)
			}
		}
		if grid.Stats.Tiles != tt.rows*tt.cols {
			t.Errorf("Expected %d tiles, got %d", tt.rows*tt.cols, grid.Stats.Tiles)
		}
	}
}

// TestConvertSmallerThanTile expects an empty grid, not an error, when the
// image is smaller than a tile in either direction.
func TestConvertSmallerThanTile(t *testing.T) {
	for _, size := range [][2]int{{5, 50}, {50, 5}, {3, 3}} {
		img := imageutil.CreateSolidImage(size[0], size[1], imageutil.RGB{R: 9, G: 9, B: 9})
		grid, err := NewConverter().ConvertImage(context.Background(), img, testParams(" #"))
		if err != nil {
			t.Fatalf("%v: expected no error, got %v", size, err)
		}
		if grid.Len() != 0 || grid.String() != "" {
			t.Errorf("%v: expected empty grid, got %q", size, grid.String())
		}
	}
}

// TestConvertConfigErrorBeforeLoad uses a path that does not exist, so a
// LoadError would show that the file was touched before validation.
func TestConvertConfigErrorBeforeLoad(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.png")

	tests := []struct {
		name  string
		field string
		edit  func(*Params)
	}{
		{"zero width", "tile width", func(p *Params) { p.TileWidth = 0 }},
		{"negative width", "tile width", func(p *Params) { p.TileWidth = -4 }},
		{"zero height", "tile height", func(p *Params) { p.TileHeight = 0 }},
		{"negative height", "tile height", func(p *Params) { p.TileHeight = -1 }},
		{"zero font size", "font size", func(p *Params) { p.FontSize = 0 }},
		{"empty charset", "character set", func(p *Params) { p.CharacterSet = "" }},
		{"line break in charset", "character set", func(p *Params) { p.CharacterSet = "#\n" }},
		{"bad channel", "grayscale channel", func(p *Params) { p.Channel = Channel(7) }},
		{"empty path", "image path", func(p *Params) { p.ImagePath = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(" #")
			p.ImagePath = missing
			tt.edit(&p)

			_, err := NewConverter().Convert(context.Background(), p)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Expected *ConfigError, got %T: %v", err, err)
			}
			if ce.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, ce.Field)
			}
		})
	}
}

func TestConvertLoadError(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.png")
	if err := os.WriteFile(corrupt, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{filepath.Join(dir, "missing.png"), corrupt} {
		p := testParams(" #")
		p.ImagePath = path
		grid, err := NewConverter().Convert(context.Background(), p)
		var le *LoadError
		if !errors.As(err, &le) {
			t.Fatalf("%s: expected *LoadError, got %T: %v", path, err, err)
		}
		if le.Path != path {
			t.Errorf("Expected path %q in error, got %q", path, le.Path)
		}
		if grid != nil {
			t.Error("Expected no grid on failure")
		}
	}
}

func TestConvertResourceError(t *testing.T) {
	img := imageutil.CreateSolidImage(20, 20, imageutil.RGB{R: 255, G: 255, B: 255})
	p := testParams(" #")
	p.FontPath = filepath.Join(t.TempDir(), "nope", "arial.ttf")

	grid, err := NewConverter().ConvertImage(context.Background(), img, p)
	var re *ResourceError
	if !errors.As(err, &re) {
		t.Fatalf("Expected *ResourceError, got %T: %v", err, err)
	}
	if grid != nil {
		t.Error("Expected no grid on failure")
	}
}

// TestConvertChannels uses a pure red image: bright in the red channel,
// black in the blue channel.
func TestConvertChannels(t *testing.T) {
	img := imageutil.CreateSolidImage(20, 10, imageutil.RGB{R: 255})

	tests := []struct {
		channel Channel
		want    string
	}{
		{ChannelRed, "  \n"},
		{ChannelGreen, "##\n"},
		{ChannelBlue, "##\n"},
	}
	for _, tt := range tests {
		p := testParams(" #")
		p.Channel = tt.channel
		grid, err := NewConverter().ConvertImage(context.Background(), img, p)
		if err != nil {
			t.Fatalf("%v: Convert failed: %v", tt.channel, err)
		}
		if got := grid.String(); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.channel, tt.want, got)
		}
	}
}

// TestConvertGlyphCacheIsTransparent converts the same image with and
// without glyph memoisation.
func TestConvertGlyphCacheIsTransparent(t *testing.T) {
	img := imageutil.CreateCheckerboardImage(60, 40, 7)
	p := testParams(DefaultCharacterSet)

	cached, err := NewConverter(WithGlyphCache(true)).ConvertImage(context.Background(), img, p)
	if err != nil {
		t.Fatal(err)
	}
	uncached, err := NewConverter(WithGlyphCache(false)).ConvertImage(context.Background(), img, p)
	if err != nil {
		t.Fatal(err)
	}

	if cached.String() != uncached.String() {
		t.Errorf("Cached and uncached output differ:\n%s\n---\n%s", cached, uncached)
	}

	chars := len([]rune(DefaultCharacterSet))
	tiles := cached.Stats.Tiles
	if cached.Stats.Renders != chars {
		t.Errorf("Expected %d renders with cache, got %d", chars, cached.Stats.Renders)
	}
	if cached.Stats.CacheHits != tiles*chars-chars {
		t.Errorf("Expected %d cache hits, got %d", tiles*chars-chars, cached.Stats.CacheHits)
	}
	if uncached.Stats.Renders != tiles*chars || uncached.Stats.CacheHits != 0 {
		t.Errorf("Expected %d renders and no hits without cache, got %d and %d",
			tiles*chars, uncached.Stats.Renders, uncached.Stats.CacheHits)
	}
}

func TestConvertPathMatchesConvertImage(t *testing.T) {
	img := imageutil.CreateColorBarsImage(80, 30)
	p := testParams(DefaultCharacterSet)
	p.ImagePath = writePNG(t, img)

	c := NewConverter()
	fromPath, err := c.Convert(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	fromImage, err := c.ConvertImage(context.Background(), img, p)
	if err != nil {
		t.Fatal(err)
	}
	if fromPath.String() != fromImage.String() {
		t.Errorf("Expected identical output, got %q and %q", fromPath, fromImage)
	}
}

func TestConvertCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img := imageutil.CreateSolidImage(20, 20, imageutil.RGB{})
	grid, err := NewConverter().ConvertImage(ctx, img, testParams(" #"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if grid != nil {
		t.Error("Expected no partial grid")
	}
}

func TestParseChannel(t *testing.T) {
	tests := []struct {
		in   string
		want Channel
	}{
		{"L", ChannelLightness},
		{"l", ChannelLightness},
		{"lightness", ChannelLightness},
		{"R", ChannelRed},
		{"green", ChannelGreen},
		{" B ", ChannelBlue},
	}
	for _, tt := range tests {
		got, err := ParseChannel(tt.in)
		if err != nil {
			t.Errorf("ParseChannel(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseChannel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	var ce *ConfigError
	if _, err := ParseChannel("CMYK"); !errors.As(err, &ce) {
		t.Errorf("Expected *ConfigError for unknown channel, got %v", err)
	}
}

func TestDefaultParamsAreValid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Errorf("Default parameters should validate: %v", err)
	}
}
