package img2ascii

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/wbrown/img2ascii/imageutil"
)

// Converter turns images into character grids by matching every tile of
// the image against rendered glyphs. A Converter holds only options; all
// per-conversion state lives in the Params and the call, so one Converter
// may run conversions concurrently.
type Converter struct {
	logger        *slog.Logger
	cacheGlyphs   bool
	interpolation imageutil.Interpolation
}

// Option is a functional option for configuring a Converter.
type Option func(*Converter)

// NewConverter creates a Converter with the given options.
// Defaults: glyph caching on, bicubic resizing, logging discarded.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger:        slog.New(slog.DiscardHandler),
		cacheGlyphs:   true,
		interpolation: imageutil.InterpolationBicubic,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithLogger sets the logger used for conversion progress.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithGlyphCache turns per-conversion glyph memoisation on or off. The
// output is the same either way; only the number of renders changes.
func WithGlyphCache(enabled bool) Option {
	return func(c *Converter) {
		c.cacheGlyphs = enabled
	}
}

// WithInterpolation sets the filter used to resize the image to a whole
// number of tiles.
func WithInterpolation(interp imageutil.Interpolation) Option {
	return func(c *Converter) {
		c.interpolation = interp
	}
}

// Convert loads the image at p.ImagePath and converts it. Parameters are
// validated before the file is opened. Errors are *ConfigError,
// *LoadError, *ResourceError, or the context's error wrapped when ctx is
// cancelled; no partial grid is ever returned.
func (c *Converter) Convert(ctx context.Context, p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.ImagePath == "" {
		return nil, &ConfigError{Field: "image path", Reason: "must not be empty"}
	}

	img, err := imageutil.LoadImage(p.ImagePath)
	if err != nil {
		return nil, &LoadError{Path: p.ImagePath, Err: err}
	}

	return c.convert(ctx, img, p)
}

// ConvertImage converts an already decoded image. p.ImagePath is ignored.
func (c *Converter) ConvertImage(ctx context.Context, img image.Image, p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.convert(ctx, imageutil.NRGBAImageFromImage(img), p)
}

func (c *Converter) convert(ctx context.Context, src *imageutil.NRGBAImage, p Params) (*Grid, error) {
	start := time.Now()

	font, err := LoadFont(p.FontPath)
	if err != nil {
		return nil, err
	}

	chars := p.characters()
	c.logger.Debug("converting image",
		"width", src.Width(),
		"height", src.Height(),
		"tile", fmt.Sprintf("%dx%d", p.TileWidth, p.TileHeight),
		"font", font.Name,
		"font_size", p.FontSize,
		"channel", p.Channel.String(),
		"characters", len(chars),
	)

	gray := imageutil.ReduceChannel(src, p.Channel)
	fitted, cols, rows := imageutil.FitToTiles(gray, p.TileWidth, p.TileHeight, c.interpolation)
	if cols == 0 || rows == 0 {
		// Smaller than one tile in some direction: an empty grid.
		cols, rows = 0, 0
	}

	glyphs := newGlyphCache(NewRenderer(font), c.cacheGlyphs)
	grid := &Grid{Rows: make([][]rune, rows)}

	for y := 0; y < rows; y++ {
		row := make([]rune, cols)
		for x := 0; x < cols; x++ {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("conversion cancelled at row %d: %w", y, err)
			}

			tile := fitted.Tile(x*p.TileWidth, y*p.TileHeight, p.TileWidth, p.TileHeight)
			candidates := glyphs.candidates(chars, p.TileWidth, p.TileHeight, p.FontSize)
			row[x] = chars[bestMatch(tile, candidates)]
		}
		grid.Rows[y] = row
	}

	grid.Stats = Stats{
		Tiles:     rows * cols,
		Renders:   glyphs.renders,
		CacheHits: glyphs.hits,
		Elapsed:   time.Since(start),
	}
	c.logger.Info("conversion complete",
		"cols", cols,
		"rows", rows,
		"renders", grid.Stats.Renders,
		"cache_hits", grid.Stats.CacheHits,
		"elapsed", grid.Stats.Elapsed,
	)

	return grid, nil
}
