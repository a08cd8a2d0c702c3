package img2ascii

import (
	"fmt"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// Channel selects how source pixels are reduced to one intensity value.
type Channel = imageutil.Channel

const (
	ChannelLightness = imageutil.Lightness
	ChannelRed       = imageutil.Red
	ChannelGreen     = imageutil.Green
	ChannelBlue      = imageutil.Blue
)

// Defaults for a new set of parameters.
const (
	DefaultTileWidth    = 10
	DefaultTileHeight   = 10
	DefaultFontSize     = 12
	DefaultCharacterSet = "#@*+.: "
)

// ParseChannel parses a channel name: L, R, G or B (any case), or the
// long forms lightness, red, green and blue.
func ParseChannel(name string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "l", "lightness", "luma", "gray", "grey":
		return ChannelLightness, nil
	case "r", "red":
		return ChannelRed, nil
	case "g", "green":
		return ChannelGreen, nil
	case "b", "blue":
		return ChannelBlue, nil
	}
	return ChannelLightness, &ConfigError{
		Field:  "grayscale channel",
		Reason: fmt.Sprintf("%q is not one of L, R, G, B", name),
	}
}

// Params holds everything a single conversion needs. Callers build a new
// value for every conversion; the converter never modifies it.
type Params struct {
	// ImagePath is the source image. Only Convert reads it.
	ImagePath string
	// TileWidth and TileHeight are the pixel size of one output character.
	TileWidth  int
	TileHeight int
	// FontSize is the glyph size in pixels.
	FontSize int
	Channel  Channel
	// CharacterSet lists candidate characters. Earlier characters win ties.
	CharacterSet string
	// FontPath is a font file, a bare font file name to search for in the
	// system font directories, or empty for the embedded Go Regular font.
	FontPath string
}

// DefaultParams returns parameters with the default tile size, font size,
// channel and character set.
func DefaultParams() Params {
	return Params{
		TileWidth:    DefaultTileWidth,
		TileHeight:   DefaultTileHeight,
		FontSize:     DefaultFontSize,
		Channel:      ChannelLightness,
		CharacterSet: DefaultCharacterSet,
	}
}

// Validate checks the numeric parameters, the channel and the character
// set, returning a *ConfigError for the first problem found.
func (p Params) Validate() error {
	if p.TileWidth <= 0 {
		return &ConfigError{Field: "tile width", Reason: fmt.Sprintf("%d is not a positive integer", p.TileWidth)}
	}
	if p.TileHeight <= 0 {
		return &ConfigError{Field: "tile height", Reason: fmt.Sprintf("%d is not a positive integer", p.TileHeight)}
	}
	if p.FontSize <= 0 {
		return &ConfigError{Field: "font size", Reason: fmt.Sprintf("%d is not a positive integer", p.FontSize)}
	}
	if !p.Channel.Valid() {
		return &ConfigError{Field: "grayscale channel", Reason: p.Channel.String() + " is not one of L, R, G, B"}
	}
	if p.CharacterSet == "" {
		return &ConfigError{Field: "character set", Reason: "must contain at least one character"}
	}
	// A line break in the set would break the one-row-per-line output.
	if strings.ContainsAny(p.CharacterSet, "\r\n") {
		return &ConfigError{Field: "character set", Reason: "must not contain line breaks"}
	}
	return nil
}

// characters splits the character set into candidates, in order.
func (p Params) characters() []rune {
	return []rune(p.CharacterSet)
}
