// Package config resolves conversion defaults from .env files and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/wbrown/img2ascii"
)

// Environment variables read by Load.
const (
	EnvTileWidth  = "ASCIIART_TILE_WIDTH"
	EnvTileHeight = "ASCIIART_TILE_HEIGHT"
	EnvFontSize   = "ASCIIART_FONT_SIZE"
	EnvChannel    = "ASCIIART_CHANNEL"
	EnvCharset    = "ASCIIART_CHARSET"
	EnvFont       = "ASCIIART_FONT"
	EnvLogLevel   = "ASCIIART_LOG_LEVEL"
)

// DefaultEnvFiles are read by the command line tool when no -env flag is
// given. Earlier files win.
var DefaultEnvFiles = []string{".env.local", ".env"}

// Config holds the defaults for a conversion.
type Config struct {
	Params   img2ascii.Params
	LogLevel slog.Level
}

// Load merges the given .env files with the process environment and
// parses the result. The process environment wins over files, and earlier
// files win over later ones. Missing files are skipped; malformed files and
// malformed values are errors naming the file or variable.
func Load(files ...string) (*Config, error) {
	vars := make(map[string]string)
	for i := len(files) - 1; i >= 0; i-- {
		fileVars, err := godotenv.Read(files[i])
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", files[i], err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, k := range []string{EnvTileWidth, EnvTileHeight, EnvFontSize, EnvChannel, EnvCharset, EnvFont, EnvLogLevel} {
		if v, ok := os.LookupEnv(k); ok {
			vars[k] = v
		}
	}

	return parse(vars)
}

func parse(vars map[string]string) (*Config, error) {
	cfg := &Config{
		Params:   img2ascii.DefaultParams(),
		LogLevel: slog.LevelInfo,
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvTileWidth, &cfg.Params.TileWidth},
		{EnvTileHeight, &cfg.Params.TileHeight},
		{EnvFontSize, &cfg.Params.FontSize},
	}
	for _, i := range ints {
		v, ok := vars[i.key]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("%s: %q is not an integer", i.key, v)
		}
		*i.dst = n
	}

	if v, ok := vars[EnvChannel]; ok && strings.TrimSpace(v) != "" {
		ch, err := img2ascii.ParseChannel(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvChannel, err)
		}
		cfg.Params.Channel = ch
	}

	// The character set is taken verbatim; spaces are significant.
	if v, ok := vars[EnvCharset]; ok && v != "" {
		cfg.Params.CharacterSet = v
	}
	if v, ok := vars[EnvFont]; ok {
		cfg.Params.FontPath = strings.TrimSpace(v)
	}

	if v, ok := vars[EnvLogLevel]; ok && strings.TrimSpace(v) != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	return cfg, nil
}
