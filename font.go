package img2ascii

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// EmbeddedFontName names the font used when no font path is given.
const EmbeddedFontName = "Go Regular"

// Font is a parsed TrueType font used to render glyph bitmaps.
type Font struct {
	Name string
	ttf  *truetype.Font
}

// LoadFont loads the font used for glyph rendering.
//
// An empty path selects the embedded Go Regular font. A bare file name
// such as "arial.ttf" that does not exist in the working directory is
// searched for in DefaultFontDirs. Anything else is read as a path. Every
// failure is returned as a *ResourceError.
func LoadFont(path string) (*Font, error) {
	if path == "" {
		return parseFont(EmbeddedFontName, goregular.TTF)
	}

	resolved := path
	if !strings.ContainsAny(path, `/\`) {
		if _, err := os.Stat(path); err != nil {
			found, err := FindFont(path, DefaultFontDirs())
			if err != nil {
				return nil, &ResourceError{Resource: path, Err: err}
			}
			resolved = found
		}
	}

	fontBytes, err := os.ReadFile(resolved)
	if err != nil {
		return nil, &ResourceError{Resource: path, Err: err}
	}
	return parseFont(resolved, fontBytes)
}

func parseFont(name string, fontBytes []byte) (*Font, error) {
	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, &ResourceError{Resource: name, Err: err}
	}
	return &Font{Name: name, ttf: ttf}, nil
}

// DefaultFontDirs returns the font directories searched for bare font file
// names, per-user directories first.
func DefaultFontDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs = append(dirs, filepath.Join(windir, "Fonts"))
	case "darwin":
		dirs = append(dirs, "/Library/Fonts", "/System/Library/Fonts")
	default:
		dirs = append(dirs, "/usr/local/share/fonts", "/usr/share/fonts")
	}
	return dirs
}

// FindFont walks dirs in order and returns the first file whose base name
// matches name case-insensitively. Missing or unreadable directories are
// skipped.
func FindFont(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		var found string
		// An unreadable directory has no match.
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() && strings.EqualFold(d.Name(), name) {
				found = path
				return fs.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, nil
		}
	}
	return "", ErrFontNotFound
}
