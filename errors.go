package img2ascii

import (
	"errors"
	"fmt"
)

// ErrFontNotFound is returned (wrapped in a ResourceError) when a font
// name cannot be found in any font directory.
var ErrFontNotFound = errors.New("font not found")

// ConfigError reports an invalid conversion parameter. It is raised before
// any file is touched.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// LoadError reports that the source image could not be opened or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load image %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ResourceError reports that the font used to render glyphs is unavailable.
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("could not load font %q: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
