package img2ascii

import (
	"fmt"
	"os"
)

// Save writes text to path exactly as given, replacing any existing file.
// No line ending translation is done.
func Save(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to save text to %s: %w", path, err)
	}
	return nil
}
