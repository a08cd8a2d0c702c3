package viewer

import (
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard receives text copied from the viewer.
type Clipboard interface {
	WriteText(text string) error
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

// WriteText copies text to the system clipboard. It fails when no
// clipboard is available, for example on a headless machine.
func (c *SystemClipboard) WriteText(text string) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return c.initErr
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
