package opener

import (
	"fmt"
	"sync"
)

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(text string) error
}

// SystemClipboard is the host clipboard. It is initialised on first use.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

// NewSystemClipboard creates a SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// Available reports whether this build can reach a system clipboard.
func (c *SystemClipboard) Available() bool {
	return clipboardAvailable
}

// Copy implements Clipboard.
func (c *SystemClipboard) Copy(text string) error {
	c.once.Do(func() {
		c.initErr = initClipboard()
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.initErr)
	}
	return writeToClipboard(text)
}
