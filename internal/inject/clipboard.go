package inject

import (
	"fmt"
	"runtime"
	"time"

	"github.com/atotto/clipboard"
)

// Clipboard abstracts the system clipboard for the paste strategy.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
	Available() bool
}

// systemClipboard is the production clipboard.
type systemClipboard struct{}

func (systemClipboard) Read() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) Write(s string) error  { return clipboard.WriteAll(s) }
func (systemClipboard) Available() bool       { return !clipboard.Unsupported }

// pasteChord returns the canonical paste hotkey for the platform.
func pasteChord() []string {
	if runtime.GOOS == "darwin" {
		return []string{"command", "v"}
	}
	return []string{"ctrl", "v"}
}

// clipboardStrategy types text by writing it to the clipboard and
// sending the paste hotkey. The previous clipboard contents are restored
// on a best-effort basis; an application that reads the clipboard during
// the paste window sees the injected text.
type clipboardStrategy struct {
	clip      Clipboard
	sequencer *Sequencer

	// settle is how long to wait after the paste chord before restoring
	// the clipboard, so the target application has read it.
	settle time.Duration
}

func newClipboardStrategy(clip Clipboard, seq *Sequencer) *clipboardStrategy {
	return &clipboardStrategy{
		clip:      clip,
		sequencer: seq,
		settle:    150 * time.Millisecond,
	}
}

func (c *clipboardStrategy) Name() string    { return "clipboard" }
func (c *clipboardStrategy) Available() bool { return c.clip.Available() }

func (c *clipboardStrategy) Type(text string, _ time.Duration) error {
	previous, readErr := c.clip.Read()

	if err := c.clip.Write(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	if readErr == nil {
		// Restore only what we could read; failure to restore is not a
		// delivery failure.
		defer func() {
			time.Sleep(c.settle)
			_ = c.clip.Write(previous)
		}()
	}

	if err := c.sequencer.Press(pasteChord(), 0); err != nil {
		return fmt.Errorf("paste chord: %w", err)
	}
	return nil
}
