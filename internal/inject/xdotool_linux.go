//go:build linux

package inject

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// xdotool types text by shelling out to the xdotool binary. The
// --clearmodifiers flag releases any held modifiers first so stray
// Shift or Ctrl state cannot corrupt the text.
type xdotool struct{}

func newXdotool() Strategy { return xdotool{} }

func (xdotool) Name() string { return "xdotool" }

func (xdotool) Available() bool {
	if os.Getenv("DISPLAY") == "" {
		return false
	}
	_, err := exec.LookPath("xdotool")
	return err == nil
}

func (xdotool) Type(text string, interval time.Duration) error {
	delay := interval / time.Millisecond
	args := []string{
		"type",
		"--clearmodifiers",
		"--delay", strconv.FormatInt(int64(delay), 10),
		"--", text,
	}

	out, err := exec.Command("xdotool", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("xdotool type: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
