//go:build linux

package inject

// platformStrategies returns the Linux chain. xdotool handles X11
// sessions; Wayland sessions fall through to the clipboard path.
func platformStrategies() []Strategy {
	return []Strategy{
		newXdotool(),
	}
}
