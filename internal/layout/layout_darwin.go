//go:build darwin

package layout

import (
	"os"
	"path/filepath"
)

// detectLayout reads the HIToolbox preferences of the current user. The
// plist is the persisted source of truth for the input source menu; no
// process needs to be spawned and no special permission is required.
func detectLayout() (Info, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Info{}, ErrNotAvailable
	}

	path := filepath.Join(home, "Library", "Preferences", "com.apple.HIToolbox.plist")
	data, err := os.ReadFile(path)
	if err != nil {
		return Info{}, ErrNotAvailable
	}
	return parseSelectedInputSources(data)
}
