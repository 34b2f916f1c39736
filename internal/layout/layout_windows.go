//go:build windows

package layout

import (
	"fmt"

	"golang.org/x/sys/windows"
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procGetKeyboardLayout = user32.NewProc("GetKeyboardLayout")
)

// detectLayout queries the keyboard layout of the foreground thread.
// The low word of the HKL is the language identifier; the full handle
// is included because layout variants (Dvorak and friends) live in the
// high word.
func detectLayout() (Info, error) {
	if err := procGetKeyboardLayout.Find(); err != nil {
		return Info{}, ErrNotAvailable
	}

	hkl, _, _ := procGetKeyboardLayout.Call(0)
	if hkl == 0 {
		return Info{}, ErrNotAvailable
	}

	langid := uint16(hkl & 0xFFFF)
	locale := localeForLangID(langid)
	return Info{
		Platform: "windows",
		Fields: []Field{
			{"layout", layoutCodeForLocale(locale)},
			{"locale", locale},
			{"langid", fmt.Sprintf("0x%04X", langid)},
			{"hkl", fmt.Sprintf("0x%08X", uint32(hkl))},
		},
	}, nil
}
