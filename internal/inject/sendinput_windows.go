//go:build windows

package inject

import (
	"fmt"
	"time"
	"unicode/utf16"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

const (
	inputKeyboard = 1

	keyeventfKeyUp   = 0x0002
	keyeventfUnicode = 0x0004
)

// keybdInput mirrors KEYBDINPUT.
type keybdInput struct {
	Vk        uint16
	Scan      uint16
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// input mirrors INPUT on 64-bit Windows. The trailing padding brings the
// keyboard member up to the size of the MOUSEINPUT union arm.
type input struct {
	Type uint32
	_    uint32
	Ki   keybdInput
	_    [8]byte
}

// sendInput delivers text through the SendInput API with the
// KEYEVENTF_UNICODE flag: each UTF-16 code unit is carried in the scan
// code field with a zero virtual key, bypassing layout translation.
// Surrogate pairs are sent as two consecutive unit events.
type sendInput struct{}

func newSendInput() Strategy { return sendInput{} }

func (sendInput) Name() string    { return "sendinput" }
func (sendInput) Available() bool { return procSendInput.Find() == nil }

func unitEvents(unit uint16) [2]input {
	var pair [2]input
	for i := range pair {
		pair[i].Type = inputKeyboard
		pair[i].Ki.Scan = unit
		pair[i].Ki.Flags = keyeventfUnicode
	}
	pair[1].Ki.Flags |= keyeventfKeyUp
	return pair
}

func (sendInput) Type(text string, interval time.Duration) error {
	first := true
	for _, r := range text {
		if !first && interval > 0 {
			time.Sleep(interval)
		}
		first = false

		for _, unit := range utf16.Encode([]rune{r}) {
			pair := unitEvents(unit)
			sent, _, callErr := procSendInput.Call(
				uintptr(len(pair)),
				uintptr(unsafe.Pointer(&pair[0])),
				unsafe.Sizeof(pair[0]),
			)
			if sent != uintptr(len(pair)) {
				return fmt.Errorf("sendinput: delivered %d of %d events for %q: %w",
					sent, len(pair), r, callErr)
			}
		}
	}
	return nil
}
