//go:build darwin && cgo

package inject

/*
#cgo LDFLAGS: -framework ApplicationServices

#include <ApplicationServices/ApplicationServices.h>

// Posts a key-down/key-up pair carrying a Unicode payload. The virtual
// keycode is zero; the receiving application reads the attached string
// instead of translating the keycode through the layout.
static int postUnicode(const UniChar *units, long count) {
    CGEventRef down = CGEventCreateKeyboardEvent(NULL, 0, true);
    CGEventRef up = CGEventCreateKeyboardEvent(NULL, 0, false);
    if (down == NULL || up == NULL) {
        if (down != NULL) CFRelease(down);
        if (up != NULL) CFRelease(up);
        return -1;
    }
    CGEventKeyboardSetUnicodeString(down, count, units);
    CGEventKeyboardSetUnicodeString(up, count, units);
    CGEventPost(kCGHIDEventTap, down);
    CGEventPost(kCGHIDEventTap, up);
    CFRelease(down);
    CFRelease(up);
    return 0;
}
*/
import "C"

import (
	"fmt"
	"time"
	"unicode/utf16"
	"unsafe"
)

// nativeUnicode delivers text as CGEvents with attached Unicode strings.
// Layout-independent: any character the target can render arrives
// intact, including characters with no key on the active layout.
type nativeUnicode struct{}

func newNativeUnicode() Strategy { return nativeUnicode{} }

func (nativeUnicode) Name() string    { return "cgevent" }
func (nativeUnicode) Available() bool { return true }

func (nativeUnicode) Type(text string, interval time.Duration) error {
	first := true
	for _, r := range text {
		if !first && interval > 0 {
			time.Sleep(interval)
		}
		first = false

		units := utf16.Encode([]rune{r})
		rc := C.postUnicode((*C.UniChar)(unsafe.Pointer(&units[0])), C.long(len(units)))
		if rc != 0 {
			return fmt.Errorf("post unicode event for %q: event creation failed", r)
		}
	}
	return nil
}
