package inject

import (
	"fmt"
	"time"

	"github.com/go-vgo/robotgo"

	"inputd/internal/keys"
)

// Tapper produces individual key events. Implementations translate
// canonical key tokens into OS events.
type Tapper interface {
	KeyDown(token string) error
	KeyUp(token string) error
	Tap(token string) error
}

// eventTapper is the robotgo-backed Tapper used in production.
type eventTapper struct{}

// NewTapper returns the platform key event source.
func NewTapper() Tapper {
	return eventTapper{}
}

// eventKeyNames maps canonical tokens to the names the event library
// expects where they differ.
var eventKeyNames = map[string]string{
	"command":     "cmd",
	"win":         "cmd",
	"option":      "alt",
	"numlock":     "num_lock",
	"scrolllock":  "scroll_lock",
	"printscreen": "printscreen",
}

func eventKey(token string) string {
	if name, ok := eventKeyNames[token]; ok {
		return name
	}
	return token
}

func (eventTapper) KeyDown(token string) error {
	if err := robotgo.KeyDown(eventKey(token)); err != nil {
		return fmt.Errorf("key down %q: %w", token, err)
	}
	return nil
}

func (eventTapper) KeyUp(token string) error {
	if err := robotgo.KeyUp(eventKey(token)); err != nil {
		return fmt.Errorf("key up %q: %w", token, err)
	}
	return nil
}

func (eventTapper) Tap(token string) error {
	if err := robotgo.KeyTap(eventKey(token)); err != nil {
		return fmt.Errorf("key tap %q: %w", token, err)
	}
	return nil
}

// tapTyper is the last-resort text strategy: type the string with plain
// key events. ASCII-safe and layout-dependent, but it needs no helper
// binaries and no clipboard.
type tapTyper struct{}

func newTapTyper() Strategy { return tapTyper{} }

func (tapTyper) Name() string    { return "keytap" }
func (tapTyper) Available() bool { return true }

func (tapTyper) Type(text string, interval time.Duration) error {
	if interval <= 0 {
		robotgo.TypeStr(text)
		return nil
	}
	// robotgo paces in whole milliseconds per character.
	robotgo.TypeStr(text, int(interval/time.Millisecond))
	return nil
}

// TapSequenceWith taps each token in order with interval between taps.
// Used for key sequences that are neither plain text nor a chord.
func TapSequenceWith(t Tapper, tokens []string, interval time.Duration) error {
	for i, token := range tokens {
		if i > 0 && interval > 0 {
			time.Sleep(interval)
		}
		if !keys.Known(token) && len([]rune(token)) != 1 {
			return &keys.InvalidKeyError{Name: token}
		}
		if err := t.Tap(token); err != nil {
			return err
		}
	}
	return nil
}
