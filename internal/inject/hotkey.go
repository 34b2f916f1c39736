package inject

import (
	"fmt"
	"time"
)

// minChordPacing is the floor on the pause between chord key events.
// Modifier state needs time to register with the foreground application
// before the next event lands.
const minChordPacing = 20 * time.Millisecond

// Sequencer presses hotkey combinations. A single token is a plain tap;
// two or more tokens are held as a chord: pressed in order, released in
// reverse order. Release is guaranteed even when a press fails, so a
// failed chord never leaves a modifier stuck down.
type Sequencer struct {
	tapper Tapper

	// Floor overrides minChordPacing when larger.
	Floor time.Duration
}

// NewSequencer creates a Sequencer. A nil tapper selects the platform
// event source.
func NewSequencer(t Tapper) *Sequencer {
	if t == nil {
		t = NewTapper()
	}
	return &Sequencer{tapper: t}
}

// pacing resolves the delay between chord events. An explicit caller
// interval is honored as given; only an unset interval falls back to
// the configured floor or the built-in minimum, whichever is larger.
func (s *Sequencer) pacing(interval time.Duration) time.Duration {
	if interval > 0 {
		return interval
	}
	if s.Floor > minChordPacing {
		return s.Floor
	}
	return minChordPacing
}

// Press delivers the token sequence as a hotkey. Tokens must already be
// canonical.
func (s *Sequencer) Press(tokens []string, interval time.Duration) (err error) {
	switch len(tokens) {
	case 0:
		return fmt.Errorf("inject: empty hotkey sequence")
	case 1:
		return s.tapper.Tap(tokens[0])
	}

	pacing := s.pacing(interval)
	pressed := make([]string, 0, len(tokens))

	defer func() {
		// Release in reverse order no matter how far the press got,
		// with the same pacing as the press phase.
		for i := len(pressed) - 1; i >= 0; i-- {
			if upErr := s.tapper.KeyUp(pressed[i]); upErr != nil && err == nil {
				err = fmt.Errorf("release %q: %w", pressed[i], upErr)
			}
			if i > 0 {
				time.Sleep(pacing)
			}
		}
	}()

	for i, token := range tokens {
		if i > 0 {
			time.Sleep(pacing)
		}
		if downErr := s.tapper.KeyDown(token); downErr != nil {
			return fmt.Errorf("press %q: %w", token, downErr)
		}
		pressed = append(pressed, token)
	}
	time.Sleep(pacing)
	return nil
}
