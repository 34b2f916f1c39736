package inject

import (
	"errors"
	"testing"
)

// fakeClipboard is an in-memory clipboard with scriptable failures.
type fakeClipboard struct {
	content   string
	readErr   error
	writes    []string
	supported bool
}

func (f *fakeClipboard) Read() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	return f.content, nil
}

func (f *fakeClipboard) Write(text string) error {
	f.content = text
	f.writes = append(f.writes, text)
	return nil
}

func (f *fakeClipboard) Available() bool { return f.supported }

func newTestClipboardStrategy(clip Clipboard) (*clipboardStrategy, *fakeTapper) {
	tapper := &fakeTapper{}
	s := newClipboardStrategy(clip, NewSequencer(tapper))
	s.settle = 0
	return s, tapper
}

func TestClipboardTypePastesAndRestores(t *testing.T) {
	clip := &fakeClipboard{content: "previous", supported: true}
	s, tapper := newTestClipboardStrategy(clip)

	if err := s.Type("injected", 0); err != nil {
		t.Fatalf("Type: %v", err)
	}

	// Injected text first, original contents written back after paste.
	if len(clip.writes) != 2 || clip.writes[0] != "injected" || clip.writes[1] != "previous" {
		t.Errorf("writes = %v", clip.writes)
	}
	if clip.content != "previous" {
		t.Errorf("clipboard not restored, content = %q", clip.content)
	}

	if len(tapper.events) == 0 {
		t.Fatal("no paste chord sent")
	}
	for _, e := range tapper.events {
		if e == "down:v" || e == "tap:v" {
			return
		}
	}
	t.Errorf("paste chord missing v key: %v", tapper.events)
}

func TestClipboardSkipsRestoreWhenReadFails(t *testing.T) {
	clip := &fakeClipboard{readErr: errors.New("empty"), supported: true}
	s, _ := newTestClipboardStrategy(clip)

	if err := s.Type("abc", 0); err != nil {
		t.Fatalf("Type: %v", err)
	}
	if len(clip.writes) != 1 || clip.writes[0] != "abc" {
		t.Errorf("writes = %v, want only the injected text", clip.writes)
	}
}

func TestClipboardUnavailable(t *testing.T) {
	s, _ := newTestClipboardStrategy(&fakeClipboard{supported: false})
	if s.Available() {
		t.Error("strategy should report unavailable")
	}
}

func TestPasteChordUsesPrimaryModifier(t *testing.T) {
	chord := pasteChord()
	if len(chord) != 2 || chord[1] != "v" {
		t.Fatalf("pasteChord() = %v", chord)
	}
	if chord[0] != "command" && chord[0] != "ctrl" {
		t.Errorf("modifier = %q", chord[0])
	}
}
