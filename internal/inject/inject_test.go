package inject

import (
	"errors"
	"testing"
	"time"
)

// fakeStrategy scripts one chain member.
type fakeStrategy struct {
	name      string
	available bool
	err       error
	calls     int
	lastText  string
}

func (f *fakeStrategy) Name() string    { return f.name }
func (f *fakeStrategy) Available() bool { return f.available }

func (f *fakeStrategy) Type(text string, _ time.Duration) error {
	f.calls++
	f.lastText = text
	return f.err
}

func TestTypeFirstAvailableWins(t *testing.T) {
	first := &fakeStrategy{name: "first", available: true}
	second := &fakeStrategy{name: "second", available: true}

	in := NewInjector(WithStrategies(first, second))
	if err := in.Type("hello", 0); err != nil {
		t.Fatalf("Type: %v", err)
	}
	if first.calls != 1 || first.lastText != "hello" {
		t.Errorf("first strategy: calls=%d text=%q", first.calls, first.lastText)
	}
	if second.calls != 0 {
		t.Errorf("second strategy should not run, got %d calls", second.calls)
	}
}

func TestTypeFallsBackOnFailure(t *testing.T) {
	broken := &fakeStrategy{name: "broken", available: true, err: errors.New("denied")}
	working := &fakeStrategy{name: "working", available: true}

	in := NewInjector(WithStrategies(broken, working))
	if err := in.Type("x", 0); err != nil {
		t.Fatalf("Type: %v", err)
	}
	if broken.calls != 1 || working.calls != 1 {
		t.Errorf("calls: broken=%d working=%d", broken.calls, working.calls)
	}
}

func TestTypeSkipsUnavailable(t *testing.T) {
	off := &fakeStrategy{name: "off", available: false}
	on := &fakeStrategy{name: "on", available: true}

	in := NewInjector(WithStrategies(off, on))
	if err := in.Type("x", 0); err != nil {
		t.Fatalf("Type: %v", err)
	}
	if off.calls != 0 {
		t.Errorf("unavailable strategy ran %d times", off.calls)
	}
}

func TestTypeExhausted(t *testing.T) {
	a := &fakeStrategy{name: "a", available: true, err: errors.New("nope")}
	b := &fakeStrategy{name: "b", available: false}

	in := NewInjector(WithStrategies(a, b))
	err := in.Type("x", 0)
	if !errors.Is(err, ErrDeliveryExhausted) {
		t.Fatalf("Type = %v, want ErrDeliveryExhausted", err)
	}
}

func TestTypeEmptyTextIsNoop(t *testing.T) {
	s := &fakeStrategy{name: "s", available: true}
	in := NewInjector(WithStrategies(s))
	if err := in.Type("", 0); err != nil {
		t.Fatalf("Type: %v", err)
	}
	if s.calls != 0 {
		t.Errorf("empty text should not reach strategies, got %d calls", s.calls)
	}
}

func TestStrategiesOrder(t *testing.T) {
	in := NewInjector(WithStrategies(
		&fakeStrategy{name: "native"},
		&fakeStrategy{name: "clipboard"},
	))
	names := in.Strategies()
	if len(names) != 2 || names[0] != "native" || names[1] != "clipboard" {
		t.Errorf("Strategies() = %v", names)
	}
}
