// Package automation implements the user-facing input operations: typing
// text, pressing hotkeys, moving the mouse, and describing the active
// keyboard layout. It validates requests, enforces the fail-safe, and
// renders human-readable result summaries.
package automation

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"inputd/internal/config"
	"inputd/internal/inject"
	"inputd/internal/keys"
	"inputd/internal/layout"
	"inputd/internal/logging"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the outcome of one operation.
type Result struct {
	Status  string            `json:"status"`
	Summary string            `json:"summary"`
	Data    map[string]string `json:"data,omitempty"`
}

func success(summary string) Result {
	return Result{Status: StatusSuccess, Summary: summary}
}

// TextInjector delivers text to the focused application.
type TextInjector interface {
	Type(text string, interval time.Duration) error
}

// KeyPresser delivers hotkey chords and individual key taps.
type KeyPresser interface {
	Press(tokens []string, interval time.Duration) error
}

// LayoutDetector identifies the active keyboard layout.
type LayoutDetector interface {
	Detect() (layout.Info, error)
}

type layoutDetectorFunc func() (layout.Info, error)

func (f layoutDetectorFunc) Detect() (layout.Info, error) { return f() }

// Actions executes input operations. Construct with New; the zero value
// is not usable.
//
// The configuration is held behind an atomic pointer so a live reload
// can swap in new tuning while operations run on other goroutines; each
// operation reads one consistent snapshot.
type Actions struct {
	cfg      atomic.Pointer[config.Config]
	logger   *logging.Logger
	injector TextInjector
	presser  KeyPresser
	tapper   inject.Tapper
	detector LayoutDetector
	pointer  Pointer
	screen   Screen
}

// Option overrides a dependency, used by tests and embedders.
type Option func(*Actions)

// WithInjector replaces the text injector.
func WithInjector(in TextInjector) Option {
	return func(a *Actions) { a.injector = in }
}

// WithPresser replaces the hotkey presser.
func WithPresser(p KeyPresser) Option {
	return func(a *Actions) { a.presser = p }
}

// WithTapper replaces the key event source.
func WithTapper(t inject.Tapper) Option {
	return func(a *Actions) { a.tapper = t }
}

// WithDetector replaces the layout detector.
func WithDetector(fn func() (layout.Info, error)) Option {
	return func(a *Actions) { a.detector = layoutDetectorFunc(fn) }
}

// WithPointer replaces the pointer.
func WithPointer(p Pointer) Option {
	return func(a *Actions) { a.pointer = p }
}

// WithScreen replaces the screen.
func WithScreen(s Screen) Option {
	return func(a *Actions) { a.screen = s }
}

// New wires Actions with production dependencies.
func New(cfg *config.Config, logger *logging.Logger, opts ...Option) *Actions {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = logging.Default()
	}

	tapper := inject.NewTapper()
	sequencer := inject.NewSequencer(tapper)
	sequencer.Floor = cfg.HotkeyFloor()

	a := &Actions{
		logger:   logger.WithComponent("automation"),
		injector: inject.NewInjector(inject.WithLogger(logger)),
		presser:  sequencer,
		tapper:   tapper,
		detector: layoutDetectorFunc(layout.Detect),
		pointer:  NewPointer(),
		screen:   NewScreen(),
	}
	a.cfg.Store(cfg)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetConfig swaps in new tuning values. Safe to call while operations
// run; in-flight operations keep the snapshot they started with.
func (a *Actions) SetConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	a.cfg.Store(cfg)
}

func (a *Actions) config() *config.Config {
	return a.cfg.Load()
}

// interval resolves a request interval against the configured default.
func (a *Actions) interval(requested time.Duration) time.Duration {
	if requested > 0 {
		return requested
	}
	return a.config().Pause()
}

// checkFailSafe rejects the operation when the fail-safe is armed and
// the pointer is parked in a screen corner.
func (a *Actions) checkFailSafe() error {
	if !a.config().Input.FailSafe {
		return nil
	}
	x, y := a.pointer.Location()
	w, h := a.screen.Size()
	if w <= 0 || h <= 0 {
		return nil
	}
	if inFailSafeCorner(x, y, w, h) {
		a.logger.Warn("fail-safe triggered", "x", x, "y", y)
		return ErrFailSafe
	}
	return nil
}

// TypeText delivers text through the injection chain, optionally
// pressing enter afterwards. interval is the per-character pause; zero
// selects the configured default.
func (a *Actions) TypeText(text string, interval time.Duration, pressEnter bool) (Result, error) {
	if interval < 0 {
		return Result{}, fmt.Errorf("%w: interval must not be negative", ErrInvalidArgument)
	}
	if text == "" && !pressEnter {
		return success("Typed text (0 characters)."), nil
	}
	if err := a.checkFailSafe(); err != nil {
		return Result{}, err
	}

	if text != "" {
		if err := a.injector.Type(text, a.interval(interval)); err != nil {
			return Result{}, err
		}
	}
	if pressEnter {
		if err := a.presser.Press([]string{"enter"}, a.interval(interval)); err != nil {
			return Result{}, err
		}
	}

	n := len([]rune(text))
	a.logger.Info("typed text", "chars", n, "enter", pressEnter)
	if pressEnter {
		return success(fmt.Sprintf("Typed text (%d characters) and pressed enter.", n)), nil
	}
	return success(fmt.Sprintf("Typed text (%d characters).", n)), nil
}

// PressHotkey presses the named keys as a combination. One key is a
// plain press; several are held together and released in reverse order.
func (a *Actions) PressHotkey(names []string, interval time.Duration) (Result, error) {
	if len(names) == 0 {
		return Result{}, fmt.Errorf("%w: no keys given", ErrInvalidArgument)
	}

	tokens, err := keys.NormalizeSequence(names)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if err := a.checkFailSafe(); err != nil {
		return Result{}, err
	}

	if err := a.presser.Press(tokens, a.interval(interval)); err != nil {
		return Result{}, err
	}

	label := strings.Join(tokens, "+")
	a.logger.Info("pressed hotkey", "keys", label)
	if len(tokens) == 1 {
		return success(fmt.Sprintf("Pressed key: %s", label)), nil
	}
	return success(fmt.Sprintf("Pressed hotkey combination: %s", label)), nil
}

// PressKeySequence presses the named keys one after another. A sequence
// of literal characters is delivered as text so it benefits from the
// injection chain; anything containing named keys is tapped key by key.
func (a *Actions) PressKeySequence(names []string, interval time.Duration) (Result, error) {
	if len(names) == 0 {
		return Result{}, fmt.Errorf("%w: no keys given", ErrInvalidArgument)
	}

	tokens, err := keys.NormalizeSequence(names)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	if text, ok := keys.SequenceText(tokens); ok {
		return a.TypeText(text, interval, false)
	}

	if err := a.checkFailSafe(); err != nil {
		return Result{}, err
	}
	if err := inject.TapSequenceWith(a.tapper, tokens, a.interval(interval)); err != nil {
		return Result{}, err
	}

	a.logger.Info("pressed key sequence", "count", len(tokens))
	return success(fmt.Sprintf("Pressed keys: %s", strings.Join(tokens, ", "))), nil
}

// DescribeKeyboardLayout reports the active keyboard layout. A platform
// without a detection mechanism yields an error-status result, not an
// error: the caller asked a question and got a definitive "unknown".
func (a *Actions) DescribeKeyboardLayout() (Result, error) {
	info, err := a.detector.Detect()
	if err != nil {
		if errors.Is(err, layout.ErrNotAvailable) {
			return Result{
				Status:  StatusError,
				Summary: "Unable to determine the active keyboard layout on this platform.",
			}, nil
		}
		return Result{}, err
	}

	data := make(map[string]string, len(info.Fields))
	for _, f := range info.Fields {
		data[f.Key] = f.Value
	}

	return Result{
		Status:  StatusSuccess,
		Summary: fmt.Sprintf("Keyboard layout detected: %s", info.Summary()),
		Data:    data,
	}, nil
}

// MoveCursor moves the pointer to absolute screen coordinates.
func (a *Actions) MoveCursor(x, y int) (Result, error) {
	if x < 0 || y < 0 {
		return Result{}, fmt.Errorf("%w: coordinates must not be negative", ErrInvalidArgument)
	}
	if err := a.checkFailSafe(); err != nil {
		return Result{}, err
	}
	if err := a.pointer.Move(x, y); err != nil {
		return Result{}, err
	}
	return success(fmt.Sprintf("Moved cursor to (%d, %d).", x, y)), nil
}

// Click clicks a mouse button at the current pointer position.
func (a *Actions) Click(button string, double bool) (Result, error) {
	btn, err := normalizeButton(button)
	if err != nil {
		return Result{}, err
	}
	if err := a.checkFailSafe(); err != nil {
		return Result{}, err
	}
	if err := a.pointer.Click(btn, double); err != nil {
		return Result{}, err
	}
	kind := "Clicked"
	if double {
		kind = "Double-clicked"
	}
	return success(fmt.Sprintf("%s %s button.", kind, btn)), nil
}

// Drag drags from the current position to (x, y) with a button held.
func (a *Actions) Drag(x, y int, button string) (Result, error) {
	if x < 0 || y < 0 {
		return Result{}, fmt.Errorf("%w: coordinates must not be negative", ErrInvalidArgument)
	}
	btn, err := normalizeButton(button)
	if err != nil {
		return Result{}, err
	}
	if err := a.checkFailSafe(); err != nil {
		return Result{}, err
	}
	if err := a.pointer.Drag(x, y, btn); err != nil {
		return Result{}, err
	}
	return success(fmt.Sprintf("Dragged to (%d, %d).", x, y)), nil
}

// ScreenSize reports the primary display dimensions.
func (a *Actions) ScreenSize() (Result, error) {
	w, h := a.screen.Size()
	r := success(fmt.Sprintf("Screen size: %dx%d.", w, h))
	r.Data = map[string]string{
		"width":  fmt.Sprintf("%d", w),
		"height": fmt.Sprintf("%d", h),
	}
	return r, nil
}
