// Package inject delivers synthetic text and key events to the active
// application.
//
// Text delivery runs through an ordered chain of strategies. Each
// strategy is a different OS mechanism with different strengths:
// native event APIs handle arbitrary Unicode, scripting bridges survive
// sandboxing quirks, and the clipboard paste path works when nothing
// else does. The chain tries each available strategy in order and stops
// at the first success.
package inject

import (
	"errors"
	"fmt"
	"time"

	"inputd/internal/logging"
)

// ErrStrategyUnavailable marks a strategy that cannot run in the current
// environment. Chain iteration treats it like any other failure.
var ErrStrategyUnavailable = errors.New("inject: strategy unavailable")

// ErrDeliveryExhausted is returned when every strategy in the chain has
// failed or was unavailable.
var ErrDeliveryExhausted = errors.New("inject: all delivery strategies failed")

// Strategy is one mechanism for delivering text to the focused window.
type Strategy interface {
	// Name identifies the strategy in logs and error messages.
	Name() string

	// Available reports whether the strategy can run right now. Chains
	// skip unavailable strategies without counting them as failures
	// worth logging at warn level.
	Available() bool

	// Type delivers text. interval is the pause between characters;
	// strategies that deliver text as a single unit may ignore it.
	Type(text string, interval time.Duration) error
}

// Injector runs a strategy chain.
type Injector struct {
	strategies []Strategy
	logger     *logging.Logger
}

// Option configures an Injector.
type Option func(*Injector)

// WithLogger sets the logger. The default is the global logger.
func WithLogger(l *logging.Logger) Option {
	return func(in *Injector) { in.logger = l }
}

// WithStrategies replaces the platform strategy chain. Used by tests and
// by callers that need a custom ordering.
func WithStrategies(strategies ...Strategy) Option {
	return func(in *Injector) { in.strategies = strategies }
}

// NewInjector builds the default chain for this platform: native event
// delivery first, then the platform scripting bridge, then clipboard
// paste, then plain key-tap typing.
func NewInjector(opts ...Option) *Injector {
	in := &Injector{
		strategies: defaultChain(),
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.logger = in.logger.WithComponent("injector")
	return in
}

// defaultChain assembles the platform strategies plus the two
// platform-independent fallbacks.
func defaultChain() []Strategy {
	chain := platformStrategies()
	chain = append(chain, newClipboardStrategy(systemClipboard{}, NewSequencer(nil)))
	chain = append(chain, newTapTyper())
	return chain
}

// Strategies returns the names of the configured chain in order.
func (in *Injector) Strategies() []string {
	names := make([]string, len(in.strategies))
	for i, s := range in.strategies {
		names[i] = s.Name()
	}
	return names
}

// Type delivers text through the chain. It returns nil on the first
// strategy that succeeds, and ErrDeliveryExhausted wrapping the last
// failure when none do. Empty text is a no-op.
func (in *Injector) Type(text string, interval time.Duration) error {
	if text == "" {
		return nil
	}

	var lastErr error
	for _, s := range in.strategies {
		if !s.Available() {
			in.logger.Debug("strategy unavailable", "strategy", s.Name())
			continue
		}
		err := s.Type(text, interval)
		if err == nil {
			in.logger.Debug("text delivered", "strategy", s.Name(), "chars", len([]rune(text)))
			return nil
		}
		in.logger.Warn("strategy failed, falling back",
			"strategy", s.Name(), "error", err)
		lastErr = err
	}

	if lastErr != nil {
		return fmt.Errorf("%w: %w", ErrDeliveryExhausted, lastErr)
	}
	return ErrDeliveryExhausted
}
