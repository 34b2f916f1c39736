//go:build darwin && !cgo

package inject

import "time"

// nativeUnicode requires cgo for the CoreGraphics event APIs. Without it
// the strategy reports unavailable and the chain moves on.
type nativeUnicode struct{}

func newNativeUnicode() Strategy { return nativeUnicode{} }

func (nativeUnicode) Name() string    { return "cgevent" }
func (nativeUnicode) Available() bool { return false }

func (nativeUnicode) Type(string, time.Duration) error {
	return ErrStrategyUnavailable
}
