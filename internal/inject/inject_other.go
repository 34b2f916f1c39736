//go:build !darwin && !windows && !linux

package inject

// platformStrategies returns no native strategies; the generic clipboard
// and key-tap fallbacks still apply.
func platformStrategies() []Strategy {
	return nil
}
