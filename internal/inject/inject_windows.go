//go:build windows

package inject

// platformStrategies returns the Windows chain. SendInput with
// KEYEVENTF_UNICODE covers the whole BMP and surrogate pairs, so a
// single native strategy suffices ahead of the generic fallbacks.
func platformStrategies() []Strategy {
	return []Strategy{
		newSendInput(),
	}
}
