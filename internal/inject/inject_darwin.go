//go:build darwin

package inject

// platformStrategies returns the macOS chain: CGEvent Unicode delivery,
// then the System Events scripting bridge.
func platformStrategies() []Strategy {
	return []Strategy{
		newNativeUnicode(),
		newOsascript(),
	}
}
