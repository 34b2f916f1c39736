//go:build !darwin && !windows && !linux

package keys

// platformKeys is empty on unsupported platforms; only the base set and
// literal characters are accepted.
var platformKeys []string
