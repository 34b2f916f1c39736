//go:build darwin

package keys

// platformKeys are key names only meaningful on macOS.
var platformKeys = []string{
	"command", "fn", "launchpad", "mission_control", "option",
}
