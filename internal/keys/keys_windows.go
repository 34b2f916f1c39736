//go:build windows

package keys

// platformKeys are key names only meaningful on Windows.
var platformKeys = []string{
	"menu", "numlock", "printscreen", "scrolllock", "win",
}
