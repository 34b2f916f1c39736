//go:build linux

package keys

// platformKeys are key names only meaningful on Linux.
var platformKeys = []string{
	"menu", "numlock", "printscreen", "scrolllock", "win",
}
