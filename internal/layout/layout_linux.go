//go:build linux

package layout

import (
	"os"
	"os/exec"
	"strings"

	"github.com/godbus/dbus/v5"
)

// detectLayout tries the session X keymap first, then the system
// localed configuration over D-Bus, then the LANG environment variable.
func detectLayout() (Info, error) {
	if info, err := detectXKB(); err == nil {
		return info, nil
	}
	if info, err := detectLocaled(); err == nil {
		return info, nil
	}
	if info, err := detectLangEnv(); err == nil {
		return info, nil
	}
	return Info{}, ErrNotAvailable
}

// detectXKB shells out to setxkbmap, which reports the keymap of the
// running X session. Wayland-only sessions have no DISPLAY and skip it.
func detectXKB() (Info, error) {
	if os.Getenv("DISPLAY") == "" {
		return Info{}, ErrNotAvailable
	}
	if _, err := exec.LookPath("setxkbmap"); err != nil {
		return Info{}, ErrNotAvailable
	}

	out, err := exec.Command("setxkbmap", "-query").Output()
	if err != nil {
		return Info{}, ErrNotAvailable
	}

	fields := parseXKBQuery(out)
	if len(fields) == 0 {
		return Info{}, ErrNotAvailable
	}
	return Info{Platform: "linux", Fields: fields}, nil
}

// detectLocaled reads the persistent keyboard configuration from
// systemd-localed. Works without an X session.
func detectLocaled() (Info, error) {
	conn, err := dbus.SystemBus()
	if err != nil {
		return Info{}, ErrNotAvailable
	}

	obj := conn.Object("org.freedesktop.locale1", "/org/freedesktop/locale1")

	info := Info{Platform: "linux"}
	for _, prop := range []struct{ name, key string }{
		{"org.freedesktop.locale1.X11Layout", "layout"},
		{"org.freedesktop.locale1.X11Variant", "variant"},
		{"org.freedesktop.locale1.X11Model", "model"},
	} {
		variant, err := obj.GetProperty(prop.name)
		if err != nil {
			continue
		}
		if value, ok := variant.Value().(string); ok && value != "" {
			info.Fields = append(info.Fields, Field{prop.key, value})
		}
	}

	if len(info.Fields) == 0 {
		return Info{}, ErrNotAvailable
	}
	return info, nil
}

// detectLangEnv falls back to the locale environment, which at least
// names the language the session runs in.
func detectLangEnv() (Info, error) {
	lang := os.Getenv("LANG")
	if lang == "" {
		return Info{}, ErrNotAvailable
	}
	// Strip the encoding suffix: "de_DE.UTF-8" reads as "de_DE".
	if base, _, found := strings.Cut(lang, "."); found {
		lang = base
	}
	return Info{
		Platform: "linux",
		Fields:   []Field{{"layout", lang}},
	}, nil
}
