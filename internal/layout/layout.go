// Package layout identifies the active keyboard layout.
//
// Detection is best-effort and descriptive: the result is a set of
// ordered key/value fields whose keys differ per platform, suitable for
// display and diagnostics rather than programmatic layout switching.
package layout

import (
	"errors"
	"strings"
)

// ErrNotAvailable means no detection mechanism produced a result on
// this platform.
var ErrNotAvailable = errors.New("layout: detection not available on this platform")

// Field is one detected attribute of the active layout.
type Field struct {
	Key   string
	Value string
}

// Info describes the active keyboard layout.
type Info struct {
	// Platform is the GOOS the detection ran on.
	Platform string

	// Fields holds the detected attributes in display order.
	Fields []Field
}

// Summary renders the fields as "key=value; key=value".
func (i Info) Summary() string {
	parts := make([]string, 0, len(i.Fields))
	for _, f := range i.Fields {
		parts = append(parts, f.Key+"="+f.Value)
	}
	return strings.Join(parts, "; ")
}

// Get returns the value for key, or "" when absent.
func (i Info) Get(key string) string {
	for _, f := range i.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Detect identifies the active keyboard layout using the platform
// mechanism. It returns ErrNotAvailable when the platform has no
// mechanism or every mechanism failed.
func Detect() (Info, error) {
	return detectLayout()
}
