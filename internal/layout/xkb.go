package layout

import (
	"bufio"
	"bytes"
	"strings"
)

// parseXKBQuery extracts fields from `setxkbmap -query` output, which is
// colon-separated lines such as:
//
//	rules:      evdev
//	model:      pc105
//	layout:     us,de
//	variant:    ,nodeadkeys
func parseXKBQuery(out []byte) []Field {
	var fields []Field
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		fields = append(fields, Field{key, value})
	}
	return fields
}
