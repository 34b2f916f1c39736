package layout

import (
	"fmt"
	"strings"

	"howett.net/plist"
)

// parseSelectedInputSources extracts the active layout from the raw
// contents of com.apple.HIToolbox.plist.
//
// AppleSelectedInputSources lists the enabled input sources with the
// most recently activated last. Entries of kind "Keyboard Layout" are
// preferred, scanned from the end; input-method entries (CJK and
// similar) only win when no plain layout is selected.
func parseSelectedInputSources(data []byte) (Info, error) {
	var prefs map[string]interface{}
	if _, err := plist.Unmarshal(data, &prefs); err != nil {
		return Info{}, fmt.Errorf("layout: parse HIToolbox plist: %w", err)
	}

	raw, ok := prefs["AppleSelectedInputSources"].([]interface{})
	if !ok || len(raw) == 0 {
		return Info{}, fmt.Errorf("layout: no selected input sources: %w", ErrNotAvailable)
	}

	var chosen map[string]interface{}
	for i := len(raw) - 1; i >= 0; i-- {
		entry, ok := raw[i].(map[string]interface{})
		if !ok {
			continue
		}
		if entry["InputSourceKind"] == "Keyboard Layout" {
			chosen = entry
			break
		}
	}
	if chosen == nil {
		chosen, ok = raw[len(raw)-1].(map[string]interface{})
		if !ok {
			return Info{}, fmt.Errorf("layout: malformed input source entry: %w", ErrNotAvailable)
		}
	}

	info := Info{Platform: "darwin"}
	add := func(key string, v interface{}) {
		if s := plistString(v); s != "" {
			info.Fields = append(info.Fields, Field{key, s})
		}
	}

	if v, ok := firstAttr(chosen, "KeyboardLayout Name", "Localized Name"); ok {
		add("layout", v)
	}
	if v, ok := chosen["KeyboardLayout ID"]; ok {
		add("layout_id", v)
	}
	if v, ok := chosen["KeyboardLayout Script"]; ok {
		add("script", v)
	}
	if v, ok := firstAttr(chosen, "Languages", "Language"); ok {
		add("languages", v)
	}
	// The entry-level source ID is absent on older releases; the
	// plist-level current-layout key carries it instead.
	if v, ok := chosen["InputSourceID"]; ok {
		add("input_source_id", v)
	} else if v, ok := prefs["AppleCurrentKeyboardLayoutInputSourceID"]; ok {
		add("input_source_id", v)
	}
	if v, ok := chosen["Input Mode"]; ok {
		add("input_mode", v)
	}
	if v, ok := chosen["InputSourceKind"]; ok {
		add("kind", v)
	}
	if v, ok := chosen["Bundle ID"]; ok {
		add("bundle", v)
	}

	if len(info.Fields) == 0 {
		return Info{}, fmt.Errorf("layout: input source entry has no known attributes: %w", ErrNotAvailable)
	}
	return info, nil
}

// firstAttr returns the first present key from the entry.
func firstAttr(entry map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := entry[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// plistString renders a plist value. Integers arrive as int64 or uint64
// depending on sign; language lists are joined with commas.
func plistString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return fmt.Sprintf("%d", t)
	case uint64:
		return fmt.Sprintf("%d", t)
	case []interface{}:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, plistString(e))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprintf("%v", t)
	}
}
