// Package keys normalizes user-facing key names into canonical key tokens.
//
// A token is either a well-known key name valid on the current platform
// ("enter", "ctrl", "f5", ...) or a single literal character. Callers hand
// free-form names ("Return", "CMD", " ") to Normalize and get back the
// canonical token the event layer understands.
package keys

import (
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"
)

// InvalidKeyError reports a key name that does not resolve to a canonical
// token on this platform.
type InvalidKeyError struct {
	Name   string
	Reason string
}

func (e *InvalidKeyError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid key %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("invalid key %q", e.Name)
}

// aliases maps user-friendly synonyms to canonical tokens. Built once at
// init because two entries depend on the running OS.
var aliases = buildAliases(runtime.GOOS)

func buildAliases(goos string) map[string]string {
	meta := "win"
	primary := "ctrl"
	if goos == "darwin" {
		meta = "command"
		primary = "command"
	}
	return map[string]string{
		"cmd":              "command",
		"control":          "ctrl",
		"spacebar":         "space",
		"return":           "enter",
		"escape":           "esc",
		"windows":          "win",
		"meta":             meta,
		"commandorcontrol": primary,
	}
}

// baseKeys are canonical multi-character key names recognized on every
// platform. Platform files add to this set.
var baseKeys = []string{
	"alt", "backspace", "capslock", "ctrl", "delete", "down", "end",
	"enter", "esc", "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8",
	"f9", "f10", "f11", "f12", "home", "insert", "left", "pagedown",
	"pageup", "right", "shift", "space", "tab", "up",
	"audio_mute", "audio_vol_down", "audio_vol_up",
	"num0", "num1", "num2", "num3", "num4", "num5", "num6", "num7",
	"num8", "num9",
}

var knownKeys = buildKnownKeys()

func buildKnownKeys() map[string]struct{} {
	set := make(map[string]struct{}, len(baseKeys)+len(platformKeys))
	for _, k := range baseKeys {
		set[k] = struct{}{}
	}
	for _, k := range platformKeys {
		set[k] = struct{}{}
	}
	return set
}

// Known reports whether token is a member of the platform key set.
func Known(token string) bool {
	_, ok := knownKeys[token]
	return ok
}

// Normalize resolves a raw key name to a canonical token.
//
// A literal space is the "space" key. Single characters pass through
// unchanged, so literal character keys keep their case. Multi-character
// names are trimmed, lower-cased and alias-resolved, and must land in the
// platform key set; unknown multi-character names are rejected.
func Normalize(raw string) (string, error) {
	if raw == " " {
		return "space", nil
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &InvalidKeyError{Name: raw, Reason: "key names must not be empty"}
	}

	if utf8.RuneCountInString(trimmed) == 1 {
		return trimmed, nil
	}

	token := strings.ToLower(trimmed)
	if canonical, ok := aliases[token]; ok {
		token = canonical
	}
	if !Known(token) {
		return "", &InvalidKeyError{Name: raw, Reason: "unsupported key for this platform"}
	}
	return token, nil
}

// NormalizeSequence normalizes every name in order. It fails atomically:
// if any element is invalid, no tokens are returned.
func NormalizeSequence(raws []string) ([]string, error) {
	tokens := make([]string, 0, len(raws))
	for _, raw := range raws {
		token, err := Normalize(raw)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

// SequenceText reports whether a token sequence is plain text: every token
// a single character or "space". If so it returns the concatenated text.
func SequenceText(tokens []string) (string, bool) {
	var b strings.Builder
	for _, token := range tokens {
		switch {
		case utf8.RuneCountInString(token) == 1:
			b.WriteString(token)
		case token == "space":
			b.WriteByte(' ')
		default:
			return "", false
		}
	}
	return b.String(), true
}
