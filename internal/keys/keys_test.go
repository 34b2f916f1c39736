package keys

import (
	"errors"
	"testing"
)

func TestNormalizeAliases(t *testing.T) {
	pairs := map[string]string{
		"cmd":      "command",
		"control":  "ctrl",
		"spacebar": "space",
		"return":   "enter",
		"escape":   "esc",
		"windows":  "win",
	}

	for alias, canonical := range pairs {
		got, err := Normalize(alias)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", alias, err)
		}
		want, err := Normalize(canonical)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", canonical, err)
		}
		if got != want {
			t.Errorf("Normalize(%q) = %q, want %q", alias, got, want)
		}
	}
}

func TestNormalizePlatformAliases(t *testing.T) {
	aliases := buildAliases("darwin")
	if aliases["meta"] != "command" || aliases["commandorcontrol"] != "command" {
		t.Errorf("darwin aliases wrong: meta=%q commandorcontrol=%q",
			aliases["meta"], aliases["commandorcontrol"])
	}

	aliases = buildAliases("linux")
	if aliases["meta"] != "win" || aliases["commandorcontrol"] != "ctrl" {
		t.Errorf("linux aliases wrong: meta=%q commandorcontrol=%q",
			aliases["meta"], aliases["commandorcontrol"])
	}
}

func TestNormalizeSingleCharacters(t *testing.T) {
	for _, c := range []string{"a", "Z", "7", "-", "+", "é", "ß", "ñ"} {
		got, err := Normalize(c)
		if err != nil {
			t.Fatalf("Normalize(%q): %v", c, err)
		}
		if got != c {
			t.Errorf("Normalize(%q) = %q, want unchanged", c, got)
		}
	}
}

func TestNormalizeSpace(t *testing.T) {
	got, err := Normalize(" ")
	if err != nil {
		t.Fatalf("Normalize(\" \"): %v", err)
	}
	if got != "space" {
		t.Errorf("Normalize(\" \") = %q, want \"space\"", got)
	}
}

func TestNormalizeCaseAndTrim(t *testing.T) {
	got, err := Normalize("  ENTER  ")
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "enter" {
		t.Errorf("Normalize(\"  ENTER  \") = %q, want \"enter\"", got)
	}
}

func TestNormalizeRejectsEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := Normalize(raw)
		var invalidErr *InvalidKeyError
		if !errors.As(err, &invalidErr) {
			t.Errorf("Normalize(%q) = %v, want InvalidKeyError", raw, err)
		}
	}
}

func TestNormalizeRejectsUnknownMultiChar(t *testing.T) {
	_, err := Normalize("hyperspace")
	var invalidErr *InvalidKeyError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("Normalize(\"hyperspace\") = %v, want InvalidKeyError", err)
	}
	if invalidErr.Name != "hyperspace" {
		t.Errorf("error carries name %q, want \"hyperspace\"", invalidErr.Name)
	}
}

func TestNormalizeSequenceAtomic(t *testing.T) {
	tokens, err := NormalizeSequence([]string{"ctrl", "nosuchkey", "c"})
	if err == nil {
		t.Fatal("expected error for invalid element")
	}
	if tokens != nil {
		t.Errorf("expected nil tokens on failure, got %v", tokens)
	}

	tokens, err = NormalizeSequence([]string{"CMD", "Shift", "p"})
	if err != nil {
		t.Fatalf("NormalizeSequence: %v", err)
	}
	want := []string{"command", "shift", "p"}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("tokens[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestSequenceText(t *testing.T) {
	text, ok := SequenceText([]string{"h", "i", "space", "5"})
	if !ok || text != "hi 5" {
		t.Errorf("SequenceText = %q, %v; want \"hi 5\", true", text, ok)
	}

	if _, ok := SequenceText([]string{"h", "enter"}); ok {
		t.Error("sequence containing a named key should not collapse to text")
	}
}
