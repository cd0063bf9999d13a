package aichat

import (
	"strings"
	"testing"
)

func TestReplyKeywordRouting(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"hello there":               "Hello!",
		"how are my sales doing":    "Reports",
		"too much spending lately":  "expense categories",
		"is my warehouse stock ok?": "Warehouse screen",
		"assign a task":             "assign tasks",
		"add an employee":           "Employees screen",
	}
	for msg, wantFragment := range cases {
		got := Reply("en", msg)
		if !strings.Contains(got, wantFragment) {
			t.Errorf("Reply(en, %q) = %q, want fragment %q", msg, got, wantFragment)
		}
	}
}

func TestReplyUzbek(t *testing.T) {
	t.Parallel()

	got := Reply("uz", "savdo qanday ketyapti?")
	if !strings.Contains(got, "Hisobotlar") {
		t.Errorf("uz income reply = %q", got)
	}
}

// Replies are deterministic and unknown messages echo the input.
func TestReplyFallback(t *testing.T) {
	t.Parallel()

	first := Reply("en", "quantum flux capacitor")
	second := Reply("en", "quantum flux capacitor")
	if first != second {
		t.Fatal("replies are not deterministic")
	}
	if !strings.Contains(first, "quantum flux capacitor") {
		t.Errorf("fallback should echo the message, got %q", first)
	}
}

func TestReplyUnknownLanguageDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	got := Reply("fr", "hello")
	if !strings.Contains(got, "Hello!") {
		t.Errorf("unknown language reply = %q", got)
	}
}
