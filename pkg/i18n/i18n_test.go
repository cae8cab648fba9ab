package i18n

import "testing"

func TestTranslateDefaultLocalePassesThrough(t *testing.T) {
	SetLocale("en")

	if got := Translate("Users"); got != "Users" {
		t.Fatalf("Translate(Users) = %q, want passthrough", got)
	}
}

func TestTranslateFarsi(t *testing.T) {
	SetLocale("fa")
	defer SetLocale("en")

	if got := Translate("Users"); got != "کاربران" {
		t.Fatalf("Translate(Users) = %q", got)
	}

	// Wrapped errors translate by prefix.
	if got := Translate("failed to connect: dial tcp: refused"); got != "خطا در برقراری اتصال" {
		t.Fatalf("prefix translation = %q", got)
	}

	// Unknown strings fall back to the input.
	const unknown = "no such key"
	if got := Translate(unknown); got != unknown {
		t.Fatalf("Translate(unknown) = %q, want %q", got, unknown)
	}
}

func TestSetLocaleNormalizes(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "fa", want: "fa"},
		{input: " FA ", want: "fa"},
		{input: "persian", want: "fa"},
		{input: "en", want: "en"},
		{input: "de", want: "en"},
		{input: "", want: "en"},
	}

	defer SetLocale("en")
	for _, tt := range tests {
		SetLocale(tt.input)
		if got := Locale(); got != tt.want {
			t.Fatalf("SetLocale(%q) -> Locale() = %q, want %q", tt.input, got, tt.want)
		}
	}
}
