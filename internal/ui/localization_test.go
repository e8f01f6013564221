package ui

import "testing"

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyMotto); got != "Strive not to be a success, but rather to be of value" {
		t.Errorf("Unexpected motto %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	tests := []struct {
		lang     string
		expected string
	}{
		{"ru", "ru"},
		{"pt", "pt"},
		{"system", "en"},
		{"xx", "en"}, // unknown languages are ignored
	}

	for _, test := range tests {
		l := NewLocalization()
		l.SetLanguage(test.lang)
		if l.GetCurrentLanguage() != test.expected {
			t.Errorf("SetLanguage(%s): expected %s, got %s", test.lang, test.expected, l.GetCurrentLanguage())
		}
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}

	for lang := range l.GetAvailableLanguages() {
		l.SetLanguage(lang)
		for _, key := range []string{KeyAppTitle, KeyMotto, KeyLanguage} {
			if l.GetText(key) == key {
				t.Errorf("Language %s is missing text for %s", lang, key)
			}
		}
	}
}
