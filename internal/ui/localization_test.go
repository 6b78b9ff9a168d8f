package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyStart); text != "Start" {
		t.Errorf("Expected 'Start', got %q", text)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("vi")
	if l.GetCurrentLanguage() != "vi" {
		t.Errorf("Expected language vi, got %s", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyStart); text != "Bắt đầu" {
		t.Errorf("Expected Vietnamese start label, got %q", text)
	}

	// Unknown language keeps the current one
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "vi" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	// System resolves to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System language should resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_FallbackToEnglish(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("vi")

	// Every English key must resolve to something in every language
	for key := range l.texts["en"] {
		if text := l.GetText(key); text == "" {
			t.Errorf("Key %s resolved to empty text", key)
		}
	}

	// Unknown keys fall back to the key itself
	if text := l.GetText("no_such_key"); text != "no_such_key" {
		t.Errorf("Unknown key should return itself, got %q", text)
	}
}

func TestLocalization_LanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, exists := l.texts[lang]
		if !exists {
			t.Errorf("Language %s has no translations", lang)
			continue
		}
		for key := range l.texts["en"] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}
