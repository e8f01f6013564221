package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

func TestProfileTheme_HeaderNames(t *testing.T) {
	th := NewProfileTheme()

	if th.Color(ColorNameHeaderName, theme.VariantDark) != HeaderNameColor {
		t.Error("Header name color should be white regardless of variant")
	}
	if th.Color(ColorNameHeaderMotto, theme.VariantLight) != HeaderMottoColor {
		t.Error("Unexpected header motto color")
	}
	if th.Size(SizeNameHeaderName) != HeaderNameTextSize {
		t.Errorf("Expected header name size %v, got %v", HeaderNameTextSize, th.Size(SizeNameHeaderName))
	}
	if th.Size(SizeNameHeaderMotto) != HeaderMottoTextSize {
		t.Errorf("Expected header motto size %v, got %v", HeaderMottoTextSize, th.Size(SizeNameHeaderMotto))
	}
}

func TestProfileTheme_Background(t *testing.T) {
	th := NewProfileTheme()

	for _, variant := range []fyne.ThemeVariant{theme.VariantLight, theme.VariantDark} {
		if th.Color(theme.ColorNameBackground, variant) != ScreenBackground {
			t.Errorf("Background should be white for variant %d", variant)
		}
	}
}
