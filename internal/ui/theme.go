package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Custom theme names used by the header's rich text
const (
	ColorNameHeaderName  fyne.ThemeColorName = "headerName"
	ColorNameHeaderMotto fyne.ThemeColorName = "headerMotto"
	SizeNameHeaderName   fyne.ThemeSizeName  = "headerName"
	SizeNameHeaderMotto  fyne.ThemeSizeName  = "headerMotto"
)

// ProfileTheme is a light theme with a white screen background and white
// header text
type ProfileTheme struct{}

// NewProfileTheme creates a new profile theme
func NewProfileTheme() fyne.Theme {
	return &ProfileTheme{}
}

// Color returns theme colors
func (t *ProfileTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameHeaderName:
		return HeaderNameColor
	case ColorNameHeaderMotto:
		return HeaderMottoColor
	case theme.ColorNameBackground:
		return ScreenBackground
	case theme.ColorNameForeground:
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 175, G: 82, B: 222, A: 255}
	}

	// Light variant for everything else, the screen is always white
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *ProfileTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ProfileTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ProfileTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case SizeNameHeaderName:
		return HeaderNameTextSize
	case SizeNameHeaderMotto:
		return HeaderMottoTextSize
	case theme.SizeNameInputRadius:
		return CellCornerRadius / 2
	}

	return theme.DefaultTheme().Size(name)
}
