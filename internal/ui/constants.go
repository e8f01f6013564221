package ui

import "image/color"

// UI-wide constants to avoid magic numbers scattered across the codebase.

// Header sizing
const (
	HeaderHeight        float32 = 350
	AvatarSize          float32 = 110
	AvatarRingWidth     float32 = 4
	HeaderNameTextSize  float32 = 30
	HeaderMottoTextSize float32 = 16
	ProfileName                 = "Shawn Schwartz"
)

// Grid sizing
const (
	GridSpacing     float32 = 10
	GridHoverOffset float32 = 50 // grid is drawn this far up over the header
	GridInset       float32 = 16
)

// Cell sizing
const (
	CellHeight       float32 = 150
	CellMinWidth     float32 = 1
	CellStackSpacing float32 = 5
	CellCornerRadius float32 = 20
	CellShadowOffset float32 = 5

	CellFontScale    float32 = 0.2
	CellMaxFontSize  float32 = 28
	CellImageScale   float32 = 0.6
	CellMaxImageSize float32 = 50
)

// Colors
var (
	PressedOverlayColor = color.NRGBA{R: 0, G: 0, B: 0, A: 51}  // black at 20%
	CellShadowColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 26}  // soft drop shadow
	CellTitleColor      = color.NRGBA{R: 0, G: 0, B: 0, A: 230} // black at 90%
	CellBackgroundColor = color.White
	AvatarRingColor     = color.White
	HeaderNameColor     = color.White
	HeaderMottoColor    = color.NRGBA{R: 255, G: 255, B: 255, A: 179} // white at 70%
	ScreenBackground    = color.White
)
