package model

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
)

// Column count bounds
const (
	MinColumnCount     = 1
	MaxColumnCount     = 3
	DefaultColumnCount = MaxColumnCount
)

// Header background palette
var (
	ColorRed    = color.NRGBA{R: 255, G: 59, B: 48, A: 255}
	ColorGray   = color.NRGBA{R: 142, G: 142, B: 147, A: 255}
	ColorYellow = color.NRGBA{R: 255, G: 204, B: 0, A: 255}

	// DefaultBackground is the header color on a fresh screen
	DefaultBackground color.Color = ColorPurple
)

var palette = []color.Color{ColorRed, ColorGray, ColorGreen, ColorYellow, ColorBlue, ColorPurple}

var (
	ErrInvalidColumnCount = errors.New("invalid column count")
	ErrInvalidBackground  = errors.New("background color not in palette")
)

// Picker returns an index in [0, n)
type Picker func(n int) int

// DefaultPicker picks uniformly using math/rand
func DefaultPicker(n int) int {
	return rand.IntN(n)
}

// Palette returns a copy of the header background palette
func Palette() []color.Color {
	out := make([]color.Color, len(palette))
	copy(out, palette)
	return out
}

// InPalette reports whether c is one of the palette colors
func InPalette(c color.Color) bool {
	if c == nil {
		return false
	}
	r, g, b, a := c.RGBA()
	for _, p := range palette {
		pr, pg, pb, pa := p.RGBA()
		if r == pr && g == pg && b == pb && a == pa {
			return true
		}
	}
	return false
}

// ColumnCounts returns the allowed column counts in cycle order
func ColumnCounts() []int {
	return []int{1, 2, 3}
}

// NextColumnCount cycles 1 -> 2 -> 3 -> 1
func NextColumnCount(n int) int {
	return n%MaxColumnCount + 1
}

// ViewState holds the mutable state of the profile screen
type ViewState struct {
	ColumnCount     int
	BackgroundColor color.Color
}

// NewViewState returns the state of a freshly opened screen
func NewViewState() ViewState {
	return ViewState{
		ColumnCount:     DefaultColumnCount,
		BackgroundColor: DefaultBackground,
	}
}

// Advance applies one avatar tap: a new background picked from the palette
// (repeats allowed) and the next column count.
func (s *ViewState) Advance(pick Picker) {
	if pick == nil {
		pick = DefaultPicker
	}
	idx := pick(len(palette)) % len(palette)
	if idx < 0 {
		idx += len(palette)
	}
	s.BackgroundColor = palette[idx]
	s.ColumnCount = NextColumnCount(s.ColumnCount)
}

// Validate checks the state invariants
func (s ViewState) Validate() error {
	if s.ColumnCount < MinColumnCount || s.ColumnCount > MaxColumnCount {
		return fmt.Errorf("%w: %d", ErrInvalidColumnCount, s.ColumnCount)
	}
	if !InPalette(s.BackgroundColor) {
		return fmt.Errorf("%w: %v", ErrInvalidBackground, s.BackgroundColor)
	}
	return nil
}
