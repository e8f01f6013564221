package ui

import (
	"math"
	"testing"
)

const metricsTolerance = 1e-4

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < metricsTolerance
}

func TestCellMetrics(t *testing.T) {
	tests := []struct {
		width      float32
		fontSize   float32
		imageWidth float32
	}{
		{0, 0, 0},
		{10, 2, 6},
		{100, 20, 50},
		{140, 28, 50},
		{200, 28, 50},
		{-5, 0, 0},
	}

	for _, test := range tests {
		fontSize, imageWidth := CellMetrics(test.width)
		if !approxEqual(fontSize, test.fontSize) {
			t.Errorf("CellMetrics(%v) fontSize = %v, expected %v", test.width, fontSize, test.fontSize)
		}
		if !approxEqual(imageWidth, test.imageWidth) {
			t.Errorf("CellMetrics(%v) imageWidth = %v, expected %v", test.width, imageWidth, test.imageWidth)
		}
	}
}

func TestCellMetrics_Monotonic(t *testing.T) {
	prevFont, prevImage := CellMetrics(0)

	for w := float32(0.5); w <= 400; w += 0.5 {
		fontSize, imageWidth := CellMetrics(w)
		if fontSize < prevFont {
			t.Fatalf("fontSize decreased at width %v: %v < %v", w, fontSize, prevFont)
		}
		if imageWidth < prevImage {
			t.Fatalf("imageWidth decreased at width %v: %v < %v", w, imageWidth, prevImage)
		}
		if fontSize > CellMaxFontSize || imageWidth > CellMaxImageSize {
			t.Fatalf("metrics exceed caps at width %v: %v, %v", w, fontSize, imageWidth)
		}
		prevFont, prevImage = fontSize, imageWidth
	}
}
