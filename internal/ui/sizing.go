package ui

// CellMetrics derives the title font size and icon width of a cell from the
// width assigned to it by the grid layout.
func CellMetrics(width float32) (fontSize, imageWidth float32) {
	if width < 0 {
		width = 0
	}
	fontSize = min(width*CellFontScale, CellMaxFontSize)
	imageWidth = min(CellMaxImageSize, width*CellImageScale)
	return fontSize, imageWidth
}
