package ui

import (
	"log"

	"fyne.io/fyne/v2"
)

// ColumnGridLayout arranges objects left to right, top to bottom into a fixed
// number of equal-width flexible columns. Declaration order is preserved;
// only the wrap points move when the column count changes.
type ColumnGridLayout struct {
	Columns int
	Spacing float32
}

// NewColumnGridLayout creates a grid layout with the given column count
func NewColumnGridLayout(columns int, spacing float32) *ColumnGridLayout {
	l := &ColumnGridLayout{Spacing: spacing}
	l.SetColumns(columns)
	return l
}

// SetColumns updates the column count, never below one
func (l *ColumnGridLayout) SetColumns(columns int) {
	if columns < 1 {
		log.Printf("Warning: invalid column count %d, using 1", columns)
		columns = 1
	}
	l.Columns = columns
}

func (l *ColumnGridLayout) columns() int {
	if l.Columns < 1 {
		return 1
	}
	return l.Columns
}

// ColumnWidth returns the width of one column for the given container width
func (l *ColumnGridLayout) ColumnWidth(containerWidth float32) float32 {
	cols := l.columns()
	w := (containerWidth - l.Spacing*float32(cols-1)) / float32(cols)
	if w < 0 {
		return 0
	}
	return w
}

// rowHeights returns the height of each row, taken from the tallest cell
func (l *ColumnGridLayout) rowHeights(objects []fyne.CanvasObject) []float32 {
	cols := l.columns()
	var heights []float32
	i := 0
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		row := i / cols
		if row >= len(heights) {
			heights = append(heights, 0)
		}
		if h := obj.MinSize().Height; h > heights[row] {
			heights[row] = h
		}
		i++
	}
	return heights
}

// Layout positions the objects in the container
func (l *ColumnGridLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	cols := l.columns()
	cellWidth := l.ColumnWidth(containerSize.Width)
	heights := l.rowHeights(objects)

	var y float32
	i := 0
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		row, col := i/cols, i%cols
		if col == 0 && row > 0 {
			y += heights[row-1] + l.Spacing
		}
		x := float32(col) * (cellWidth + l.Spacing)
		obj.Move(fyne.NewPos(x, y))
		obj.Resize(fyne.NewSize(cellWidth, heights[row]))
		i++
	}
}

// MinSize reports the full content height so a scroll container knows the range
func (l *ColumnGridLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	cols := l.columns()
	heights := l.rowHeights(objects)
	if len(heights) == 0 {
		return fyne.NewSize(0, 0)
	}

	var maxWidth float32
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		if w := obj.MinSize().Width; w > maxWidth {
			maxWidth = w
		}
	}

	var height float32
	for _, h := range heights {
		height += h
	}
	height += l.Spacing * float32(len(heights)-1)

	width := maxWidth*float32(cols) + l.Spacing*float32(cols-1)
	return fyne.NewSize(width, height)
}
