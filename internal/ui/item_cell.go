package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/custom-grid/internal/model"
)

// ItemCell renders one item's icon and title. Icon width and font size are
// recomputed from the assigned width on every layout pass.
type ItemCell struct {
	widget.BaseWidget

	item model.Item
}

// NewItemCell creates a cell for the given item
func NewItemCell(item model.Item) *ItemCell {
	c := &ItemCell{item: item}
	c.ExtendBaseWidget(c)
	return c
}

// Item returns the item rendered by the cell
func (c *ItemCell) Item() model.Item {
	return c.item
}

// CreateRenderer creates the widget renderer
func (c *ItemCell) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(CellBackgroundColor)
	background.CornerRadius = CellCornerRadius

	icon := canvas.NewImageFromResource(assetOrPlaceholder(c.item.ImageName, c.item.TintColor))
	icon.FillMode = canvas.ImageFillContain

	title := canvas.NewText(c.item.Title, CellTitleColor)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	return &itemCellRenderer{
		cell:       c,
		background: background,
		icon:       icon,
		title:      title,
	}
}

// itemCellRenderer lays out the icon above the title, centered in the cell
type itemCellRenderer struct {
	cell       *ItemCell
	background *canvas.Rectangle
	icon       *canvas.Image
	title      *canvas.Text

	fontSize   float32
	imageWidth float32
}

// Layout arranges the components for the assigned size
func (r *itemCellRenderer) Layout(size fyne.Size) {
	r.fontSize, r.imageWidth = CellMetrics(size.Width)

	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)

	r.title.TextSize = r.fontSize
	textSize := fyne.MeasureText(r.title.Text, r.fontSize, r.title.TextStyle)

	contentHeight := r.imageWidth + CellStackSpacing + textSize.Height
	top := (size.Height - contentHeight) / 2

	r.icon.Move(fyne.NewPos((size.Width-r.imageWidth)/2, top))
	r.icon.Resize(fyne.NewSize(r.imageWidth, r.imageWidth))

	r.title.Move(fyne.NewPos(0, top+r.imageWidth+CellStackSpacing))
	r.title.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.title.Refresh()
}

// MinSize returns the minimum size; the width is left to the grid
func (r *itemCellRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CellMinWidth, CellHeight)
}

// Refresh refreshes the renderer
func (r *itemCellRenderer) Refresh() {
	r.Layout(r.cell.Size())
	canvas.Refresh(r.cell)
}

// Objects returns the renderer objects
func (r *itemCellRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.icon, r.title}
}

// Destroy cleans up the renderer
func (r *itemCellRenderer) Destroy() {}
