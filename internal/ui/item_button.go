package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/custom-grid/internal/model"
)

// ItemButton wraps an ItemCell with rounded corners, a soft shadow and a
// darkened overlay while pressed. Tapping performs no action by default.
type ItemButton struct {
	widget.BaseWidget

	cell     *ItemCell
	pressed  bool
	OnTapped func()
}

// NewItemButton creates a button rendering the given item
func NewItemButton(item model.Item) *ItemButton {
	b := &ItemButton{cell: NewItemCell(item)}
	b.ExtendBaseWidget(b)
	return b
}

// Cell returns the wrapped cell
func (b *ItemButton) Cell() *ItemCell {
	return b.cell
}

// IsPressed reports whether the pressed overlay is showing
func (b *ItemButton) IsPressed() bool {
	return b.pressed
}

func (b *ItemButton) setPressed(pressed bool) {
	if b.pressed == pressed {
		return
	}
	b.pressed = pressed
	b.Refresh()
}

// Tapped is called when the button is released over itself
func (b *ItemButton) Tapped(*fyne.PointEvent) {
	b.setPressed(false)
	if b.OnTapped != nil {
		b.OnTapped()
		return
	}
	log.Printf("Item %s tapped", b.cell.item.Title)
}

// MouseDown shows the pressed overlay
func (b *ItemButton) MouseDown(*desktop.MouseEvent) {
	b.setPressed(true)
}

// MouseUp hides the pressed overlay
func (b *ItemButton) MouseUp(*desktop.MouseEvent) {
	b.setPressed(false)
}

// MouseIn is required by desktop.Hoverable
func (b *ItemButton) MouseIn(*desktop.MouseEvent) {}

// MouseMoved is required by desktop.Hoverable
func (b *ItemButton) MouseMoved(*desktop.MouseEvent) {}

// MouseOut cancels a press when the pointer leaves the button
func (b *ItemButton) MouseOut() {
	b.setPressed(false)
}

// TouchDown shows the pressed overlay
func (b *ItemButton) TouchDown(*mobile.TouchEvent) {
	b.setPressed(true)
}

// TouchUp hides the pressed overlay
func (b *ItemButton) TouchUp(*mobile.TouchEvent) {
	b.setPressed(false)
}

// TouchCancel hides the pressed overlay
func (b *ItemButton) TouchCancel(*mobile.TouchEvent) {
	b.setPressed(false)
}

// CreateRenderer creates the widget renderer
func (b *ItemButton) CreateRenderer() fyne.WidgetRenderer {
	shadow := canvas.NewRectangle(CellShadowColor)
	shadow.CornerRadius = CellCornerRadius

	overlay := canvas.NewRectangle(PressedOverlayColor)
	overlay.CornerRadius = CellCornerRadius
	overlay.Hide()

	return &itemButtonRenderer{button: b, shadow: shadow, overlay: overlay}
}

type itemButtonRenderer struct {
	button  *ItemButton
	shadow  *canvas.Rectangle
	overlay *canvas.Rectangle
}

func (r *itemButtonRenderer) Layout(size fyne.Size) {
	r.shadow.Move(fyne.NewPos(0, CellShadowOffset))
	r.shadow.Resize(size)

	r.button.cell.Move(fyne.NewPos(0, 0))
	r.button.cell.Resize(size)

	r.overlay.Move(fyne.NewPos(0, 0))
	r.overlay.Resize(size)
}

func (r *itemButtonRenderer) MinSize() fyne.Size {
	return r.button.cell.MinSize()
}

func (r *itemButtonRenderer) Refresh() {
	if r.button.pressed {
		r.overlay.Show()
	} else {
		r.overlay.Hide()
	}
	r.overlay.Refresh()
	r.button.cell.Refresh()
}

func (r *itemButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.shadow, r.button.cell, r.overlay}
}

func (r *itemButtonRenderer) Destroy() {}
