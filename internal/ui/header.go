package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/custom-grid/internal/model"
)

// Avatar is a circular profile picture that reacts to taps
type Avatar struct {
	widget.BaseWidget

	image *canvas.Image
	ring  *canvas.Circle
	onTap func()
}

// NewAvatar creates an avatar showing the embedded avatar image
func NewAvatar(onTap func()) *Avatar {
	image := canvas.NewImageFromResource(assetOrPlaceholder(AvatarAsset, nil))
	image.FillMode = canvas.ImageFillContain

	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = AvatarRingColor
	ring.StrokeWidth = AvatarRingWidth

	a := &Avatar{image: image, ring: ring, onTap: onTap}
	a.ExtendBaseWidget(a)
	return a
}

// Tapped forwards the tap to the header
func (a *Avatar) Tapped(*fyne.PointEvent) {
	if a.onTap != nil {
		a.onTap()
	}
}

// MinSize returns the fixed avatar size
func (a *Avatar) MinSize() fyne.Size {
	return fyne.NewSize(AvatarSize, AvatarSize)
}

// CreateRenderer creates the widget renderer
func (a *Avatar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(a.image, a.ring))
}

// HeaderView shows the avatar, name and motto over the current background
// color. Tapping the avatar advances the shared view state.
type HeaderView struct {
	widget.BaseWidget

	state  *model.ViewState
	picker model.Picker

	background *canvas.Rectangle
	avatar     *Avatar
	name       *canvas.Text
	motto      *widget.RichText

	// OnStateChanged is called after every avatar tap with the new state
	OnStateChanged func(model.ViewState)
}

// NewHeaderView creates a header bound to state; picker selects the next
// background palette index
func NewHeaderView(state *model.ViewState, picker model.Picker, motto string) *HeaderView {
	if picker == nil {
		picker = model.DefaultPicker
	}

	h := &HeaderView{
		state:      state,
		picker:     picker,
		background: canvas.NewRectangle(state.BackgroundColor),
		name:       canvas.NewText(ProfileName, HeaderNameColor),
	}

	h.name.TextSize = HeaderNameTextSize
	h.name.TextStyle = fyne.TextStyle{Bold: true}
	h.name.Alignment = fyne.TextAlignCenter

	h.motto = widget.NewRichText(&widget.TextSegment{
		Text: motto,
		Style: widget.RichTextStyle{
			Alignment: fyne.TextAlignCenter,
			ColorName: ColorNameHeaderMotto,
			SizeName:  SizeNameHeaderMotto,
			TextStyle: fyne.TextStyle{Bold: true},
		},
	})
	h.motto.Wrapping = fyne.TextWrapWord

	h.avatar = NewAvatar(h.onAvatarTap)
	h.ExtendBaseWidget(h)
	return h
}

// onAvatarTap picks a new background and advances the column count
func (h *HeaderView) onAvatarTap() {
	h.state.Advance(h.picker)
	log.Printf("Avatar tapped: columns=%d background=%v", h.state.ColumnCount, h.state.BackgroundColor)

	h.background.FillColor = h.state.BackgroundColor
	h.background.Refresh()

	if h.OnStateChanged != nil {
		h.OnStateChanged(*h.state)
	}
}

// SetMotto replaces the motto text
func (h *HeaderView) SetMotto(text string) {
	if len(h.motto.Segments) == 0 {
		return
	}
	if seg, ok := h.motto.Segments[0].(*widget.TextSegment); ok {
		seg.Text = text
		h.motto.Refresh()
	}
}

// Motto returns the displayed motto
func (h *HeaderView) Motto() string {
	return h.motto.String()
}

// Avatar returns the tappable avatar
func (h *HeaderView) Avatar() *Avatar {
	return h.avatar
}

// Background returns the rectangle painted with the current background color
func (h *HeaderView) Background() *canvas.Rectangle {
	return h.background
}

// MinSize keeps the header at a fixed height
func (h *HeaderView) MinSize() fyne.Size {
	size := h.BaseWidget.MinSize()
	return fyne.NewSize(size.Width, HeaderHeight)
}

// CreateRenderer creates the widget renderer
func (h *HeaderView) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(h.avatar),
		h.name,
		h.motto,
		layout.NewSpacer(),
	)
	return widget.NewSimpleRenderer(container.NewStack(h.background, container.NewPadded(content)))
}
