package ui

import "fyne.io/fyne/v2"

// hoverLayout stacks a header and a body vertically, pulling the body up by
// Offset so it overlaps the bottom of the header. The body is inset by Inset
// on both sides. Objects other than the first two are ignored.
type hoverLayout struct {
	Offset float32
	Inset  float32
}

func (l *hoverLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 2 {
		for _, o := range objects {
			o.Move(fyne.NewPos(0, 0))
			o.Resize(size)
		}
		return
	}
	header, body := objects[0], objects[1]

	headerHeight := header.MinSize().Height
	header.Move(fyne.NewPos(0, 0))
	header.Resize(fyne.NewSize(size.Width, headerHeight))

	bodyWidth := size.Width - 2*l.Inset
	if bodyWidth < 0 {
		bodyWidth = 0
	}
	body.Move(fyne.NewPos(l.Inset, headerHeight-l.Offset))
	body.Resize(fyne.NewSize(bodyWidth, body.MinSize().Height))
}

func (l *hoverLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	if len(objects) == 1 {
		return objects[0].MinSize()
	}
	header, body := objects[0].MinSize(), objects[1].MinSize()
	height := header.Height + body.Height - l.Offset
	if height < header.Height {
		height = header.Height
	}
	return fyne.NewSize(max(header.Width, body.Width+2*l.Inset), height)
}
