package model

import (
	"image/color"

	"github.com/google/uuid"
)

// Item represents a single static grid entry
type Item struct {
	ID        uuid.UUID
	Title     string
	ImageName string      // asset name, resolved by the UI layer
	TintColor color.Color // icon tint (template rendering)
}

// Item tint colors
var (
	ColorOrange    = color.NRGBA{R: 255, G: 149, B: 0, A: 255}
	ColorGreen     = color.NRGBA{R: 52, G: 199, B: 89, A: 255}
	ColorBlue      = color.NRGBA{R: 0, G: 122, B: 255, A: 255}
	ColorPurple    = color.NRGBA{R: 175, G: 82, B: 222, A: 255}
	ColorSoftBlack = color.NRGBA{R: 0, G: 0, B: 0, A: 204} // black at 80% opacity
)

// NewItem creates an item with a fresh identity
func NewItem(title, imageName string, tint color.Color) Item {
	return Item{
		ID:        newItemID(),
		Title:     title,
		ImageName: imageName,
		TintColor: tint,
	}
}

// DefaultItems returns the fixed ordered item sequence shown in the grid
func DefaultItems() []Item {
	return []Item{
		NewItem("Home", "home", ColorOrange),
		NewItem("Money", "money", ColorGreen),
		NewItem("Bank", "bank", ColorSoftBlack),
		NewItem("Vacation", "vacation", ColorGreen),
		NewItem("User", "user", ColorBlue),
		NewItem("Charts", "chart", ColorOrange),
		NewItem("Support", "support", ColorPurple),
	}
}

// newItemID generates a time-ordered UUID, falling back to a random one
func newItemID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
