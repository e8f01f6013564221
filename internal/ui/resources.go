package ui

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AvatarAsset    = "avatar"
	assetDir       = "assets"
	assetExtension = ".svg"
)

// templateFill marks the paths of an icon that receive the item tint
var templateFill = []byte(`fill="#000000"`)

// ErrAssetNotFound is returned when no embedded image has the requested name
var ErrAssetNotFound = errors.New("asset not found")

//go:embed assets/*.svg
var assetFS embed.FS

// LoadAsset returns the named embedded image
func LoadAsset(name string) (fyne.Resource, error) {
	content, err := fs.ReadFile(assetFS, assetDir+"/"+name+assetExtension)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	return fyne.NewStaticResource(name+assetExtension, content), nil
}

// LoadTintedAsset returns the named icon with its template paths filled with tint
func LoadTintedAsset(name string, tint color.Color) (fyne.Resource, error) {
	res, err := LoadAsset(name)
	if err != nil {
		return nil, err
	}
	if tint == nil {
		return res, nil
	}

	content := bytes.ReplaceAll(res.Content(), templateFill, svgFill(tint))
	return fyne.NewStaticResource(res.Name(), content), nil
}

// assetOrPlaceholder resolves an image, falling back to the theme's broken
// image icon when it is missing
func assetOrPlaceholder(name string, tint color.Color) fyne.Resource {
	res, err := LoadTintedAsset(name, tint)
	if err != nil {
		log.Printf("Warning: %v, using placeholder", err)
		return theme.BrokenImageIcon()
	}
	return res
}

// svgFill renders a color as SVG fill attributes, including opacity
func svgFill(c color.Color) []byte {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	attr := fmt.Sprintf(`fill="#%02x%02x%02x"`, n.R, n.G, n.B)
	if n.A < 0xff {
		attr += ` fill-opacity="` + strconv.FormatFloat(float64(n.A)/0xff, 'f', 2, 64) + `"`
	}
	return []byte(attr)
}
