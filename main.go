package main

import (
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/custom-grid/internal/config"
	"github.com/ytget/custom-grid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.custom-grid"
	AppName = "Custom Grid"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewProfileTheme())

	settings := config.NewSettings(myApp)

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(settings.GetWindowSize())
	myWindow.SetOnClosed(func() {
		size := myWindow.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
	})

	ui.NewRootUI(myWindow, myApp)

	myWindow.ShowAndRun()
}
