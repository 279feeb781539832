package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/translateai/translateai-desktop/internal/config"
	"github.com/translateai/translateai-desktop/internal/logging"
	"github.com/translateai/translateai-desktop/internal/translate"
	"github.com/translateai/translateai-desktop/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.translateai.desktop"
	AppName = "TranslateAI"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewBrandTheme())

	settings := config.NewSettings(myApp)
	logs := logging.NewSet(os.Stderr, settings.GetLogLevel())
	logger := logs.Root()
	logger.Info("Starting", "app", AppName, "version", version)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	translateSvc := translate.NewService(settings.GetTickInterval(), settings.GetProgressStep(), logs.Component("translate"))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, translateSvc, settings, logs)

	// Show and run
	myWindow.ShowAndRun()
}
