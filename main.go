package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/input-collector/internal/config"
	"github.com/ytget/input-collector/internal/logging"
	"github.com/ytget/input-collector/internal/platform"
	"github.com/ytget/input-collector/internal/transfer"
	"github.com/ytget/input-collector/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.input-collector"
	AppName = "Input Collector"

	WindowWidth  = 760
	WindowHeight = 560
)

func main() {
	log := logging.New(logging.ModeGUI)
	log.Info().Str("version", version).Msg("Input Collector starting")

	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)
	workingDir := settings.GetWorkingDirectory()
	if err := platform.CreateDirectoryIfNotExists(workingDir); err != nil {
		log.Warn().Err(err).Str("folder", workingDir).Msg("failed to ensure working folder")
	}

	copySvc := transfer.NewService(log)

	ui.NewRootUI(myWindow, myApp, copySvc, log)

	myWindow.ShowAndRun()
}
