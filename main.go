package main

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/lrstanley/go-ytdlp"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/config"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/download"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/platform"
	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.mlgpigeon.universal-media-downloader"
	AppName = "Media Downloader"

	WindowWidth  = 750
	WindowHeight = 520
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		log.Printf("failed to ensure output dir %s: %v", outputDir, err)
	}

	ffmpegPath := platform.FindFFmpeg()
	if ffmpegPath == "" {
		log.Printf("ffmpeg not found; conversions will fail until it is installed")
	} else if err := platform.VerifyFFmpeg(context.Background(), ffmpegPath); err != nil {
		log.Printf("ffmpeg check failed: %v", err)
	} else {
		log.Printf("using ffmpeg at %s", ffmpegPath)
	}

	// Fetch yt-dlp in the background if it is not present yet so the first
	// download does not block on provisioning.
	go func() {
		if _, err := ytdlp.Install(context.Background(), nil); err != nil {
			log.Printf("yt-dlp install failed: %v", err)
		}
	}()

	registry := download.NewRegistry()
	downloadSvc := download.NewService(registry, ffmpegPath)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, downloadSvc, registry)

	myWindow.ShowAndRun()
}
