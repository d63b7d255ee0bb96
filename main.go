package main

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/playdeck/playdeck/internal/config"
	"github.com/playdeck/playdeck/internal/media"
	"github.com/playdeck/playdeck/internal/store"
	"github.com/playdeck/playdeck/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.playdeck.playdeck"
	AppName = "Playdeck"

	LibraryFileName = "library.db"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetDarkTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	width, height := settings.GetWindowSize()
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	// Initialize services
	cacheDir := settings.GetMediaCacheDir()
	cache := media.NewCache(cacheDir)
	cache.SetOverwrite(settings.GetOverwriteMedia())
	if err := cache.EnsureDirs(); err != nil {
		log.Fatalf("failed to create media cache dirs: %v", err)
	}

	// The library lives next to the media cache directory
	gameStore, err := store.Open(filepath.Join(filepath.Dir(cacheDir), LibraryFileName))
	if err != nil {
		log.Fatalf("failed to open game library: %v", err)
	}
	defer gameStore.Close()

	loader := media.NewLoader(cache, settings.GetMaxParallelMedia())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, gameStore, cache, loader)

	// Remember the window geometry for the next start
	myWindow.SetCloseIntercept(func() {
		size := myWindow.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
		myWindow.Close()
	})

	// Show and run
	myWindow.ShowAndRun()
}
