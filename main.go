// Package main provides the entry point for the Flux Viewer application.
package main

import (
	"log"
	"os"

	"flux-viewer/internal/app"
	"flux-viewer/internal/config"
	"flux-viewer/internal/version"
	"flux-viewer/ui/mainwindow"
	"flux-viewer/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "Flux Viewer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Printf("Config: %v (using defaults)", err)
	}

	fyneApp := fyneapp.NewWithID("org.fluxviewer.app")
	fyneApp.Settings().SetTheme(&app.ViewerTheme{})

	state := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, state, appPrefs, cfg)

	// Any command line arguments are simulation files to load at startup.
	if len(os.Args) > 1 {
		if failures := state.IngestPaths(os.Args[1:]); failures != nil {
			for path, err := range failures {
				log.Printf("Failed to load %s: %v", path, err)
			}
		}
	}

	win.ShowAndRun()
}
