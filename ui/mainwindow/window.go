// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"path/filepath"

	"flux-viewer/internal/app"
	"flux-viewer/internal/config"
	"flux-viewer/internal/version"
	"flux-viewer/internal/view"
	"flux-viewer/ui/panels"
	"flux-viewer/ui/plot"
	"flux-viewer/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const prefKeyLastDir = "lastDirectory"

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app   fyne.App
	state *app.State
	prefs *prefs.Prefs

	plotView  *plot.View
	sidePanel *panels.SidePanel
	statusBar *widget.Label
	modeRadio *widget.RadioGroup
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs, cfg config.Config) *MainWindow {
	win := fyneApp.NewWindow("Flux Viewer")
	win.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  p,
	}

	mw.setupUI(cfg)
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.setupDragAndDrop()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI(cfg config.Config) {
	mw.plotView = plot.NewView(mw.state, cfg.Plot)
	mw.sidePanel = panels.NewSidePanel(mw.state)
	mw.statusBar = widget.NewLabel("Ready")

	// Flux plots the value column, Field its derivative. Re-selecting the
	// active mode is absorbed by the state and never refits the plot.
	mw.modeRadio = widget.NewRadioGroup([]string{"Flux", "Field"}, func(selected string) {
		switch selected {
		case "Field":
			mw.state.SetMode(view.ModeField)
		default:
			mw.state.SetMode(view.ModeFlux)
		}
	})
	mw.modeRadio.Horizontal = true
	mw.modeRadio.SetSelected("Flux")

	plotArea := container.NewBorder(
		container.NewHBox(widget.NewLabel("Mode:"), mw.modeRadio), // top
		nil, nil, nil,
		mw.plotView.Container(), // center
	)

	split := container.NewHSplit(plotArea, mw.sidePanel.Container())
	split.SetOffset(0.68)

	content := container.NewBorder(
		nil,
		container.NewPadded(mw.statusBar), // bottom
		nil, nil,
		split, // center
	)

	mw.SetContent(content)
	mw.plotView.Redraw()
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", mw.onOpenFile),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear", mw.onClear),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventLayersChanged, func(data interface{}) {
		mw.sidePanel.Refresh()
		mw.plotView.DataChanged()
		mw.plotView.Redraw()
		mw.updateStatus(fmt.Sprintf("%d layer(s) loaded", mw.state.LayerCount()))
	})

	mw.state.On(app.EventModeChanged, func(data interface{}) {
		mw.plotView.Redraw()
		mw.sidePanel.Refresh()
		mw.updateStatus("Mode: " + mw.state.Mode().String())
	})

	mw.state.On(app.EventIngestFailed, func(data interface{}) {
		failure, ok := data.(app.IngestFailure)
		if !ok {
			return
		}
		dialog.ShowError(fmt.Errorf("%s: %w", filepath.Base(failure.Path), failure.Err), mw.Window)
		mw.updateStatus("Failed to load " + filepath.Base(failure.Path))
	})
}

// setupDragAndDrop ingests files dropped onto the window. Each file is
// independent; a bad file raises its own error dialog and the rest still
// load.
func (mw *MainWindow) setupDragAndDrop() {
	mw.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		paths := make([]string, 0, len(uris))
		for _, uri := range uris {
			paths = append(paths, uri.Path())
		}
		mw.state.IngestPaths(paths)
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Could not save preferences: " + err.Error())
	}
}

// Menu action handlers

func (mw *MainWindow) onOpenFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		mw.state.IngestPaths([]string{path})
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".DAT", ".dat"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onClear() {
	mw.state.ClearAll()
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Flux Viewer",
		fmt.Sprintf("Flux Viewer v%s\n\n"+
			"Viewer for Josephson-junction simulation output.\n"+
			"Overlays flux/field trajectories from .DAT files.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
