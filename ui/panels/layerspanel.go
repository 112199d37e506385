// Package panels provides UI panels for the application.
package panels

import (
	"log"

	"flux-viewer/internal/app"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LayersPanel lists the loaded layers with their palette color, a
// visibility toggle, and a remove button.
type LayersPanel struct {
	state *app.State

	rows   *fyne.Container
	scroll fyne.CanvasObject
}

// NewLayersPanel creates a new layers panel.
func NewLayersPanel(state *app.State) *LayersPanel {
	lp := &LayersPanel{
		state: state,
		rows:  container.NewVBox(),
	}
	lp.scroll = container.NewVScroll(lp.rows)
	lp.Refresh()
	return lp
}

// Container returns the panel container.
func (lp *LayersPanel) Container() fyne.CanvasObject {
	return lp.scroll
}

// Refresh rebuilds the layer rows from the store. Indices in the button
// callbacks are the indices enumerated here, so they are valid until the
// next layers-changed event rebuilds the panel.
func (lp *LayersPanel) Refresh() {
	lp.rows.Objects = nil

	for i := 0; i < lp.state.LayerCount(); i++ {
		index := i

		name, err := lp.state.LayerName(index)
		if err != nil {
			log.Printf("layers panel: %v", err)
			continue
		}
		visible, err := lp.state.IsVisible(index)
		if err != nil {
			log.Printf("layers panel: %v", err)
			continue
		}

		label := fynecanvas.NewText(name, lp.state.ColorFor(index))
		label.TextSize = 14

		toggleText := "Hide"
		if !visible {
			toggleText = "Show"
		}
		toggleBtn := widget.NewButton(toggleText, func() {
			if err := lp.state.ToggleVisibility(index); err != nil {
				log.Printf("toggle visibility: %v", err)
			}
		})
		removeBtn := widget.NewButton("X", func() {
			if err := lp.state.RemoveLayer(index); err != nil {
				log.Printf("remove layer: %v", err)
			}
		})

		row := container.NewBorder(nil, nil, nil,
			container.NewHBox(toggleBtn, removeBtn),
			label,
		)
		lp.rows.Add(row)
	}

	if len(lp.rows.Objects) == 0 {
		lp.rows.Add(widget.NewLabel("No layers loaded"))
	}
	lp.rows.Refresh()
}
