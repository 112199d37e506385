package panels

import (
	"flux-viewer/internal/app"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// SidePanel provides the right-hand panel with tabbed sections.
type SidePanel struct {
	state     *app.State
	container *container.AppTabs

	layersPanel *LayersPanel
	statsPanel  *StatsPanel
}

// NewSidePanel creates a new side panel.
func NewSidePanel(state *app.State) *SidePanel {
	sp := &SidePanel{
		state: state,
	}

	sp.layersPanel = NewLayersPanel(state)
	sp.statsPanel = NewStatsPanel(state)

	sp.container = container.NewAppTabs(
		container.NewTabItem("Layers", sp.layersPanel.Container()),
		container.NewTabItem("Stats", sp.statsPanel.Container()),
	)

	return sp
}

// Container returns the panel container.
func (sp *SidePanel) Container() fyne.CanvasObject {
	return sp.container
}

// Refresh rebuilds both panels from state.
func (sp *SidePanel) Refresh() {
	sp.layersPanel.Refresh()
	sp.statsPanel.Refresh()
}
