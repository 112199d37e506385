package panels

import (
	"fmt"
	"log"

	"flux-viewer/internal/app"
	"flux-viewer/internal/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"gonum.org/v1/gonum/stat"
)

// StatsPanel shows summary statistics of each layer's projected quantity
// under the active mode.
type StatsPanel struct {
	state *app.State

	rows   *fyne.Container
	scroll fyne.CanvasObject
}

// NewStatsPanel creates a new stats panel.
func NewStatsPanel(state *app.State) *StatsPanel {
	sp := &StatsPanel{
		state: state,
		rows:  container.NewVBox(),
	}
	sp.scroll = container.NewVScroll(sp.rows)
	sp.Refresh()
	return sp
}

// Container returns the panel container.
func (sp *StatsPanel) Container() fyne.CanvasObject {
	return sp.scroll
}

// Refresh recomputes the statistics rows.
func (sp *StatsPanel) Refresh() {
	sp.rows.Objects = nil
	mode := sp.state.Mode().String()

	for i := 0; i < sp.state.LayerCount(); i++ {
		name, err := sp.state.LayerName(i)
		if err != nil {
			log.Printf("stats panel: %v", err)
			continue
		}
		points, err := sp.state.ProjectLayer(i)
		if err != nil {
			log.Printf("stats panel: %v", err)
			continue
		}

		card := widget.NewCard(name, "", widget.NewLabel(describeProjection(mode, points)))
		sp.rows.Add(card)
	}

	if len(sp.rows.Objects) == 0 {
		sp.rows.Add(widget.NewLabel("No layers loaded"))
	}
	sp.rows.Refresh()
}

// describeProjection summarizes the projected values of one layer.
func describeProjection(mode string, points []view.Point) string {
	if len(points) == 0 {
		return "no samples"
	}
	ys := make([]float64, len(points))
	for i, p := range points {
		ys[i] = p.Y
	}
	mean, std := stat.MeanStdDev(ys, nil)
	return fmt.Sprintf("%d samples\nx: %.4g … %.4g\n%s mean: %.4g\n%s stddev: %.4g",
		len(points), points[0].X, points[len(points)-1].X, mode, mean, mode, std)
}
