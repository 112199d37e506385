// Package plot renders the visible trajectory layers as an overlaid line
// chart and manages the cached plot bounds.
package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"

	"flux-viewer/internal/app"
	"flux-viewer/internal/config"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 900
	chartHeight = 560
)

// View displays the chart image and owns the cached axis bounds.
//
// Bounds are recomputed from the active projection only when the one-shot
// bounds reset fires (mode switch) or when the layer set changed since the
// last frame; otherwise the cached ranges are reused so panning the data
// set by adding files doesn't jump the viewport scale mid-session.
type View struct {
	state *app.State
	cfg   config.PlotConfig

	img     *fynecanvas.Image
	overlay *hoverOverlay

	baseImg image.Image // last rendered chart without the readout line

	xRange *chart.ContinuousRange
	yRange *chart.ContinuousRange

	dataChanged bool
}

// NewView creates the plot view.
func NewView(state *app.State, cfg config.PlotConfig) *View {
	v := &View{
		state: state,
		cfg:   cfg,
	}
	v.img = fynecanvas.NewImageFromImage(blank(chartWidth, chartHeight))
	v.img.FillMode = fynecanvas.ImageFillContain
	v.img.SetMinSize(fyne.NewSize(400, 300))
	v.overlay = newHoverOverlay(v)
	return v
}

// Container returns the plot area for embedding in layouts.
func (v *View) Container() fyne.CanvasObject {
	if v.cfg.Crosshair {
		return container.NewStack(v.img, v.overlay)
	}
	return container.NewStack(v.img)
}

// DataChanged marks the layer set as changed so the next redraw refits the
// bounds to the data.
func (v *View) DataChanged() {
	v.dataChanged = true
}

// Redraw re-renders the chart. This is the single render pass per frame:
// it consumes the pending bounds reset, so callers must not invoke it
// twice for one event.
func (v *View) Redraw() {
	reset := v.state.ConsumeBoundsReset()
	if reset || v.dataChanged || v.xRange == nil {
		v.refitBounds()
		v.dataChanged = false
	}

	v.baseImg = v.render()
	v.img.Image = v.baseImg
	v.img.Refresh()
}

// refitBounds recomputes the cached axis ranges from the currently visible
// layers under the active projection.
func (v *View) refitBounds() {
	var xs, ys []float64
	for i := 0; i < v.state.LayerCount(); i++ {
		visible, err := v.state.IsVisible(i)
		if err != nil || !visible {
			continue
		}
		points, err := v.state.ProjectLayer(i)
		if err != nil {
			continue
		}
		for _, p := range points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}

	if len(xs) == 0 {
		v.xRange = nil
		v.yRange = nil
		return
	}

	xMin, xMax := dataBounds(xs)
	yMin, yMax := dataBounds(ys)
	nxMin, nxMax := niceAxisBounds(xMin, xMax)
	nyMin, nyMax := niceAxisBounds(yMin, yMax)
	v.xRange = &chart.ContinuousRange{Min: nxMin, Max: nxMax}
	v.yRange = &chart.ContinuousRange{Min: nyMin, Max: nyMax}
}

// render draws the visible layers into a chart image.
func (v *View) render() image.Image {
	var series []chart.Series
	for i := 0; i < v.state.LayerCount(); i++ {
		visible, err := v.state.IsVisible(i)
		if err != nil || !visible {
			continue
		}
		points, err := v.state.ProjectLayer(i)
		if err != nil || len(points) == 0 {
			continue
		}
		name, _ := v.state.LayerName(i)
		col := v.state.ColorFor(i)

		xv := make([]float64, len(points))
		yv := make([]float64, len(points))
		for j, p := range points {
			xv[j] = p.X
			yv[j] = p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xv,
			YValues: yv,
			Style: chart.Style{
				StrokeWidth: v.cfg.LineWidth,
				StrokeColor: drawing.Color{R: col.R, G: col.G, B: col.B, A: col.A},
			},
		})
	}

	if len(series) == 0 {
		return drawReadout(blank(chartWidth, chartHeight), "Open or drop .DAT files to plot trajectories")
	}

	gridStyle := chart.Style{Hidden: true}
	if v.cfg.ShowGrid {
		gridStyle = chart.Style{
			StrokeWidth: 1,
			StrokeColor: drawing.Color{R: 80, G: 80, B: 80, A: 90},
		}
	}
	ch := chart.Chart{
		Title:      v.state.Mode().String(),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 28}},
		Width:      chartWidth,
		Height:     chartHeight,
		XAxis: chart.XAxis{
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		Series: series,
	}
	if v.xRange != nil {
		ch.XAxis.Range = v.xRange
	}
	if v.yRange != nil {
		ch.YAxis.Range = v.yRange
		ch.YAxis.Ticks = niceTicks(v.yRange.Min, v.yRange.Max, 6)
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		log.Printf("chart render failed: %v", err)
		return blank(chartWidth, chartHeight)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		log.Printf("chart decode failed: %v", err)
		return blank(chartWidth, chartHeight)
	}
	return img
}

// setReadout annotates the cached chart image with the crosshair readout
// text. An empty text restores the plain chart. The chart itself is not
// re-rendered.
func (v *View) setReadout(text string) {
	if v.baseImg == nil {
		return
	}
	if text == "" {
		v.img.Image = v.baseImg
	} else {
		v.img.Image = drawReadout(v.baseImg, text)
	}
	v.img.Refresh()
}

// nearestReadout maps a horizontal fraction of the plot area to the
// nearest sample of the first visible layer and formats its coordinates.
// Returns "" when nothing is plotted.
func (v *View) nearestReadout(frac float64) string {
	if v.xRange == nil {
		return ""
	}
	targetX := v.xRange.Min + (v.xRange.Max-v.xRange.Min)*frac

	for i := 0; i < v.state.LayerCount(); i++ {
		visible, err := v.state.IsVisible(i)
		if err != nil || !visible {
			continue
		}
		points, err := v.state.ProjectLayer(i)
		if err != nil || len(points) == 0 {
			continue
		}
		best := points[0]
		bestD := abs(best.X - targetX)
		for _, p := range points[1:] {
			if d := abs(p.X - targetX); d < bestD {
				bestD = d
				best = p
			}
		}
		return fmt.Sprintf("x=%.4g  %s=%.4g", best.X, v.state.Mode(), best.Y)
	}
	return ""
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
