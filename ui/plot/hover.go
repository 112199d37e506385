package plot

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// Horizontal padding of the chart's plot area in image pixels; must track
// the Background padding used in render.
const (
	plotPadLeft  = 16 + 30 // chart padding plus the y-axis gutter
	plotPadRight = 12
)

// hoverOverlay is a transparent widget stacked over the chart image that
// turns mouse position into a nearest-sample readout.
type hoverOverlay struct {
	widget.BaseWidget
	view *View
}

var _ desktop.Hoverable = (*hoverOverlay)(nil)

func newHoverOverlay(v *View) *hoverOverlay {
	h := &hoverOverlay{view: v}
	h.ExtendBaseWidget(h)
	return h
}

func (h *hoverOverlay) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(widget.NewLabel(""))
}

func (h *hoverOverlay) MouseIn(ev *desktop.MouseEvent) {
	h.MouseMoved(ev)
}

func (h *hoverOverlay) MouseMoved(ev *desktop.MouseEvent) {
	size := h.Size()
	plotW := float64(size.Width) - plotPadLeft - plotPadRight
	if plotW <= 0 {
		return
	}
	frac := (float64(ev.Position.X) - plotPadLeft) / plotW
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	h.view.setReadout(h.view.nearestReadout(frac))
}

func (h *hoverOverlay) MouseOut() {
	h.view.setReadout("")
}
