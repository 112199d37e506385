// Package view holds the display mode state machine and the projection of
// samples into plot points.
package view

import "flux-viewer/internal/trajectory"

// Mode selects which quantity of a sample is plotted against x.
type Mode int

const (
	// ModeFlux plots the primary quantity y.
	ModeFlux Mode = iota
	// ModeField plots the derivative y'.
	ModeField
)

// String returns the user-facing label for the mode.
func (m Mode) String() string {
	if m == ModeField {
		return "Field"
	}
	return "Flux"
}

// Point is one projected 2D plot point.
type Point struct {
	X float64
	Y float64
}

// Controller tracks the active display mode and the one-shot bounds-reset
// signal the renderer consumes when the projection changes shape.
type Controller struct {
	mode               Mode
	pendingBoundsReset bool
}

// NewController creates a controller in ModeFlux.
func NewController() *Controller {
	return &Controller{}
}

// Mode returns the active display mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// SetMode switches the display mode. Switching to the already-active mode
// is a no-op; an actual change arms the bounds reset so the next render
// pass refits the plot to the newly selected projection.
func (c *Controller) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.mode = m
	c.pendingBoundsReset = true
}

// ConsumeBoundsReset returns whether a bounds reset is pending and clears
// the flag. The renderer calls this once per frame; a second call without
// an intervening mode change returns false.
func (c *Controller) ConsumeBoundsReset() bool {
	pending := c.pendingBoundsReset
	c.pendingBoundsReset = false
	return pending
}

// ProjectLayer maps samples to plot points under the active mode: (x, y)
// for flux, (x, y') for field. Order and count are preserved.
func (c *Controller) ProjectLayer(samples []trajectory.Sample) []Point {
	points := make([]Point, len(samples))
	for i, s := range samples {
		points[i].X = s.X
		if c.mode == ModeField {
			points[i].Y = s.YPrime
		} else {
			points[i].Y = s.Y
		}
	}
	return points
}
