// Package colorutil provides the shared layer color palette for the flux
// viewer application.
package colorutil

import "image/color"

// Common colors used throughout the application.
var (
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Palette is the fixed ordered set of layer colors. A layer's color is
// derived from its current position in the store modulo the palette size,
// so the palette only needs to be visually distinct, not large.
var Palette = []color.RGBA{
	{R: 255, G: 0, B: 0, A: 255},     // red
	{R: 0, G: 0, B: 255, A: 255},     // blue
	{R: 144, G: 238, B: 144, A: 255}, // light green
	{R: 172, G: 77, B: 188, A: 255},  // purple
	{R: 173, G: 216, B: 230, A: 255}, // light blue
	{R: 240, G: 230, B: 140, A: 255}, // khaki
	{R: 118, G: 77, B: 188, A: 255},  // violet
	{R: 0, G: 255, B: 0, A: 255},     // green
	{R: 255, G: 128, B: 128, A: 255}, // light red
	{R: 0, G: 0, B: 139, A: 255},     // dark blue
	{R: 255, G: 255, B: 0, A: 255},   // yellow
}

// ForIndex returns the palette color for a layer at the given position.
// Negative indices map to the first color so callers never get a panic out
// of a display helper.
func ForIndex(i int) color.RGBA {
	if i < 0 {
		i = 0
	}
	return Palette[i%len(Palette)]
}
