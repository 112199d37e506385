// Package trajectory provides the sample data model and the .DAT file parser
// for Josephson-junction simulation output.
package trajectory

// Sample is one data point of a simulation run: the independent variable x,
// the flux value y, and its derivative y' (the field). Samples are immutable
// once parsed.
type Sample struct {
	X      float64
	Y      float64
	YPrime float64
}

// ParseResult holds the outcome of parsing one simulation output file:
// the ordered samples plus the he and gamma parameters extracted from the
// file header.
type ParseResult struct {
	Samples []Sample
	He      string
	Gamma   string
}
