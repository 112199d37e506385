// Package store owns the set of loaded trajectory layers: their samples,
// display names, and visibility flags.
package store

import (
	"fmt"
	"image/color"

	"flux-viewer/internal/trajectory"
	"flux-viewer/pkg/colorutil"
)

// IndexError reports a layer index outside the store's current range.
// The UI only issues indices it enumerated the same frame, so seeing this
// error means a caller bug, not a user mistake.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("layer index %d out of range (have %d layers)", e.Index, e.Count)
}

// LayerStore is an in-memory, insertion-ordered collection of layers.
//
// Samples, names, and visibility flags are kept as parallel slices that
// always have equal length and move in lock-step; every mutation updates
// all three before returning. A layer's color is not stored: it is derived
// from the layer's current position, so removing a layer shifts the colors
// of the layers after it.
type LayerStore struct {
	samples [][]trajectory.Sample
	names   []string
	visible []bool
}

// New creates an empty layer store.
func New() *LayerStore {
	return &LayerStore{}
}

// Add appends a layer with the given samples and display name. New layers
// start visible. Returns the index of the added layer.
func (s *LayerStore) Add(samples []trajectory.Sample, name string) int {
	s.samples = append(s.samples, samples)
	s.names = append(s.names, name)
	s.visible = append(s.visible, true)
	s.check()
	return len(s.samples) - 1
}

// Remove deletes the layer at index. Later layers shift down one position,
// which also reassigns their derived palette colors.
func (s *LayerStore) Remove(index int) error {
	if err := s.bounds(index); err != nil {
		return err
	}
	s.samples = append(s.samples[:index], s.samples[index+1:]...)
	s.names = append(s.names[:index], s.names[index+1:]...)
	s.visible = append(s.visible[:index], s.visible[index+1:]...)
	s.check()
	return nil
}

// ToggleVisibility flips the visibility flag of the layer at index.
func (s *LayerStore) ToggleVisibility(index int) error {
	if err := s.bounds(index); err != nil {
		return err
	}
	s.visible[index] = !s.visible[index]
	return nil
}

// ClearAll removes every layer.
func (s *LayerStore) ClearAll() {
	s.samples = nil
	s.names = nil
	s.visible = nil
}

// Count returns the number of loaded layers.
func (s *LayerStore) Count() int {
	return len(s.samples)
}

// Samples returns the samples of the layer at index.
func (s *LayerStore) Samples(index int) ([]trajectory.Sample, error) {
	if err := s.bounds(index); err != nil {
		return nil, err
	}
	return s.samples[index], nil
}

// Name returns the display name of the layer at index.
func (s *LayerStore) Name(index int) (string, error) {
	if err := s.bounds(index); err != nil {
		return "", err
	}
	return s.names[index], nil
}

// IsVisible reports whether the layer at index is visible.
func (s *LayerStore) IsVisible(index int) (bool, error) {
	if err := s.bounds(index); err != nil {
		return false, err
	}
	return s.visible[index], nil
}

// ColorFor returns the palette color for the layer at position index.
// Color follows position, not identity; the palette wraps for index
// beyond its size. No error path: any index maps to a color.
func (s *LayerStore) ColorFor(index int) color.RGBA {
	return colorutil.ForIndex(index)
}

func (s *LayerStore) bounds(index int) error {
	if index < 0 || index >= len(s.samples) {
		return &IndexError{Index: index, Count: len(s.samples)}
	}
	return nil
}

// check panics if the parallel slices have drifted apart. Every mutation
// runs it, so a partial update can never become observable.
func (s *LayerStore) check() {
	if len(s.samples) != len(s.names) || len(s.samples) != len(s.visible) {
		panic(fmt.Sprintf("layer store invariant broken: samples=%d names=%d visible=%d",
			len(s.samples), len(s.names), len(s.visible)))
	}
}
