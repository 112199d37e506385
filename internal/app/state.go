// Package app provides application state, ingestion, and events.
package app

import (
	"image/color"
	"sync"

	"flux-viewer/internal/store"
	"flux-viewer/internal/trajectory"
	"flux-viewer/internal/view"
)

// EventType identifies different application events.
type EventType int

const (
	EventLayersChanged EventType = iota
	EventModeChanged
	EventIngestFailed
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the loaded layers, the active view
// mode, and the event listeners the UI registers.
//
// The app is single-threaded in practice (Fyne delivers all UI and drop
// events on the main loop), but the mutex keeps the parallel-slice
// invariant safe if ingestion is ever moved off-thread.
type State struct {
	mu sync.RWMutex

	layers *store.LayerStore
	view   *view.Controller

	listeners map[EventType][]EventListener
}

// NewState creates a new application state with no layers and the flux
// projection active.
func NewState() *State {
	return &State{
		layers:    store.New(),
		view:      view.NewController(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// IngestFile reads, parses, and adds the simulation file at path as a new
// layer. On failure nothing is added and the error is returned.
func (s *State) IngestFile(path string) error {
	result, err := trajectory.ReadFile(path)
	if err != nil {
		return err
	}

	name := trajectory.LayerName(path, result.He, result.Gamma)
	s.mu.Lock()
	s.layers.Add(result.Samples, name)
	s.mu.Unlock()

	s.Emit(EventLayersChanged, nil)
	return nil
}

// IngestPaths ingests each path independently: one bad file never aborts
// the rest or disturbs already loaded layers. Failures are reported per
// path through EventIngestFailed and returned keyed by path.
func (s *State) IngestPaths(paths []string) map[string]error {
	var failures map[string]error
	for _, path := range paths {
		if err := s.IngestFile(path); err != nil {
			if failures == nil {
				failures = make(map[string]error)
			}
			failures[path] = err
			s.Emit(EventIngestFailed, IngestFailure{Path: path, Err: err})
		}
	}
	return failures
}

// IngestFailure is the payload of EventIngestFailed.
type IngestFailure struct {
	Path string
	Err  error
}

// RemoveLayer deletes the layer at index.
func (s *State) RemoveLayer(index int) error {
	s.mu.Lock()
	err := s.layers.Remove(index)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.Emit(EventLayersChanged, nil)
	return nil
}

// ToggleVisibility flips the visibility of the layer at index.
func (s *State) ToggleVisibility(index int) error {
	s.mu.Lock()
	err := s.layers.ToggleVisibility(index)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.Emit(EventLayersChanged, nil)
	return nil
}

// ClearAll removes every loaded layer.
func (s *State) ClearAll() {
	s.mu.Lock()
	s.layers.ClearAll()
	s.mu.Unlock()
	s.Emit(EventLayersChanged, nil)
}

// SetMode switches the display mode. Selecting the active mode again does
// not arm a bounds reset and emits nothing.
func (s *State) SetMode(m view.Mode) {
	s.mu.Lock()
	if s.view.Mode() == m {
		s.mu.Unlock()
		return
	}
	s.view.SetMode(m)
	s.mu.Unlock()
	s.Emit(EventModeChanged, m)
}

// Mode returns the active display mode.
func (s *State) Mode() view.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view.Mode()
}

// ConsumeBoundsReset reports and clears the pending bounds reset. The
// plot calls this exactly once per redraw.
func (s *State) ConsumeBoundsReset() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.ConsumeBoundsReset()
}

// LayerCount returns the number of loaded layers.
func (s *State) LayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layers.Count()
}

// LayerName returns the display name of the layer at index.
func (s *State) LayerName(index int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layers.Name(index)
}

// IsVisible reports whether the layer at index is visible.
func (s *State) IsVisible(index int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layers.IsVisible(index)
}

// ColorFor returns the palette color for the layer at index.
func (s *State) ColorFor(index int) color.RGBA {
	return s.layers.ColorFor(index)
}

// Samples returns the samples of the layer at index.
func (s *State) Samples(index int) ([]trajectory.Sample, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layers.Samples(index)
}

// ProjectLayer returns the plot points of the layer at index under the
// active mode.
func (s *State) ProjectLayer(index int) ([]view.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	samples, err := s.layers.Samples(index)
	if err != nil {
		return nil, err
	}
	return s.view.ProjectLayer(samples), nil
}
