package app

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"flux-viewer/internal/trajectory"
	"flux-viewer/internal/view"
)

func writeDAT(t *testing.T, dir, name, he, gamma string, rows []string) string {
	t.Helper()
	tokens := make([]string, 21)
	for i := range tokens {
		tokens[i] = strconv.Itoa(i)
	}
	tokens[17] = he + ","
	tokens[20] = gamma + ","
	content := "HDR\n" + strings.Join(tokens, " ") + "\n" + strings.Join(rows, "\n") + "\n"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDAT(t, dir, "RUN01.DAT", "3.5", "0.1", []string{"0 1 0", "1 1.1 0.05"})

	s := NewState()
	var events int
	s.On(EventLayersChanged, func(interface{}) { events++ })

	if err := s.IngestFile(path); err != nil {
		t.Fatalf("IngestFile failed: %v", err)
	}
	if s.LayerCount() != 1 {
		t.Fatalf("got %d layers, want 1", s.LayerCount())
	}
	if events != 1 {
		t.Fatalf("got %d layers-changed events, want 1", events)
	}
	name, err := s.LayerName(0)
	if err != nil {
		t.Fatal(err)
	}
	if name != "RUN01 he=3.5 gamma=0.1" {
		t.Fatalf("got name %q", name)
	}
}

func TestIngestFileFailureMutatesNothing(t *testing.T) {
	dir := t.TempDir()
	good := writeDAT(t, dir, "GOOD.DAT", "3.5", "0.1", []string{"0 1 0"})
	bad := filepath.Join(dir, "BAD.DAT")
	if err := os.WriteFile(bad, []byte("HDR\nshort line\n0 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewState()
	if err := s.IngestFile(good); err != nil {
		t.Fatal(err)
	}
	err := s.IngestFile(bad)
	if err == nil {
		t.Fatalf("ingesting malformed file succeeded")
	}
	if !errors.Is(err, trajectory.ErrMalformedHeader) {
		t.Fatalf("got %v, want ErrMalformedHeader", err)
	}
	if s.LayerCount() != 1 {
		t.Fatalf("failed ingest changed layer count to %d", s.LayerCount())
	}
}

func TestIngestPathsIndependent(t *testing.T) {
	dir := t.TempDir()
	first := writeDAT(t, dir, "A.DAT", "1", "2", []string{"0 0 0"})
	second := filepath.Join(dir, "B.DAT") // missing on purpose
	third := writeDAT(t, dir, "C.DAT", "3", "4", []string{"0 0 0", "1 1 1"})

	s := NewState()
	var failures int
	s.On(EventIngestFailed, func(data interface{}) {
		if f, ok := data.(IngestFailure); ok && f.Path == second {
			failures++
		}
	})

	errs := s.IngestPaths([]string{first, second, third})
	if len(errs) != 1 {
		t.Fatalf("got %d failures, want 1", len(errs))
	}
	if _, ok := errs[second]; !ok {
		t.Fatalf("missing failure for %s", second)
	}
	if failures != 1 {
		t.Fatalf("got %d ingest-failed events, want 1", failures)
	}
	if s.LayerCount() != 2 {
		t.Fatalf("got %d layers, want 2 (one bad file must not abort the batch)", s.LayerCount())
	}
}

func TestClearAllEmptiesStore(t *testing.T) {
	dir := t.TempDir()
	s := NewState()
	for _, n := range []string{"A.DAT", "B.DAT"} {
		path := writeDAT(t, dir, n, "1", "2", []string{"0 0 0"})
		if err := s.IngestFile(path); err != nil {
			t.Fatal(err)
		}
	}
	s.ClearAll()
	if s.LayerCount() != 0 {
		t.Fatalf("got %d layers after ClearAll, want 0", s.LayerCount())
	}
}

func TestSetModeEmitsOnceAndArmsReset(t *testing.T) {
	s := NewState()
	var events int
	s.On(EventModeChanged, func(interface{}) { events++ })

	s.SetMode(view.ModeField)
	s.SetMode(view.ModeField) // same mode, absorbed
	if events != 1 {
		t.Fatalf("got %d mode-changed events, want 1", events)
	}
	if !s.ConsumeBoundsReset() {
		t.Fatalf("mode change did not arm bounds reset")
	}
	if s.ConsumeBoundsReset() {
		t.Fatalf("bounds reset not one-shot")
	}
}

func TestProjectLayerFollowsMode(t *testing.T) {
	dir := t.TempDir()
	path := writeDAT(t, dir, "RUN.DAT", "1", "2", []string{"0 10 100", "1 20 200"})
	s := NewState()
	if err := s.IngestFile(path); err != nil {
		t.Fatal(err)
	}

	points, err := s.ProjectLayer(0)
	if err != nil {
		t.Fatal(err)
	}
	if points[0].Y != 10 || points[1].Y != 20 {
		t.Fatalf("flux projection wrong: %+v", points)
	}

	s.SetMode(view.ModeField)
	points, err = s.ProjectLayer(0)
	if err != nil {
		t.Fatal(err)
	}
	if points[0].Y != 100 || points[1].Y != 200 {
		t.Fatalf("field projection wrong: %+v", points)
	}
}

func TestRemoveLayerShiftsIndices(t *testing.T) {
	dir := t.TempDir()
	s := NewState()
	for _, n := range []string{"A.DAT", "B.DAT", "C.DAT"} {
		path := writeDAT(t, dir, n, "1", "2", []string{"0 0 0"})
		if err := s.IngestFile(path); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.RemoveLayer(0); err != nil {
		t.Fatal(err)
	}
	name, err := s.LayerName(0)
	if err != nil {
		t.Fatal(err)
	}
	if name != "B he=1 gamma=2" {
		t.Fatalf("got %q at index 0 after remove", name)
	}
}
