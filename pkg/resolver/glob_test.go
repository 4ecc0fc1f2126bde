package resolver

import (
	"reflect"
	"testing"

	"github.com/quarry-build/quarry/pkg/diag"
	"github.com/quarry-build/quarry/pkg/vfs"
)

func TestSessionGlob_Predicates(t *testing.T) {
	fs := testFS(t, map[string]string{
		"/ws/a.swift":     "a",
		"/ws/logo.png":    "p",
		"/ws/Sub/b.swift": "b",
	})
	s := newTestSession(fs, nil)

	files, err := s.glob("/ws", "*", s.isFile)
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if !reflect.DeepEqual(files, []string{"/ws/a.swift", "/ws/logo.png"}) {
		t.Errorf("files = %v", files)
	}

	dirs, err := s.glob("/ws", "*", s.isDirectory)
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if !reflect.DeepEqual(dirs, []string{"/ws/Sub"}) {
		t.Errorf("dirs = %v", dirs)
	}

	resources, err := s.glob("/ws", "*", s.isResource)
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if !reflect.DeepEqual(resources, []string{"/ws/logo.png"}) {
		t.Errorf("resources = %v", resources)
	}
}

func TestSessionGlob_MemoizesExpansion(t *testing.T) {
	fs := testFS(t, map[string]string{"/ws/a.swift": "a"})
	counter := &countingFS{FS: fs}
	s := newTestSession(counter, nil)

	for i := 0; i < 3; i++ {
		if _, err := s.expand("/ws", "*.swift"); err != nil {
			t.Fatalf("expand: %v", err)
		}
	}
	if counter.globCalls != 1 {
		t.Errorf("expected 1 underlying glob call, got %d", counter.globCalls)
	}

	// A different pattern is a fresh expansion.
	if _, err := s.expand("/ws", "*.png"); err != nil {
		t.Fatalf("expand: %v", err)
	}
	if counter.globCalls != 2 {
		t.Errorf("expected 2 underlying glob calls, got %d", counter.globCalls)
	}
}

func TestSessionGlob_WarnsOncePerPattern(t *testing.T) {
	fs := testFS(t, map[string]string{"/ws/a.swift": "a"})
	collector := diag.NewCollector()
	s := newTestSession(fs, collector)

	for i := 0; i < 3; i++ {
		if _, err := s.glob("/ws", "*.md", nil); err != nil {
			t.Fatalf("glob: %v", err)
		}
	}
	if _, err := s.glob("/ws", "*.rst", nil); err != nil {
		t.Fatalf("glob: %v", err)
	}

	warnings := collector.Warnings()
	if len(warnings) != 2 {
		t.Fatalf("expected one warning per empty pattern, got %v", warnings)
	}
	if warnings[0].Path != "*.md" || warnings[1].Path != "*.rst" {
		t.Errorf("warnings should name the original patterns: %v", warnings)
	}
}

// countingFS counts Glob calls on the wrapped FS.
type countingFS struct {
	vfs.FS
	globCalls int
}

func (c *countingFS) Glob(dir, pattern string) ([]string, error) {
	c.globCalls++
	return c.FS.Glob(dir, pattern)
}
