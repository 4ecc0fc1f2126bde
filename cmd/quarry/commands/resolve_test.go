package commands

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatchAndResolve_RerunsOnManifestChange(t *testing.T) {
	dir := t.TempDir()

	var runs atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watchAndResolve(ctx, dir, func() error {
			runs.Add(1)
			return nil
		})
	}()

	waitFor(t, 2*time.Second, func() bool { return runs.Load() >= 1 })

	// Give the watcher a moment to register the directory before the
	// first manifest write.
	time.Sleep(250 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "Project.yml"), []byte("name: App"), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	waitFor(t, 3*time.Second, func() bool { return runs.Load() >= 2 })

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("watchAndResolve: %v", err)
	}
}

func TestWatchAndResolve_ContextCancelStops(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := watchAndResolve(ctx, dir, func() error { return nil })
	if err != nil {
		t.Fatalf("watchAndResolve: %v", err)
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}
