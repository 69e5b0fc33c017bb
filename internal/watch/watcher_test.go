package watch

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func tempScene(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	path := filepath.Join(dir, "board.cirkit")
	if err := os.WriteFile(path, []byte("(cirkit_scene (version 1))\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestReportsChangesAfterDebounce(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify keeps Windows goroutines that goleak cannot track")
	}
	defer goleak.VerifyNone(t)

	path := tempScene(t)
	changed := make(chan string, 4)
	fw, err := New(path, func(p string) { changed <- p }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	fw.SetDebounce(20 * time.Millisecond)
	if err := fw.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer fw.Stop()

	// unrelated files in the same directory are ignored
	other := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := os.WriteFile(path, []byte("(cirkit_scene (version 1))\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case got := <-changed:
		if got != path {
			t.Fatalf("changed path = %q, want %q", got, path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no change reported")
	}

	// the burst of writes collapses into one report
	select {
	case <-changed:
		t.Fatalf("burst reported more than once")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestStopWithoutStart(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify keeps Windows goroutines that goleak cannot track")
	}
	defer goleak.VerifyNone(t)

	fw, err := New(tempScene(t), nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	fw.Stop()
}

func TestContextCancelStopsLoop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify keeps Windows goroutines that goleak cannot track")
	}
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	fw, err := New(tempScene(t), nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := fw.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	cancel()
	fw.Stop()
}

func TestLogsWatchedPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("fsnotify keeps Windows goroutines that goleak cannot track")
	}
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zapcore.DebugLevel)
	path := tempScene(t)
	fw, err := New(path, nil, zap.New(core))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := fw.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	fw.Stop()

	entries := logs.FilterMessage("watching scene file").All()
	if len(entries) != 1 {
		t.Fatalf("got %d start entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["path"]; got != path {
		t.Fatalf("logged path %v, want %q", got, path)
	}
}
