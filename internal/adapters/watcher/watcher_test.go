package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/optic/internal/adapters/watcher"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/optic/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const testWindow = 20 * time.Millisecond

func startWatcher(t *testing.T, root string, skip []string) (*watcher.Watcher, <-chan ports.WatchEvent) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w, err := watcher.NewWatcher(testWindow, log)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx, root, skip))

	out := make(chan ports.WatchEvent, 64)
	go func() {
		defer close(out)
		for event := range w.Events() {
			out <- event
		}
	}()

	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})
	return w, out
}

func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()

	timeout := time.After(5 * time.Second)
	for {
		select {
		case event, ok := <-events:
			require.True(t, ok, "event stream closed before %s was seen", path)
			if event.Path == path {
				return event
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "apps", "frontend"), 0o750))

	_, events := startWatcher(t, root, nil)

	target := filepath.Join(root, "apps", "frontend", "settings.yml")
	require.NoError(t, os.WriteFile(target, []byte("all: {}\n"), 0o600))

	event := waitFor(t, events, target)
	assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, event.Operation)
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	_, events := startWatcher(t, root, nil)

	dir := filepath.Join(root, "plugins")
	require.NoError(t, os.Mkdir(dir, 0o750))
	waitFor(t, events, dir)

	// Give the watcher a moment to register the new directory.
	time.Sleep(100 * time.Millisecond)

	target := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(target, []byte("x: 1\n"), 0o600))
	waitFor(t, events, target)
}

func TestWatcher_IgnoresSkippedDirectories(t *testing.T) {
	root := t.TempDir()
	cacheDir := filepath.Join(root, "cache")
	require.NoError(t, os.MkdirAll(filepath.Join(cacheDir, "frontend"), 0o750))

	_, events := startWatcher(t, root, []string{cacheDir})

	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "frontend", "configuration.json"), []byte("{}"), 0o600))
	marker := filepath.Join(root, "marker.txt")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o600))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case event := <-events:
			assert.NotContains(t, event.Path, cacheDir)
			if event.Path == marker {
				return
			}
		case <-timeout:
			t.Fatal("marker event not received")
		}
	}
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	root := t.TempDir()
	w, events := startWatcher(t, root, nil)

	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after Stop")
	}
}
