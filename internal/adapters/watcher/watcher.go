package watcher

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/optic/internal/core/domain"
	"go.trai.ch/optic/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// skipDirectoryNames are directory names that are never watched.
var skipDirectoryNames = map[string]bool{
	".git":         true,
	".jj":          true,
	".svn":         true,
	".hg":          true,
	"node_modules": true,
}

const eventChannelBuffer = 100

// Watcher implements recursive file system watching using fsnotify. Raw events
// are coalesced by a Debouncer before they reach Events.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	logger    ports.Logger

	skip     []string
	events   chan ports.WatchEvent
	done     chan struct{}
	doneOnce sync.Once
}

// NewWatcher creates a new file system watcher that batches events over window.
func NewWatcher(window time.Duration, logger ports.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		logger:    logger,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start begins watching root recursively. Directories listed in skip, and
// everything below them, are ignored.
func (w *Watcher) Start(ctx context.Context, root string, skip []string) error {
	w.skip = make([]string, 0, len(skip))
	for _, s := range skip {
		w.skip = append(w.skip, filepath.Clean(s))
	}

	for dir := range w.watchRecursively(root) {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
		}
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.close()
	return w.fsWatcher.Close()
}

// Events returns an iterator of debounced file system events. It ends when the
// watcher stops or its context is cancelled.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for {
			select {
			case <-w.done:
				return
			case event := <-w.events:
				if !yield(event) {
					return
				}
			}
		}
	}
}

func (w *Watcher) close() {
	w.doneOnce.Do(func() { close(w.done) })
}

// emit forwards a debounced batch to the events channel.
func (w *Watcher) emit(events []ports.WatchEvent) {
	for _, event := range events {
		select {
		case w.events <- event:
		case <-w.done:
			return
		}
	}
}

// watchRecursively walks the directory tree and yields all directories.
func (w *Watcher) watchRecursively(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // unreadable directories are not watched
			}
			if !d.IsDir() {
				return nil
			}
			if w.shouldSkip(path) {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// shouldSkip reports whether path is a skipped directory or lies below one.
func (w *Watcher) shouldSkip(path string) bool {
	if skipDirectoryNames[filepath.Base(path)] {
		return true
	}
	path = filepath.Clean(path)
	for _, s := range w.skip {
		if path == s || strings.HasPrefix(path, s+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// processEvents converts raw fsnotify events and feeds them to the debouncer.
func (w *Watcher) processEvents(ctx context.Context) {
	defer w.close()
	defer w.debouncer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.shouldSkip(event.Name) {
				continue
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}
			w.debouncer.Add(watchEvent)

			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for dir := range w.watchRecursively(event.Name) {
						_ = w.fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
