// Package watcher implements file system watching for incremental re-optimization.
package watcher

import (
	"slices"
	"strings"
	"sync"
	"time"
	"unique"

	"go.trai.ch/optic/internal/core/ports"
)

// Debouncer coalesces rapid file system events into batches.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]ports.WatchOp
	timer    *time.Timer
	window   time.Duration
	callback func(events []ports.WatchEvent)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(events []ports.WatchEvent)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]ports.WatchOp),
		window:   window,
		callback: callback,
	}
}

// Add records an event. The latest operation for a path wins.
func (d *Debouncer) Add(event ports.WatchEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[unique.Make(event.Path)] = event.Operation

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	// Check if there's anything to process (protects against race with Flush).
	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	events := d.drain()
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		go d.callback(events)
	}
}

// Flush immediately triggers the callback with all pending events and blocks
// until it returns.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	events := d.drain()
	d.mu.Unlock()

	if len(events) > 0 && d.callback != nil {
		d.callback(events)
	}
}

// drain empties the pending set into a path-sorted slice. Callers hold mu.
func (d *Debouncer) drain() []ports.WatchEvent {
	events := make([]ports.WatchEvent, 0, len(d.pending))
	for handle, op := range d.pending {
		events = append(events, ports.WatchEvent{Path: handle.Value(), Operation: op})
	}
	d.pending = make(map[unique.Handle[string]]ports.WatchOp)

	slices.SortFunc(events, func(a, b ports.WatchEvent) int {
		return strings.Compare(a.Path, b.Path)
	})
	return events
}
