package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/optic/internal/adapters/watcher"
	"go.trai.ch/optic/internal/core/ports"
)

func write(path string) ports.WatchEvent {
	return ports.WatchEvent{Path: path, Operation: ports.OpWrite}
}

func TestDebouncer_Add_SingleEvent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received []ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(events []ports.WatchEvent) {
			callCount++
			received = events
		})

		d.Add(write("/project/apps/frontend/modules/default/templates/indexSuccess.php"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, received, 1)
		assert.Equal(t, "/project/apps/frontend/modules/default/templates/indexSuccess.php", received[0].Path)
		assert.Equal(t, ports.OpWrite, received[0].Operation)
	})
}

func TestDebouncer_Add_CoalescedAndSorted(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received []ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(events []ports.WatchEvent) {
			callCount++
			received = events
		})

		d.Add(write("/project/c.yml"))
		d.Add(write("/project/a.yml"))
		d.Add(write("/project/b.yml"))

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		require.Len(t, received, 3)
		assert.Equal(t, "/project/a.yml", received[0].Path)
		assert.Equal(t, "/project/b.yml", received[1].Path)
		assert.Equal(t, "/project/c.yml", received[2].Path)
	})
}

func TestDebouncer_Add_LatestOperationWins(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var received []ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(events []ports.WatchEvent) {
			received = events
		})

		d.Add(ports.WatchEvent{Path: "/project/a.yml", Operation: ports.OpCreate})
		d.Add(ports.WatchEvent{Path: "/project/a.yml", Operation: ports.OpWrite})
		d.Add(ports.WatchEvent{Path: "/project/a.yml", Operation: ports.OpRemove})

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, received, 1)
		assert.Equal(t, ports.OpRemove, received[0].Operation)
	})
}

func TestDebouncer_Add_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var mu sync.Mutex

		d := watcher.NewDebouncer(100*time.Millisecond, func([]ports.WatchEvent) {
			mu.Lock()
			callCount++
			mu.Unlock()
		})

		d.Add(write("/project/a.yml"))
		time.Sleep(50 * time.Millisecond)

		d.Add(write("/project/b.yml"))
		time.Sleep(50 * time.Millisecond)

		synctest.Wait()
		mu.Lock()
		count := callCount
		mu.Unlock()
		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		count = callCount
		mu.Unlock()
		require.Equal(t, 1, count)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var received []ports.WatchEvent

		d := watcher.NewDebouncer(100*time.Millisecond, func(events []ports.WatchEvent) {
			callCount++
			received = events
		})

		d.Add(write("/project/a.yml"))
		d.Add(write("/project/b.yml"))
		d.Flush()

		require.Equal(t, 1, callCount)
		require.Len(t, received, 2)

		// The original timer must not deliver the batch again.
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_Flush_Empty(t *testing.T) {
	var callCount int

	d := watcher.NewDebouncer(100*time.Millisecond, func([]ports.WatchEvent) {
		callCount++
	})
	d.Flush()

	assert.Equal(t, 0, callCount)
}

func TestDebouncer_Flush_AfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(50*time.Millisecond, func([]ports.WatchEvent) {
			callCount++
		})

		d.Add(write("/project/a.yml"))

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		require.Equal(t, 1, callCount)

		d.Flush()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)

		d.Add(write("/project/a.yml"))

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add(write("/project/b.yml"))
		d.Flush()
	})
}
