package app

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	TargetOptions
	Verbose bool
}

// Watch optimizes once and then again after every batch of changes below the
// project root. The cache directory and the debug log file, including its rotated
// backups, are not watched. Runs never overlap; a failed run is logged and watching
// continues.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	layout, err := a.resolve(opts.TargetOptions)
	if err != nil {
		return err
	}

	if _, err := a.optimize(ctx, layout, opts.Verbose); err != nil {
		return err
	}

	skip := []string{layout.CacheDir}
	if a.logFile != "" {
		skip = append(skip, a.logFile)
	}
	if err := a.watcher.Start(ctx, layout.Root, skip); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + layout.Root)

	g, ctx := errgroup.WithContext(ctx)
	trigger := make(chan struct{}, 1)

	// Event pump: coalesces events that arrive while a run is in progress.
	g.Go(func() error {
		defer close(trigger)
		for event := range a.watcher.Events() {
			if logFileEvent(a.logFile, event.Path) {
				continue
			}
			select {
			case trigger <- struct{}{}:
			default:
			}
		}
		return nil
	})

	// Sequential re-run loop.
	g.Go(func() error {
		for range trigger {
			if ctx.Err() != nil {
				return nil
			}
			if _, err := a.optimize(ctx, layout, opts.Verbose); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				a.logger.Error(err)
			}
		}
		return nil
	})

	return g.Wait()
}

// logFileEvent reports whether path is the debug log file or one of its rotated
// backups ("<stem>-<timestamp><ext>" in the same directory).
func logFileEvent(logFile, path string) bool {
	if logFile == "" || filepath.Dir(path) != filepath.Dir(logFile) {
		return false
	}
	base := filepath.Base(logFile)
	name := filepath.Base(path)
	if name == base {
		return true
	}
	ext := filepath.Ext(base)
	return strings.HasPrefix(name, strings.TrimSuffix(base, ext)+"-") && strings.HasSuffix(name, ext)
}
