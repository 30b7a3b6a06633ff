package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce window after a change so editor write bursts count as one
const watchSettle = 100 * time.Millisecond

// watchAndRun lints the paths once, then keeps relinting whatever
// changes underneath them until interrupted.
func watchAndRun(logger *zap.Logger, paths []string, opts runOptions) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := addWatchTargets(watcher, paths); err != nil {
		return err
	}

	runOnce := func(target []string) {
		summary, err := runLintProcess(ctx, logger, target, opts)
		if err != nil {
			logger.Error("lint run failed", zap.Error(err))
			return
		}
		logger.Info("lint run complete",
			zap.Int("files", summary.Files),
			zap.Int("errors", summary.Errors),
			zap.Int("warnings", summary.Warnings))
	}

	runOnce(paths)
	logger.Info("watching for changes", zap.Strings("paths", paths))

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldRelint(event) {
				continue
			}
			time.Sleep(watchSettle)
			logger.Info("change detected", zap.String("path", event.Name))
			runOnce([]string{event.Name})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		}
	}
}

// addWatchTargets registers every directory under paths with the
// watcher. File arguments watch their parent directory, since editors
// replace files rather than write them in place.
func addWatchTargets(watcher *fsnotify.Watcher, paths []string) error {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("access %s: %w", path, err)
		}

		if !info.IsDir() {
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			continue
		}

		err = filepath.Walk(path, func(p string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if fi.IsDir() {
				return watcher.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
	return nil
}

// shouldRelint filters watcher noise down to Go source changes.
func shouldRelint(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	return filepath.Ext(event.Name) == ".go"
}
