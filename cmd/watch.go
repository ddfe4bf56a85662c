package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/getlawrence/stenum/internal/logger"
)

const watchDebounce = 150 * time.Millisecond

// watchSources converts the files once, then again whenever one of them is
// written, until ctx is canceled
func watchSources(ctx context.Context, files []string, run *genRun) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories so editors that replace files on save are still seen
	watched := make(map[string]string, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}
		watched[abs] = f
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}

	regenerate := func(names []string) {
		s := logger.StartSpinner(run.log, fmt.Sprintf("Regenerating %d file(s)...", len(names)))
		sources, err := readSources(names, nil)
		if err == nil {
			err = run.convertAll(ctx, sources)
		}
		if err != nil {
			s.Fail()
			run.log.Logf("%v\n", err)
			return
		}
		s.Stop()
		run.log.Logf("✓ %d file(s) regenerated\n", len(names))
	}

	regenerate(files)
	run.log.Log("Watching for changes, press Ctrl+C to stop")

	pending := make(map[string]bool)
	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, tracked := watched[filepath.Clean(event.Name)]
			if !tracked {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				pending[name] = true
				timer.Reset(watchDebounce)
			}
		case <-timer.C:
			names := make([]string, 0, len(pending))
			for _, f := range files {
				if pending[f] {
					names = append(names, f)
				}
			}
			pending = make(map[string]bool)
			if len(names) > 0 {
				regenerate(names)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			run.log.Logf("watch error: %v\n", err)
		}
	}
}
