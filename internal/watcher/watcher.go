package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
)

var queueExtensions = []string{".url", ".txt"}

type implWatcher struct {
	inputDir      string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	sem           *semaphore
	settle        time.Duration
	wg            sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]bool
}

// Start queues the files already sitting in the input directory, then
// monitors it for new queue files until ctx is cancelled.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Queue watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.inputDir)
	w.logger.Info(ctx, "Supported queue files: %s", strings.Join(queueExtensions, ", "))

	existing, err := w.pending()
	if err != nil {
		return err
	}
	for _, path := range existing {
		w.logger.Info(ctx, "Queued existing file: %s", path)
		if err := w.dispatch(ctx, path); err != nil {
			return w.shutdown(ctx, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return w.shutdown(ctx, ctx.Err())

		case event, ok := <-w.watcher.Events:
			if !ok {
				return w.shutdown(ctx, fmt.Errorf("watcher events channel closed"))
			}

			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !isQueueFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-queue file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New queue file detected: %s", event.Name)

			// Small delay to ensure file is fully written
			select {
			case <-time.After(w.settle):
			case <-ctx.Done():
				return w.shutdown(ctx, ctx.Err())
			}

			if err := w.dispatch(ctx, event.Name); err != nil {
				return w.shutdown(ctx, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return w.shutdown(ctx, fmt.Errorf("watcher errors channel closed"))
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// dispatch runs the handler for path in its own goroutine once a semaphore
// slot is free. A path already being handled is skipped.
func (w *implWatcher) dispatch(ctx context.Context, path string) error {
	if !w.claim(path) {
		w.logger.Debug(ctx, "Already processing: %s", path)
		return nil
	}

	if err := w.sem.acquire(ctx); err != nil {
		w.unclaim(path)
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.release()
		defer w.unclaim(path)

		if err := w.handler(ctx, path); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", path, err)
		}
	}()
	return nil
}

func (w *implWatcher) shutdown(ctx context.Context, err error) error {
	if n := w.sem.inUse(); n > 0 {
		w.logger.Info(ctx, "Waiting for %d queue file(s) to complete...", n)
	}
	w.wg.Wait()
	w.logger.Info(ctx, "Queue watcher stopped")
	return err
}

func (w *implWatcher) claim(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight[path] {
		return false
	}
	w.inFlight[path] = true
	return true
}

func (w *implWatcher) unclaim(path string) {
	w.mu.Lock()
	delete(w.inFlight, path)
	w.mu.Unlock()
}

// pending lists queue files already present in the input directory, oldest name first.
func (w *implWatcher) pending() ([]string, error) {
	entries, err := os.ReadDir(w.inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !isQueueFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(w.inputDir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// isQueueFile checks if the file has a supported queue extension
func isQueueFile(path string) bool {
	if strings.HasPrefix(filepath.Base(path), ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range queueExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
