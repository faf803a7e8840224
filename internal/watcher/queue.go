package watcher

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/internal/processor"
)

// NewQueueHandler returns the EventHandler that drains one queue file: it is
// moved to paths.processing, every URL in it runs through proc, and the file
// ends up in paths.archived.
func NewQueueHandler(paths config.PathsConfig, proc processor.Processor, log logger.Logger) EventHandler {
	q := &queueHandler{
		paths:  paths,
		proc:   proc,
		logger: log,
		now:    time.Now,
	}
	return q.handle
}

type queueHandler struct {
	paths  config.PathsConfig
	proc   processor.Processor
	logger logger.Logger
	now    func() time.Time
}

func (q *queueHandler) handle(ctx context.Context, path string) error {
	working := filepath.Join(q.paths.Processing, filepath.Base(path))
	if err := moveFile(path, working); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Another dispatch of the same file already took it.
			q.logger.Debug(ctx, "Queue file already taken: %s", path)
			return nil
		}
		return fmt.Errorf("move to processing: %w", err)
	}

	f, err := os.Open(working)
	if err != nil {
		return fmt.Errorf("open queue file: %w", err)
	}
	urls, err := parseQueue(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("parse queue file: %w", err)
	}

	q.logger.Info(ctx, "Processing %d URL(s) from %s", len(urls), filepath.Base(path))

	var failed int
	for i, url := range urls {
		if ctx.Err() != nil {
			// Leave the file in processing so the remaining URLs are not lost.
			return ctx.Err()
		}

		q.logger.Info(ctx, "[%d/%d] %s", i+1, len(urls), url)
		if _, err := q.proc.Process(ctx, url); err != nil {
			failed++
			q.logger.Error(ctx, "Failed to process %s: %v", url, err)
		}
	}

	archived := filepath.Join(q.paths.Archived, q.now().Format("20060102_150405")+"_"+filepath.Base(path))
	if err := moveFile(working, archived); err != nil {
		return fmt.Errorf("archive queue file: %w", err)
	}

	q.logger.Info(ctx, "Archived %s (%d ok, %d failed)", archived, len(urls)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d URLs failed", failed, len(urls))
	}
	return nil
}

// parseQueue reads one URL per line, skipping blank lines and # comments.
func parseQueue(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}

// moveFile renames src to dst, creating dst's directory first.
func moveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return os.Rename(src, dst)
}
