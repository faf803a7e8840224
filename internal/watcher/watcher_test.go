package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

func TestParseQueue(t *testing.T) {
	input := `# weekend batch
https://www.youtube.com/watch?v=abc123

   https://youtu.be/xyz789   
# https://www.youtube.com/watch?v=skipped
`
	got, err := parseQueue(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parseQueue() error = %v", err)
	}

	want := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://youtu.be/xyz789",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseQueue() = %v, want %v", got, want)
	}
}

func TestIsQueueFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"data/input/batch.url", true},
		{"data/input/batch.TXT", true},
		{"data/input/video.mp4", false},
		{"data/input/.batch.txt", false},
		{"data/input/noext", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isQueueFile(tt.path); got != tt.want {
				t.Errorf("isQueueFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

type fakeProcessor struct {
	mu   sync.Mutex
	urls []string
	fail map[string]bool
}

func (f *fakeProcessor) Process(ctx context.Context, url string) (*model.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	if f.fail[url] {
		return nil, errors.New("download audio: boom")
	}
	return &model.Result{URL: url}, nil
}

func testPaths(t *testing.T) config.PathsConfig {
	t.Helper()
	root := t.TempDir()
	paths := config.PathsConfig{
		Input:      filepath.Join(root, "input"),
		Processing: filepath.Join(root, "processing"),
		Archived:   filepath.Join(root, "archived"),
	}
	if err := os.MkdirAll(paths.Input, 0755); err != nil {
		t.Fatal(err)
	}
	return paths
}

func writeQueue(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestQueueHandler(t *testing.T) {
	paths := testPaths(t)
	proc := &fakeProcessor{fail: map[string]bool{"https://youtu.be/bad": true}}
	q := &queueHandler{
		paths:  paths,
		proc:   proc,
		logger: logger.NewNop(),
		now:    func() time.Time { return time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC) },
	}

	path := writeQueue(t, paths.Input, "batch.url", "https://youtu.be/good\nhttps://youtu.be/bad\n")

	err := q.handle(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "1 of 2") {
		t.Errorf("handle() error = %v, want 1 of 2 failed", err)
	}

	if len(proc.urls) != 2 {
		t.Errorf("processed %v, want both URLs", proc.urls)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("queue file still in input dir")
	}
	if _, err := os.Stat(filepath.Join(paths.Processing, "batch.url")); !os.IsNotExist(err) {
		t.Error("queue file left in processing dir")
	}
	if _, err := os.Stat(filepath.Join(paths.Archived, "20261018_080000_batch.url")); err != nil {
		t.Errorf("queue file not archived: %v", err)
	}
}

func TestQueueHandlerAlreadyTaken(t *testing.T) {
	paths := testPaths(t)
	proc := &fakeProcessor{}
	handler := NewQueueHandler(paths, proc, logger.NewNop())

	path := writeQueue(t, paths.Input, "twice.url", "https://youtu.be/a\n")
	if err := handler(context.Background(), path); err != nil {
		t.Fatalf("first handle() error = %v", err)
	}

	// A second dispatch of the same path finds the file gone and is a no-op.
	if err := handler(context.Background(), path); err != nil {
		t.Errorf("second handle() error = %v, want nil", err)
	}
	if len(proc.urls) != 1 {
		t.Errorf("processed %v, want the URL once", proc.urls)
	}
}

func TestWatcherStart(t *testing.T) {
	paths := testPaths(t)
	writeQueue(t, paths.Input, "existing.url", "https://youtu.be/a\n")
	writeQueue(t, paths.Input, "notes.md", "ignored")

	handled := make(chan string, 4)
	handler := func(ctx context.Context, path string) error {
		handled <- filepath.Base(path)
		return nil
	}

	w, err := New(paths.Input, handler, logger.NewNop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settle = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	expect := func(name string) {
		t.Helper()
		select {
		case got := <-handled:
			if got != name {
				t.Errorf("handled %q, want %q", got, name)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for %s", name)
		}
	}

	expect("existing.url")
	writeQueue(t, paths.Input, "new.txt", "https://youtu.be/b\n")
	expect("new.txt")

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Start() did not return after cancel")
	}
}

func TestSemaphore(t *testing.T) {
	sem := newSemaphore(1)
	if err := sem.acquire(context.Background()); err != nil {
		t.Fatalf("acquire() error = %v", err)
	}
	if sem.inUse() != 1 {
		t.Errorf("inUse() = %d, want 1", sem.inUse())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := sem.acquire(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("acquire() on full semaphore error = %v, want DeadlineExceeded", err)
	}

	sem.release()
	if sem.inUse() != 0 {
		t.Errorf("inUse() = %d after release, want 0", sem.inUse())
	}
}
