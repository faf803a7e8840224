package fetcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
	"github.com/nguyentantai21042004/guide-transcriber/pkg/executor"
)

var youtubeHosts = []string{"youtube.com", "youtu.be"}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", false},
		{"mobile host", "https://m.youtube.com/watch?v=abc", false},
		{"other host", "https://vimeo.com/12345", true},
		{"lookalike host", "https://notyoutube.com/watch?v=abc", true},
		{"no scheme", "youtube.com/watch?v=abc", true},
		{"ftp scheme", "ftp://youtube.com/watch?v=abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url, youtubeHosts)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("error %v is not ErrInvalidURL", err)
			}
		})
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=PL1&v=abc123", "abc123"},
		{"https://youtu.be/xyz789?t=42", "xyz789"},
		{"https://www.youtube.com/shorts/short1", "short1"},
		{"https://www.youtube.com/embed/emb1", "emb1"},
		{"https://www.youtube.com/channel/UC123", model.Unknown},
		{"https://youtu.be/", model.Unknown},
	}

	for _, tt := range tests {
		if got := VideoID(tt.url); got != tt.want {
			t.Errorf("VideoID(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func newTestFetcher(mock *executor.Mock) Fetcher {
	cfg := config.Default().Fetcher
	return New(cfg, mock, logger.NewNop())
}

func TestFetch(t *testing.T) {
	dir := t.TempDir()
	mock := &executor.Mock{
		ExecuteFunc: func(ctx context.Context, _ string, name string, args ...string) (string, error) {
			if err := os.WriteFile(filepath.Join(dir, "audio.mp3"), []byte("mock audio"), 0644); err != nil {
				return "", err
			}
			return `{"id": "dQw4w9WgXcQ", "title": "Ten Rules: For Life?", "webpage_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}`, nil
		},
	}

	audio, err := newTestFetcher(mock).Fetch(context.Background(), "https://youtu.be/dQw4w9WgXcQ", dir)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if audio.Path != filepath.Join(dir, "audio.mp3") {
		t.Errorf("Path = %q", audio.Path)
	}
	if audio.Info.Title != "Ten Rules: For Life?" {
		t.Errorf("Title = %q", audio.Info.Title)
	}
	if audio.Info.ID != "dQw4w9WgXcQ" {
		t.Errorf("ID = %q", audio.Info.ID)
	}

	if len(mock.Calls) != 1 || mock.Calls[0][0] != "yt-dlp" {
		t.Fatalf("unexpected calls: %v", mock.Calls)
	}
	call := mock.Calls[0]
	if call[len(call)-1] != "https://youtu.be/dQw4w9WgXcQ" {
		t.Errorf("url is not the last argument: %v", call)
	}
}

func TestFetchUnparsableMetadata(t *testing.T) {
	dir := t.TempDir()
	mock := &executor.Mock{
		ExecuteFunc: func(ctx context.Context, _ string, name string, args ...string) (string, error) {
			return "[download] 100%", os.WriteFile(filepath.Join(dir, "audio.webm"), []byte("x"), 0644)
		},
	}

	audio, err := newTestFetcher(mock).Fetch(context.Background(), "https://www.youtube.com/watch?v=abc", dir)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if audio.Info.Title != model.Unknown {
		t.Errorf("Title = %q, want %q", audio.Info.Title, model.Unknown)
	}
	if audio.Info.ID != "abc" {
		t.Errorf("ID = %q, want id parsed from URL", audio.Info.ID)
	}
}

func TestFetchNoAudio(t *testing.T) {
	mock := &executor.Mock{
		ExecuteFunc: func(ctx context.Context, _ string, name string, args ...string) (string, error) {
			return `{"id": "abc", "title": "t"}`, nil
		},
	}

	_, err := newTestFetcher(mock).Fetch(context.Background(), "https://youtu.be/abc", t.TempDir())
	if !errors.Is(err, ErrNoAudio) {
		t.Errorf("Fetch() error = %v, want ErrNoAudio", err)
	}
}

func TestFetchDownloadError(t *testing.T) {
	mock := &executor.Mock{
		ExecuteFunc: func(ctx context.Context, _ string, name string, args ...string) (string, error) {
			return "", errors.New("HTTP Error 403: Forbidden")
		},
	}

	if _, err := newTestFetcher(mock).Fetch(context.Background(), "https://youtu.be/abc", t.TempDir()); err == nil {
		t.Error("Fetch() should fail when yt-dlp fails")
	}
}

func TestCheckDependencies(t *testing.T) {
	ok := &executor.Mock{}
	if err := newTestFetcher(ok).CheckDependencies(context.Background()); err != nil {
		t.Errorf("CheckDependencies() error = %v", err)
	}

	missing := &executor.Mock{
		ExecuteFunc: func(ctx context.Context, _ string, name string, args ...string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}
	err := newTestFetcher(missing).CheckDependencies(context.Background())
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("CheckDependencies() error = %v, want ErrFFmpegNotFound", err)
	}
}
