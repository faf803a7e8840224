package fetcher

import (
	"context"
	"errors"
)

var (
	ErrInvalidURL     = errors.New("not a supported video URL")
	ErrNoAudio        = errors.New("no audio file found after download")
	ErrFFmpegNotFound = errors.New("ffmpeg not found in PATH")
)

// VideoInfo is the metadata reported by the downloader.
type VideoInfo struct {
	ID    string
	Title string
	URL   string
}

// Audio is a downloaded audio track on local disk.
type Audio struct {
	Path string
	Info VideoInfo
}

// Fetcher downloads the audio track of a video URL.
type Fetcher interface {
	// CheckDependencies verifies the external tools the fetcher relies on.
	CheckDependencies(ctx context.Context) error
	// Fetch downloads the audio of url into destDir.
	Fetch(ctx context.Context, url, destDir string) (*Audio, error)
}
