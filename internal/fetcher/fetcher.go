package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

// ytdlpInfo is the subset of the yt-dlp JSON dump we use.
type ytdlpInfo struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	WebpageURL string `json:"webpage_url"`
}

// CheckDependencies fails when ffmpeg cannot be run; audio extraction needs it.
func (f *implFetcher) CheckDependencies(ctx context.Context) error {
	if _, err := f.executor.Execute(ctx, f.cfg.FFmpegPath, "-version"); err != nil {
		f.logger.Error(ctx, "FFmpeg is required. Install it: winget install Gyan.FFmpeg | brew install ffmpeg | sudo apt install ffmpeg")
		return fmt.Errorf("%w: %v", ErrFFmpegNotFound, err)
	}
	return nil
}

// Fetch downloads the best audio stream of url and converts it to the
// configured format. Metadata comes from the yt-dlp JSON dump on stdout.
func (f *implFetcher) Fetch(ctx context.Context, url, destDir string) (*Audio, error) {
	f.logger.Info(ctx, "Downloading audio from: %s", url)

	args := []string{
		"-J", "--no-simulate",
		"--no-progress",
		"--no-playlist",
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", f.cfg.AudioFormat,
		"--audio-quality", f.cfg.AudioQuality,
		"-o", filepath.Join(destDir, "audio.%(ext)s"),
	}
	if filepath.IsAbs(f.cfg.FFmpegPath) {
		args = append(args, "--ffmpeg-location", f.cfg.FFmpegPath)
	}
	args = append(args, url)

	stdout, err := f.executor.Execute(ctx, f.cfg.BinaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp download: %w", err)
	}

	info := f.parseInfo(ctx, stdout, url)

	audioPath, err := findAudio(destDir)
	if err != nil {
		return nil, err
	}

	f.logger.Info(ctx, "Audio downloaded successfully (%s)", filepath.Base(audioPath))
	return &Audio{Path: audioPath, Info: info}, nil
}

func (f *implFetcher) parseInfo(ctx context.Context, stdout, url string) VideoInfo {
	info := VideoInfo{ID: VideoID(url), Title: model.Unknown, URL: url}

	var dump ytdlpInfo
	if err := json.Unmarshal([]byte(strings.TrimSpace(stdout)), &dump); err != nil {
		f.logger.Warn(ctx, "Could not parse yt-dlp metadata: %v", err)
		return info
	}

	if dump.ID != "" {
		info.ID = dump.ID
	}
	if strings.TrimSpace(dump.Title) != "" {
		info.Title = dump.Title
	}
	return info
}

func findAudio(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "audio*"))
	if err != nil {
		return "", fmt.Errorf("glob audio: %w", err)
	}
	if len(matches) == 0 {
		return "", ErrNoAudio
	}
	sort.Strings(matches)
	return matches[0], nil
}
