package transcriber

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/guide-transcriber/pkg/executor"
)

// mediaTool wraps the ffmpeg/ffprobe invocations shared by the engines.
type mediaTool struct {
	ffmpeg   string
	ffprobe  string
	executor executor.Executor
}

// duration asks ffprobe for the container duration.
func (m *mediaTool) duration(ctx context.Context, audioPath string) (time.Duration, error) {
	out, err := m.executor.Execute(ctx, m.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err != nil {
		return 0, fmt.Errorf("get audio duration: %w", err)
	}

	d, err := time.ParseDuration(strings.TrimSpace(out) + "s")
	if err != nil {
		return 0, fmt.Errorf("parse audio duration %q: %w", strings.TrimSpace(out), err)
	}
	return d, nil
}

// toWAV converts audioPath to 16kHz mono PCM, the format Whisper works best with.
func (m *mediaTool) toWAV(ctx context.Context, audioPath, wavPath string) error {
	args := []string{
		"-y",
		"-i", audioPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		wavPath,
	}
	if _, err := m.executor.Execute(ctx, m.ffmpeg, args...); err != nil {
		return fmt.Errorf("ffmpeg convert to wav: %w", err)
	}
	return nil
}

// split cuts audioPath into WAV chunks of at most chunk length inside dir.
func (m *mediaTool) split(ctx context.Context, audioPath, dir string, total, chunk time.Duration) ([]string, error) {
	n := int(math.Ceil(total.Seconds() / chunk.Seconds()))
	if n < 1 {
		n = 1
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	chunks := make([]string, 0, n)
	for i := 0; i < n; i++ {
		start := time.Duration(i) * chunk
		chunkPath := filepath.Join(dir, fmt.Sprintf("%s_chunk_%03d.wav", base, i))

		args := []string{
			"-y",
			"-ss", fmt.Sprintf("%f", start.Seconds()),
			"-t", fmt.Sprintf("%f", chunk.Seconds()),
			"-i", audioPath,
			"-vn",
			"-ar", "16000",
			"-ac", "1",
			"-c:a", "pcm_s16le",
			chunkPath,
		}
		if _, err := m.executor.Execute(ctx, m.ffmpeg, args...); err != nil {
			return chunks, fmt.Errorf("create audio chunk %d: %w", i, err)
		}
		chunks = append(chunks, chunkPath)
	}

	return chunks, nil
}
