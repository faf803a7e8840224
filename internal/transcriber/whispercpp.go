package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/pkg/executor"
)

// whisperCPPEngine runs a local whisper.cpp binary and reads its .txt output.
type whisperCPPEngine struct {
	cfg      config.TranscriberConfig
	media    *mediaTool
	executor executor.Executor
	logger   logger.Logger
}

func (e *whisperCPPEngine) name() string {
	return "whisper.cpp"
}

func (e *whisperCPPEngine) transcribe(ctx context.Context, audioPath string) (string, error) {
	dir, err := os.MkdirTemp("", "whisper-cpp-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	wavPath := filepath.Join(dir, "audio.wav")
	if err := e.media.toWAV(ctx, audioPath, wavPath); err != nil {
		return "", err
	}

	// whisper-cli appends .txt to the output prefix
	outputPrefix := filepath.Join(dir, "transcript")
	args := []string{
		"-m", e.cfg.WhisperCPP.ModelPath,
		"-f", wavPath,
		"-otxt",
		"-l", e.cfg.Language,
		"-t", strconv.Itoa(e.cfg.WhisperCPP.Threads),
		"--output-file", outputPrefix,
	}
	if e.cfg.Prompt != "" {
		args = append(args, "--prompt", e.cfg.Prompt)
	}

	e.logger.Debug(ctx, "Running %s with %d threads", e.cfg.WhisperCPP.BinaryPath, e.cfg.WhisperCPP.Threads)
	if _, err := e.executor.Execute(ctx, e.cfg.WhisperCPP.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper-cli: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("read whisper output: %w", err)
	}
	return string(data), nil
}
