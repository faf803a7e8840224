package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
)

// openAIEngine calls the OpenAI (or compatible) /v1/audio/transcriptions endpoint.
type openAIEngine struct {
	client *openai.Client
	cfg    config.TranscriberConfig
	media  *mediaTool
	logger logger.Logger
}

func (e *openAIEngine) name() string {
	return "openai/" + e.cfg.Model
}

// transcribe uploads the audio, splitting it first when it is longer than
// MaxChunkDuration so each request stays under the API upload limit.
func (e *openAIEngine) transcribe(ctx context.Context, audioPath string) (string, error) {
	total, err := e.media.duration(ctx, audioPath)
	if err != nil {
		e.logger.Warn(ctx, "Could not probe duration, sending file as-is: %v", err)
		return e.request(ctx, audioPath)
	}

	if total <= e.cfg.MaxChunkDuration {
		return e.request(ctx, audioPath)
	}

	dir, err := os.MkdirTemp("", "transcribe-chunks-*")
	if err != nil {
		return "", fmt.Errorf("create chunk dir: %w", err)
	}
	defer os.RemoveAll(dir)

	chunks, err := e.media.split(ctx, audioPath, dir, total, e.cfg.MaxChunkDuration)
	if err != nil {
		return "", fmt.Errorf("split audio: %w", err)
	}

	var full strings.Builder
	for i, chunk := range chunks {
		e.logger.Info(ctx, "[%d/%d] Transcribing chunk", i+1, len(chunks))
		text, err := e.request(ctx, chunk)
		if err != nil {
			return "", fmt.Errorf("chunk %d: %w", i, err)
		}
		full.WriteString(text)
		full.WriteString(" ")
	}

	return strings.TrimSpace(full.String()), nil
}

func (e *openAIEngine) request(ctx context.Context, audioPath string) (string, error) {
	resp, err := e.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    e.cfg.Model,
		FilePath: audioPath,
		Language: e.cfg.Language,
		Prompt:   e.cfg.Prompt,
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}
	return resp.Text, nil
}
