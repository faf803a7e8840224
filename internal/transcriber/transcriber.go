package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Transcribe runs the configured engine and detects the transcript language.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (*Transcript, error) {
	if _, err := os.Stat(audioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAudioNotFound, audioPath)
	}

	start := time.Now()
	t.logger.Info(ctx, "Transcribing audio with %s (this may take a few minutes): %s", t.engine.name(), audioPath)

	text, err := t.engine.transcribe(ctx, audioPath)
	if err != nil {
		return nil, fmt.Errorf("%s transcribe: %w", t.engine.name(), err)
	}

	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil, ErrEmptyTranscript
	}

	result := &Transcript{Text: text}
	if t.detector != nil {
		result.Language, result.LanguageName = t.detector.detect(text)
		if result.LanguageName != "" {
			t.logger.Info(ctx, "Detected transcription language: %s", result.LanguageName)
		}
	}

	t.logger.Info(ctx, "Transcription completed: %d characters in %s", len(text), time.Since(start).Round(time.Second))
	return result, nil
}
