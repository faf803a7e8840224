package transcriber

import (
	"context"
	"errors"
)

var (
	ErrMissingAPIKey   = errors.New("OPENAI_API_KEY environment variable is not set")
	ErrAudioNotFound   = errors.New("audio file not found")
	ErrEmptyTranscript = errors.New("transcription produced no text")
)

// Transcript is the recognized speech of one audio file.
type Transcript struct {
	Text string
	// Language is the detected ISO 639-1 code, empty when detection failed.
	Language string
	// LanguageName is the detected language in English, e.g. "English".
	LanguageName string
}

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Transcript, error)
}

// engine is one speech-to-text backend.
type engine interface {
	name() string
	transcribe(ctx context.Context, audioPath string) (string, error)
}
