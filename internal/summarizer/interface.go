package summarizer

import "context"

// Source tells where a summary came from.
type Source string

const (
	// SourceModel means a language model produced the summary.
	SourceModel Source = "model"
	// SourcePassthrough means the text was too short to summarize.
	SourcePassthrough Source = "passthrough"
	// SourceFallback means the model failed and the text was truncated instead.
	SourceFallback Source = "fallback"
)

// Summary is the key-points text for a transcript.
type Summary struct {
	Text   string
	Source Source
}

// Summarizer condenses a transcript into a short key-points summary.
// It never fails: model errors degrade to a truncated transcript.
type Summarizer interface {
	Summarize(ctx context.Context, text, language string) Summary
}

// backend is one LLM completion provider.
type backend interface {
	name() string
	complete(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}
