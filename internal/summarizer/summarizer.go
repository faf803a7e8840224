package summarizer

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// maxChunkChars keeps each request comfortably inside the model context.
const maxChunkChars = 12000

const systemPrompt = "You are a helpful assistant that extracts the key points of video transcripts concisely while retaining key information. Always respond in %s."

const summaryPrompt = `Summarize the key points of the following video transcript in about %d to %d words.
Keep the speaker's own terms. Do not add information that is not in the transcript.

Transcript:
---
%s
---`

// Summarize returns the key points of text. Texts with fewer than
// MinSentences sentences are returned unchanged.
func (s *implSummarizer) Summarize(ctx context.Context, text, language string) Summary {
	s.logger.Info(ctx, "Extracting key points...")

	sentences := splitSentences(text)
	if len(sentences) < s.cfg.MinSentences {
		s.logger.Info(ctx, "Transcript has %d sentences, using it as the summary", len(sentences))
		return Summary{Text: text, Source: SourcePassthrough}
	}

	if s.backend == nil {
		return s.fallback(ctx, text, fmt.Errorf("no summarizer configured"))
	}

	minWords, maxWords := summaryLength(len(sentences))
	if language == "" {
		language = "the language of the transcript"
	}

	summary, err := s.summarizeChunks(ctx, text, language, minWords, maxWords)
	if err != nil {
		return s.fallback(ctx, text, err)
	}

	summary = strings.TrimSpace(summary)
	if summary == "" {
		return s.fallback(ctx, text, fmt.Errorf("empty response from %s", s.backend.name()))
	}

	s.logger.Info(ctx, "Key points extracted with %s", s.backend.name())
	return Summary{Text: summary, Source: SourceModel}
}

// summarizeChunks summarizes each chunk, then condenses the partial summaries
// once more when the transcript needed more than one chunk.
func (s *implSummarizer) summarizeChunks(ctx context.Context, text, language string, minWords, maxWords int) (string, error) {
	system := fmt.Sprintf(systemPrompt, language)

	chunks := splitTextIntoChunks(text, maxChunkChars)
	if len(chunks) == 1 {
		return s.backend.complete(ctx, system, fmt.Sprintf(summaryPrompt, minWords, maxWords, text), s.cfg.MaxTokens)
	}

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug(ctx, "[%d/%d] Summarizing chunk (%d characters)", i+1, len(chunks), len(chunk))
		partial, err := s.backend.complete(ctx, system, fmt.Sprintf(summaryPrompt, minWords, maxWords, chunk), s.cfg.MaxTokens)
		if err != nil {
			return "", fmt.Errorf("summarize chunk %d: %w", i, err)
		}
		partials = append(partials, strings.TrimSpace(partial))
	}

	combined := strings.Join(partials, "\n\n")
	return s.backend.complete(ctx, system, fmt.Sprintf(summaryPrompt, minWords, maxWords, combined), s.cfg.MaxTokens)
}

func (s *implSummarizer) fallback(ctx context.Context, text string, err error) Summary {
	s.logger.Warn(ctx, "Could not extract key points: %v", err)
	return Summary{Text: truncate(text, s.cfg.FallbackChars), Source: SourceFallback}
}

// splitSentences breaks text after every period and drops empty pieces.
func splitSentences(text string) []string {
	parts := strings.Split(strings.ReplaceAll(text, ".", ".\n"), "\n")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// summaryLength sizes the summary from the sentence count. The upper bound is
// half the sentence count capped at 150 words, the lower bound ten below it
// capped at 50; both are at least 1.
func summaryLength(sentences int) (minWords, maxWords int) {
	maxWords = min(150, sentences/2)
	minWords = min(50, maxWords-10)
	if maxWords < 1 {
		maxWords = 1
	}
	if minWords < 1 {
		minWords = 1
	}
	return minWords, maxWords
}

func splitTextIntoChunks(text string, chunkSize int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}
	n := math.Ceil(float64(len(text)) / float64(chunkSize))
	wordsPerChunk := int(math.Ceil(float64(len(words)) / n))

	var chunks []string
	for i := 0; i < len(words); i += wordsPerChunk {
		end := min(i+wordsPerChunk, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
