package summarizer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
)

// geminiBackend rotates through API keys when one is rate limited.
type geminiBackend struct {
	model   string
	apiKeys []string
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
	generate   func(ctx context.Context, apiKey, model, prompt string, maxTokens int) (string, error)
}

func newGeminiBackend(model string, apiKeys []string, log logger.Logger) *geminiBackend {
	return &geminiBackend{
		model:    model,
		apiKeys:  apiKeys,
		logger:   log,
		generate: callGemini,
	}
}

func (b *geminiBackend) name() string {
	return "gemini/" + b.model
}

// complete sends the prompt, rotating keys on 429 / quota errors until every
// key has been tried once.
func (b *geminiBackend) complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	full := system + "\n\n" + prompt

	var lastErr error
	for range len(b.apiKeys) {
		key, idx := b.key()

		text, err := b.generate(ctx, key, b.model, full, maxTokens)
		if err == nil {
			return text, nil
		}
		if !isRateLimited(err) {
			return "", err
		}

		b.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
		b.rotateKey()
		lastErr = err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (b *geminiBackend) key() (string, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.apiKeys[b.currentKey], b.currentKey
}

func (b *geminiBackend) rotateKey() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.currentKey = (b.currentKey + 1) % len(b.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func callGemini(ctx context.Context, apiKey, model, prompt string, maxTokens int) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text.WriteString(part.Text)
			}
		}
		return text.String(), nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}
