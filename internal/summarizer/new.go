package summarizer

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
)

type implSummarizer struct {
	cfg     config.SummarizerConfig
	backend backend
	logger  logger.Logger
}

// New creates a Summarizer for the configured provider. Provider "none"
// skips the model and always falls back to truncation.
func New(cfg config.SummarizerConfig, secrets config.SecretsConfig, log logger.Logger) (Summarizer, error) {
	s := &implSummarizer{cfg: cfg, logger: log}

	switch cfg.Provider {
	case config.SummarizerNone:
	case config.SummarizerGemini:
		if len(secrets.GeminiAPIKeys) == 0 {
			return nil, fmt.Errorf("GEMINI_API_KEYS environment variable is not set")
		}
		s.backend = newGeminiBackend(cfg.Model, secrets.GeminiAPIKeys, log)
	case config.SummarizerOpenAI, "":
		if secrets.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		clientCfg := openai.DefaultConfig(secrets.OpenAIAPIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		s.backend = &openAIBackend{client: openai.NewClientWithConfig(clientCfg), model: cfg.Model}
	default:
		return nil, fmt.Errorf("unsupported summarizer provider %q", cfg.Provider)
	}

	return s, nil
}
