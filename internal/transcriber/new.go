package transcriber

import (
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/pkg/executor"
)

type implTranscriber struct {
	engine   engine
	detector languageDetector
	logger   logger.Logger
}

// New creates a Transcriber for the configured provider.
func New(cfg config.TranscriberConfig, secrets config.SecretsConfig, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	media := &mediaTool{
		ffmpeg:   cfg.FFmpegPath,
		ffprobe:  cfg.FFprobePath,
		executor: exec,
	}

	var eng engine
	switch cfg.Provider {
	case config.TranscriberWhisperCPP:
		eng = &whisperCPPEngine{cfg: cfg, media: media, executor: exec, logger: log}
	case config.TranscriberOpenAI, "":
		if secrets.OpenAIAPIKey == "" {
			return nil, ErrMissingAPIKey
		}
		clientCfg := openai.DefaultConfig(secrets.OpenAIAPIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		eng = &openAIEngine{
			client: openai.NewClientWithConfig(clientCfg),
			cfg:    cfg,
			media:  media,
			logger: log,
		}
	default:
		return nil, fmt.Errorf("unsupported transcriber provider %q", cfg.Provider)
	}

	return &implTranscriber{
		engine:   eng,
		detector: newLinguaDetector(cfg.DetectLanguages),
		logger:   log,
	}, nil
}
