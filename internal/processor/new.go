package processor

import (
	"time"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/fetcher"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/internal/summarizer"
	"github.com/nguyentantai21042004/guide-transcriber/internal/transcriber"
	"github.com/nguyentantai21042004/guide-transcriber/internal/writer"
)

// Deps are the pipeline stages a Processor drives.
type Deps struct {
	Fetcher     fetcher.Fetcher
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Writer      writer.Writer
}

type implProcessor struct {
	cfg    *config.Config
	deps   Deps
	logger logger.Logger
	now    func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		deps:   deps,
		logger: log,
		now:    time.Now,
	}
}
