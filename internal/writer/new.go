package writer

import (
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
)

type implWriter struct {
	outputDir string
	docx      bool
	logger    logger.Logger
}

// New creates a Writer that stores results under outputDir.
func New(outputDir string, docx bool, log logger.Logger) Writer {
	return &implWriter{
		outputDir: outputDir,
		docx:      docx,
		logger:    log,
	}
}
