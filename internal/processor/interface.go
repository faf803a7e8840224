package processor

import (
	"context"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

// Processor runs the whole video-to-guide pipeline for one URL.
type Processor interface {
	Process(ctx context.Context, url string) (*model.Result, error)
}
