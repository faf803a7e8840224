package writer

import (
	"context"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

// Output lists the files written for one result. DocxPath is empty when the
// DOCX report is disabled.
type Output struct {
	JSONPath string
	TextPath string
	DocxPath string
}

// Writer persists a pipeline result to disk.
type Writer interface {
	Write(ctx context.Context, result *model.Result) (*Output, error)
}
