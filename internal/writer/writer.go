package writer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
)

const maxTitleLength = 100

// Write stores <title>_<timestamp>.json and .txt (and .docx when enabled).
func (w *implWriter) Write(ctx context.Context, result *model.Result) (*Output, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Join(w.outputDir, SanitizeFilename(result.Title)+"_"+result.Timestamp)
	out := &Output{
		JSONPath: base + ".json",
		TextPath: base + ".txt",
	}

	if err := writeJSON(out.JSONPath, result); err != nil {
		return nil, fmt.Errorf("write JSON: %w", err)
	}
	if err := os.WriteFile(out.TextPath, []byte(renderText(result)), 0644); err != nil {
		return nil, fmt.Errorf("write text report: %w", err)
	}

	if w.docx {
		out.DocxPath = base + ".docx"
		if err := writeDocx(result, out.DocxPath); err != nil {
			return nil, fmt.Errorf("write docx report: %w", err)
		}
	}

	w.logger.Info(ctx, "Results saved to:")
	w.logger.Info(ctx, "  JSON: %s", out.JSONPath)
	w.logger.Info(ctx, "  Text: %s", out.TextPath)
	if out.DocxPath != "" {
		w.logger.Info(ctx, "  DOCX: %s", out.DocxPath)
	}

	return out, nil
}

// SanitizeFilename drops characters that are invalid in file names on common
// platforms and limits the result to 100 characters.
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`<>:"/\|?*`, r) || r < 0x20 {
			return -1
		}
		return r
	}, name)

	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxTitleLength {
		name = strings.TrimSpace(string(runes[:maxTitleLength]))
	}
	if name == "" {
		return "video"
	}
	return name
}
