package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/guide-transcriber/internal/fetcher"
	"github.com/nguyentantai21042004/guide-transcriber/internal/model"
	"github.com/nguyentantai21042004/guide-transcriber/internal/steps"
)

// Process orchestrates the entire pipeline: download, transcribe, summarize,
// extract steps and save. Only the summary step is allowed to fail softly.
func (p *implProcessor) Process(ctx context.Context, url string) (*model.Result, error) {
	startTime := time.Now()

	if err := fetcher.ValidateURL(url, p.cfg.Fetcher.AllowedHosts); err != nil {
		return nil, err
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting video processing: %s", url)
	p.logger.Info(ctx, "========================================")

	workDir, err := p.createWorkDir()
	if err != nil {
		return nil, err
	}
	defer p.cleanupWorkDir(ctx, workDir)

	// Step 1: Download audio
	audio, err := p.deps.Fetcher.Fetch(ctx, url, workDir)
	if err != nil {
		return nil, fmt.Errorf("download audio: %w", err)
	}

	// Step 2: Transcribe
	transcript, err := p.deps.Transcriber.Transcribe(ctx, audio.Path)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	// Step 3: Key points (never fatal)
	summary := p.deps.Summarizer.Summarize(ctx, transcript.Text, transcript.LanguageName)

	// Step 4: Numbered steps
	found := steps.Extract(transcript.Text)
	if len(found) == 0 {
		p.logger.Info(ctx, "No numbered steps found in transcript")
	} else {
		p.logger.Info(ctx, "Found %d numbered steps", len(found))
	}

	result := model.NewResult(audio.Info.Title, url, audio.Info.ID, transcript.Text, summary.Text, found, p.now())
	result.Language = transcript.Language

	// Step 5: Save
	out, err := p.deps.Writer.Write(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("save results: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "TRANSCRIPT")
	p.logger.Info(ctx, "%s", preview(result.Transcript, p.cfg.Output.PreviewChars))
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "KEY POINTS & SUMMARY (%s)", summary.Source)
	p.logger.Info(ctx, "%s", result.KeyPoints)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Output: %s", out.JSONPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return result, nil
}

// preview shortens long transcripts for console display.
func preview(text string, limit int) string {
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
