package processor

import (
	"context"
	"fmt"
	"os"
)

// createWorkDir makes an isolated download directory under paths.temp so
// concurrent runs never see each other's audio files.
func (p *implProcessor) createWorkDir() (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	dir, err := os.MkdirTemp(p.cfg.Paths.Temp, "run-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	return dir, nil
}

// cleanupWorkDir removes the run directory and, when no other run is using
// it, the temp root as well.
func (p *implProcessor) cleanupWorkDir(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp dir %s: %v", dir, err)
		return
	}
	p.logger.Debug(ctx, "Cleaned up temp dir: %s", dir)

	// Only succeeds once the temp root is empty.
	_ = os.Remove(p.cfg.Paths.Temp)
}
