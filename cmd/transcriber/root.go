package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/guide-transcriber/internal/config"
	"github.com/nguyentantai21042004/guide-transcriber/internal/fetcher"
	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/internal/processor"
	"github.com/nguyentantai21042004/guide-transcriber/internal/summarizer"
	"github.com/nguyentantai21042004/guide-transcriber/internal/transcriber"
	"github.com/nguyentantai21042004/guide-transcriber/internal/writer"
	"github.com/nguyentantai21042004/guide-transcriber/pkg/executor"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "transcriber",
	Short: "Turn YouTube videos into transcripts, key points and step-by-step guides",
	Long: `transcriber downloads the audio of a YouTube video, transcribes it,
summarizes the key points and pulls out every spoken
"rule number N" into a PRACTICAL GUIDE.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
}

// loadConfig reads --config. The default path may be absent; an explicit one must exist.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	load := config.LoadOptional
	if cmd.Flags().Changed("config") {
		load = config.Load
	}

	cfg, err := load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

// buildProcessor wires every pipeline stage from cfg.
func buildProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())

	exec := executor.New()

	fetch := fetcher.New(cfg.Fetcher, exec, log)
	if err := fetch.CheckDependencies(ctx); err != nil {
		return nil, err
	}

	trans, err := transcriber.New(cfg.Transcriber, cfg.Secrets, exec, log)
	if err != nil {
		return nil, fmt.Errorf("init transcriber: %w", err)
	}

	sum, err := summarizer.New(cfg.Summarizer, cfg.Secrets, log)
	if err != nil {
		return nil, fmt.Errorf("init summarizer: %w", err)
	}

	log.Info(ctx, "Transcriber: %s (%s), summarizer: %s (%s)",
		cfg.Transcriber.Provider, cfg.Transcriber.Model, cfg.Summarizer.Provider, cfg.Summarizer.Model)

	return processor.New(cfg, processor.Deps{
		Fetcher:     fetch,
		Transcriber: trans,
		Summarizer:  sum,
		Writer:      writer.New(cfg.Paths.Output, cfg.Output.Docx, log),
	}, log), nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
