package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
	"github.com/nguyentantai21042004/guide-transcriber/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process queue files dropped into paths.input",
	Long: `watch monitors paths.input for .url and .txt queue files (one URL per
line, # comments allowed). Each file is moved to paths.processing, every URL
is processed, and the file is archived to paths.archived.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)

		if err := ensureDirectories(cfg.Paths.Input, cfg.Paths.Processing, cfg.Paths.Archived, cfg.Paths.Output); err != nil {
			log.Error(ctx, "Failed to create directories: %v", err)
			return err
		}

		proc, err := buildProcessor(ctx, cfg, log)
		if err != nil {
			log.Error(ctx, "%v", err)
			return err
		}

		w, err := watcher.New(cfg.Paths.Input, watcher.NewQueueHandler(cfg.Paths, proc, log), log, cfg.Performance.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			return err
		}
		defer w.Stop()

		log.Info(ctx, "========================================")
		log.Info(ctx, "Guide transcriber is ready!")
		log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
		log.Info(ctx, "Output: %s", cfg.Paths.Output)
		log.Info(ctx, "Concurrent: %d queue files at once", cfg.Performance.MaxConcurrent)
		log.Info(ctx, "Press Ctrl+C to stop")
		log.Info(ctx, "========================================")

		err = w.Start(ctx)
		if errors.Is(err, context.Canceled) {
			log.Info(ctx, "Guide transcriber stopped")
			return nil
		}
		log.Error(ctx, "Watcher error: %v", err)
		return err
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
