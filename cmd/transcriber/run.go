package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/guide-transcriber/internal/logger"
)

var runCmd = &cobra.Command{
	Use:   "run [URL]",
	Short: "Process a single YouTube video",
	Example: `  transcriber run "https://www.youtube.com/watch?v=abc123"
  transcriber run https://youtu.be/abc123 --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format)

		proc, err := buildProcessor(ctx, cfg, log)
		if err != nil {
			log.Error(ctx, "%v", err)
			return err
		}

		if _, err := proc.Process(ctx, args[0]); err != nil {
			log.Error(ctx, "Processing failed: %v", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
