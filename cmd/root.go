package cmd

import (
	"fmt"
	"os"

	"video-id-finder/core/logger"
	"video-id-finder/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "video-id-finder",
	Short: "Video ID Finder",
	Long: `Video ID Finder matches transcription files to the curriculum videos they
transcribe and produces the file_id,video_id table used to attach captions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console logger with the development config for ISO8601 timestamps
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err), zap.Bool("fatal", reconcile.IsFatal(err)))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
