package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"bhaktibot/config"
	"bhaktibot/pipeline"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [video.mp4]",
	Short: "Upload a reel to YouTube Shorts",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForUpload(); err != nil {
		return err
	}

	videoPath := filepath.Join(cfg.OutputDir, "krishna_reel.mp4")
	if len(args) > 0 {
		videoPath = args[0]
	}

	_, err = pipeline.New(cfg).Upload(context.Background(), videoPath)
	return err
}
