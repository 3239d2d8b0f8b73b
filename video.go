package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"bhaktibot/config"
	"bhaktibot/pipeline"
)

var (
	videoFrame string
	videoOut   string
)

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Mux a rendered frame with BGM into a reel",
	RunE:  runVideo,
}

func init() {
	videoCmd.Flags().StringVar(&videoFrame, "frame", "", "input frame PNG (default output/krishna_frame.png)")
	videoCmd.Flags().StringVar(&videoOut, "out", "", "output mp4 path (default output/krishna_reel.mp4)")
	rootCmd.AddCommand(videoCmd)
}

func runVideo(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	frame := videoFrame
	if frame == "" {
		frame = filepath.Join(cfg.OutputDir, "krishna_frame.png")
	}
	out := videoOut
	if out == "" {
		out = filepath.Join(cfg.OutputDir, "krishna_reel.mp4")
	}
	return pipeline.New(cfg).Video(frame, out)
}
