package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"bhaktibot/config"
	"bhaktibot/pipeline"
)

var (
	frameText string
	frameOut  string
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Compose a caption onto a random artwork frame",
	Long: `Compose generates a caption (or takes one via --text) and renders
it onto a 1080x1920 frame picked from the artwork directory.`,
	RunE: runFrame,
}

func init() {
	frameCmd.Flags().StringVar(&frameText, "text", "", "use this caption instead of generating one")
	frameCmd.Flags().StringVar(&frameOut, "out", "", "output PNG path (default output/krishna_frame.png)")
	rootCmd.AddCommand(frameCmd)
}

func runFrame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	p := pipeline.New(cfg)

	line := frameText
	if line == "" {
		if err := cfg.ValidateForGeneration(); err != nil {
			return err
		}
		line, err = p.Caption(context.Background())
		if err != nil {
			return err
		}
	}

	out := frameOut
	if out == "" {
		out = filepath.Join(cfg.OutputDir, "krishna_frame.png")
	}
	return p.Frame(line, out)
}
