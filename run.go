package main

import (
	"context"

	"github.com/spf13/cobra"

	"bhaktibot/config"
	"bhaktibot/pipeline"
)

var runSkipUpload bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: caption, frame, reel, upload",
	RunE:  runAll,
}

func init() {
	runCmd.Flags().BoolVar(&runSkipUpload, "skip-upload", false, "stop after the reel is rendered")
	rootCmd.AddCommand(runCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForGeneration(); err != nil {
		return err
	}

	doUpload := !runSkipUpload
	if doUpload {
		if err := cfg.ValidateForUpload(); err != nil {
			return err
		}
	}

	return pipeline.New(cfg).Run(context.Background(), doUpload)
}
