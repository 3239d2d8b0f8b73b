package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"bhaktibot/config"
	"bhaktibot/pipeline"
)

var lineOut string

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Generate one novel caption and print it",
	RunE:  runLine,
}

func init() {
	lineCmd.Flags().StringVar(&lineOut, "out", "", "also write the caption to this file")
	rootCmd.AddCommand(lineCmd)
}

func runLine(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForGeneration(); err != nil {
		return err
	}

	line, err := pipeline.New(cfg).Caption(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(line)

	if lineOut != "" {
		if err := os.MkdirAll(filepath.Dir(lineOut), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(lineOut, []byte(line+"\n"), 0o644); err != nil {
			return fmt.Errorf("write caption to %s: %w", lineOut, err)
		}
	}
	return nil
}
